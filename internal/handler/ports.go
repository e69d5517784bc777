package handler

import (
	"context"

	"taskflow/internal/filter"
	"taskflow/internal/model"
	"taskflow/internal/service"

	"github.com/google/uuid"
)

type DirectoryService interface {
	GetManager(ctx context.Context, userID uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	SetManager(ctx context.Context, userID uuid.UUID, managerID *uuid.UUID) error
}

type TaskService interface {
	CreateTask(ctx context.Context, actingUserID uuid.UUID, in service.CreateTaskInput) (*model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id uint64) (*model.Task, error)
	EditTask(ctx context.Context, actingUserID uuid.UUID, id uint64, patch service.TaskPatch) error
	DeleteTask(ctx context.Context, actingUserID uuid.UUID, id uint64) error
	FilterTasks(ctx context.Context, actingUserID uuid.UUID, criteria filter.Criteria) ([]model.Task, error)
	AddComment(ctx context.Context, actingUserID uuid.UUID, taskID uint64, body string) (*model.Comment, error)
	ListComments(ctx context.Context, taskID uint64) ([]model.Comment, error)
}
