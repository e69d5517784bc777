package service

import (
	"context"

	"taskflow/internal/filter"
	"taskflow/internal/model"
	"taskflow/internal/repository"

	"github.com/google/uuid"
)

type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uint64) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Find(ctx context.Context, scope repository.Scope) ([]model.Task, error)
	UpdateByCreator(ctx context.Context, id uint64, createdBy uuid.UUID, changes map[string]interface{}) error
	DeleteByCreator(ctx context.Context, id uint64, createdBy uuid.UUID) error
}

type CommentStore interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByTask(ctx context.Context, taskID uint64) ([]model.Comment, error)
}

type UserLookup interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type Authorizer interface {
	CanMutate(ctx context.Context, task *model.Task, actingUserID uuid.UUID) bool
}

type FilterBuilder interface {
	Build(ctx context.Context, criteria filter.Criteria, actingUserID uuid.UUID) (filter.Predicate, error)
}

var (
	_ TaskStore     = (*repository.TaskRepository)(nil)
	_ CommentStore  = (*repository.CommentRepository)(nil)
	_ FilterBuilder = (*filter.Builder)(nil)
)
