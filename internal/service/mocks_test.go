package service_test

import (
	"context"

	"taskflow/internal/model"
	"taskflow/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskStore) GetByID(ctx context.Context, id uint64) (*model.Task, error) {
	args := m.Called(ctx, id)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskStore) List(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]model.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskStore) Find(ctx context.Context, scope repository.Scope) ([]model.Task, error) {
	args := m.Called(ctx, scope)
	tasks, _ := args.Get(0).([]model.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskStore) UpdateByCreator(ctx context.Context, id uint64, createdBy uuid.UUID, changes map[string]interface{}) error {
	args := m.Called(ctx, id, createdBy, changes)
	return args.Error(0)
}

func (m *MockTaskStore) DeleteByCreator(ctx context.Context, id uint64, createdBy uuid.UUID) error {
	args := m.Called(ctx, id, createdBy)
	return args.Error(0)
}

type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentStore) ListByTask(ctx context.Context, taskID uint64) ([]model.Comment, error) {
	args := m.Called(ctx, taskID)
	comments, _ := args.Get(0).([]model.Comment)
	return comments, args.Error(1)
}

// userTable is a fixed directory keyed by id.
type userTable map[uuid.UUID]*model.User

func (u userTable) GetUser(_ context.Context, id uuid.UUID) (*model.User, error) {
	return u[id], nil
}

func (u userTable) ListDirectReports(_ context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, user := range u {
		if user.ManagedBy(managerID) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
