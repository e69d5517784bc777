package repository

import (
	"context"
	"errors"

	"taskflow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope narrows a task query. filter.Predicate.Apply satisfies it.
type Scope func(db *gorm.DB) *gorm.DB

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// List retrieves every task ordered by ID
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	return r.Find(ctx, nil)
}

// Find retrieves the tasks matched by scope; a nil scope matches all
func (r *TaskRepository) Find(ctx context.Context, scope Scope) ([]model.Task, error) {
	var tasks []model.Task
	query := r.db.WithContext(ctx).Model(&model.Task{})
	if scope != nil {
		query = query.Scopes(scope)
	}
	if err := query.Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateByCreator applies changes to the task only while it is still owned by createdBy.
// Keys of changes are column names.
func (r *TaskRepository) UpdateByCreator(ctx context.Context, id uint64, createdBy uuid.UUID, changes map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND created_by = ?", id, createdBy).
		Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteByCreator removes the task only while it is still owned by createdBy
func (r *TaskRepository) DeleteByCreator(ctx context.Context, id uint64, createdBy uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, createdBy).
		Delete(&model.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
