package repository

import (
	"context"

	"taskflow/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create appends a comment to a task
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByTask returns the task's comments oldest first
func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_on").
		Order("id").
		Find(&comments).Error
	return comments, err
}
