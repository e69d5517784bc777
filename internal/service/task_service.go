package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"taskflow/internal/apperror"
	"taskflow/internal/filter"
	"taskflow/internal/model"
	"taskflow/internal/optional"
	"taskflow/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateTaskInput struct {
	Title       string
	Description string
	Status      model.TaskStatus
	AssignedTo  *uuid.UUID
	Deadline    *time.Time
}

// TaskPatch is a partial update; omitted fields keep their value.
// A null AssignedTo unassigns, a null Deadline clears it.
type TaskPatch struct {
	Title       optional.Value[string]
	Description optional.Value[string]
	Status      optional.Value[model.TaskStatus]
	AssignedTo  optional.Value[uuid.UUID]
	Deadline    optional.Value[time.Time]
}

type TaskService struct {
	tasks    TaskStore
	comments CommentStore
	users    UserLookup
	authz    Authorizer
	filters  FilterBuilder
}

func NewTaskService(tasks TaskStore, comments CommentStore, users UserLookup, authz Authorizer, filters FilterBuilder) *TaskService {
	return &TaskService{
		tasks:    tasks,
		comments: comments,
		users:    users,
		authz:    authz,
		filters:  filters,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, actingUserID uuid.UUID, in CreateTaskInput) (*model.Task, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if !in.Status.Valid() {
		return nil, apperror.ErrInvalidStatus
	}
	if in.AssignedTo != nil {
		if err := s.checkAssignee(ctx, *in.AssignedTo); err != nil {
			return nil, err
		}
	}

	task := &model.Task{
		Title:       title,
		Description: in.Description,
		Status:      in.Status,
		AssignedTo:  in.AssignedTo,
		CreatedBy:   actingUserID,
		Deadline:    in.Deadline,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.tasks.List(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return nil, apperror.ErrTaskNotFound.Wrap(err)
	}
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return task, nil
}

// EditTask is gated by the authorizer. Any status in the enum may be written from any status.
func (s *TaskService) EditTask(ctx context.Context, actingUserID uuid.UUID, id uint64, patch TaskPatch) error {
	task, err := s.authorizedTask(ctx, actingUserID, id)
	if err != nil {
		return err
	}

	changes, err := s.changes(ctx, patch)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil
	}

	// The conditional write pins created_by; the creator's manager can still change in between.
	err = s.tasks.UpdateByCreator(ctx, id, task.CreatedBy, changes)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return apperror.ErrFailedToUpdateTask.Wrap(err)
	}
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	return nil
}

func (s *TaskService) DeleteTask(ctx context.Context, actingUserID uuid.UUID, id uint64) error {
	task, err := s.authorizedTask(ctx, actingUserID, id)
	if err != nil {
		return err
	}

	err = s.tasks.DeleteByCreator(ctx, id, task.CreatedBy)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return apperror.ErrTaskNotFound.Wrap(err)
	}
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

func (s *TaskService) FilterTasks(ctx context.Context, actingUserID uuid.UUID, criteria filter.Criteria) ([]model.Task, error) {
	predicate, err := s.filters.Build(ctx, criteria, actingUserID)
	if err != nil {
		return nil, err
	}
	return s.tasks.Find(ctx, predicate.Apply)
}

// AddComment rejects blank bodies before touching the store.
func (s *TaskService) AddComment(ctx context.Context, actingUserID uuid.UUID, taskID uint64, body string) (*model.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperror.ErrCommentRequired
	}
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		TaskID:    taskID,
		Body:      body,
		CreatedBy: actingUserID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment to task %d: %w", taskID, err)
	}
	return comment, nil
}

func (s *TaskService) ListComments(ctx context.Context, taskID uint64) ([]model.Comment, error) {
	return s.comments.ListByTask(ctx, taskID)
}

func (s *TaskService) authorizedTask(ctx context.Context, actingUserID uuid.UUID, id uint64) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.authz.CanMutate(ctx, task, actingUserID) {
		zap.L().Info("task mutation denied",
			zap.Uint64("task_id", id),
			zap.Stringer("acting_user", actingUserID),
			zap.Stringer("created_by", task.CreatedBy))
		return nil, apperror.ErrNotAuthorized
	}
	return task, nil
}

func (s *TaskService) changes(ctx context.Context, patch TaskPatch) (map[string]interface{}, error) {
	changes := map[string]interface{}{}

	if patch.Title.IsSet() {
		title, err := normalizeTitle(patch.Title.Or(""))
		if err != nil {
			return nil, err
		}
		changes["title"] = title
	}
	if patch.Description.IsSet() {
		changes["description"] = patch.Description.Or("")
	}
	if patch.Status.IsSet() {
		status := patch.Status.Or("")
		if !status.Valid() {
			return nil, apperror.ErrInvalidStatus
		}
		changes["status"] = status
	}
	if patch.AssignedTo.IsSet() {
		if assignee, ok := patch.AssignedTo.Get(); ok {
			if err := s.checkAssignee(ctx, assignee); err != nil {
				return nil, err
			}
			changes["assigned_to"] = assignee
		} else {
			changes["assigned_to"] = nil
		}
	}
	if patch.Deadline.IsSet() {
		if deadline, ok := patch.Deadline.Get(); ok {
			changes["deadline"] = deadline
		} else {
			changes["deadline"] = nil
		}
	}
	return changes, nil
}

func (s *TaskService) checkAssignee(ctx context.Context, id uuid.UUID) error {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return fmt.Errorf("lookup assignee %s: %w", id, err)
	}
	if user == nil {
		return apperror.ErrInvalidAssignee
	}
	return nil
}

func normalizeTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", apperror.ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > model.MaxTitleLength {
		return "", apperror.ErrTitleTooLong
	}
	return title, nil
}
