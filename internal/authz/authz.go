// Package authz decides who may mutate a task.
//
// A task may be edited or deleted by its creator or by the creator's direct manager.
// Nobody else qualifies: not a grand-manager, not a peer, not an assignee who did not
// create the task. Reads are never gated here.
package authz

import (
	"context"

	"taskflow/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserLookup returns nil, nil for an unknown id.
type UserLookup interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type Engine struct {
	users UserLookup
}

func NewEngine(users UserLookup) *Engine {
	return &Engine{users: users}
}

// CanMutate never fails: an unresolvable creator or a lookup error denies.
func (e *Engine) CanMutate(ctx context.Context, task *model.Task, actingUserID uuid.UUID) bool {
	if task == nil {
		return false
	}
	if task.CreatedBy == actingUserID {
		return true
	}

	creator, err := e.users.GetUser(ctx, task.CreatedBy)
	if err != nil {
		zap.L().Warn("creator lookup failed, denying",
			zap.Uint64("task_id", task.ID),
			zap.Stringer("created_by", task.CreatedBy),
			zap.Error(err))
		return false
	}
	if creator == nil {
		zap.L().Debug("orphaned creator, denying",
			zap.Uint64("task_id", task.ID),
			zap.Stringer("created_by", task.CreatedBy))
		return false
	}
	return creator.ManagedBy(actingUserID)
}
