// Package directory owns users and the manager-of relation.
package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskflow/internal/apperror"
	"taskflow/internal/auth"
	"taskflow/internal/model"
	"taskflow/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	users repository.UserRepositoryInterface
}

func NewService(users repository.UserRepositoryInterface) *Service {
	return &Service{users: users}
}

// ResolveOrCreate returns the user registered under id.Email, inserting one on first sight.
// Concurrent callers with the same email end up with the same row.
func (s *Service) ResolveOrCreate(ctx context.Context, id auth.Identity) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(id.Email))
	if email == "" {
		return nil, apperror.ErrUnauthenticated
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", email, err)
	}
	if user != nil {
		return user, nil
	}

	name := strings.TrimSpace(id.Name)
	if name == "" {
		name = id.Username
	}
	candidate := &model.User{
		ID:       uuid.New(),
		Username: id.Username,
		Name:     name,
		Email:    email,
	}
	if err := s.users.CreateIfAbsent(ctx, candidate); err != nil {
		return nil, fmt.Errorf("create user %s: %w", email, err)
	}

	// Re-read: another request may have won the insert.
	user, err = s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", email, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s vanished after insert", email)
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetManager returns nil when the user has no manager or either row is missing.
func (s *Service) GetManager(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil || user == nil || user.ManagerID == nil {
		return nil, err
	}
	return s.users.GetByID(ctx, *user.ManagerID)
}

func (s *Service) ListDirectReports(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
	return s.users.ListIDsByManager(ctx, managerID)
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// SetManager reassigns userID's manager; nil clears it. Only the direct self-reference is
// rejected: longer cycles (A→B→A) are not detected.
func (s *Service) SetManager(ctx context.Context, userID uuid.UUID, managerID *uuid.UUID) error {
	if managerID != nil {
		if *managerID == userID {
			return apperror.ErrInvalidAssignment
		}
		manager, err := s.users.GetByID(ctx, *managerID)
		if err != nil {
			return fmt.Errorf("lookup manager %s: %w", *managerID, err)
		}
		if manager == nil {
			return apperror.ErrManagerNotFound
		}
	}

	err := s.users.UpdateManager(ctx, userID, managerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return apperror.ErrUserNotFound.Wrap(err)
	}
	return err
}
