package directory_test

import (
	"context"

	"taskflow/internal/model"
	"taskflow/internal/repository"

	"github.com/google/uuid"
)

type memoryUsers struct {
	byEmail map[string]*model.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: map[string]*model.User{}}
}

func (m *memoryUsers) CreateIfAbsent(_ context.Context, user *model.User) error {
	if _, ok := m.byEmail[user.Email]; !ok {
		stored := *user
		m.byEmail[user.Email] = &stored
	}
	return nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if user, ok := m.byEmail[email]; ok {
		found := *user
		return &found, nil
	}
	return nil, nil
}

func (m *memoryUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, user := range m.byEmail {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) List(context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(m.byEmail))
	for _, user := range m.byEmail {
		users = append(users, *user)
	}
	return users, nil
}

func (m *memoryUsers) ListIDsByManager(_ context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, user := range m.byEmail {
		if user.ManagedBy(managerID) {
			ids = append(ids, user.ID)
		}
	}
	return ids, nil
}

func (m *memoryUsers) UpdateManager(_ context.Context, userID uuid.UUID, managerID *uuid.UUID) error {
	for _, user := range m.byEmail {
		if user.ID == userID {
			user.ManagerID = managerID
			return nil
		}
	}
	return repository.ErrUserNotFound
}

var _ repository.UserRepositoryInterface = (*memoryUsers)(nil)
