package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskflow/internal/filter"
	"taskflow/internal/handler"
	"taskflow/internal/middleware"
	"taskflow/internal/model"
	"taskflow/internal/service"
	"taskflow/internal/translator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(ctx context.Context, actingUserID uuid.UUID, in service.CreateTaskInput) (*model.Task, error) {
	args := m.Called(ctx, actingUserID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) GetTask(ctx context.Context, id uint64) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) EditTask(ctx context.Context, actingUserID uuid.UUID, id uint64, patch service.TaskPatch) error {
	args := m.Called(ctx, actingUserID, id, patch)
	return args.Error(0)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, actingUserID uuid.UUID, id uint64) error {
	args := m.Called(ctx, actingUserID, id)
	return args.Error(0)
}

func (m *MockTaskService) FilterTasks(ctx context.Context, actingUserID uuid.UUID, criteria filter.Criteria) ([]model.Task, error) {
	args := m.Called(ctx, actingUserID, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) AddComment(ctx context.Context, actingUserID uuid.UUID, taskID uint64, body string) (*model.Comment, error) {
	args := m.Called(ctx, actingUserID, taskID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockTaskService) ListComments(ctx context.Context, taskID uint64) ([]model.Comment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) GetManager(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockDirectoryService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockDirectoryService) SetManager(ctx context.Context, userID uuid.UUID, managerID *uuid.UUID) error {
	args := m.Called(ctx, userID, managerID)
	return args.Error(0)
}

type fixture struct {
	router    *gin.Engine
	tasks     *MockTaskService
	directory *MockDirectoryService
}

// setupTest mounts the routes behind a stub that resolves the acting user to user.
// A nil user leaves the request anonymous.
func setupTest(t *testing.T, user *model.User) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tr, err := translator.New()
	require.NoError(t, err)

	f := fixture{
		router:    gin.New(),
		tasks:     new(MockTaskService),
		directory: new(MockDirectoryService),
	}

	tasks := handler.NewTaskHandler(f.tasks, tr)
	users := handler.NewUserHandler(f.directory, tr)

	api := f.router.Group("/")
	api.Use(func(c *gin.Context) {
		if user != nil {
			middleware.SetCurrentUser(c, user)
		}
		c.Next()
	})
	api.GET("/current_user", users.CurrentUser)
	api.GET("/get_users", users.GetUsers)
	api.POST("/select_manager", users.SelectManager)
	api.GET("/create_task", tasks.List)
	api.POST("/create_task", tasks.Create)
	api.GET("/view_task/:task_id", tasks.View)
	api.PUT("/edit_task/:task_id", tasks.Edit)
	api.DELETE("/delete_task/:task_id", tasks.Delete)
	api.POST("/filter_tasks", tasks.Filter)
	api.POST("/add_comment/:task_id", tasks.AddComment)
	api.GET("/get_comments/:task_id", tasks.GetComments)

	return f
}

func (f fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	return resp
}
