package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"taskflow/internal/apperror"
	"taskflow/internal/authz"
	"taskflow/internal/filter"
	"taskflow/internal/model"
	"taskflow/internal/optional"
	"taskflow/internal/repository"
	"taskflow/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	a, b, c  uuid.UUID // b manages a, c is unrelated
	users    userTable
	tasks    *MockTaskStore
	comments *MockCommentStore
	svc      *service.TaskService
}

func newFixture() *fixture {
	f := &fixture{a: uuid.New(), b: uuid.New(), c: uuid.New()}
	f.users = userTable{
		f.a: {ID: f.a, Name: "Alice", ManagerID: &f.b},
		f.b: {ID: f.b, Name: "Bob"},
		f.c: {ID: f.c, Name: "Carol"},
	}
	f.tasks = new(MockTaskStore)
	f.comments = new(MockCommentStore)
	f.svc = service.NewTaskService(f.tasks, f.comments, f.users, authz.NewEngine(f.users), filter.NewBuilder(f.users))
	return f
}

func (f *fixture) taskByA() *model.Task {
	return &model.Task{ID: 1, Title: "Draft plan", Status: model.StatusPending, CreatedBy: f.a}
}

func TestCreateTask_RecordsCreator(t *testing.T) {
	f := newFixture()
	f.tasks.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Task).ID = 9 }).
		Return(nil)

	task, err := f.svc.CreateTask(context.Background(), f.a, service.CreateTaskInput{
		Title:      "  Draft plan ",
		Status:     model.StatusPending,
		AssignedTo: &f.c,
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(9), task.ID)
	assert.Equal(t, "Draft plan", task.Title)
	assert.Equal(t, f.a, task.CreatedBy)
	assert.Equal(t, &f.c, task.AssignedTo)
}

func TestCreateTask_Validation(t *testing.T) {
	f := newFixture()
	unknown := uuid.New()

	_, err := f.svc.CreateTask(context.Background(), f.a, service.CreateTaskInput{Title: " ", Status: model.StatusPending})
	assert.ErrorIs(t, err, apperror.ErrTitleRequired)

	_, err = f.svc.CreateTask(context.Background(), f.a, service.CreateTaskInput{Title: "x"})
	assert.ErrorIs(t, err, apperror.ErrInvalidStatus)

	_, err = f.svc.CreateTask(context.Background(), f.a, service.CreateTaskInput{Title: "x", Status: "in_progress"})
	assert.ErrorIs(t, err, apperror.ErrInvalidStatus)

	_, err = f.svc.CreateTask(context.Background(), f.a, service.CreateTaskInput{Title: "x", Status: model.StatusPending, AssignedTo: &unknown})
	assert.ErrorIs(t, err, apperror.ErrInvalidAssignee)

	f.tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEditTask_ManagerOfCreatorSucceeds(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetByID", mock.Anything, uint64(1)).Return(f.taskByA(), nil)
	f.tasks.On("UpdateByCreator", mock.Anything, uint64(1), f.a, map[string]interface{}{"status": model.StatusAcknowledged}).
		Return(nil).Once()

	err := f.svc.EditTask(context.Background(), f.b, 1, service.TaskPatch{Status: optional.Of(model.StatusAcknowledged)})

	require.NoError(t, err)
	f.tasks.AssertExpectations(t)
}

func TestEditTask_UnrelatedUserIsDenied(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetByID", mock.Anything, uint64(1)).Return(f.taskByA(), nil)

	err := f.svc.EditTask(context.Background(), f.c, 1, service.TaskPatch{Status: optional.Of(model.StatusAcknowledged)})

	assert.ErrorIs(t, err, apperror.ErrNotAuthorized)
	f.tasks.AssertNotCalled(t, "UpdateByCreator", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEditTask_AnyStatusTransitionIsAllowed(t *testing.T) {
	f := newFixture()
	done := f.taskByA()
	done.Status = model.StatusCompleted
	f.tasks.On("GetByID", mock.Anything, uint64(1)).Return(done, nil)
	f.tasks.On("UpdateByCreator", mock.Anything, uint64(1), f.a, map[string]interface{}{"status": model.StatusPending}).Return(nil)

	err := f.svc.EditTask(context.Background(), f.a, 1, service.TaskPatch{Status: optional.Of(model.StatusPending)})

	assert.NoError(t, err)
}

func TestEditTask_PartialUpdateOnlyTouchesProvidedFields(t *testing.T) {
	f := newFixture()
	deadline := time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC)
	f.tasks.On("GetByID", mock.Anything, uint64(1)).Return(f.taskByA(), nil)
	f.tasks.On("UpdateByCreator", mock.Anything, uint64(1), f.a, map[string]interface{}{
		"title":       "Final plan",
		"assigned_to": nil,
		"deadline":    deadline,
	}).Return(nil).Once()

	err := f.svc.EditTask(context.Background(), f.a, 1, service.TaskPatch{
		Title:      optional.Of("Final plan"),
		AssignedTo: optional.Null[uuid.UUID](),
		Deadline:   optional.Of(deadline),
	})

	require.NoError(t, err)
	f.tasks.AssertExpectations(t)
}

func TestEditTask_EmptyPatchIsNoop(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetByID", mock.Anything, uint64(1)).Return(f.taskByA(), nil)

	err := f.svc.EditTask(context.Background(), f.a, 1, service.TaskPatch{})

	assert.NoError(t, err)
	f.tasks.AssertNotCalled(t, "UpdateByCreator", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTitleLengthLimit(t *testing.T) {
	// Arrange
	f := newFixture()
	f.tasks.On("GetByID", mock.Anything, uint64(1)).Return(f.taskByA(), nil)
	tooLong := strings.Repeat("é", model.MaxTitleLength+1)

	// Act
	_, createErr := f.svc.CreateTask(context.Background(), f.a, service.CreateTaskInput{Title: tooLong, Status: model.StatusPending})
	editErr := f.svc.EditTask(context.Background(), f.a, 1, service.TaskPatch{Title: optional.Of(tooLong)})

	// Assert
	assert.ErrorIs(t, createErr, apperror.ErrTitleTooLong)
	assert.ErrorIs(t, editErr, apperror.ErrTitleTooLong)
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(createErr))
	f.tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.tasks.AssertNotCalled(t, "UpdateByCreator", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTask_TitleAtLimit(t *testing.T) {
	f := newFixture()
	f.tasks.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)
	title := strings.Repeat("é", model.MaxTitleLength)

	task, err := f.svc.CreateTask(context.Background(), f.a, service.CreateTaskInput{Title: title, Status: model.StatusPending})

	require.NoError(t, err)
	assert.Equal(t, title, task.Title)
}

func TestEditTask_InvalidValues(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetByID", mock.Anything, uint64(1)).Return(f.taskByA(), nil)

	err := f.svc.EditTask(context.Background(), f.a, 1, service.TaskPatch{Status: optional.Of(model.TaskStatus("bogus"))})
	assert.ErrorIs(t, err, apperror.ErrInvalidStatus)

	err = f.svc.EditTask(context.Background(), f.a, 1, service.TaskPatch{Title: optional.Null[string]()})
	assert.ErrorIs(t, err, apperror.ErrTitleRequired)

	err = f.svc.EditTask(context.Background(), f.a, 1, service.TaskPatch{AssignedTo: optional.Of(uuid.New())})
	assert.ErrorIs(t, err, apperror.ErrInvalidAssignee)
}

func TestEditTask_NotFound(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetByID", mock.Anything, uint64(404)).Return(nil, repository.ErrTaskNotFound)

	err := f.svc.EditTask(context.Background(), f.a, 404, service.TaskPatch{Title: optional.Of("x")})

	assert.ErrorIs(t, err, apperror.ErrTaskNotFound)
}

func TestEditTask_RowVanishedBeforeWrite(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetByID", mock.Anything, uint64(1)).Return(f.taskByA(), nil)
	f.tasks.On("UpdateByCreator", mock.Anything, uint64(1), f.a, mock.Anything).Return(repository.ErrTaskNotFound)

	err := f.svc.EditTask(context.Background(), f.a, 1, service.TaskPatch{Title: optional.Of("x")})

	assert.ErrorIs(t, err, apperror.ErrFailedToUpdateTask)
}

func TestDeleteTask(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetByID", mock.Anything, uint64(1)).Return(f.taskByA(), nil)
	f.tasks.On("DeleteByCreator", mock.Anything, uint64(1), f.a).Return(nil).Once()

	assert.ErrorIs(t, f.svc.DeleteTask(context.Background(), f.c, 1), apperror.ErrNotAuthorized)
	assert.NoError(t, f.svc.DeleteTask(context.Background(), f.b, 1))
	f.tasks.AssertExpectations(t)
}

func TestDeleteTask_Missing(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetByID", mock.Anything, uint64(77)).Return(nil, repository.ErrTaskNotFound)

	err := f.svc.DeleteTask(context.Background(), f.a, 77)

	assert.ErrorIs(t, err, apperror.ErrTaskNotFound)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.MsgTaskNotFound, appErr.MessageID)
}

func TestFilterTasks_PassesPredicateToStore(t *testing.T) {
	f := newFixture()
	stored := []model.Task{
		{ID: 1, CreatedBy: f.a, Status: model.StatusPending},
		{ID: 2, CreatedBy: f.c, Status: model.StatusPending},
	}
	f.tasks.On("Find", mock.Anything, mock.AnythingOfType("repository.Scope")).Return(stored[:1], nil)

	tasks, err := f.svc.FilterTasks(context.Background(), f.b, filter.Criteria{Mode: optional.Of(string(filter.ModeManagedBySelf))})

	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	f.tasks.AssertExpectations(t)
}

func TestFilterTasks_InvalidFilter(t *testing.T) {
	f := newFixture()

	_, err := f.svc.FilterTasks(context.Background(), f.a, filter.Criteria{DateCreated: optional.Of("yesterday")})

	assert.ErrorIs(t, err, apperror.ErrInvalidFilter)
	f.tasks.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestAddComment_BlankBodyInsertsNothing(t *testing.T) {
	f := newFixture()

	_, err := f.svc.AddComment(context.Background(), f.a, 1, "   ")

	assert.ErrorIs(t, err, apperror.ErrCommentRequired)
	f.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddComment_RecordsAuthor(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetByID", mock.Anything, uint64(1)).Return(f.taskByA(), nil)
	f.comments.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

	comment, err := f.svc.AddComment(context.Background(), f.c, 1, "Needs a budget line")

	require.NoError(t, err)
	assert.Equal(t, uint64(1), comment.TaskID)
	assert.Equal(t, f.c, comment.CreatedBy)
	assert.Equal(t, "Needs a budget line", comment.Body)
}

func TestAddComment_UnknownTask(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetByID", mock.Anything, uint64(5)).Return(nil, repository.ErrTaskNotFound)

	_, err := f.svc.AddComment(context.Background(), f.c, 5, "hello")

	assert.ErrorIs(t, err, apperror.ErrTaskNotFound)
	f.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetTask_StoreError(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetByID", mock.Anything, uint64(1)).Return(nil, assert.AnError)

	_, err := f.svc.GetTask(context.Background(), 1)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, apperror.CodeInternal, apperror.CodeOf(err))
}
