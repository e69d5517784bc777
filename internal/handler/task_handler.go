package handler

import (
	"net/http"

	"taskflow/internal/apperror"
	"taskflow/internal/filter"
	"taskflow/internal/middleware"
	"taskflow/internal/model"
	"taskflow/internal/respond"
	"taskflow/internal/translator"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks TaskService
	tr    *translator.Translator
}

func NewTaskHandler(tasks TaskService, tr *translator.Translator) *TaskHandler {
	return &TaskHandler{tasks: tasks, tr: tr}
}

// actingUser aborts with 401 when no user was resolved for the request.
func (h *TaskHandler) actingUser(c *gin.Context) (*model.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respond.Abort(c, h.tr, apperror.ErrUnauthenticated)
	}
	return user, ok
}

// List returns every task
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.ListTasks(c.Request.Context())
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": toTaskResponses(tasks)})
}

// Create stores a task owned by the acting user
func (h *TaskHandler) Create(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := bindJSON(c, &req); err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	in, err := req.toInput()
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), user.ID, in)
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	c.JSON(http.StatusCreated, TaskCreatedResponse{TaskID: task.ID})
}

// View returns one task with its comments
func (h *TaskHandler) View(c *gin.Context) {
	id, err := taskIDParam(c)
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	task, err := h.tasks.GetTask(c.Request.Context(), id)
	if err != nil {
		respond.Abort(c, h.tr, err)
		return
	}

	comments, err := h.tasks.ListComments(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, TaskDetailResponse{
		Task:     toTaskResponse(*task),
		Comments: toCommentResponses(comments),
	})
}

// Edit applies a partial update. Only the creator or the creator's manager may edit.
func (h *TaskHandler) Edit(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}

	id, err := taskIDParam(c)
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	var req EditTaskRequest
	if err := bindJSON(c, &req); err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	patch, err := req.toPatch()
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	if err := h.tasks.EditTask(c.Request.Context(), user.ID, id, patch); err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	respond.Message(c, h.tr, http.StatusOK, apperror.MsgTaskUpdated)
}

// Delete removes a task. Only the creator or the creator's manager may delete.
func (h *TaskHandler) Delete(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}

	id, err := taskIDParam(c)
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	if err := h.tasks.DeleteTask(c.Request.Context(), user.ID, id); err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	respond.Message(c, h.tr, http.StatusOK, apperror.MsgTaskDeleted)
}

// Filter returns the tasks matching every provided criterion
func (h *TaskHandler) Filter(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}

	var criteria filter.Criteria
	if err := bindJSON(c, &criteria); err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	tasks, err := h.tasks.FilterTasks(c.Request.Context(), user.ID, criteria)
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": toTaskResponses(tasks)})
}

func (h *TaskHandler) AddComment(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}

	id, err := taskIDParam(c)
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	var req AddCommentRequest
	if err := bindJSON(c, &req); err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	if _, err := h.tasks.AddComment(c.Request.Context(), user.ID, id, req.Comment); err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	respond.Message(c, h.tr, http.StatusCreated, apperror.MsgCommentAdded)
}

// GetComments lists comments oldest first
func (h *TaskHandler) GetComments(c *gin.Context) {
	id, err := taskIDParam(c)
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	comments, err := h.tasks.ListComments(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": toCommentResponses(comments)})
}
