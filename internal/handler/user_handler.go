package handler

import (
	"net/http"

	"taskflow/internal/apperror"
	"taskflow/internal/middleware"
	"taskflow/internal/respond"
	"taskflow/internal/translator"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	directory DirectoryService
	tr        *translator.Translator
}

func NewUserHandler(directory DirectoryService, tr *translator.Translator) *UserHandler {
	return &UserHandler{directory: directory, tr: tr}
}

// CurrentUser returns the acting user and the name of its manager
func (h *UserHandler) CurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respond.Error(c, h.tr, apperror.ErrUnauthenticated)
		return
	}

	resp := CurrentUserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}

	manager, err := h.directory.GetManager(c.Request.Context(), user.ID)
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}
	if manager != nil {
		resp.ManagerName = &manager.Name
	}

	c.JSON(http.StatusOK, gin.H{"user": resp})
}

// GetUsers lists every known user
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.directory.ListUsers(c.Request.Context())
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": toUserResponses(users)})
}

// SelectManager sets the acting user's manager. A missing or null manager_id clears it.
func (h *UserHandler) SelectManager(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respond.Error(c, h.tr, apperror.ErrUnauthenticated)
		return
	}

	var req SelectManagerRequest
	if err := bindJSON(c, &req); err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	managerID, err := parseOptionalUUID(req.ManagerID, apperror.ErrManagerNotFound)
	if err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	if err := h.directory.SetManager(c.Request.Context(), user.ID, managerID); err != nil {
		respond.Error(c, h.tr, err)
		return
	}

	respond.Message(c, h.tr, http.StatusOK, apperror.MsgManagerUpdated)
}
