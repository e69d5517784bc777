package handler

import (
	"strings"
	"time"

	"taskflow/internal/apperror"
	"taskflow/internal/model"
	"taskflow/internal/optional"
	"taskflow/internal/service"

	"github.com/google/uuid"
)

// Accepted deadline layouts, tried in order. Values without a zone are read as UTC.
var deadlineLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// UserResponse is the public view of a directory user
type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	ManagerID *string `json:"manager_id"`
}

// CurrentUserResponse is the acting user with the display name of its manager
type CurrentUserResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	ManagerName *string `json:"manager_name"`
}

type TaskResponse struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	AssignedTo  *string `json:"assigned_to"`
	CreatedBy   string  `json:"created_by"`
	Deadline    *string `json:"deadline"`
	CreatedOn   string  `json:"created_on"`
}

type CommentResponse struct {
	ID        uint64 `json:"id"`
	TaskID    uint64 `json:"task_id"`
	Comment   string `json:"comment"`
	CreatedBy string `json:"created_by"`
	CreatedOn string `json:"created_on"`
}

// CreateTaskRequest is the body of POST /create_task
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	AssignedTo  *string `json:"assigned_to"`
	Deadline    *string `json:"deadline"`
}

// EditTaskRequest distinguishes omitted fields from explicit nulls. A null or empty
// assigned_to unassigns, a null or empty deadline clears it.
type EditTaskRequest struct {
	Title       optional.Value[string] `json:"title,omitzero"`
	Description optional.Value[string] `json:"description,omitzero"`
	Status      optional.Value[string] `json:"status,omitzero"`
	AssignedTo  optional.Value[string] `json:"assigned_to,omitzero"`
	Deadline    optional.Value[string] `json:"deadline,omitzero"`
}

type SelectManagerRequest struct {
	ManagerID *string `json:"manager_id"`
}

type AddCommentRequest struct {
	Comment string `json:"comment"`
}

type TaskCreatedResponse struct {
	TaskID uint64 `json:"task_id"`
}

type TaskDetailResponse struct {
	Task     TaskResponse      `json:"task"`
	Comments []CommentResponse `json:"comments"`
}

func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		ManagerID: uuidString(u.ManagerID),
	}
}

func toUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toTaskResponse(t model.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		AssignedTo:  uuidString(t.AssignedTo),
		CreatedBy:   t.CreatedBy.String(),
		CreatedOn:   t.CreatedOn.UTC().Format(time.RFC3339),
	}
	if t.Deadline != nil {
		deadline := t.Deadline.UTC().Format(time.RFC3339)
		resp.Deadline = &deadline
	}
	return resp
}

func toTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}

func toCommentResponses(comments []model.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentResponse{
			ID:        c.ID,
			TaskID:    c.TaskID,
			Comment:   c.Body,
			CreatedBy: c.CreatedBy.String(),
			CreatedOn: c.CreatedOn.UTC().Format(time.RFC3339),
		})
	}
	return out
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func parseDeadline(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperror.ErrInvalidDeadline
}

// parseOptionalUUID returns nil for nil or blank input.
func parseOptionalUUID(raw *string, invalid *apperror.Error) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, invalid.Wrap(err)
	}
	return &id, nil
}

func (r CreateTaskRequest) toInput() (service.CreateTaskInput, error) {
	assignee, err := parseOptionalUUID(r.AssignedTo, apperror.ErrInvalidAssignee)
	if err != nil {
		return service.CreateTaskInput{}, err
	}

	in := service.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      model.TaskStatus(strings.TrimSpace(r.Status)),
		AssignedTo:  assignee,
	}
	if r.Deadline != nil && strings.TrimSpace(*r.Deadline) != "" {
		deadline, err := parseDeadline(*r.Deadline)
		if err != nil {
			return service.CreateTaskInput{}, err
		}
		in.Deadline = &deadline
	}
	return in, nil
}

func (r EditTaskRequest) toPatch() (service.TaskPatch, error) {
	patch := service.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
	}

	if r.Status.IsSet() {
		patch.Status = optional.Of(model.TaskStatus(strings.TrimSpace(r.Status.Or(""))))
	}

	if r.AssignedTo.IsSet() {
		raw, _ := r.AssignedTo.Get()
		assignee, err := parseOptionalUUID(&raw, apperror.ErrInvalidAssignee)
		if err != nil {
			return service.TaskPatch{}, err
		}
		if assignee == nil {
			patch.AssignedTo = optional.Null[uuid.UUID]()
		} else {
			patch.AssignedTo = optional.Of(*assignee)
		}
	}

	if r.Deadline.IsSet() {
		raw, _ := r.Deadline.Get()
		if strings.TrimSpace(raw) == "" {
			patch.Deadline = optional.Null[time.Time]()
		} else {
			deadline, err := parseDeadline(raw)
			if err != nil {
				return service.TaskPatch{}, err
			}
			patch.Deadline = optional.Of(deadline)
		}
	}

	return patch, nil
}
