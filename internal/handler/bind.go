package handler

import (
	"errors"
	"io"
	"strconv"

	"taskflow/internal/apperror"

	"github.com/gin-gonic/gin"
)

// bindJSON treats an empty body as an empty object.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return apperror.ErrInvalidPayload.Wrap(err)
	}
	return nil
}

func taskIDParam(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		return 0, apperror.ErrInvalidTaskID
	}
	return id, nil
}
