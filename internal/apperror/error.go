package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the machine-readable half of an error payload.
type Code string

const (
	CodeNotFound          Code = "not_found"
	CodeUnauthorized      Code = "unauthorized"
	CodeUnauthenticated   Code = "unauthenticated"
	CodeValidation        Code = "validation_error"
	CodeInvalidFilter     Code = "invalid_filter"
	CodeInvalidAssignment Code = "invalid_assignment"
	CodeInternal          Code = "internal"
)

var codeToStatus = map[Code]int{
	CodeNotFound:          http.StatusNotFound,
	CodeUnauthorized:      http.StatusForbidden,
	CodeUnauthenticated:   http.StatusUnauthorized,
	CodeValidation:        http.StatusBadRequest,
	CodeInvalidFilter:     http.StatusBadRequest,
	CodeInvalidAssignment: http.StatusBadRequest,
	CodeInternal:          http.StatusInternalServerError,
}

// HTTPStatus maps a code to the response status. Unknown codes are 500.
func (c Code) HTTPStatus() int {
	if status, ok := codeToStatus[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error carries a Code and a translation message id. Err holds the cause, if any.
type Error struct {
	Code      Code
	MessageID string
	Err       error

	sentinel *Error
}

func New(code Code, messageID string) *Error {
	return &Error{Code: code, MessageID: messageID}
}

// Wrap returns a copy of e with cause attached. errors.Is(result, e) holds.
func (e *Error) Wrap(cause error) error {
	return &Error{Code: e.Code, MessageID: e.MessageID, Err: cause, sentinel: e}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.MessageID, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.MessageID)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return e.sentinel != nil && target == e.sentinel
}

// As extracts the *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns CodeInternal for errors outside the taxonomy.
func CodeOf(err error) Code {
	if e, ok := As(err); ok {
		return e.Code
	}
	return CodeInternal
}
