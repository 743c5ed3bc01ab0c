package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBadRequestError_DefaultAndCustomCode(t *testing.T) {
	err := NewBadRequestError("bad", false, nil, nil, nil)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)

	code := CodeIDMismatch
	err = NewBadRequestError("mismatch", true, &code, []FieldError{{Field: "id", Error: "must match"}}, nil)
	assert.Equal(t, CodeIDMismatch, err.Code)
	assert.True(t, err.Override)
	assert.Len(t, err.Errors, 1)
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("Post not found", true, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "NOT_FOUND", httpErr.Code)
}

func TestHTTPError_WithMessage(t *testing.T) {
	base := NewInternalServerError()
	copied := base.WithMessage("boom")

	assert.Equal(t, "boom", copied.Message)
	assert.Equal(t, "Internal Server Error", base.Message)
	assert.Equal(t, base.Code, copied.Code)
}

func TestNewTooManyRequestsError(t *testing.T) {
	err := NewTooManyRequestsError("Too many requests", 3)
	assert.Equal(t, "TOO_MANY_REQUESTS", err.Code)
	require.NotNil(t, err.Action)
	assert.Equal(t, ActionTypeRetry, err.Action.Type)
	assert.Equal(t, "3", err.Action.Value)
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("title is empty"))
	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, "Validation failed: title is empty", err.Message)
}

func TestMissingFieldMessage(t *testing.T) {
	assert.Equal(t, "Missing `title` in request body", MissingFieldMessage("title"))
}
