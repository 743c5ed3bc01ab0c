package errs

import (
	"fmt"
	"net/http"
	"strconv"
)

// Codes shared between the handler layer and clients.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeIDMismatch = "ID_MISMATCH"
	CodeNotFound   = "POST_NOT_FOUND"
)

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code is optional; nil defaults to "BAD_REQUEST". errors carries the
// per-field details of a failed validation.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 HTTPError carrying a retry hint.
func NewTooManyRequestsError(message string, retryAfterSeconds int) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusTooManyRequests),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: true,
		Action: &Action{
			Type:    ActionTypeRetry,
			Message: "Retry the request later",
			Value:   strconv.Itoa(retryAfterSeconds),
		},
	}
}

// NewInternalServerError creates a generic 500 HTTPError.
// The message is the status text; the real cause is only logged.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusInternalServerError),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// ValidationError converts a generic validation error into a 400 HTTPError.
func ValidationError(err error) *HTTPError {
	code := CodeValidation
	return NewBadRequestError("Validation failed: "+err.Error(), false, &code, nil, nil)
}

// MissingFieldMessage is the client-facing message for a required body
// field that was not sent.
func MissingFieldMessage(field string) string {
	return fmt.Sprintf("Missing `%s` in request body", field)
}
