package post

import (
	"errors"
	"fmt"

	"github.com/bryanspearman/blog-v1/internal/errs"
)

// ErrNotFound is returned when an operation targets an id that is not stored.
var ErrNotFound = errors.New("post not found")

// ValidationError reports a required field that is absent from a request,
// or present but unusable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("Invalid `%s` in request body: %s", e.Field, e.Reason)
	}
	return errs.MissingFieldMessage(e.Field)
}

// ConsistencyError reports an update whose path id and body id disagree.
// The path id is authoritative; the request is rejected, not reconciled.
type ConsistencyError struct {
	PathID string
	BodyID string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("Request path id (%s) and request body id (%s) must match", e.PathID, e.BodyID)
}
