package post

import (
	"github.com/go-playground/validator/v10"
)

// Body fields are pointers so that "absent" and "empty" stay distinguishable:
// `validate:"required"` on a pointer only checks presence.

// ------------------------------------------------------------

type ListPostsPayload struct{}

func (p *ListPostsPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

type GetPostPayload struct {
	ID string `param:"id" validate:"required"`
}

func (p *GetPostPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ------------------------------------------------------------

// CreatePostPayload fields are declared in the order they are reported
// when missing.
type CreatePostPayload struct {
	Title   *string `json:"title" validate:"required,min=1"`
	Content *string `json:"content" validate:"required"`
	Author  *string `json:"author" validate:"required"`
}

func (p *CreatePostPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ------------------------------------------------------------

// UpdatePostPayload carries the path id separately from the body id; the
// two are compared by the service, not here.
type UpdatePostPayload struct {
	Title   *string `json:"title" validate:"required,min=1"`
	Content *string `json:"content" validate:"required"`
	ID      *string `json:"id" validate:"required"`
	PathID  string  `param:"id" json:"-" validate:"required"`
}

func (p *UpdatePostPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ------------------------------------------------------------

type DeletePostPayload struct {
	ID string `param:"id" validate:"required"`
}

func (p *DeletePostPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
