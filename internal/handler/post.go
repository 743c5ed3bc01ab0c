package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bryanspearman/blog-v1/internal/errs"
	"github.com/bryanspearman/blog-v1/internal/model/post"
	"github.com/bryanspearman/blog-v1/internal/server"
	"github.com/bryanspearman/blog-v1/internal/service"
)

// PostHandler exposes the blog post collection over HTTP.
type PostHandler struct {
	Handler
	postService *service.PostService
}

func NewPostHandler(s *server.Server, postService *service.PostService) *PostHandler {
	return &PostHandler{
		Handler:     NewHandler(s),
		postService: postService,
	}
}

func (h *PostHandler) ListPosts(c echo.Context, payload *post.ListPostsPayload) ([]post.Post, error) {
	return h.postService.ListPosts(c.Request().Context(), payload), nil
}

func (h *PostHandler) GetPost(c echo.Context, payload *post.GetPostPayload) (post.Post, error) {
	p, err := h.postService.GetPost(c.Request().Context(), payload)
	if err != nil {
		return post.Post{}, translatePostError(err)
	}
	return p, nil
}

func (h *PostHandler) CreatePost(c echo.Context, payload *post.CreatePostPayload) (post.Post, error) {
	p, err := h.postService.CreatePost(c.Request().Context(), payload)
	if err != nil {
		return post.Post{}, translatePostError(err)
	}
	return p, nil
}

func (h *PostHandler) UpdatePost(c echo.Context, payload *post.UpdatePostPayload) (post.Post, error) {
	p, err := h.postService.UpdatePost(c.Request().Context(), payload)
	if err != nil {
		return post.Post{}, translatePostError(err)
	}
	return p, nil
}

func (h *PostHandler) DeletePost(c echo.Context, payload *post.DeletePostPayload) error {
	h.postService.DeletePost(c.Request().Context(), payload)
	return nil
}

// translatePostError maps domain errors onto the HTTP error envelope.
// Anything unrecognised is returned as is and rendered as a 500.
func translatePostError(err error) error {
	var validationErr *post.ValidationError
	var consistencyErr *post.ConsistencyError

	switch {
	case errors.As(err, &validationErr):
		code := errs.CodeValidation
		return errs.NewBadRequestError(validationErr.Error(), true, &code, []errs.FieldError{{
			Field: validationErr.Field,
			Error: validationReason(validationErr),
		}}, nil)

	case errors.As(err, &consistencyErr):
		code := errs.CodeIDMismatch
		return errs.NewBadRequestError(consistencyErr.Error(), true, &code, []errs.FieldError{{
			Field: "id",
			Error: "must match the request path id",
		}}, nil)

	case errors.Is(err, post.ErrNotFound):
		code := errs.CodeNotFound
		return errs.NewNotFoundError("Post not found", true, &code)
	}

	return err
}

func validationReason(err *post.ValidationError) string {
	if err.Reason != "" {
		return err.Reason
	}
	return "is required"
}
