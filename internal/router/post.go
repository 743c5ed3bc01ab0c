package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bryanspearman/blog-v1/internal/handler"
	"github.com/bryanspearman/blog-v1/internal/model/post"
)

func registerPostRoutes(g *echo.Group, h *handler.Handlers) {
	posts := h.Post

	g.GET("", handler.Handle(posts.Handler, posts.ListPosts, http.StatusOK, &post.ListPostsPayload{}))
	g.POST("", handler.Handle(posts.Handler, posts.CreatePost, http.StatusCreated, &post.CreatePostPayload{}))
	g.GET("/:id", handler.Handle(posts.Handler, posts.GetPost, http.StatusOK, &post.GetPostPayload{}))
	g.PUT("/:id", handler.Handle(posts.Handler, posts.UpdatePost, http.StatusOK, &post.UpdatePostPayload{}))
	g.DELETE("/:id", handler.HandleNoContent(posts.Handler, posts.DeletePost, http.StatusNoContent, &post.DeletePostPayload{}))
}
