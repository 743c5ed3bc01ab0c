package router

import (
	"github.com/labstack/echo/v4"

	"github.com/bryanspearman/blog-v1/internal/handler"
	"github.com/bryanspearman/blog-v1/internal/server"
)

// registerSystemRoutes registers endpoints that are not part of the post API.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))

	// openapi.json and openapi.html.
	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
