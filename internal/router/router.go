// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/bryanspearman/blog-v1/internal/handler"
	"github.com/bryanspearman/blog-v1/internal/middleware"
	"github.com/bryanspearman/blog-v1/internal/server"
)

// NewRouter builds the echo instance with the global middleware chain,
// the system routes and the post routes under server.base_path.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// "/blog-posts/" and "/blog-posts" address the same collection.
	router.Pre(echoMiddleware.RemoveTrailingSlash())

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, s, h)

	api := router.Group(s.Config.Server.BasePath, middlewares.RateLimit.Limit())
	registerPostRoutes(api, h)

	return router
}
