// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/tutoring-api/internal/handler"
	"github.com/deppfellow/tutoring-api/internal/middleware"
	"github.com/deppfellow/tutoring-api/internal/server"
)

// NewRouter builds the Echo instance with the global middleware chain and
// every route registered.
//
// Order matters: the request id must exist before tracing and the context
// logger read it, and Recover sits innermost so a panic still passes
// through the request logger.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.CORS(),
		mw.Global.Secure(),
		mw.RateLimit.Limit(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerV1Routes(router.Group("/api/v1"), h, mw.Auth.RequireAuth)

	return router
}
