package main

import "github.com/flamescrm/agent-platform/internal/middleware"

// buildMiddleware creates the middleware stack: request IDs, request
// logging, CORS, and trailing-slash normalization.
func (app *Application) buildMiddleware() middleware.System {
	sys := middleware.New()
	sys.Use(middleware.RequestID())
	sys.Use(middleware.Logger(app.logger))
	sys.Use(middleware.CORS(&app.config.CORS))
	sys.Use(middleware.TrimSlash())
	return sys
}
