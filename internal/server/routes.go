package server

import (
	"github.com/verdantlab/schemaloom/internal/server/middleware"
	"github.com/verdantlab/schemaloom/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Corpus routes
	apiRoutes.POST("/corpus", routes.GenerateCorpusHandler)
	apiRoutes.GET("/corpus/runs/:run_id", routes.GetCorpusRunHandler)

	// Instruction routes
	apiRoutes.POST("/instructions", routes.GenerateInstructionsHandler)
}
