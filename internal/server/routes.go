package server

import (
	"github.com/everkept/memoria/backend/internal/server/middleware"
	"github.com/everkept/memoria/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Memorial routes
	apiRoutes.POST("/memorials", routes.CreateMemorialHandler, middleware.RequirePermission("memorial.create"))
	apiRoutes.GET("/memorials/:id", routes.GetMemorialHandler, middleware.RequirePermission("memorial.view"))
	apiRoutes.PATCH("/memorials/:id/relatives", routes.UpdateRelativesHandler, middleware.RequirePermission("memorial.update"))

	// Connection routes
	apiRoutes.POST("/memorials/:id/connections", routes.CreateConnectionHandler, middleware.RequirePermission("memorial.connect"))
	apiRoutes.POST("/connections/batch", routes.CreateConnectionBatchHandler, middleware.RequirePermission("memorial.connect"))
	apiRoutes.POST("/connections/import", routes.ImportConnectionsHandler, middleware.RequirePermission("memorial.connect"))

	// Family tree routes
	apiRoutes.GET("/memorials/:id/family-tree", routes.GetFamilyTreeHandler, middleware.RequirePermission("memorial.view"))

	// Maintenance routes
	apiRoutes.POST("/maintenance/cleanup", routes.TriggerCleanupHandler, middleware.RequirePermission("maintenance.cleanup"))
}
