// internal/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/config"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/handler"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/middleware"
)

// Handlers bundles the HTTP handlers for route registration
type Handlers struct {
	Print     *handler.PrintHandler
	Job       *handler.JobHandler
	Health    *handler.HealthHandler
	WebSocket *handler.WebSocketHandler
}

// Setup configures the gin engine with middleware and routes
func Setup(cfg *config.Config, logger *zap.Logger, h *Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.CORSMiddleware(&cfg.Security))

	api := router.Group("/api/v1")
	h.Print.RegisterRoutes(api)
	h.Job.RegisterRoutes(api)
	h.Health.RegisterRoutes(api)

	ws := router.Group("/ws")
	h.WebSocket.RegisterRoutes(ws)

	return router
}
