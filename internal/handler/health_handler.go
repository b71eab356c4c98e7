// internal/handler/health_handler.go
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/database"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/service"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/utils"
)

// HealthHandler handles health and readiness endpoints
type HealthHandler struct {
	db           *database.Connection
	printService *service.PrintService
	wsHandler    *WebSocketHandler
	version      string
	startedAt    time.Time
	logger       *utils.ServiceLogger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(
	db *database.Connection,
	printService *service.PrintService,
	wsHandler *WebSocketHandler,
	version string,
	logger *zap.Logger,
) *HealthHandler {
	return &HealthHandler{
		db:           db,
		printService: printService,
		wsHandler:    wsHandler,
		version:      version,
		startedAt:    time.Now(),
		logger:       utils.NewServiceLogger(logger, "health-handler"),
	}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)
	router.GET("/health/printer", h.PrinterHealth)
}

// Health reports overall service health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := "healthy"
	checks := gin.H{}

	if err := h.db.HealthCheck(ctx); err != nil {
		status = "degraded"
		checks["database"] = gin.H{"status": "down", "error": err.Error()}
	} else {
		stats := h.db.GetStats()
		checks["database"] = gin.H{
			"status":           "up",
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
		}
	}

	checks["websocket"] = gin.H{
		"connections": h.wsHandler.ConnectionCount(),
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	utils.SuccessResponse(c, code, "Health check", gin.H{
		"status":  status,
		"version": h.version,
		"uptime":  time.Since(h.startedAt).String(),
		"checks":  checks,
	})
}

// PrinterHealth checks printer reachability over the configured channel
func (h *HealthHandler) PrinterHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.printService.PingPrinter(ctx); err != nil {
		h.logger.Warn("printer health check failed", zap.Error(err))
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "PRINTER_UNREACHABLE",
			"Printer is not reachable", err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Printer is reachable", nil)
}
