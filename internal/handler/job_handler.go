// internal/handler/job_handler.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/service"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/utils"
)

// JobHandler handles print job query endpoints
type JobHandler struct {
	printService *service.PrintService
	logger       *utils.ServiceLogger
}

// NewJobHandler creates a new job handler
func NewJobHandler(printService *service.PrintService, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		printService: printService,
		logger:       utils.NewServiceLogger(logger, "job-handler"),
	}
}

// RegisterRoutes registers job routes
func (h *JobHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/jobs", h.ListJobs)
	router.GET("/jobs/:job_id", h.GetJob)
}

// ListJobs returns print jobs ordered by creation time
func (h *JobHandler) ListJobs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	jobs, err := h.printService.ListJobs(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list jobs", zap.Error(err))
		utils.InternalErrorResponse(c, "Failed to list print jobs")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Print jobs retrieved", gin.H{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// GetJob returns a single print job
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Invalid job ID", err.Error())
		return
	}

	job, err := h.printService.GetJob(c.Request.Context(), id)
	if err != nil {
		utils.NotFoundResponse(c, "Print job")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Print job retrieved", job)
}
