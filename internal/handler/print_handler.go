// internal/handler/print_handler.go
package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/model"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/service"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/utils"
)

// PrintHandler handles print submission endpoints
type PrintHandler struct {
	printService *service.PrintService
	defaultWidth int
	logger       *utils.ServiceLogger
}

// NewPrintHandler creates a new print handler
func NewPrintHandler(printService *service.PrintService, defaultWidth int, logger *zap.Logger) *PrintHandler {
	return &PrintHandler{
		printService: printService,
		defaultWidth: defaultWidth,
		logger:       utils.NewServiceLogger(logger, "print-handler"),
	}
}

// RegisterRoutes registers print routes
func (h *PrintHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/print", h.Print)
	router.POST("/receipts", h.PrintReceipt)
	router.POST("/render", h.Render)
}

// Print renders a document and submits it to the printer
func (h *PrintHandler) Print(c *gin.Context) {
	var req model.PrintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Invalid print request", err.Error())
		return
	}

	job, err := h.printService.Print(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("print request failed", zap.Error(err))
		if job != nil {
			utils.ErrorResponse(c, http.StatusBadGateway, "DELIVERY_FAILED", err.Error(), job)
			return
		}
		utils.ValidationErrorResponse(c, "Failed to render document", err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusAccepted, "Print job accepted", job)
}

// PrintReceipt renders a structured receipt and submits it
func (h *PrintHandler) PrintReceipt(c *gin.Context) {
	var req model.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Invalid receipt request", err.Error())
		return
	}

	job, err := h.printService.PrintReceipt(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("receipt request failed", zap.Error(err))
		if job != nil {
			utils.ErrorResponse(c, http.StatusBadGateway, "DELIVERY_FAILED", err.Error(), job)
			return
		}
		utils.ValidationErrorResponse(c, "Failed to render receipt", err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusAccepted, "Receipt accepted", job)
}

// Render renders a document without delivering it. Useful for
// inspecting the generated command stream.
func (h *PrintHandler) Render(c *gin.Context) {
	var req model.PrintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Invalid print request", err.Error())
		return
	}

	order, err := service.RenderDocument(&req, h.defaultWidth)
	if err != nil {
		utils.ValidationErrorResponse(c, "Failed to render document", err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Document rendered", gin.H{
		"device_width": order.DeviceWidth(),
		"byte_count":   order.Len(),
		"buffer":       base64.StdEncoding.EncodeToString(order.Bytes()),
	})
}
