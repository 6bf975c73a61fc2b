package handlers

import (
	"pharmastock/internal/core/services"
	"pharmastock/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles report downloads
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// StockReport streams the stock snapshot as a CSV attachment
// @Summary Stock report CSV
// @Tags Reports
// @Produce text/csv
// @Success 200 {string} string
// @Router /report/stock [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	data, err := h.reportService.StockReportCSV(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error generating stock report")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=stock_report.csv`)
	return c.Send(data)
}
