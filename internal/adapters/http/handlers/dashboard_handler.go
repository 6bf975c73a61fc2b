package handlers

import (
	"time"

	"pharmastock/internal/core/services"
	"pharmastock/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the dashboard counters and alerts endpoints
type DashboardHandler struct {
	inventoryService *services.InventoryService
	alertService     *services.AlertService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(inventoryService *services.InventoryService, alertService *services.AlertService) *DashboardHandler {
	return &DashboardHandler{
		inventoryService: inventoryService,
		alertService:     alertService,
	}
}

// Stats returns the dashboard counters
// @Summary Dashboard stats
// @Description Totals plus expiring-soon and low-stock counts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Router /dashboard-stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.inventoryService.Stats(c.Context(), time.Now())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute dashboard stats")
	}
	return c.JSON(stats)
}

// Alerts returns the low-stock and near-expiry medicine lists
// @Summary Stock alerts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} services.AlertsData
// @Router /alerts [get]
func (h *DashboardHandler) Alerts(c *fiber.Ctx) error {
	data, err := h.alertService.Alerts(c.Context(), time.Now())
	if err != nil {
		return response.InternalServerError(c, "Error fetching alerts")
	}
	return c.JSON(data)
}
