package handlers

import (
	"pharmastock/internal/core/domain"
	"pharmastock/internal/core/services"
	"pharmastock/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReferenceHandler handles the suppliers and categories endpoints
type ReferenceHandler struct {
	referenceService *services.ReferenceService
}

// NewReferenceHandler creates a new reference data handler
func NewReferenceHandler(referenceService *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// ListSuppliers returns all suppliers
// @Summary List suppliers
// @Tags Reference
// @Produce json
// @Success 200 {array} models.Supplier
// @Router /suppliers [get]
func (h *ReferenceHandler) ListSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.referenceService.ListSuppliers(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list suppliers")
	}
	return c.JSON(suppliers)
}

// AddSupplier creates a supplier (admin only)
// @Summary Add supplier
// @Tags Reference
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /suppliers [post]
func (h *ReferenceHandler) AddSupplier(c *fiber.Ctx) error {
	var input services.SupplierInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.referenceService.AddSupplier(c.Context(), &input); err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.MissingFields(c, ve.Missing)
		}
		return response.InternalServerError(c, "Error adding supplier")
	}

	return response.Message(c, fiber.StatusCreated, "Supplier added")
}

// ListCategories returns all categories
// @Summary List categories
// @Tags Reference
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func (h *ReferenceHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.referenceService.ListCategories(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list categories")
	}
	return c.JSON(categories)
}
