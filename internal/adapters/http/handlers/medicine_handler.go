package handlers

import (
	"errors"
	"strconv"

	"pharmastock/internal/core/domain"
	"pharmastock/internal/core/services"
	"pharmastock/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MedicineHandler handles the medicines endpoints
type MedicineHandler struct {
	inventoryService *services.InventoryService
}

// NewMedicineHandler creates a new medicine handler
func NewMedicineHandler(inventoryService *services.InventoryService) *MedicineHandler {
	return &MedicineHandler{inventoryService: inventoryService}
}

// List returns the full catalog
// @Summary List medicines
// @Description Full catalog with joined supplier/category names, ordered by id
// @Tags Medicines
// @Produce json
// @Success 200 {array} models.MedicineView
// @Router /medicines [get]
func (h *MedicineHandler) List(c *fiber.Ctx) error {
	views, err := h.inventoryService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list medicines")
	}
	return c.JSON(views)
}

// ListInStock returns only rows with quantity > 0
// @Summary List in-stock medicines
// @Description Catalog filtered to quantity > 0, ordered by name
// @Tags Medicines
// @Produce json
// @Success 200 {array} models.MedicineView
// @Router /medicines-in-stock [get]
func (h *MedicineHandler) ListInStock(c *fiber.Ctx) error {
	views, err := h.inventoryService.ListInStock(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list medicines")
	}
	return c.JSON(views)
}

// Create adds a medicine (admin only)
// @Summary Add medicine
// @Tags Medicines
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /medicines [post]
func (h *MedicineHandler) Create(c *fiber.Ctx) error {
	var input services.MedicineInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if _, err := h.inventoryService.Create(c.Context(), &input); err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.MissingFields(c, ve.Missing)
		}
		switch {
		case errors.Is(err, domain.ErrBadExpiryDate):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrConflict):
			return response.Conflict(c, "Medicine conflicts with existing data")
		default:
			return response.InternalServerError(c, "Error adding medicine")
		}
	}

	return response.Message(c, fiber.StatusCreated, "Medicine added successfully")
}

// Update replaces a medicine row (admin only). Omitted fields overwrite
// with null.
// @Summary Update medicine
// @Tags Medicines
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /medicines/{id} [put]
func (h *MedicineHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid medicine id")
	}

	var input services.MedicineInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.inventoryService.Update(c.Context(), id, &input); err != nil {
		switch {
		case errors.Is(err, domain.ErrMedicineNotFound):
			return response.NotFound(c, "Medicine not found")
		case errors.Is(err, domain.ErrBadExpiryDate):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Error updating medicine")
		}
	}

	return response.Message(c, fiber.StatusOK, "Medicine updated successfully")
}

// Delete removes a medicine row (admin only)
// @Summary Delete medicine
// @Tags Medicines
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /medicines/{id} [delete]
func (h *MedicineHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid medicine id")
	}

	if err := h.inventoryService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMedicineNotFound) {
			return response.NotFound(c, "Medicine not found")
		}
		return response.InternalServerError(c, "Error deleting medicine")
	}

	return response.Message(c, fiber.StatusOK, "Medicine deleted successfully")
}

// Search matches medicines by name or batch number. An empty q matches
// every row.
// @Summary Search medicines
// @Tags Medicines
// @Produce json
// @Param q query string false "substring of name or batch number"
// @Success 200 {array} models.MedicineResponse
// @Router /search [get]
func (h *MedicineHandler) Search(c *fiber.Ctx) error {
	results, err := h.inventoryService.Search(c.Context(), c.Query("q"))
	if err != nil {
		return response.InternalServerError(c, "Error searching medicines")
	}
	return c.JSON(results)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
