package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pharmastock/internal/adapters/persistence/models"
	"pharmastock/internal/adapters/persistence/repositories"
	"pharmastock/internal/core/domain"

	"gorm.io/gorm"
)

// Thresholds for the dashboard counters
const (
	// LowStockThreshold marks quantities at or below it as low stock
	LowStockThreshold = 10
	// ExpiryWindowDays is the near-expiry horizon
	ExpiryWindowDays = 30
)

// medicineFields is the required-field order for validation responses.
var medicineFields = []string{"name", "batch_number", "expiry_date", "quantity", "supplier_id", "category_id", "price"}

// MedicineInput is the create/update payload. Pointer fields distinguish
// absent from zero-valued.
type MedicineInput struct {
	Name        *string  `json:"name"`
	BatchNumber *string  `json:"batch_number"`
	ExpiryDate  *string  `json:"expiry_date"`
	Quantity    *int     `json:"quantity"`
	SupplierID  *uint    `json:"supplier_id"`
	CategoryID  *uint    `json:"category_id"`
	Price       *float64 `json:"price"`
}

func (in *MedicineInput) missing() []string {
	present := map[string]bool{
		"name":         in.Name != nil,
		"batch_number": in.BatchNumber != nil,
		"expiry_date":  in.ExpiryDate != nil,
		"quantity":     in.Quantity != nil,
		"supplier_id":  in.SupplierID != nil,
		"category_id":  in.CategoryID != nil,
		"price":        in.Price != nil,
	}
	var missing []string
	for _, f := range medicineFields {
		if !present[f] {
			missing = append(missing, f)
		}
	}
	return missing
}

func (in *MedicineInput) expiry() (*time.Time, error) {
	if in.ExpiryDate == nil {
		return nil, nil
	}
	t, err := time.Parse(models.DateLayout, *in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrBadExpiryDate
	}
	return &t, nil
}

// DashboardStats holds the derived dashboard counters
type DashboardStats struct {
	Total        int `json:"total"`
	ExpiringSoon int `json:"expiring_soon"`
	LowStock     int `json:"low_stock"`
}

// InventoryService handles CRUD, search, and counters over medicines
type InventoryService struct {
	medicineRepo repositories.MedicineRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(medicineRepo repositories.MedicineRepository) *InventoryService {
	return &InventoryService{medicineRepo: medicineRepo}
}

// List returns the full catalog joined with supplier/category names,
// ordered by medicine_id
func (s *InventoryService) List(ctx context.Context) ([]*models.MedicineView, error) {
	rows, err := s.medicineRepo.ListViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	return toViews(rows), nil
}

// ListInStock returns only rows with quantity > 0, ordered by name. This
// feeds the stock_admin view, where out-of-stock items are invisible.
func (s *InventoryService) ListInStock(ctx context.Context) ([]*models.MedicineView, error) {
	rows, err := s.medicineRepo.ListInStockViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list in-stock medicines: %w", err)
	}
	return toViews(rows), nil
}

// Create validates required fields and inserts the row. Uniqueness and FK
// violations from the persistence gateway surface as domain.ErrConflict.
func (s *InventoryService) Create(ctx context.Context, input *MedicineInput) (uint, error) {
	if missing := input.missing(); len(missing) > 0 {
		return 0, &domain.ValidationError{Missing: missing}
	}

	expiry, err := input.expiry()
	if err != nil {
		return 0, err
	}

	medicine := &models.Medicine{
		Name:        input.Name,
		BatchNumber: input.BatchNumber,
		ExpiryDate:  expiry,
		Quantity:    input.Quantity,
		SupplierID:  input.SupplierID,
		CategoryID:  input.CategoryID,
		Price:       input.Price,
	}

	if err := s.medicineRepo.Create(ctx, medicine); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, domain.ErrConflict
		}
		return 0, fmt.Errorf("create medicine: %w", err)
	}
	return medicine.MedicineID, nil
}

// Update is a full-row replace: every column is written, and fields absent
// from the input overwrite with NULL. This destructive partial update is
// intentional and preserved from the original system.
func (s *InventoryService) Update(ctx context.Context, id uint, input *MedicineInput) error {
	expiry, err := input.expiry()
	if err != nil {
		return err
	}

	fields := map[string]interface{}{
		"name":         input.Name,
		"batch_number": input.BatchNumber,
		"expiry_date":  expiry,
		"quantity":     input.Quantity,
		"supplier_id":  input.SupplierID,
		"category_id":  input.CategoryID,
		"price":        input.Price,
	}

	affected, err := s.medicineRepo.Update(ctx, id, fields)
	if err != nil {
		return fmt.Errorf("update medicine: %w", err)
	}
	if affected == 0 {
		return domain.ErrMedicineNotFound
	}
	return nil
}

// Delete removes the row, reporting a missing id as not found
func (s *InventoryService) Delete(ctx context.Context, id uint) error {
	affected, err := s.medicineRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	if affected == 0 {
		return domain.ErrMedicineNotFound
	}
	return nil
}

// Search matches name or batch_number case-insensitively. An empty query
// matches all rows (intentional, preserved behavior).
func (s *InventoryService) Search(ctx context.Context, query string) ([]*models.MedicineResponse, error) {
	rows, err := s.medicineRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search medicines: %w", err)
	}
	results := make([]*models.MedicineResponse, 0, len(rows))
	for _, row := range rows {
		results = append(results, row.ToResponse())
	}
	return results, nil
}

// Stats derives the dashboard counters for the given day. Rows with a null
// expiry are excluded from expiring_soon; null quantities from low_stock.
// Already-expired rows count as expiring soon, matching the original.
func (s *InventoryService) Stats(ctx context.Context, today time.Time) (*DashboardStats, error) {
	rows, err := s.medicineRepo.ProjectStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("project stock: %w", err)
	}

	stats := &DashboardStats{Total: len(rows)}
	for _, row := range rows {
		if row.ExpiryDate != nil && daysUntil(today, *row.ExpiryDate) <= ExpiryWindowDays {
			stats.ExpiringSoon++
		}
		if row.Quantity != nil && *row.Quantity <= LowStockThreshold {
			stats.LowStock++
		}
	}
	return stats, nil
}

// daysUntil counts calendar days, so the clock time on either side never
// shifts the boundary.
func daysUntil(today, expiry time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}

func toViews(rows []*models.MedicineJoinRow) []*models.MedicineView {
	views := make([]*models.MedicineView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.ToView())
	}
	return views
}
