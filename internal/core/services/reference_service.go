package services

import (
	"context"
	"fmt"

	"pharmastock/internal/adapters/persistence/models"
	"pharmastock/internal/adapters/persistence/repositories"
	"pharmastock/internal/core/domain"
)

// supplierFields is the required-field order for validation responses.
var supplierFields = []string{"name", "contact_number", "email", "address"}

// SupplierInput is the add-supplier payload
type SupplierInput struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
}

func (in *SupplierInput) missing() []string {
	present := map[string]bool{
		"name":           in.Name != nil,
		"contact_number": in.ContactNumber != nil,
		"email":          in.Email != nil,
		"address":        in.Address != nil,
	}
	var missing []string
	for _, f := range supplierFields {
		if !present[f] {
			missing = append(missing, f)
		}
	}
	return missing
}

// ReferenceService handles the suppliers and categories reference tables
type ReferenceService struct {
	supplierRepo repositories.SupplierRepository
	categoryRepo repositories.CategoryRepository
}

// NewReferenceService creates a new reference data service
func NewReferenceService(supplierRepo repositories.SupplierRepository, categoryRepo repositories.CategoryRepository) *ReferenceService {
	return &ReferenceService{
		supplierRepo: supplierRepo,
		categoryRepo: categoryRepo,
	}
}

// ListSuppliers returns all suppliers ordered by id
func (s *ReferenceService) ListSuppliers(ctx context.Context) ([]*models.Supplier, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}

// AddSupplier validates required fields and inserts the row
func (s *ReferenceService) AddSupplier(ctx context.Context, input *SupplierInput) error {
	if missing := input.missing(); len(missing) > 0 {
		return &domain.ValidationError{Missing: missing}
	}

	supplier := &models.Supplier{
		Name:          input.Name,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		Address:       input.Address,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

// ListCategories returns all categories ordered by id
func (s *ReferenceService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
