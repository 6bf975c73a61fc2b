package repositories

import (
	"context"

	"pharmastock/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// supplierRepository implements SupplierRepository interface
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

// List returns all suppliers ordered by id
func (r *supplierRepository) List(ctx context.Context) ([]*models.Supplier, error) {
	var suppliers []*models.Supplier
	err := r.db.WithContext(ctx).Order("supplier_id").Find(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Create inserts a new supplier
func (r *supplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}
