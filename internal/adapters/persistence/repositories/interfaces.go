package repositories

import (
	"context"

	"pharmastock/internal/adapters/persistence/models"
)

// UserRepository defines user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// MedicineRepository defines medicine data access
type MedicineRepository interface {
	ListViews(ctx context.Context) ([]*models.MedicineJoinRow, error)
	ListInStockViews(ctx context.Context) ([]*models.MedicineJoinRow, error)
	Create(ctx context.Context, medicine *models.Medicine) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	Search(ctx context.Context, query string) ([]*models.Medicine, error)
	ProjectStock(ctx context.Context) ([]*models.StockProjection, error)
	ListReportRows(ctx context.Context) ([]*models.ReportRow, error)
}

// SupplierRepository defines supplier data access
type SupplierRepository interface {
	List(ctx context.Context) ([]*models.Supplier, error)
	Create(ctx context.Context, supplier *models.Supplier) error
}

// CategoryRepository defines category data access
type CategoryRepository interface {
	List(ctx context.Context) ([]*models.Category, error)
}
