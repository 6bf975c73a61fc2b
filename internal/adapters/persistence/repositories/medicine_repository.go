package repositories

import (
	"context"

	"pharmastock/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

const medicineJoinSelect = "medicines.medicine_id, medicines.name, medicines.batch_number, " +
	"medicines.expiry_date, medicines.quantity, medicines.supplier_id, medicines.category_id, " +
	"medicines.price, suppliers.name AS supplier_name, categories.category_name"

// medicineRepository implements MedicineRepository interface
type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository creates a new medicine repository
func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("medicines").
		Select(medicineJoinSelect).
		Joins("LEFT JOIN suppliers ON medicines.supplier_id = suppliers.supplier_id").
		Joins("LEFT JOIN categories ON medicines.category_id = categories.category_id")
}

// ListViews returns the full catalog with joined names, ordered by id
func (r *medicineRepository) ListViews(ctx context.Context) ([]*models.MedicineJoinRow, error) {
	var rows []*models.MedicineJoinRow
	err := r.joined(ctx).Order("medicines.medicine_id").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListInStockViews returns only rows with quantity > 0, ordered by name
func (r *medicineRepository) ListInStockViews(ctx context.Context) ([]*models.MedicineJoinRow, error) {
	var rows []*models.MedicineJoinRow
	err := r.joined(ctx).
		Where("medicines.quantity > 0").
		Order("medicines.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new medicine row
func (r *medicineRepository) Create(ctx context.Context, medicine *models.Medicine) error {
	return r.db.WithContext(ctx).Create(medicine).Error
}

// Update replaces the named columns of one row. Fields absent from the
// request arrive here as nil and overwrite with NULL.
func (r *medicineRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Medicine{}).
		Where("medicine_id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// Delete removes one row by id
func (r *medicineRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("medicine_id = ?", id).Delete(&models.Medicine{})
	return res.RowsAffected, res.Error
}

// Search matches name or batch_number case-insensitively. An empty query
// matches every row.
func (r *medicineRepository) Search(ctx context.Context, query string) ([]*models.Medicine, error) {
	var rows []*models.Medicine
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR batch_number ILIKE ?", pattern, pattern).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ProjectStock returns the name/expiry/quantity projection for counters
func (r *medicineRepository) ProjectStock(ctx context.Context) ([]*models.StockProjection, error) {
	var rows []*models.StockProjection
	err := r.db.WithContext(ctx).
		Table("medicines").
		Select("name, expiry_date, quantity").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListReportRows returns the stock report projection ordered by id
func (r *medicineRepository) ListReportRows(ctx context.Context) ([]*models.ReportRow, error) {
	var rows []*models.ReportRow
	err := r.db.WithContext(ctx).
		Table("medicines").
		Select("medicines.medicine_id, medicines.name, medicines.batch_number, "+
			"medicines.quantity, suppliers.name AS supplier, medicines.price").
		Joins("LEFT JOIN suppliers ON medicines.supplier_id = suppliers.supplier_id").
		Order("medicines.medicine_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
