package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles known to the system
const (
	RoleAdmin      = "admin"
	RoleStockAdmin = "stock_admin"
)

// DateLayout is the wire format for expiry dates.
const DateLayout = "2006-01-02"

// ============================================================
// Auth
// ============================================================

// User represents the users table. Signup always creates admin-role
// accounts; stock_admin users are provisioned by the seeder.
type User struct {
	UserID   uint   `gorm:"column:user_id;primaryKey" json:"user_id"`
	Name     string `gorm:"column:name;size:100;not null" json:"name"`
	Role     string `gorm:"column:role;size:20;not null" json:"role"`
	Email    string `gorm:"column:email;size:100;uniqueIndex;not null" json:"email"`
	Password string `gorm:"column:password;size:255;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// ============================================================
// Inventory
// ============================================================

// Medicine represents the medicines table. Every non-key column is
// nullable: the update endpoint is a full-row replace and omitted fields
// overwrite with NULL, so the schema has to tolerate that.
type Medicine struct {
	MedicineID  uint       `gorm:"column:medicine_id;primaryKey" json:"medicine_id"`
	Name        *string    `gorm:"column:name;size:100" json:"name"`
	BatchNumber *string    `gorm:"column:batch_number;size:50" json:"batch_number"`
	ExpiryDate  *time.Time `gorm:"column:expiry_date;type:date" json:"-"`
	Quantity    *int       `gorm:"column:quantity;check:quantity >= 0" json:"quantity"`
	SupplierID  *uint      `gorm:"column:supplier_id" json:"supplier_id"`
	CategoryID  *uint      `gorm:"column:category_id" json:"category_id"`
	Price       *float64   `gorm:"column:price;type:numeric(10,2);check:price >= 0" json:"price"`
}

func (Medicine) TableName() string {
	return "medicines"
}

// MedicineResponse is the raw-row DTO (no joined names), used by search.
type MedicineResponse struct {
	MedicineID  uint     `json:"medicine_id"`
	Name        *string  `json:"name"`
	BatchNumber *string  `json:"batch_number"`
	ExpiryDate  *string  `json:"expiry_date"`
	Quantity    *int     `json:"quantity"`
	SupplierID  *uint    `json:"supplier_id"`
	CategoryID  *uint    `json:"category_id"`
	Price       *float64 `json:"price"`
}

func (m *Medicine) ToResponse() *MedicineResponse {
	return &MedicineResponse{
		MedicineID:  m.MedicineID,
		Name:        m.Name,
		BatchNumber: m.BatchNumber,
		ExpiryDate:  formatDate(m.ExpiryDate),
		Quantity:    m.Quantity,
		SupplierID:  m.SupplierID,
		CategoryID:  m.CategoryID,
		Price:       m.Price,
	}
}

// MedicineJoinRow is the projection of a medicine left-joined with its
// supplier and category names. Dangling references surface as nil names.
type MedicineJoinRow struct {
	MedicineID   uint       `gorm:"column:medicine_id"`
	Name         *string    `gorm:"column:name"`
	BatchNumber  *string    `gorm:"column:batch_number"`
	ExpiryDate   *time.Time `gorm:"column:expiry_date"`
	Quantity     *int       `gorm:"column:quantity"`
	SupplierID   *uint      `gorm:"column:supplier_id"`
	SupplierName *string    `gorm:"column:supplier_name"`
	CategoryID   *uint      `gorm:"column:category_id"`
	CategoryName *string    `gorm:"column:category_name"`
	Price        *float64   `gorm:"column:price"`
}

// MedicineView is a medicine row enriched with joined display names.
type MedicineView struct {
	MedicineID   uint     `json:"medicine_id"`
	Name         *string  `json:"name"`
	BatchNumber  *string  `json:"batch_number"`
	ExpiryDate   *string  `json:"expiry_date"`
	Quantity     *int     `json:"quantity"`
	SupplierID   *uint    `json:"supplier_id"`
	SupplierName *string  `json:"supplier_name"`
	CategoryID   *uint    `json:"category_id"`
	CategoryName *string  `json:"category_name"`
	Price        *float64 `json:"price"`
}

func (r *MedicineJoinRow) ToView() *MedicineView {
	return &MedicineView{
		MedicineID:   r.MedicineID,
		Name:         r.Name,
		BatchNumber:  r.BatchNumber,
		ExpiryDate:   formatDate(r.ExpiryDate),
		Quantity:     r.Quantity,
		SupplierID:   r.SupplierID,
		SupplierName: r.SupplierName,
		CategoryID:   r.CategoryID,
		CategoryName: r.CategoryName,
		Price:        r.Price,
	}
}

// StockProjection carries just the columns the counters and alerts need.
type StockProjection struct {
	Name       *string    `gorm:"column:name"`
	ExpiryDate *time.Time `gorm:"column:expiry_date"`
	Quantity   *int       `gorm:"column:quantity"`
}

// ReportRow is one line of the stock report CSV.
type ReportRow struct {
	MedicineID  uint     `gorm:"column:medicine_id"`
	Name        *string  `gorm:"column:name"`
	BatchNumber *string  `gorm:"column:batch_number"`
	Quantity    *int     `gorm:"column:quantity"`
	Supplier    *string  `gorm:"column:supplier"`
	Price       *float64 `gorm:"column:price"`
}

// ============================================================
// Reference data
// ============================================================

// Supplier represents the suppliers table
type Supplier struct {
	SupplierID    uint    `gorm:"column:supplier_id;primaryKey" json:"supplier_id"`
	Name          *string `gorm:"column:name;size:100" json:"name"`
	ContactNumber *string `gorm:"column:contact_number;size:30" json:"contact_number"`
	Email         *string `gorm:"column:email;size:100" json:"email"`
	Address       *string `gorm:"column:address;size:255" json:"address"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// Category represents the categories table
type Category struct {
	CategoryID   uint    `gorm:"column:category_id;primaryKey" json:"category_id"`
	CategoryName *string `gorm:"column:category_name;size:100" json:"category_name"`
	Description  *string `gorm:"column:description;size:255" json:"description"`
}

func (Category) TableName() string {
	return "categories"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Supplier{},
		&Category{},
		&Medicine{},
	)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
