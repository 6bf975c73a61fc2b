package config

import (
	"log"

	"pharmastock/internal/adapters/persistence/models"
	"pharmastock/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("Running database seeders...")

	if err := s.seedUsers(); err != nil {
		log.Printf("User seeder skipped: %v", err)
	}
	if err := s.seedCategories(); err != nil {
		log.Printf("Category seeder skipped: %v", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// seedUsers seeds the default admin and stock_admin accounts. Signup only
// creates admin users, so stock_admin accounts are provisioned here.
// For development/testing only; in production create accounts through a
// secure process.
func (s *Seeder) seedUsers() error {
	var count int64
	s.db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	adminPass, err := password.Hash("admin123456")
	if err != nil {
		return err
	}
	stockPass, err := password.Hash("stock123456")
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "Administrator", Role: models.RoleAdmin, Email: "admin@pharmacy.local", Password: adminPass},
		{Name: "Stock Admin", Role: models.RoleStockAdmin, Email: "stock@pharmacy.local", Password: stockPass},
	}

	if err := s.db.Create(&users).Error; err != nil {
		return err
	}

	log.Println("Seeded default admin and stock_admin accounts")
	return nil
}

// seedCategories seeds starter medicine categories
func (s *Seeder) seedCategories() error {
	var count int64
	s.db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	str := func(v string) *string { return &v }
	categories := []models.Category{
		{CategoryName: str("Analgesic"), Description: str("Pain relief medicines")},
		{CategoryName: str("Antibiotic"), Description: str("Bacterial infection treatment")},
		{CategoryName: str("Antihistamine"), Description: str("Allergy relief medicines")},
		{CategoryName: str("Antacid"), Description: str("Digestive and acidity relief")},
	}

	if err := s.db.Create(&categories).Error; err != nil {
		return err
	}

	log.Println("Seeded starter categories")
	return nil
}
