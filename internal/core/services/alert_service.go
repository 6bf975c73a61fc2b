package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"pharmastock/internal/adapters/persistence/models"
	"pharmastock/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// LowStockAlert names a medicine whose quantity dropped below the reorder
// level.
type LowStockAlert struct {
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
}

// NearExpiryAlert names a medicine expiring within the alert window.
type NearExpiryAlert struct {
	Name       *string `json:"name"`
	ExpiryDate string  `json:"expiry_date"`
}

// AlertsData is the /alerts payload
type AlertsData struct {
	LowStock   []LowStockAlert   `json:"low_stock"`
	NearExpiry []NearExpiryAlert `json:"near_expiry"`
}

// AlertService derives stock alerts from the catalog
type AlertService struct {
	medicineRepo repositories.MedicineRepository
}

// NewAlertService creates a new alert service
func NewAlertService(medicineRepo repositories.MedicineRepository) *AlertService {
	return &AlertService{medicineRepo: medicineRepo}
}

// Alerts lists low-stock rows (quantity strictly below the reorder level)
// and rows expiring within the window, expired included.
func (s *AlertService) Alerts(ctx context.Context, today time.Time) (*AlertsData, error) {
	rows, err := s.medicineRepo.ProjectStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("project stock: %w", err)
	}

	data := &AlertsData{
		LowStock:   []LowStockAlert{},
		NearExpiry: []NearExpiryAlert{},
	}
	for _, row := range rows {
		if row.Quantity != nil && *row.Quantity < LowStockThreshold {
			data.LowStock = append(data.LowStock, LowStockAlert{Name: row.Name, Quantity: row.Quantity})
		}
		if row.ExpiryDate != nil && daysUntil(today, *row.ExpiryDate) <= ExpiryWindowDays {
			data.NearExpiry = append(data.NearExpiry, NearExpiryAlert{
				Name:       row.Name,
				ExpiryDate: row.ExpiryDate.Format(models.DateLayout),
			})
		}
	}
	return data, nil
}

// AlertCron runs the daily stock alert sweep
type AlertCron struct {
	alertService *AlertService
	spec         string
	cron         *cron.Cron
}

// NewAlertCron creates the cron wrapper; spec is a standard 5-field cron
// expression.
func NewAlertCron(alertService *AlertService, spec string) *AlertCron {
	return &AlertCron{
		alertService: alertService,
		spec:         spec,
		cron:         cron.New(),
	}
}

// Start schedules the sweep and launches the cron loop
func (c *AlertCron) Start() error {
	if _, err := c.cron.AddFunc(c.spec, c.sweep); err != nil {
		return fmt.Errorf("schedule alert sweep: %w", err)
	}
	c.cron.Start()
	log.Printf("Alert sweep scheduled [%s]", c.spec)
	return nil
}

// Stop halts the cron loop; a running sweep finishes first
func (c *AlertCron) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
	log.Println("Alert sweep stopped")
}

func (c *AlertCron) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data, err := c.alertService.Alerts(ctx, time.Now())
	if err != nil {
		log.Printf("Alert sweep failed: %v", err)
		return
	}
	log.Printf("Stock alert sweep: %d low stock, %d near expiry", len(data.LowStock), len(data.NearExpiry))
}
