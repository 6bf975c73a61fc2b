package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"pharmastock/internal/adapters/persistence/models"
	"pharmastock/internal/adapters/persistence/repositories"
)

// csvHeader is the fixed stock report header
var csvHeader = []string{"ID", "Name", "Batch", "Quantity", "Supplier", "Price"}

// ReportService derives the CSV stock snapshot
type ReportService struct {
	medicineRepo repositories.MedicineRepository
}

// NewReportService creates a new report service
func NewReportService(medicineRepo repositories.MedicineRepository) *ReportService {
	return &ReportService{medicineRepo: medicineRepo}
}

// StockReportCSV renders the catalog as CSV, one line per medicine ordered
// by id. Fields with embedded commas or quotes are quoted.
func (s *ReportService) StockReportCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.medicineRepo.ListReportRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list report rows: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(reportRecord(row)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func reportRecord(row *models.ReportRow) []string {
	return []string{
		strconv.FormatUint(uint64(row.MedicineID), 10),
		strOrEmpty(row.Name),
		strOrEmpty(row.BatchNumber),
		intOrEmpty(row.Quantity),
		strOrEmpty(row.Supplier),
		priceOrEmpty(row.Price),
	}
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func priceOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
