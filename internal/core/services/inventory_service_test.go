package services

import (
	"context"
	"testing"
	"time"

	"pharmastock/internal/adapters/persistence/models"
	"pharmastock/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func validMedicineInput() *MedicineInput {
	return &MedicineInput{
		Name:        strPtr("Paracetamol"),
		BatchNumber: strPtr("B-100"),
		ExpiryDate:  strPtr("2027-06-30"),
		Quantity:    intPtr(50),
		SupplierID:  uintPtr(1),
		CategoryID:  uintPtr(2),
		Price:       floatPtr(4.5),
	}
}

func TestInventoryService_Create_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MedicineInput)
		missing []string
	}{
		{
			name:    "missing price",
			mutate:  func(in *MedicineInput) { in.Price = nil },
			missing: []string{"price"},
		},
		{
			name: "missing several fields keeps declaration order",
			mutate: func(in *MedicineInput) {
				in.BatchNumber = nil
				in.Quantity = nil
				in.Name = nil
			},
			missing: []string{"name", "batch_number", "quantity"},
		},
		{
			name: "everything missing",
			mutate: func(in *MedicineInput) {
				*in = MedicineInput{}
			},
			missing: []string{"name", "batch_number", "expiry_date", "quantity", "supplier_id", "category_id", "price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMedicineRepository)
			svc := NewInventoryService(mockRepo)

			input := validMedicineInput()
			tt.mutate(input)

			_, err := svc.Create(context.Background(), input)

			verr, ok := domain.AsValidationError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.missing, verr.Missing)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestInventoryService_Create(t *testing.T) {
	t.Run("successful create parses the expiry and returns the new id", func(t *testing.T) {
		mockRepo := new(MockMedicineRepository)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Medicine) bool {
			return m.Name != nil && *m.Name == "Paracetamol" &&
				m.ExpiryDate != nil && m.ExpiryDate.Format(models.DateLayout) == "2027-06-30"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Medicine).MedicineID = 42
		}).Return(nil)

		svc := NewInventoryService(mockRepo)
		id, err := svc.Create(context.Background(), validMedicineInput())

		assert.NoError(t, err)
		assert.Equal(t, uint(42), id)
		mockRepo.AssertExpectations(t)
	})

	t.Run("malformed expiry date", func(t *testing.T) {
		mockRepo := new(MockMedicineRepository)
		svc := NewInventoryService(mockRepo)

		input := validMedicineInput()
		input.ExpiryDate = strPtr("30/06/2027")

		_, err := svc.Create(context.Background(), input)

		assert.ErrorIs(t, err, domain.ErrBadExpiryDate)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate batch number", func(t *testing.T) {
		mockRepo := new(MockMedicineRepository)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		svc := NewInventoryService(mockRepo)
		_, err := svc.Create(context.Background(), validMedicineInput())

		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("dangling supplier reference", func(t *testing.T) {
		mockRepo := new(MockMedicineRepository)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrForeignKeyViolated)

		svc := NewInventoryService(mockRepo)
		_, err := svc.Create(context.Background(), validMedicineInput())

		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestInventoryService_Update(t *testing.T) {
	t.Run("omitted fields overwrite with NULL", func(t *testing.T) {
		mockRepo := new(MockMedicineRepository)
		mockRepo.On("Update", mock.Anything, uint(5), mock.MatchedBy(func(fields map[string]interface{}) bool {
			name, _ := fields["name"].(*string)
			qty, _ := fields["quantity"].(*int)
			price, _ := fields["price"].(*float64)
			return len(fields) == 7 &&
				name != nil && *name == "Ibuprofen" &&
				qty != nil && *qty == 3 &&
				price == nil // absent from input, still written (as NULL)
		})).Return(int64(1), nil)

		svc := NewInventoryService(mockRepo)
		err := svc.Update(context.Background(), 5, &MedicineInput{
			Name:     strPtr("Ibuprofen"),
			Quantity: intPtr(3),
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo := new(MockMedicineRepository)
		mockRepo.On("Update", mock.Anything, uint(999), mock.Anything).Return(int64(0), nil)

		svc := NewInventoryService(mockRepo)
		err := svc.Update(context.Background(), 999, validMedicineInput())

		assert.ErrorIs(t, err, domain.ErrMedicineNotFound)
	})

	t.Run("malformed expiry rejected before touching the repo", func(t *testing.T) {
		mockRepo := new(MockMedicineRepository)
		svc := NewInventoryService(mockRepo)

		err := svc.Update(context.Background(), 5, &MedicineInput{ExpiryDate: strPtr("not-a-date")})

		assert.ErrorIs(t, err, domain.ErrBadExpiryDate)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestInventoryService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		mockRepo := new(MockMedicineRepository)
		mockRepo.On("Delete", mock.Anything, uint(5)).Return(int64(1), nil)

		svc := NewInventoryService(mockRepo)
		assert.NoError(t, svc.Delete(context.Background(), 5))
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo := new(MockMedicineRepository)
		mockRepo.On("Delete", mock.Anything, uint(999)).Return(int64(0), nil)

		svc := NewInventoryService(mockRepo)
		assert.ErrorIs(t, svc.Delete(context.Background(), 999), domain.ErrMedicineNotFound)
	})
}

func TestInventoryService_Search(t *testing.T) {
	mockRepo := new(MockMedicineRepository)
	mockRepo.On("Search", mock.Anything, "para").Return([]*models.Medicine{
		{
			MedicineID: 1,
			Name:       strPtr("Paracetamol"),
			ExpiryDate: timePtr(time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC)),
		},
	}, nil)

	svc := NewInventoryService(mockRepo)
	results, err := svc.Search(context.Background(), "para")

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Paracetamol", *results[0].Name)
	assert.Equal(t, "2027-06-30", *results[0].ExpiryDate)
}

func TestInventoryService_Search_EmptyQueryMatchesAll(t *testing.T) {
	mockRepo := new(MockMedicineRepository)
	mockRepo.On("Search", mock.Anything, "").Return([]*models.Medicine{
		{MedicineID: 1}, {MedicineID: 2},
	}, nil)

	svc := NewInventoryService(mockRepo)
	results, err := svc.Search(context.Background(), "")

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	mockRepo.AssertExpectations(t)
}

func TestInventoryService_Stats(t *testing.T) {
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rows     []*models.StockProjection
		expected DashboardStats
	}{
		{
			name:     "empty catalog",
			rows:     nil,
			expected: DashboardStats{},
		},
		{
			name: "null expiry and null quantity excluded from counters",
			rows: []*models.StockProjection{
				{Name: strPtr("A")},
			},
			expected: DashboardStats{Total: 1},
		},
		{
			name: "expiring inside the 30-day window",
			rows: []*models.StockProjection{
				{Name: strPtr("A"), ExpiryDate: timePtr(today.AddDate(0, 0, 10)), Quantity: intPtr(100)},
				{Name: strPtr("B"), ExpiryDate: timePtr(today.AddDate(0, 0, 31)), Quantity: intPtr(100)},
			},
			expected: DashboardStats{Total: 2, ExpiringSoon: 1},
		},
		{
			name: "already expired still counts as expiring soon",
			rows: []*models.StockProjection{
				{Name: strPtr("A"), ExpiryDate: timePtr(today.AddDate(0, 0, -5)), Quantity: intPtr(100)},
			},
			expected: DashboardStats{Total: 1, ExpiringSoon: 1},
		},
		{
			name: "low stock at and below the threshold",
			rows: []*models.StockProjection{
				{Name: strPtr("A"), ExpiryDate: timePtr(today.AddDate(1, 0, 0)), Quantity: intPtr(10)},
				{Name: strPtr("B"), ExpiryDate: timePtr(today.AddDate(1, 0, 0)), Quantity: intPtr(11)},
				{Name: strPtr("C"), ExpiryDate: timePtr(today.AddDate(1, 0, 0)), Quantity: intPtr(0)},
			},
			expected: DashboardStats{Total: 3, LowStock: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMedicineRepository)
			mockRepo.On("ProjectStock", mock.Anything).Return(tt.rows, nil)

			svc := NewInventoryService(mockRepo)
			stats, err := svc.Stats(context.Background(), today)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, *stats)
		})
	}
}

func TestInventoryService_Stats_WindowCountsCalendarDays(t *testing.T) {
	// The window is defined on dates; the wall-clock time of the request
	// must not pull day 31 into it.
	today := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	mockRepo := new(MockMedicineRepository)
	mockRepo.On("ProjectStock", mock.Anything).Return([]*models.StockProjection{
		{Name: strPtr("A"), ExpiryDate: timePtr(time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)), Quantity: intPtr(100)}, // 31 days out
		{Name: strPtr("B"), ExpiryDate: timePtr(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)), Quantity: intPtr(100)}, // 30 days out
	}, nil)

	svc := NewInventoryService(mockRepo)
	stats, err := svc.Stats(context.Background(), today)

	assert.NoError(t, err)
	assert.Equal(t, DashboardStats{Total: 2, ExpiringSoon: 1}, *stats)
}
