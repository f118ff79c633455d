package customerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/pointpay/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockCustomerRepo, *MockReceiptRepo) {
	ctrl := gomock.NewController(t)
	customerRepo := NewMockCustomerRepo(ctrl)
	receiptRepo := NewMockReceiptRepo(ctrl)
	service := New(customerRepo, receiptRepo)
	return service, customerRepo, receiptRepo
}

func TestGetCustomer(t *testing.T) {
	service, customerRepo, _ := NewMock(t)
	customer := domain.RestoreCustomer(1, "4561261212345467", "hash", 1500, time.Now())

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.Customer
		expectedError error
	}{
		{
			name: "Customer found",
			prepareMock: func() {
				customerRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(customer, nil)
			},
			expected: customer,
		},
		{
			name: "Customer missing",
			prepareMock: func() {
				customerRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedError: ErrCustomerNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				customerRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.GetCustomer(context.Background(), 1)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Same(t, tt.expected, result)
			assert.Equal(t, int64(1500), result.Point())
		})
	}
}

func TestGetReceipts(t *testing.T) {
	service, _, receiptRepo := NewMock(t)
	records := []domain.ReceiptRecord{
		{
			ID:         uuid.New(),
			CustomerID: 1,
			Amount:     10_000,
			PointRate:  decimal.RequireFromString("0.1"),
			Point:      1_000,
			PaidAt:     time.Now(),
		},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.ReceiptRecord
		expectedError error
	}{
		{
			name: "Receipts found",
			prepareMock: func() {
				receiptRepo.EXPECT().FindByCustomerID(gomock.Any(), int64(1)).Return(records, nil)
			},
			expected: records,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				receiptRepo.EXPECT().FindByCustomerID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.GetReceipts(context.Background(), 1)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
