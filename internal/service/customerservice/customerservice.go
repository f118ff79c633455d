package customerservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/pointpay/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=customerservice.go -destination=mock_customerservice.go -package=customerservice

type CustomerRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type ReceiptRepo interface {
	FindByCustomerID(ctx context.Context, customerID int64) ([]domain.ReceiptRecord, error)
}

type Service struct {
	customerRepo CustomerRepo
	receiptRepo  ReceiptRepo
}

func New(customerRepo CustomerRepo, receiptRepo ReceiptRepo) *Service {
	return &Service{
		customerRepo: customerRepo,
		receiptRepo:  receiptRepo,
	}
}

var ErrCustomerNotFound = errors.New("customer not found")

func (s *Service) GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		zap.L().Error("failed to get customer", zap.Error(err))
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *Service) GetReceipts(ctx context.Context, customerID int64) ([]domain.ReceiptRecord, error) {
	receipts, err := s.receiptRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		zap.L().Error("failed to fetch receipts", zap.Error(err))
		return nil, err
	}
	return receipts, nil
}
