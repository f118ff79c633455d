package paymentservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/pointpay/internal/domain"
	"github.com/GlebRadaev/pointpay/internal/tier"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

// Directory resolves customers. A missing customer is reported as nil, nil.
type Directory interface {
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type ReceiptRepo interface {
	Save(ctx context.Context, customerID int64, receipt domain.Receipt) (*domain.ReceiptRecord, error)
}

type Service struct {
	directory Directory
	receipts  ReceiptRepo
	rates     *tier.Table
}

func New(directory Directory, receipts ReceiptRepo, rates *tier.Table) *Service {
	return &Service{
		directory: directory,
		receipts:  receipts,
		rates:     rates,
	}
}

// Messages are part of the API: callers match on the text as well as on errors.Is.
var (
	ErrCustomerNotFound = errors.New("Not found customer") //nolint:stylecheck
	ErrInvalidAmount    = errors.New("Invalid amount")     //nolint:stylecheck
)

// Pay credits the customer with floor(amount * rate) points and returns the
// receipt. Nothing is stored or credited when it fails.
func (s *Service) Pay(ctx context.Context, amount int64, customerID int64) (*domain.Receipt, error) {
	customer, err := s.directory.FindByID(ctx, customerID)
	if err != nil {
		zap.L().Error("failed to find customer", zap.Int64("customerID", customerID), zap.Error(err))
		return nil, err
	}
	if customer == nil {
		zap.L().Info("customer not found", zap.Int64("customerID", customerID))
		return nil, fmt.Errorf("%w: %d", ErrCustomerNotFound, customerID)
	}

	if amount < 0 {
		zap.L().Info("invalid amount", zap.Int64("customerID", customerID), zap.Int64("amount", amount))
		return nil, fmt.Errorf("%w %d for customer %d", ErrInvalidAmount, amount, customerID)
	}

	rate := s.rates.Rate(amount)
	receipt := domain.Receipt{
		Amount:    amount,
		PointRate: rate,
		Point:     tier.Points(amount, rate),
	}

	if _, err := s.receipts.Save(ctx, customerID, receipt); err != nil {
		zap.L().Error("failed to save receipt", zap.Int64("customerID", customerID), zap.Error(err))
		return nil, err
	}
	balance := customer.AddPoint(receipt.Point)

	zap.L().Info("payment processed",
		zap.Int64("customerID", customerID),
		zap.Int64("amount", amount),
		zap.Stringer("pointRate", rate),
		zap.Int64("point", receipt.Point),
		zap.Int64("balance", balance),
	)
	return &receipt, nil
}

// PointRate is the rate Pay would apply to amount.
func (s *Service) PointRate(amount int64) decimal.Decimal {
	return s.rates.Rate(amount)
}
