package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/pointpay/internal/domain"
	"github.com/GlebRadaev/pointpay/pkg/auth"
	"github.com/GlebRadaev/pointpay/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Repo interface {
	FindByCardNumber(ctx context.Context, cardNumber string) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

var (
	ErrInvalidCard        = errors.New("invalid card number")
	ErrCardTaken          = errors.New("card number already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	customerRepo Repo
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	tokenTTL     time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		customerRepo: repo,
		hashService:  hashService,
		jwtService:   jwtService,
		tokenTTL:     tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, cardNumber, password string) (*domain.Customer, error) {
	if !validate.IsLuhn(cardNumber) {
		return nil, ErrInvalidCard
	}
	existing, err := s.customerRepo.FindByCardNumber(ctx, cardNumber)
	if err != nil {
		zap.L().Error("can't find customer", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("card already registered", zap.String("card", cardNumber))
		return nil, ErrCardTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	customer := &domain.Customer{
		CardNumber:   cardNumber,
		PasswordHash: hashedPassword,
	}
	newCustomer, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		zap.L().Error("can't create customer", zap.Error(err))
		return nil, err
	}

	zap.L().Info("customer registered", zap.Int64("customer_id", newCustomer.ID))
	return newCustomer, nil
}

func (s *Service) Authenticate(ctx context.Context, cardNumber, password string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindByCardNumber(ctx, cardNumber)
	if err != nil {
		zap.L().Error("can't find customer", zap.Error(err))
		return nil, err
	}
	if customer == nil {
		zap.L().Warn("invalid credentials", zap.String("card", cardNumber))
		return nil, ErrInvalidCredentials
	}
	if !s.hashService.ComparePassword(customer.PasswordHash, password) {
		zap.L().Warn("invalid credentials", zap.String("card", cardNumber))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("customer authenticated", zap.Int64("customer_id", customer.ID))
	return customer, nil
}

func (s *Service) GenerateToken(customerID int64) (string, error) {
	token, err := s.jwtService.GenerateJWT(customerID, time.Now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
