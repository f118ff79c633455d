package service

import (
	"time"

	"github.com/GlebRadaev/pointpay/internal/handlers/auth"
	"github.com/GlebRadaev/pointpay/internal/handlers/customer"
	"github.com/GlebRadaev/pointpay/internal/handlers/payments"
	"github.com/GlebRadaev/pointpay/internal/tier"

	pkgauth "github.com/GlebRadaev/pointpay/pkg/auth"

	"github.com/GlebRadaev/pointpay/internal/repo"
	authservice "github.com/GlebRadaev/pointpay/internal/service/authservice"
	customerservice "github.com/GlebRadaev/pointpay/internal/service/customerservice"
	paymentservice "github.com/GlebRadaev/pointpay/internal/service/paymentservice"
)

type Services struct {
	AuthService     auth.Service
	PaymentService  payments.Service
	CustomerService customer.Service
}

func New(repo *repo.Repositories, rates *tier.Table, jwtService pkgauth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	paymentService := paymentservice.New(repo.CustomerRepo, repo.ReceiptRepo, rates)
	customerService := customerservice.New(repo.CustomerRepo, repo.ReceiptRepo)
	authService := authservice.New(repo.CustomerRepo, pkgauth.NewHashService(), jwtService, tokenTTL)

	return &Services{
		AuthService:     authService,
		PaymentService:  paymentService,
		CustomerService: customerService,
	}
}
