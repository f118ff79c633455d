package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/pointpay/docs"
	authhandlers "github.com/GlebRadaev/pointpay/internal/handlers/auth"
	customerhandlers "github.com/GlebRadaev/pointpay/internal/handlers/customer"
	paymenthandlers "github.com/GlebRadaev/pointpay/internal/handlers/payments"
	"github.com/GlebRadaev/pointpay/internal/service"
	"github.com/GlebRadaev/pointpay/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Pay(w http.ResponseWriter, r *http.Request)
}

type CustomerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetReceipts(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	PaymentHandler  PaymentHandler
	CustomerHandler CustomerHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		CustomerHandler: customerhandlers.New(s.CustomerService),
		jwtService:      jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/customer", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Post("/payments", h.PaymentHandler.Pay)
			r.Get("/balance", h.CustomerHandler.GetBalance)
			r.Get("/receipts", h.CustomerHandler.GetReceipts)
		})
	})

	return r
}
