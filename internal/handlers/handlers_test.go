package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/GlebRadaev/pointpay/docs"
	"github.com/GlebRadaev/pointpay/internal/handlers/auth"
	"github.com/GlebRadaev/pointpay/internal/handlers/customer"
	"github.com/GlebRadaev/pointpay/internal/handlers/payments"
	"github.com/GlebRadaev/pointpay/internal/service"
	pkgauth "github.com/GlebRadaev/pointpay/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		AuthService:     auth.NewMockService(ctrl),
		PaymentService:  payments.NewMockService(ctrl),
		CustomerService: customer.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewMockJWTServiceInterface(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.PaymentHandler)
	assert.NotNil(t, h.CustomerHandler)
}

func newRouter(t *testing.T) (chi.Router, *pkgauth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockCustomerHandler := NewMockCustomerHandler(ctrl)
	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Pay(gomock.Any(), gomock.Any()).AnyTimes()
	mockCustomerHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockCustomerHandler.EXPECT().GetReceipts(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		PaymentHandler:  mockPaymentHandler,
		CustomerHandler: mockCustomerHandler,
		jwtService:      jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router, jwtService
}

func TestInitRoutes(t *testing.T) {
	router, _ := newRouter(t)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/customer/register", http.StatusOK},
		{"POST", "/api/customer/login", http.StatusOK},
		{"POST", "/api/customer/payments", http.StatusUnauthorized},
		{"GET", "/api/customer/balance", http.StatusUnauthorized},
		{"GET", "/api/customer/receipts", http.StatusUnauthorized},
		{"GET", "/api/customer/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_Authorized(t *testing.T) {
	router, jwtService := newRouter(t)
	jwtService.EXPECT().ValidateToken("token").Return(&pkgauth.Claims{CustomerID: 1}, nil).Times(3)

	for _, tt := range []struct {
		method string
		url    string
	}{
		{"POST", "/api/customer/payments"},
		{"GET", "/api/customer/balance"},
		{"GET", "/api/customer/receipts"},
	} {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer token")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
