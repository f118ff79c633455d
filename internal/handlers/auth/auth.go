package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/pointpay/internal/domain"
	"github.com/GlebRadaev/pointpay/internal/dto"
	"github.com/GlebRadaev/pointpay/internal/service/authservice"
	"github.com/GlebRadaev/pointpay/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	Register(ctx context.Context, cardNumber, password string) (*domain.Customer, error)
	Authenticate(ctx context.Context, cardNumber, password string) (*domain.Customer, error)
	GenerateToken(customerID int64) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new customer
//	@Description	Create a customer account bound to a loyalty card number
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Card already registered"
//	@Failure		422		{object}	utils.Response	"Invalid card number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/customer/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Card == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	customer, err := h.authService.Register(r.Context(), req.Card, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCard):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, authservice.ErrCardTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	token, err := h.authService.GenerateToken(customer.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message:    "Customer successfully registered",
		CustomerID: customer.ID,
	})
}

// Login godoc
//
//	@Summary		Authenticate customer
//	@Description	Log in with a card number and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/customer/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	customer, err := h.authService.Authenticate(r.Context(), req.Card, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.authService.GenerateToken(customer.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Customer successfully authenticated",
	})
}
