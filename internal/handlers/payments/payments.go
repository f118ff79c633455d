package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/pointpay/internal/domain"
	"github.com/GlebRadaev/pointpay/internal/dto"
	"github.com/GlebRadaev/pointpay/internal/service/paymentservice"
	"github.com/GlebRadaev/pointpay/pkg/auth"
	"github.com/GlebRadaev/pointpay/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments

type Service interface {
	Pay(ctx context.Context, amount int64, customerID int64) (*domain.Receipt, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Pay godoc
//
//	@Summary		Pay and earn points
//	@Description	Record a payment for the authenticated customer and credit loyalty points at the tier rate for the amount.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentRequestDTO	true	"Payment request payload"
//	@Success		200		{object}	dto.ReceiptResponseDTO	"Receipt"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Customer not authorized"
//	@Failure		404		{object}	utils.Response			"Customer not found"
//	@Failure		422		{object}	utils.Response			"Invalid amount"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/customer/payments [post]
func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	customerID, ok := auth.CustomerID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipt, err := h.paymentService.Pay(r.Context(), req.Amount, customerID)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, paymentservice.ErrCustomerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			zap.L().Error("payment failed", zap.Int64("customer_id", customerID), zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ReceiptResponseDTO{
		Amount:    receipt.Amount,
		PointRate: receipt.PointRate.InexactFloat64(),
		Point:     receipt.Point,
	})
}
