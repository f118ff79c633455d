package customer

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/pointpay/internal/domain"
	"github.com/GlebRadaev/pointpay/internal/dto"
	"github.com/GlebRadaev/pointpay/internal/service/customerservice"
	"github.com/GlebRadaev/pointpay/pkg/auth"
	"github.com/GlebRadaev/pointpay/pkg/utils"
)

//go:generate mockgen -source=customer.go -destination=mock_customer.go -package=customer

type Service interface {
	GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error)
	GetReceipts(ctx context.Context, customerID int64) ([]domain.ReceiptRecord, error)
}

type CustomerHandler struct {
	customerService Service
}

func New(customerService Service) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get customer points
//	@Description	Retrieve the loyalty point balance of the authenticated customer.
//	@Tags			Customer
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current points"
//	@Failure		401	{object}	utils.Response			"Customer not authorized"
//	@Failure		404	{object}	utils.Response			"Customer not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/customer/balance [get]
func (h *CustomerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	customerID, ok := auth.CustomerID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	customer, err := h.customerService.GetCustomer(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, customerservice.ErrCustomerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		CustomerID: customer.ID,
		Point:      customer.Point(),
	})
}

// GetReceipts godoc
//
//	@Summary		List receipts
//	@Description	Retrieve every receipt of the authenticated customer, newest first.
//	@Tags			Customer
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetReceiptsResponseDTO	"Receipts"
//	@Success		204	{string}	string						"No receipts"
//	@Failure		401	{object}	utils.Response				"Customer not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/customer/receipts [get]
func (h *CustomerHandler) GetReceipts(w http.ResponseWriter, r *http.Request) {
	customerID, ok := auth.CustomerID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	receipts, err := h.customerService.GetReceipts(r.Context(), customerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(receipts) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	resp := make([]dto.GetReceiptsResponseDTO, 0, len(receipts))
	for _, rec := range receipts {
		resp = append(resp, dto.GetReceiptsResponseDTO{
			ID:        rec.ID.String(),
			Amount:    rec.Amount,
			PointRate: rec.PointRate.InexactFloat64(),
			Point:     rec.Point,
			PaidAt:    rec.PaidAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
