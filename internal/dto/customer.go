package dto

type BalanceResponseDTO struct {
	CustomerID int64 `json:"customer_id" example:"3423432"`
	Point      int64 `json:"point" example:"26000"`
}
