package dto

import "time"

type PaymentRequestDTO struct {
	Amount int64 `json:"amount" example:"10000"`
}

type ReceiptResponseDTO struct {
	Amount    int64   `json:"amount" example:"10000"`
	PointRate float64 `json:"point_rate" example:"0.1"`
	Point     int64   `json:"point" example:"1000"`
}

type GetReceiptsResponseDTO struct {
	ID        string    `json:"id" example:"6f1c2d8e-0b7a-4d43-9a5e-2f1f9b0c7a11"`
	Amount    int64     `json:"amount" example:"50000"`
	PointRate float64   `json:"point_rate" example:"0.5"`
	Point     int64     `json:"point" example:"25000"`
	PaidAt    time.Time `json:"paid_at" example:"2020-12-09T16:09:57+03:00"`
}
