package dto

import (
	"github.com/google/uuid"
)

// Create (guest maupun user login)
type CreateDonationRequest struct {
	LembagaID uuid.UUID `json:"lembaga_id" validate:"required"`
	Name      string    `json:"name" validate:"required,min=2,max=50"`
	Email     string    `json:"email" validate:"required,email"`
	AmountIDR int       `json:"amount_idr" validate:"required,gt=0"`
	Message   string    `json:"message" validate:"omitempty,max=500"`
}

// Ringkasan total donasi per lembaga
type DonationTotalsResponse struct {
	LembagaID         uuid.UUID `json:"lembaga_id"`
	TotalCompletedIDR int64     `json:"total_completed_idr"`
	CountCompleted    int64     `json:"count_completed"`
	CountPending      int64     `json:"count_pending"`
}
