package dto

import (
	"time"

	"github.com/google/uuid"

	m "lembagaku_backend/internals/features/finance/spp/model"
)

/* =============== REQUESTS =============== */

// Create (admin mencatat pembayaran manual/transfer)
type CreateSppPaymentRequest struct {
	SppPaymentLembagaID    *uuid.UUID `json:"spp_payment_lembaga_id" validate:"omitempty"` // diisi dari token
	SppPaymentEnrollmentID uuid.UUID  `json:"spp_payment_enrollment_id" validate:"required"`

	SppPaymentMonth int16 `json:"spp_payment_month" validate:"required,min=1,max=12"`      // 1..12
	SppPaymentYear  int16 `json:"spp_payment_year"  validate:"required,gte=2000,lte=2100"` // 2000..2100

	SppPaymentAmountDueIDR  int `json:"spp_payment_amount_due_idr" validate:"gte=0"`
	SppPaymentAmountPaidIDR int `json:"spp_payment_amount_paid_idr" validate:"gte=0"`

	SppPaymentPaidAt *time.Time `json:"spp_payment_paid_at" validate:"omitempty"`
	SppPaymentMethod *string    `json:"spp_payment_method" validate:"omitempty,max=50"`
	SppPaymentNote   *string    `json:"spp_payment_note" validate:"omitempty"`
}

func (r CreateSppPaymentRequest) ToModel() *m.SppPaymentModel {
	mo := &m.SppPaymentModel{
		SppPaymentEnrollmentID:  r.SppPaymentEnrollmentID,
		SppPaymentMonth:         r.SppPaymentMonth,
		SppPaymentYear:          r.SppPaymentYear,
		SppPaymentAmountDueIDR:  r.SppPaymentAmountDueIDR,
		SppPaymentAmountPaidIDR: r.SppPaymentAmountPaidIDR,
		SppPaymentPaidAt:        r.SppPaymentPaidAt,
		SppPaymentMethod:        r.SppPaymentMethod,
		SppPaymentNote:          r.SppPaymentNote,
	}
	if r.SppPaymentLembagaID != nil {
		mo.SppPaymentLembagaID = *r.SppPaymentLembagaID
	}
	mo.RecomputeStatus()
	return mo
}

// Update (partial)
type UpdateSppPaymentRequest struct {
	SppPaymentAmountDueIDR  *int       `json:"spp_payment_amount_due_idr" validate:"omitempty,gte=0"`
	SppPaymentAmountPaidIDR *int       `json:"spp_payment_amount_paid_idr" validate:"omitempty,gte=0"`
	SppPaymentPaidAt        *time.Time `json:"spp_payment_paid_at" validate:"omitempty"`
	SppPaymentMethod        *string    `json:"spp_payment_method" validate:"omitempty,max=50"`
	SppPaymentNote          *string    `json:"spp_payment_note" validate:"omitempty"`
}

// Terapkan perubahan ke model existing (untuk PATCH); status dihitung ulang.
func (r UpdateSppPaymentRequest) ApplyTo(mo *m.SppPaymentModel) {
	if r.SppPaymentAmountDueIDR != nil {
		mo.SppPaymentAmountDueIDR = *r.SppPaymentAmountDueIDR
	}
	if r.SppPaymentAmountPaidIDR != nil {
		mo.SppPaymentAmountPaidIDR = *r.SppPaymentAmountPaidIDR
	}
	if r.SppPaymentPaidAt != nil {
		mo.SppPaymentPaidAt = r.SppPaymentPaidAt
	}
	if r.SppPaymentMethod != nil {
		mo.SppPaymentMethod = r.SppPaymentMethod
	}
	if r.SppPaymentNote != nil {
		mo.SppPaymentNote = r.SppPaymentNote
	}
	mo.RecomputeStatus()
}

/* =============== RESPONSES =============== */

type SppPaymentResponse struct {
	SppPaymentID           uuid.UUID `json:"spp_payment_id"`
	SppPaymentLembagaID    uuid.UUID `json:"spp_payment_lembaga_id"`
	SppPaymentEnrollmentID uuid.UUID `json:"spp_payment_enrollment_id"`

	SppPaymentMonth int16 `json:"spp_payment_month"`
	SppPaymentYear  int16 `json:"spp_payment_year"`

	SppPaymentAmountDueIDR  int `json:"spp_payment_amount_due_idr"`
	SppPaymentAmountPaidIDR int `json:"spp_payment_amount_paid_idr"`

	SppPaymentStatus  m.SppPaymentStatus `json:"spp_payment_status"`
	SppPaymentPaidAt  *time.Time         `json:"spp_payment_paid_at,omitempty"`
	SppPaymentMethod  *string            `json:"spp_payment_method,omitempty"`
	SppPaymentOrderID *string            `json:"spp_payment_order_id,omitempty"`
	SppPaymentNote    *string            `json:"spp_payment_note,omitempty"`

	SppPaymentCreatedAt time.Time  `json:"spp_payment_created_at"`
	SppPaymentUpdatedAt *time.Time `json:"spp_payment_updated_at,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.SppPaymentModel) SppPaymentResponse {
	return SppPaymentResponse{
		SppPaymentID:            x.SppPaymentID,
		SppPaymentLembagaID:     x.SppPaymentLembagaID,
		SppPaymentEnrollmentID:  x.SppPaymentEnrollmentID,
		SppPaymentMonth:         x.SppPaymentMonth,
		SppPaymentYear:          x.SppPaymentYear,
		SppPaymentAmountDueIDR:  x.SppPaymentAmountDueIDR,
		SppPaymentAmountPaidIDR: x.SppPaymentAmountPaidIDR,
		SppPaymentStatus:        x.SppPaymentStatus,
		SppPaymentPaidAt:        x.SppPaymentPaidAt,
		SppPaymentMethod:        x.SppPaymentMethod,
		SppPaymentOrderID:       x.SppPaymentOrderID,
		SppPaymentNote:          x.SppPaymentNote,
		SppPaymentCreatedAt:     x.SppPaymentCreatedAt,
		SppPaymentUpdatedAt:     x.SppPaymentUpdatedAt,
	}
}

func FromModels(list []m.SppPaymentModel) []SppPaymentResponse {
	out := make([]SppPaymentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
