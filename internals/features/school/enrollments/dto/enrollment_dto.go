package dto

import (
	"time"

	"github.com/google/uuid"

	m "lembagaku_backend/internals/features/school/enrollments/model"
)

/* =============== REQUESTS =============== */

type CreateEnrollmentRequest struct {
	EnrollmentLembagaID *uuid.UUID `json:"enrollment_lembaga_id" validate:"omitempty"` // diisi dari token
	EnrollmentClassID   uuid.UUID  `json:"enrollment_class_id" validate:"required"`
	EnrollmentUserID    uuid.UUID  `json:"enrollment_user_id" validate:"required"`

	EnrollmentStartedAt *time.Time `json:"enrollment_started_at" validate:"omitempty"`
	EnrollmentEndedAt   *time.Time `json:"enrollment_ended_at" validate:"omitempty"`

	EnrollmentFeeOverrideMonthlyIDR *int `json:"enrollment_fee_override_monthly_idr" validate:"omitempty,gte=0"`
}

func (r CreateEnrollmentRequest) ToModel() *m.EnrollmentModel {
	mo := &m.EnrollmentModel{
		EnrollmentClassID:               r.EnrollmentClassID,
		EnrollmentUserID:                r.EnrollmentUserID,
		EnrollmentStartedAt:             r.EnrollmentStartedAt,
		EnrollmentEndedAt:               r.EnrollmentEndedAt,
		EnrollmentFeeOverrideMonthlyIDR: r.EnrollmentFeeOverrideMonthlyIDR,
		EnrollmentStatus:                m.EnrollmentActive,
	}
	if r.EnrollmentLembagaID != nil {
		mo.EnrollmentLembagaID = *r.EnrollmentLembagaID
	}
	return mo
}

type UpdateEnrollmentRequest struct {
	EnrollmentStartedAt *time.Time `json:"enrollment_started_at" validate:"omitempty"`
	EnrollmentEndedAt   *time.Time `json:"enrollment_ended_at" validate:"omitempty"`

	EnrollmentFeeOverrideMonthlyIDR *int `json:"enrollment_fee_override_monthly_idr" validate:"omitempty,gte=0"`

	EnrollmentStatus *m.EnrollmentStatus `json:"enrollment_status" validate:"omitempty,oneof=active completed canceled"`
}

func (r UpdateEnrollmentRequest) ApplyTo(mo *m.EnrollmentModel) {
	if r.EnrollmentStartedAt != nil {
		mo.EnrollmentStartedAt = r.EnrollmentStartedAt
	}
	if r.EnrollmentEndedAt != nil {
		mo.EnrollmentEndedAt = r.EnrollmentEndedAt
	}
	if r.EnrollmentFeeOverrideMonthlyIDR != nil {
		mo.EnrollmentFeeOverrideMonthlyIDR = r.EnrollmentFeeOverrideMonthlyIDR
	}
	if r.EnrollmentStatus != nil {
		mo.EnrollmentStatus = *r.EnrollmentStatus
	}
}

/* =============== RESPONSES =============== */

type EnrollmentResponse struct {
	EnrollmentID        uuid.UUID `json:"enrollment_id"`
	EnrollmentLembagaID uuid.UUID `json:"enrollment_lembaga_id"`
	EnrollmentClassID   uuid.UUID `json:"enrollment_class_id"`
	EnrollmentUserID    uuid.UUID `json:"enrollment_user_id"`

	EnrollmentStartedAt *time.Time `json:"enrollment_started_at,omitempty"`
	EnrollmentEndedAt   *time.Time `json:"enrollment_ended_at,omitempty"`

	EnrollmentFeeOverrideMonthlyIDR *int `json:"enrollment_fee_override_monthly_idr,omitempty"`

	EnrollmentStatus    m.EnrollmentStatus `json:"enrollment_status"`
	EnrollmentCreatedAt time.Time          `json:"enrollment_created_at"`
	EnrollmentUpdatedAt *time.Time         `json:"enrollment_updated_at,omitempty"`

	// Hasil join (opsional)
	StudentName *string `json:"student_name,omitempty"`
	ClassName   *string `json:"class_name,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:                    x.EnrollmentID,
		EnrollmentLembagaID:             x.EnrollmentLembagaID,
		EnrollmentClassID:               x.EnrollmentClassID,
		EnrollmentUserID:                x.EnrollmentUserID,
		EnrollmentStartedAt:             x.EnrollmentStartedAt,
		EnrollmentEndedAt:               x.EnrollmentEndedAt,
		EnrollmentFeeOverrideMonthlyIDR: x.EnrollmentFeeOverrideMonthlyIDR,
		EnrollmentStatus:                x.EnrollmentStatus,
		EnrollmentCreatedAt:             x.EnrollmentCreatedAt,
		EnrollmentUpdatedAt:             x.EnrollmentUpdatedAt,
	}
}

func FromModels(list []m.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
