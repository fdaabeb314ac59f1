package dto

import (
	"time"

	"github.com/google/uuid"

	m "lembagaku_backend/internals/features/school/classes/model"
)

/* =============== REQUESTS =============== */

type CreateClassRequest struct {
	ClassLembagaID     *uuid.UUID `json:"class_lembaga_id" validate:"omitempty"` // diisi dari token
	ClassName          string     `json:"class_name" validate:"required,min=3,max=120"`
	ClassDescription   *string    `json:"class_description" validate:"omitempty"`
	ClassFeeMonthlyIDR int        `json:"class_fee_monthly_idr" validate:"gte=0"`
}

func (r CreateClassRequest) ToModel() *m.ClassModel {
	mo := &m.ClassModel{
		ClassName:          r.ClassName,
		ClassDescription:   r.ClassDescription,
		ClassFeeMonthlyIDR: r.ClassFeeMonthlyIDR,
		ClassIsActive:      true,
	}
	if r.ClassLembagaID != nil {
		mo.ClassLembagaID = *r.ClassLembagaID
	}
	return mo
}

type UpdateClassRequest struct {
	ClassName          *string `json:"class_name" validate:"omitempty,min=3,max=120"`
	ClassDescription   *string `json:"class_description" validate:"omitempty"`
	ClassFeeMonthlyIDR *int    `json:"class_fee_monthly_idr" validate:"omitempty,gte=0"`
	ClassIsActive      *bool   `json:"class_is_active" validate:"omitempty"`
}

func (r UpdateClassRequest) ApplyTo(mo *m.ClassModel) {
	if r.ClassName != nil {
		mo.ClassName = *r.ClassName
	}
	if r.ClassDescription != nil {
		mo.ClassDescription = r.ClassDescription
	}
	if r.ClassFeeMonthlyIDR != nil {
		mo.ClassFeeMonthlyIDR = *r.ClassFeeMonthlyIDR
	}
	if r.ClassIsActive != nil {
		mo.ClassIsActive = *r.ClassIsActive
	}
}

/* =============== RESPONSES =============== */

type ClassResponse struct {
	ClassID            uuid.UUID  `json:"class_id"`
	ClassLembagaID     uuid.UUID  `json:"class_lembaga_id"`
	ClassName          string     `json:"class_name"`
	ClassSlug          string     `json:"class_slug"`
	ClassDescription   *string    `json:"class_description,omitempty"`
	ClassFeeMonthlyIDR int        `json:"class_fee_monthly_idr"`
	ClassIsActive      bool       `json:"class_is_active"`
	ClassCreatedAt     time.Time  `json:"class_created_at"`
	ClassUpdatedAt     *time.Time `json:"class_updated_at,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:            x.ClassID,
		ClassLembagaID:     x.ClassLembagaID,
		ClassName:          x.ClassName,
		ClassSlug:          x.ClassSlug,
		ClassDescription:   x.ClassDescription,
		ClassFeeMonthlyIDR: x.ClassFeeMonthlyIDR,
		ClassIsActive:      x.ClassIsActive,
		ClassCreatedAt:     x.ClassCreatedAt,
		ClassUpdatedAt:     x.ClassUpdatedAt,
	}
}

func FromModels(list []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
