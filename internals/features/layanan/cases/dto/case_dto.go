package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "lembagaku_backend/internals/features/layanan/cases/model"
)

/* =============== REQUESTS =============== */

// Pengajuan layanan oleh user login
type CreateCaseRequest struct {
	CaseLembagaID   uuid.UUID  `json:"case_lembaga_id" validate:"required"`
	CaseType        m.CaseType `json:"case_type" validate:"required,oneof=nikah janazah aqiqah khitan qurban ceramah"`
	CaseTitle       string     `json:"case_title" validate:"required,min=3,max=120"`
	CaseDescription string     `json:"case_description" validate:"omitempty,max=2000"`
	CaseLocation    *string    `json:"case_location" validate:"omitempty,max=500"`
}

func (r CreateCaseRequest) ToModel(userID uuid.UUID) *m.CaseModel {
	return &m.CaseModel{
		CaseLembagaID:   r.CaseLembagaID,
		CaseUserID:      userID,
		CaseType:        r.CaseType,
		CaseTitle:       r.CaseTitle,
		CaseDescription: r.CaseDescription,
		CaseStatus:      m.CaseSubmitted,
		CaseLocation:    r.CaseLocation,
	}
}

// Update oleh admin: penjadwalan, tarif, status, tag
type UpdateCaseRequest struct {
	CaseStatus      *m.CaseStatus `json:"case_status" validate:"omitempty,oneof=submitted scheduled completed canceled"`
	CaseScheduledAt *time.Time    `json:"case_scheduled_at" validate:"omitempty"`
	CaseLocation    *string       `json:"case_location" validate:"omitempty,max=500"`
	CaseFeeIDR      *int          `json:"case_fee_idr" validate:"omitempty,gte=0"`
	CaseTags        *[]string     `json:"case_tags" validate:"omitempty,dive,max=30"`
}

func (r UpdateCaseRequest) ApplyTo(mo *m.CaseModel) {
	if r.CaseStatus != nil {
		mo.CaseStatus = *r.CaseStatus
	}
	if r.CaseScheduledAt != nil {
		mo.CaseScheduledAt = r.CaseScheduledAt
	}
	if r.CaseLocation != nil {
		mo.CaseLocation = r.CaseLocation
	}
	if r.CaseFeeIDR != nil {
		mo.CaseFeeIDR = *r.CaseFeeIDR
	}
	if r.CaseTags != nil {
		mo.CaseTags = pq.StringArray(*r.CaseTags)
	}
}

/* =============== RESPONSES =============== */

type CaseResponse struct {
	CaseID        uuid.UUID `json:"case_id"`
	CaseLembagaID uuid.UUID `json:"case_lembaga_id"`
	CaseUserID    uuid.UUID `json:"case_user_id"`

	CaseType        m.CaseType `json:"case_type"`
	CaseTitle       string     `json:"case_title"`
	CaseDescription string     `json:"case_description,omitempty"`

	CaseStatus      m.CaseStatus `json:"case_status"`
	CaseScheduledAt *time.Time   `json:"case_scheduled_at,omitempty"`
	CaseLocation    *string      `json:"case_location,omitempty"`
	CaseFeeIDR      int          `json:"case_fee_idr"`
	CaseTags        []string     `json:"case_tags,omitempty"`

	CaseCreatedAt time.Time  `json:"case_created_at"`
	CaseUpdatedAt *time.Time `json:"case_updated_at,omitempty"`
}

func FromModel(x m.CaseModel) CaseResponse {
	return CaseResponse{
		CaseID:          x.CaseID,
		CaseLembagaID:   x.CaseLembagaID,
		CaseUserID:      x.CaseUserID,
		CaseType:        x.CaseType,
		CaseTitle:       x.CaseTitle,
		CaseDescription: x.CaseDescription,
		CaseStatus:      x.CaseStatus,
		CaseScheduledAt: x.CaseScheduledAt,
		CaseLocation:    x.CaseLocation,
		CaseFeeIDR:      x.CaseFeeIDR,
		CaseTags:        []string(x.CaseTags),
		CaseCreatedAt:   x.CaseCreatedAt,
		CaseUpdatedAt:   x.CaseUpdatedAt,
	}
}

func FromModels(list []m.CaseModel) []CaseResponse {
	out := make([]CaseResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
