package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "lembagaku_backend/internals/features/lembaga/lembagas/model"
)

/* =============== REQUESTS =============== */

// Create (owner)
type CreateLembagaRequest struct {
	LembagaName     string         `json:"lembaga_name" validate:"required,min=3,max=120"`
	LembagaBio      *string        `json:"lembaga_bio" validate:"omitempty"`
	LembagaLocation *string        `json:"lembaga_location" validate:"omitempty"`
	LembagaSettings datatypes.JSON `json:"lembaga_settings" validate:"omitempty"`
}

func (r CreateLembagaRequest) ToModel() *m.LembagaModel {
	return &m.LembagaModel{
		LembagaName:     r.LembagaName,
		LembagaBio:      r.LembagaBio,
		LembagaLocation: r.LembagaLocation,
		LembagaSettings: r.LembagaSettings,
		LembagaIsActive: true,
	}
}

// Update (partial)
type UpdateLembagaRequest struct {
	LembagaName     *string        `json:"lembaga_name" validate:"omitempty,min=3,max=120"`
	LembagaBio      *string        `json:"lembaga_bio" validate:"omitempty"`
	LembagaLocation *string        `json:"lembaga_location" validate:"omitempty"`
	LembagaIsActive *bool          `json:"lembaga_is_active" validate:"omitempty"`
	LembagaSettings datatypes.JSON `json:"lembaga_settings" validate:"omitempty"`
}

// Terapkan perubahan ke model existing (untuk PATCH)
func (r UpdateLembagaRequest) ApplyTo(mo *m.LembagaModel) {
	if r.LembagaName != nil {
		mo.LembagaName = *r.LembagaName
	}
	if r.LembagaBio != nil {
		mo.LembagaBio = r.LembagaBio
	}
	if r.LembagaLocation != nil {
		mo.LembagaLocation = r.LembagaLocation
	}
	if r.LembagaIsActive != nil {
		mo.LembagaIsActive = *r.LembagaIsActive
	}
	if len(r.LembagaSettings) > 0 {
		mo.LembagaSettings = r.LembagaSettings
	}
}

/* =============== RESPONSES =============== */

type LembagaResponse struct {
	LembagaID       uuid.UUID      `json:"lembaga_id"`
	LembagaName     string         `json:"lembaga_name"`
	LembagaSlug     string         `json:"lembaga_slug"`
	LembagaBio      *string        `json:"lembaga_bio,omitempty"`
	LembagaLocation *string        `json:"lembaga_location,omitempty"`
	LembagaIsActive bool           `json:"lembaga_is_active"`
	LembagaSettings datatypes.JSON `json:"lembaga_settings,omitempty"`
	LembagaCreatedAt time.Time     `json:"lembaga_created_at"`
	LembagaUpdatedAt *time.Time    `json:"lembaga_updated_at,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.LembagaModel) LembagaResponse {
	return LembagaResponse{
		LembagaID:        x.LembagaID,
		LembagaName:      x.LembagaName,
		LembagaSlug:      x.LembagaSlug,
		LembagaBio:       x.LembagaBio,
		LembagaLocation:  x.LembagaLocation,
		LembagaIsActive:  x.LembagaIsActive,
		LembagaSettings:  x.LembagaSettings,
		LembagaCreatedAt: x.LembagaCreatedAt,
		LembagaUpdatedAt: x.LembagaUpdatedAt,
	}
}

func FromModels(list []m.LembagaModel) []LembagaResponse {
	out := make([]LembagaResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
