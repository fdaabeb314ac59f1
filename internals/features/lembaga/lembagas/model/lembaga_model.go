package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LembagaModel struct {
	LembagaID uuid.UUID `gorm:"column:lembaga_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lembaga_id"`

	LembagaName     string  `gorm:"column:lembaga_name;type:varchar(120);not null" json:"lembaga_name"`
	LembagaSlug     string  `gorm:"column:lembaga_slug;type:varchar(160);not null;uniqueIndex" json:"lembaga_slug"`
	LembagaBio      *string `gorm:"column:lembaga_bio;type:text" json:"lembaga_bio,omitempty"`
	LembagaLocation *string `gorm:"column:lembaga_location;type:text" json:"lembaga_location,omitempty"`

	LembagaIsActive bool `gorm:"column:lembaga_is_active;not null;default:true" json:"lembaga_is_active"`

	// Preferensi per tenant (jam operasional, kontak, rekening, dst)
	LembagaSettings datatypes.JSON `gorm:"column:lembaga_settings;type:jsonb" json:"lembaga_settings,omitempty"`

	LembagaCreatedAt time.Time      `gorm:"column:lembaga_created_at;autoCreateTime" json:"lembaga_created_at"`
	LembagaUpdatedAt *time.Time     `gorm:"column:lembaga_updated_at;autoUpdateTime" json:"lembaga_updated_at,omitempty"`
	LembagaDeletedAt gorm.DeletedAt `gorm:"column:lembaga_deleted_at;index" json:"lembaga_deleted_at,omitempty"`
}

func (LembagaModel) TableName() string { return "lembagas" }
