package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`

	// Tenant (NOT NULL)
	ClassLembagaID uuid.UUID `gorm:"column:class_lembaga_id;type:uuid;not null;index:idx_classes_lembaga" json:"class_lembaga_id"`

	ClassName        string  `gorm:"column:class_name;type:varchar(120);not null" json:"class_name"`
	ClassSlug        string  `gorm:"column:class_slug;type:varchar(160);not null" json:"class_slug"`
	ClassDescription *string `gorm:"column:class_description;type:text" json:"class_description,omitempty"`

	// SPP bulanan default untuk kelas ini (bisa dioverride per enrollment)
	ClassFeeMonthlyIDR int `gorm:"column:class_fee_monthly_idr;not null;default:0;check:class_fee_monthly_idr >= 0" json:"class_fee_monthly_idr"`

	ClassIsActive bool `gorm:"column:class_is_active;not null;default:true" json:"class_is_active"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt *time.Time     `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at,omitempty"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
