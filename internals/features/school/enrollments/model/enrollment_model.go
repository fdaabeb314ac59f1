package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status enrollment; enum kecil biar aman saat dipakai di code
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentCanceled  EnrollmentStatus = "canceled"
)

type EnrollmentModel struct {
	// PK
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	// Tenant (NOT NULL)
	EnrollmentLembagaID uuid.UUID `gorm:"column:enrollment_lembaga_id;type:uuid;not null;index:idx_enrollments_lembaga" json:"enrollment_lembaga_id"`

	// FK kelas & siswa
	EnrollmentClassID uuid.UUID `gorm:"column:enrollment_class_id;type:uuid;not null;index:idx_enrollments_class" json:"enrollment_class_id"`
	EnrollmentUserID  uuid.UUID `gorm:"column:enrollment_user_id;type:uuid;not null;index:idx_enrollments_user" json:"enrollment_user_id"`

	// Rentang keanggotaan. Keduanya nullable: data lama bisa tanpa tanggal,
	// dan enrollment berjalan belum punya tanggal selesai.
	EnrollmentStartedAt *time.Time `gorm:"column:enrollment_started_at;type:date" json:"enrollment_started_at,omitempty"`
	EnrollmentEndedAt   *time.Time `gorm:"column:enrollment_ended_at;type:date" json:"enrollment_ended_at,omitempty"`

	// Override SPP bulanan per siswa (nullable → pakai tarif kelas)
	EnrollmentFeeOverrideMonthlyIDR *int `gorm:"column:enrollment_fee_override_monthly_idr;check:enrollment_fee_override_monthly_idr >= 0" json:"enrollment_fee_override_monthly_idr,omitempty"`

	EnrollmentStatus EnrollmentStatus `gorm:"column:enrollment_status;type:varchar(20);not null;default:active" json:"enrollment_status"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt *time.Time     `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at,omitempty"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
