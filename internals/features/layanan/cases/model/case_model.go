package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Jenis layanan keagamaan yang bisa diajukan warga
type CaseType string

const (
	CaseNikah   CaseType = "nikah"
	CaseJanazah CaseType = "janazah"
	CaseAqiqah  CaseType = "aqiqah"
	CaseKhitan  CaseType = "khitan"
	CaseQurban  CaseType = "qurban"
	CaseCeramah CaseType = "ceramah"
)

type CaseStatus string

const (
	CaseSubmitted CaseStatus = "submitted"
	CaseScheduled CaseStatus = "scheduled"
	CaseCompleted CaseStatus = "completed"
	CaseCanceled  CaseStatus = "canceled"
)

type CaseModel struct {
	CaseID uuid.UUID `gorm:"column:case_id;type:uuid;default:gen_random_uuid();primaryKey" json:"case_id"`

	CaseLembagaID uuid.UUID `gorm:"column:case_lembaga_id;type:uuid;not null;index" json:"case_lembaga_id"`
	CaseUserID    uuid.UUID `gorm:"column:case_user_id;type:uuid;not null;index" json:"case_user_id"`

	CaseType        CaseType `gorm:"column:case_type;type:varchar(20);not null" json:"case_type"`
	CaseTitle       string   `gorm:"column:case_title;type:varchar(120);not null" json:"case_title"`
	CaseDescription string   `gorm:"column:case_description;type:text" json:"case_description"`

	CaseStatus      CaseStatus `gorm:"column:case_status;type:varchar(20);not null;default:'submitted'" json:"case_status"`
	CaseScheduledAt *time.Time `gorm:"column:case_scheduled_at" json:"case_scheduled_at,omitempty"`
	CaseLocation    *string    `gorm:"column:case_location;type:text" json:"case_location,omitempty"`

	CaseFeeIDR int `gorm:"column:case_fee_idr;not null;default:0;check:case_fee_idr >= 0" json:"case_fee_idr"`

	// Penanda bebas untuk pencarian internal (mis. "urgent", "luar-kota")
	CaseTags pq.StringArray `gorm:"column:case_tags;type:text[]" json:"case_tags,omitempty"`

	CaseCreatedAt time.Time      `gorm:"column:case_created_at;autoCreateTime" json:"case_created_at"`
	CaseUpdatedAt *time.Time     `gorm:"column:case_updated_at;autoUpdateTime" json:"case_updated_at,omitempty"`
	CaseDeletedAt gorm.DeletedAt `gorm:"column:case_deleted_at;index" json:"case_deleted_at,omitempty"`
}

func (CaseModel) TableName() string {
	return "layanan_cases"
}

func ValidCaseType(t CaseType) bool {
	switch t {
	case CaseNikah, CaseJanazah, CaseAqiqah, CaseKhitan, CaseQurban, CaseCeramah:
		return true
	}
	return false
}

func ValidCaseStatus(s CaseStatus) bool {
	switch s {
	case CaseSubmitted, CaseScheduled, CaseCompleted, CaseCanceled:
		return true
	}
	return false
}
