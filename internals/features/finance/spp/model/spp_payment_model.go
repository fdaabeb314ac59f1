package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status pembayaran tercatat; enum kecil biar aman saat dipakai di code
type SppPaymentStatus string

const (
	SppUnpaid  SppPaymentStatus = "unpaid"
	SppPartial SppPaymentStatus = "partial"
	SppPaid    SppPaymentStatus = "paid"
)

// SppPaymentModel adalah source of truth uang yang benar-benar diterima
// untuk satu periode (enrollment, bulan, tahun).
type SppPaymentModel struct {
	// PK
	SppPaymentID uuid.UUID `gorm:"column:spp_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"spp_payment_id"`

	// Tenant (NOT NULL)
	SppPaymentLembagaID uuid.UUID `gorm:"column:spp_payment_lembaga_id;type:uuid;not null;index:idx_spp_payments_lembaga" json:"spp_payment_lembaga_id"`

	// FK enrollment (NOT NULL)
	SppPaymentEnrollmentID uuid.UUID `gorm:"column:spp_payment_enrollment_id;type:uuid;not null;index:idx_spp_payments_enrollment" json:"spp_payment_enrollment_id"`

	// Periode
	SppPaymentMonth int16 `gorm:"column:spp_payment_month;type:smallint;not null;check:spp_payment_month BETWEEN 1 AND 12" json:"spp_payment_month"` // 1..12
	SppPaymentYear  int16 `gorm:"column:spp_payment_year;type:smallint;not null;check:spp_payment_year BETWEEN 2000 AND 2100" json:"spp_payment_year"`

	// Nominal
	SppPaymentAmountDueIDR  int `gorm:"column:spp_payment_amount_due_idr;not null;check:spp_payment_amount_due_idr >= 0" json:"spp_payment_amount_due_idr"`
	SppPaymentAmountPaidIDR int `gorm:"column:spp_payment_amount_paid_idr;not null;default:0;check:spp_payment_amount_paid_idr >= 0" json:"spp_payment_amount_paid_idr"`

	SppPaymentStatus SppPaymentStatus `gorm:"column:spp_payment_status;type:varchar(20);not null;default:unpaid" json:"spp_payment_status"`

	SppPaymentPaidAt *time.Time `gorm:"column:spp_payment_paid_at" json:"spp_payment_paid_at,omitempty"`
	SppPaymentMethod *string    `gorm:"column:spp_payment_method;type:varchar(50)" json:"spp_payment_method,omitempty"`

	// Order ID gateway (diisi kalau bayar via checkout midtrans)
	SppPaymentOrderID *string `gorm:"column:spp_payment_order_id;type:varchar(100);uniqueIndex" json:"spp_payment_order_id,omitempty"`

	SppPaymentNote *string `gorm:"column:spp_payment_note;type:text" json:"spp_payment_note,omitempty"`

	SppPaymentCreatedAt time.Time      `gorm:"column:spp_payment_created_at;autoCreateTime" json:"spp_payment_created_at"`
	SppPaymentUpdatedAt *time.Time     `gorm:"column:spp_payment_updated_at;autoUpdateTime" json:"spp_payment_updated_at,omitempty"`
	SppPaymentDeletedAt gorm.DeletedAt `gorm:"column:spp_payment_deleted_at;index" json:"spp_payment_deleted_at,omitempty"`
}

func (SppPaymentModel) TableName() string { return "spp_payments" }

// RecomputeStatus menyelaraskan status dengan nominal (paid >= due → paid).
func (m *SppPaymentModel) RecomputeStatus() {
	switch {
	case m.SppPaymentAmountPaidIDR <= 0:
		m.SppPaymentStatus = SppUnpaid
	case m.SppPaymentAmountPaidIDR < m.SppPaymentAmountDueIDR:
		m.SppPaymentStatus = SppPartial
	default:
		m.SppPaymentStatus = SppPaid
	}
}
