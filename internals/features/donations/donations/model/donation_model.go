package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
)

type Donation struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`

	DonationLembagaID uuid.UUID  `gorm:"column:donation_lembaga_id;type:uuid;not null;index" json:"donation_lembaga_id"`
	DonationUserID    *uuid.UUID `gorm:"column:donation_user_id;type:uuid" json:"donation_user_id,omitempty"` // nil = donatur guest

	DonationName      string `gorm:"column:donation_name;type:varchar(50);not null" json:"donation_name"`
	DonationAmountIDR int    `gorm:"column:donation_amount_idr;not null;check:donation_amount_idr > 0" json:"donation_amount_idr"`
	DonationMessage   string `gorm:"column:donation_message;type:text" json:"donation_message"`

	DonationStatus DonationStatus `gorm:"column:donation_status;type:varchar(20);default:'pending'" json:"donation_status"`

	DonationOrderID string `gorm:"column:donation_order_id;type:varchar(100);not null;unique" json:"donation_order_id"`

	DonationPaymentToken   string `gorm:"column:donation_payment_token;type:text" json:"donation_payment_token"`
	DonationPaymentGateway string `gorm:"column:donation_payment_gateway;type:varchar(50);default:'midtrans'" json:"donation_payment_gateway"`

	DonationPaidAt *time.Time     `gorm:"column:donation_paid_at" json:"donation_paid_at,omitempty"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Donation) TableName() string {
	return "donations"
}
