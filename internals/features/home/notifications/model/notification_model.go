package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Tipe notifikasi di-handle sebagai enum di sisi kode
const (
	NotificationTypeInfo    = 1
	NotificationTypeBilling = 2
	NotificationTypeLayanan = 3
)

type NotificationModel struct {
	NotificationID          uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationLembagaID   *uuid.UUID     `gorm:"column:notification_lembaga_id;type:uuid" json:"notification_lembaga_id,omitempty"` // nil = notifikasi platform
	NotificationTitle       string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationDescription string         `gorm:"column:notification_description;type:text" json:"notification_description"`
	NotificationType        int            `gorm:"column:notification_type;not null" json:"notification_type"`
	NotificationTags        pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`
	NotificationData        datatypes.JSON `gorm:"column:notification_data;type:jsonb" json:"notification_data,omitempty"` // payload bebas (mis. spp_payment_id)
	NotificationCreatedAt   time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt   time.Time      `gorm:"column:notification_updated_at;autoUpdateTime" json:"notification_updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
