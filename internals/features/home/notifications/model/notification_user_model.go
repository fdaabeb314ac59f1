package model

import (
	"time"

	"github.com/google/uuid"
)

// Status baca per user untuk satu notifikasi
type NotificationUserModel struct {
	NotificationUserID             uuid.UUID  `gorm:"column:notification_user_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_user_id"`
	NotificationUserNotificationID uuid.UUID  `gorm:"column:notification_user_notification_id;type:uuid;not null;index" json:"notification_user_notification_id"`
	NotificationUserUserID         uuid.UUID  `gorm:"column:notification_user_user_id;type:uuid;not null;index" json:"notification_user_user_id"`
	NotificationUserSentAt         time.Time  `gorm:"column:notification_user_sent_at;autoCreateTime" json:"notification_user_sent_at"`
	NotificationUserRead           bool       `gorm:"column:notification_user_read;not null;default:false" json:"notification_user_read"`
	NotificationUserReadAt         *time.Time `gorm:"column:notification_user_read_at" json:"notification_user_read_at,omitempty"`
}

func (NotificationUserModel) TableName() string {
	return "notification_users"
}
