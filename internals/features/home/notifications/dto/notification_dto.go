package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	m "lembagaku_backend/internals/features/home/notifications/model"
)

/* =============== REQUESTS =============== */

type CreateNotificationRequest struct {
	NotificationTitle       string         `json:"notification_title" validate:"required,min=3,max=255"`
	NotificationDescription string         `json:"notification_description" validate:"omitempty,max=2000"`
	NotificationType        int            `json:"notification_type" validate:"required,oneof=1 2 3"`
	NotificationTags        []string       `json:"notification_tags" validate:"omitempty,dive,max=30"`
	NotificationData        datatypes.JSON `json:"notification_data" validate:"omitempty"`
}

func (r CreateNotificationRequest) ToModel(lembagaID *uuid.UUID) *m.NotificationModel {
	return &m.NotificationModel{
		NotificationLembagaID:   lembagaID,
		NotificationTitle:       r.NotificationTitle,
		NotificationDescription: r.NotificationDescription,
		NotificationType:        r.NotificationType,
		NotificationTags:        pq.StringArray(r.NotificationTags),
		NotificationData:        r.NotificationData,
	}
}

/* =============== RESPONSES =============== */

// Notifikasi + status baca milik user yang meminta
type UserNotificationResponse struct {
	NotificationUserID uuid.UUID  `json:"notification_user_id"`
	NotificationID     uuid.UUID  `json:"notification_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Type               int        `json:"type"`
	Tags               []string   `json:"tags,omitempty"`
	SentAt             time.Time  `json:"sent_at"`
	Read               bool       `json:"read"`
	ReadAt             *time.Time `json:"read_at,omitempty"`
}
