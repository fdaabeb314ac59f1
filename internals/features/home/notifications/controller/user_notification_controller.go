package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/home/notifications/dto"
	"lembagaku_backend/internals/features/home/notifications/model"
	helper "lembagaku_backend/internals/helpers"
)

type NotificationUserController struct {
	DB *gorm.DB
}

func NewNotificationUserController(db *gorm.DB) *NotificationUserController {
	return &NotificationUserController{DB: db}
}

/* ===================== LIST MINE ===================== */
// GET /api/u/notifications/me?unread_only=true
func (ctrl *NotificationUserController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Table("notification_users").
		Select(`notification_users.notification_user_id,
			notifications.notification_id,
			notifications.notification_title AS title,
			notifications.notification_description AS description,
			notifications.notification_type AS type,
			notification_users.notification_user_sent_at AS sent_at,
			notification_users.notification_user_read AS read,
			notification_users.notification_user_read_at AS read_at`).
		Joins("JOIN notifications ON notifications.notification_id = notification_users.notification_user_notification_id").
		Where("notification_users.notification_user_user_id = ?", userID).
		Order("notification_users.notification_user_sent_at DESC")

	if c.Query("unread_only") == "true" {
		q = q.Where("notification_users.notification_user_read = FALSE")
	}

	var rows []dto.UserNotificationResponse
	if err := q.Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] gagal mengambil notifikasi user: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	return helper.JsonOK(c, "OK", rows)
}

/* ===================== UNREAD COUNT ===================== */
// GET /api/u/notifications/me/unread-count
func (ctrl *NotificationUserController) UnreadCount(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var count int64
	if err := ctrl.DB.Model(&model.NotificationUserModel{}).
		Where("notification_user_user_id = ? AND notification_user_read = FALSE", userID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{"unread_count": count})
}

/* ===================== MARK AS READ ===================== */
// PUT /api/u/notifications/:id/read
func (ctrl *NotificationUserController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id := c.Params("id")
	now := time.Now()

	res := ctrl.DB.Model(&model.NotificationUserModel{}).
		Where("notification_user_id = ? AND notification_user_user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"notification_user_read":    true,
			"notification_user_read_at": now,
		})
	if res.Error != nil {
		log.Printf("[ERROR] gagal menandai notifikasi dibaca: %v", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update notifikasi")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Notifikasi ditandai sebagai dibaca", fiber.Map{
		"notification_user_id": id,
		"read_at":              now,
	})
}
