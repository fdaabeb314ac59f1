package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifController "lembagaku_backend/internals/features/home/notifications/controller"
)

// Notifikasi milik user login
func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := notifController.NewNotificationUserController(db)

	user.Get("/notifications/me", ctrl.ListMine)
	user.Get("/notifications/me/unread-count", ctrl.UnreadCount)
	user.Put("/notifications/:id/read", ctrl.MarkAsRead)
}
