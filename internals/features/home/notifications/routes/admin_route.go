package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifController "lembagaku_backend/internals/features/home/notifications/controller"
)

// Broadcast & kelola notifikasi (scope: admin lembaga)
func NotificationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := notifController.NewNotificationController(db)

	notif := admin.Group("/notifications")
	notif.Post("/", ctrl.CreateAndBroadcast)
	notif.Get("/", ctrl.List)
	notif.Delete("/:id", ctrl.Delete)
}
