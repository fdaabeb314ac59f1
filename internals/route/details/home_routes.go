package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifRoutes "lembagaku_backend/internals/features/home/notifications/routes"
)

// Notifikasi milik user login
func HomeUserRoutes(user fiber.Router, db *gorm.DB) {
	notifRoutes.NotificationUserRoutes(user, db)
}

// Broadcast notifikasi (admin lembaga)
func HomeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	notifRoutes.NotificationAdminRoutes(admin, db)
}
