package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsController "lembagaku_backend/internals/features/lembaga/stats/controller"
)

// Statistik dashboard lembaga (scope: admin lembaga)
func StatsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := statsController.NewStatsController(db)

	admin.Get("/stats", ctrl.Get)
}
