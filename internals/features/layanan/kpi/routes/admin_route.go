package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kpiController "lembagaku_backend/internals/features/layanan/kpi/controller"
)

// KPI layanan per lembaga (scope: admin lembaga)
func KPIAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := kpiController.NewKPIController(db)

	admin.Get("/layanan-kpi", ctrl.Report)
}
