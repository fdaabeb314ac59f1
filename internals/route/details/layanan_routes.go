package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	caseRoutes "lembagaku_backend/internals/features/layanan/cases/routes"
	kpiRoutes "lembagaku_backend/internals/features/layanan/kpi/routes"
)

// Pengajuan layanan oleh user login
func LayananUserRoutes(user fiber.Router, db *gorm.DB) {
	caseRoutes.CaseUserRoutes(user, db)
}

// Kelola pengajuan + KPI layanan (admin lembaga)
func LayananAdminRoutes(admin fiber.Router, db *gorm.DB) {
	caseRoutes.CaseAdminRoutes(admin, db)
	kpiRoutes.KPIAdminRoutes(admin, db)
}
