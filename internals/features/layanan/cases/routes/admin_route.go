package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	caseController "lembagaku_backend/internals/features/layanan/cases/controller"
)

// Pengelolaan pengajuan layanan (scope: admin lembaga)
func CaseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := caseController.NewCaseController(db)

	cases := admin.Group("/layanan-cases")
	cases.Get("/", ctrl.List)
	cases.Get("/:id", ctrl.GetByID)
	cases.Patch("/:id", ctrl.Update)
	cases.Delete("/:id", ctrl.Delete)
}
