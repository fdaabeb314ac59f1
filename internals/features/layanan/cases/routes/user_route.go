package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	caseController "lembagaku_backend/internals/features/layanan/cases/controller"
)

// Pengajuan layanan oleh user login
func CaseUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := caseController.NewCaseController(db)

	user.Post("/layanan-cases", ctrl.Create)
	user.Get("/layanan-cases/me", ctrl.ListMine)
}
