package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sppController "lembagaku_backend/internals/features/finance/spp/controller"
)

// Semua pembayaran SPP & laporan rekonsiliasi (scope: admin lembaga)
func SppAdminRoutes(admin fiber.Router, db *gorm.DB) {
	payCtrl := sppController.NewSppPaymentController(db)
	reportCtrl := sppController.NewSppReportController(db)

	pay := admin.Group("/spp-payments")
	pay.Post("/", payCtrl.Create)
	pay.Get("/", payCtrl.List)
	pay.Get("/:id", payCtrl.GetByID)
	pay.Patch("/:id", payCtrl.Update)
	pay.Delete("/:id", payCtrl.Delete)

	// GET /spp-reports?type=outstanding|collected
	admin.Get("/spp-reports", reportCtrl.Report)
}
