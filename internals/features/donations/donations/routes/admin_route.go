package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationController "lembagaku_backend/internals/features/donations/donations/controller"
)

// Rekap donasi per lembaga (scope: admin lembaga)
func DonationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := donationController.NewDonationController(db)

	admin.Get("/donations", ctrl.ListByLembaga)
	admin.Get("/donations/totals", ctrl.Totals)
}
