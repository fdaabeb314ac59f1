package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sppController "lembagaku_backend/internals/features/finance/spp/controller"
)

// Riwayat pembayaran milik user login
func SppUserRoutes(user fiber.Router, db *gorm.DB) {
	payCtrl := sppController.NewSppPaymentController(db)

	user.Get("/spp-payments/me", payCtrl.ListMine)
}
