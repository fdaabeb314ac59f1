package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkoutRoutes "lembagaku_backend/internals/features/finance/checkout/routes"
	sppRoutes "lembagaku_backend/internals/features/finance/spp/routes"
)

// Webhook Midtrans untuk pembayaran SPP
func FinancePublicRoutes(public fiber.Router, db *gorm.DB) {
	checkoutRoutes.CheckoutPublicRoutes(public, db)
}

// Riwayat & checkout SPP milik user login
func FinanceUserRoutes(user fiber.Router, db *gorm.DB) {
	sppRoutes.SppUserRoutes(user, db)
	checkoutRoutes.CheckoutUserRoutes(user, db)
}

// Pencatatan pembayaran & laporan rekonsiliasi (admin lembaga)
func FinanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	sppRoutes.SppAdminRoutes(admin, db)
}
