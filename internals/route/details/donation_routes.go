package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationRoutes "lembagaku_backend/internals/features/donations/donations/routes"
)

// Donasi guest + webhook Midtrans
func DonationPublicRoutes(public fiber.Router, db *gorm.DB) {
	donationRoutes.DonationPublicRoutes(public, db)
}

// Riwayat donasi user login
func DonationUserRoutes(user fiber.Router, db *gorm.DB) {
	donationRoutes.DonationUserRoutes(user, db)
}

// Rekap donasi lembaga (admin)
func DonationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	donationRoutes.DonationAdminRoutes(admin, db)
}
