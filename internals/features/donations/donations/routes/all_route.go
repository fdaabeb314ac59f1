package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationController "lembagaku_backend/internals/features/donations/donations/controller"
	middlewares "lembagaku_backend/internals/middlewares"
)

// Donasi publik (guest) + webhook Midtrans
func DonationPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := donationController.NewDonationController(db)

	public.Post("/donations", ctrl.CreateDonation)
	public.Post("/webhooks/midtrans/donations", middlewares.WebhookRateLimiter(), ctrl.HandleMidtransNotification)
}

// Riwayat donasi user login
func DonationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := donationController.NewDonationController(db)

	user.Get("/donations/me", ctrl.ListMine)
}
