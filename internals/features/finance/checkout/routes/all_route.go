package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkoutController "lembagaku_backend/internals/features/finance/checkout/controller"
	middlewares "lembagaku_backend/internals/middlewares"
)

// Webhook Midtrans (tanpa auth; dipanggil server Midtrans)
func CheckoutPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := checkoutController.NewCheckoutController(db)

	public.Post("/webhooks/midtrans/spp", middlewares.WebhookRateLimiter(), ctrl.HandleMidtransNotification)
}
