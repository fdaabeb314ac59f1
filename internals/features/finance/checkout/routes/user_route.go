package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkoutController "lembagaku_backend/internals/features/finance/checkout/controller"
)

// Checkout SPP via Midtrans (scope: user login)
func CheckoutUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := checkoutController.NewCheckoutController(db)

	user.Post("/spp-checkout", ctrl.CreateCheckout)
}
