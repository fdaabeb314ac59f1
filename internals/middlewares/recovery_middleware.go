package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic dari handler mana pun (termasuk
// webhook) dan mengubahnya jadi 500, supaya satu request rusak tidak
// menjatuhkan proses.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true, // stack trace ikut tercetak di log
	})
}
