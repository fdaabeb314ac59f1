// file: internals/features/lembaga/lembagas/routes/owner_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lembagaCtl "lembagaku_backend/internals/features/lembaga/lembagas/controller"
)

// Administrasi platform: hanya owner yang boleh kelola tenant.
func LembagaOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := lembagaCtl.NewLembagaController(db)

	lembaga := r.Group("/lembagas")

	lembaga.Post("/", ctl.Create)
	lembaga.Get("/", ctl.List)
	lembaga.Patch("/:id", ctl.Update)
	lembaga.Delete("/:id", ctl.Delete)
}
