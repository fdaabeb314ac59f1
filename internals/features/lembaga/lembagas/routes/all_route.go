// file: internals/features/lembaga/lembagas/routes/all_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lembagaCtl "lembagaku_backend/internals/features/lembaga/lembagas/controller"
)

func LembagaPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := lembagaCtl.NewLembagaController(db)

	lembaga := r.Group("/lembagas")

	lembaga.Get("/:slug", ctl.GetBySlug)
}
