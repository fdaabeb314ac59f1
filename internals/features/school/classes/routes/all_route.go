// file: internals/features/school/classes/routes/all_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtl "lembagaku_backend/internals/features/school/classes/controller"
)

func ClassPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classCtl.NewClassController(db)

	r.Get("/lembagas/:lembaga_id/classes", ctl.ListPublicByLembaga)
}
