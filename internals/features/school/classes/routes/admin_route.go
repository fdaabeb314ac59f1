// file: internals/features/school/classes/routes/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtl "lembagaku_backend/internals/features/school/classes/controller"
)

func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classCtl.NewClassController(db)

	classes := r.Group("/classes")

	classes.Post("/", ctl.Create)
	classes.Get("/", ctl.List)
	classes.Get("/:id", ctl.GetByID)
	classes.Patch("/:id", ctl.Update)
	classes.Delete("/:id", ctl.Delete)
}
