// file: internals/features/lembaga/users/routes/owner_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtl "lembagaku_backend/internals/features/lembaga/users/controller"
)

func UserOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db)

	users := r.Group("/users")

	users.Post("/", ctl.Create)
	users.Get("/", ctl.List)
	users.Get("/:id", ctl.GetByID)
	users.Patch("/:id", ctl.Update)
	users.Delete("/:id", ctl.Delete)
}
