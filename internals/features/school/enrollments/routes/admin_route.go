// file: internals/features/school/enrollments/routes/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollCtl "lembagaku_backend/internals/features/school/enrollments/controller"
)

func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollCtl.NewEnrollmentController(db)

	enrollments := r.Group("/enrollments")

	enrollments.Post("/", ctl.Create)
	enrollments.Get("/", ctl.List)
	enrollments.Get("/:id", ctl.GetByID)
	enrollments.Patch("/:id", ctl.Update)
	enrollments.Delete("/:id", ctl.Delete)
}
