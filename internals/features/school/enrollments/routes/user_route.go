// file: internals/features/school/enrollments/routes/user_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollCtl "lembagaku_backend/internals/features/school/enrollments/controller"
)

func EnrollmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollCtl.NewEnrollmentController(db)

	r.Get("/enrollments/me", ctl.ListMine)
}
