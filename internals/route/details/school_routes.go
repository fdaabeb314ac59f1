package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoutes "lembagaku_backend/internals/features/school/classes/routes"
	enrollmentRoutes "lembagaku_backend/internals/features/school/enrollments/routes"
)

// Katalog kelas publik per lembaga
func SchoolPublicRoutes(public fiber.Router, db *gorm.DB) {
	classRoutes.ClassPublicRoutes(public, db)
}

// Enrollment milik user login
func SchoolUserRoutes(user fiber.Router, db *gorm.DB) {
	enrollmentRoutes.EnrollmentUserRoutes(user, db)
}

// Kelola kelas & enrollment (admin lembaga)
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB) {
	classRoutes.ClassAdminRoutes(admin, db)
	enrollmentRoutes.EnrollmentAdminRoutes(admin, db)
}
