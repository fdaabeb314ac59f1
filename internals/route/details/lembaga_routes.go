package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lembagaRoutes "lembagaku_backend/internals/features/lembaga/lembagas/routes"
	statsRoutes "lembagaku_backend/internals/features/lembaga/stats/routes"
	userRoutes "lembagaku_backend/internals/features/lembaga/users/routes"
)

// Profil lembaga yang bisa diakses tanpa login
func LembagaPublicRoutes(public fiber.Router, db *gorm.DB) {
	lembagaRoutes.LembagaPublicRoutes(public, db)
}

// Dashboard & statistik lembaga (admin)
func LembagaAdminRoutes(admin fiber.Router, db *gorm.DB) {
	statsRoutes.StatsAdminRoutes(admin, db)
}

// Administrasi platform: kelola tenant & akun (owner)
func LembagaOwnerRoutes(owner fiber.Router, db *gorm.DB) {
	lembagaRoutes.LembagaOwnerRoutes(owner, db)
	userRoutes.UserOwnerRoutes(owner, db)
}
