// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"lembagaku_backend/internals/configs"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
	featuresMiddleware "lembagaku_backend/internals/middlewares/features"

	routeDetails "lembagaku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	jwtOpts := authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}

	// ===================== GROUPS =====================

	// PUBLIC → tanpa auth (profil lembaga, donasi guest, webhook)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthJWT(jwtOpts),
	)

	// ===================== ADMIN (per lembaga) =====================
	// Path membawa :lembaga_id supaya scope bisa dicocokkan dengan token
	log.Println("[INFO] Setting up ADMIN group (Auth + Scope + RoleCheck)...")
	admin := app.Group("/api/a/:lembaga_id",
		authMiddleware.AuthJWT(jwtOpts),
		featuresMiddleware.RequirePathScopeMatch(),
		featuresMiddleware.IsLembagaAdmin(),
	)

	// ===================== OWNER (GLOBAL) =====================
	log.Println("[INFO] Setting up OWNER group (Auth + owner global)...")
	owner := app.Group("/api/o",
		authMiddleware.AuthJWT(jwtOpts),
		featuresMiddleware.IsOwnerGlobal(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Lembaga routes...")
	routeDetails.LembagaPublicRoutes(public, db)
	routeDetails.LembagaAdminRoutes(admin, db)
	routeDetails.LembagaOwnerRoutes(owner, db)

	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolPublicRoutes(public, db)
	routeDetails.SchoolUserRoutes(user, db)
	routeDetails.SchoolAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinancePublicRoutes(public, db)
	routeDetails.FinanceUserRoutes(user, db)
	routeDetails.FinanceAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Donation routes...")
	routeDetails.DonationPublicRoutes(public, db)
	routeDetails.DonationUserRoutes(user, db)
	routeDetails.DonationAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Layanan routes...")
	routeDetails.LayananUserRoutes(user, db)
	routeDetails.LayananAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Home routes...")
	routeDetails.HomeUserRoutes(user, db)
	routeDetails.HomeAdminRoutes(admin, db)
}
