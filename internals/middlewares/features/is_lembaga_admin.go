// file: internals/middlewares/features/is_lembaga_admin.go
package features

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lembagaku_backend/internals/constants"
	helper "lembagaku_backend/internals/helpers"
)

// IsLembagaAdmin memastikan token membawa lembaga_admin_ids yang valid
// (admin tenant) atau is_owner. Dipasang di group /api/a.
func IsLembagaAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.IsOwnerFromToken(c) {
			return c.Next()
		}
		if _, err := helper.GetLembagaIDFromToken(c); err != nil {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(c.Path()))
		}
		return c.Next()
	}
}

// IsOwnerGlobal hanya meloloskan token dengan klaim is_owner.
// Dipasang di group /api/o (administrasi platform).
func IsOwnerGlobal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.IsOwnerFromToken(c) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorOwner(c.Path()))
		}
		return c.Next()
	}
}

// RequirePathScopeMatch menolak request admin yang path-nya membawa
// :lembaga_id berbeda dengan tenant di token (owner bebas lintas tenant).
func RequirePathScopeMatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("lembaga_id"))
		if raw == "" {
			return c.Next()
		}
		pathID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "lembaga_id pada path tidak valid")
		}
		if helper.IsOwnerFromToken(c) {
			return c.Next()
		}
		tokenID, err := helper.GetLembagaIDFromToken(c)
		if err != nil {
			return err
		}
		if tokenID != pathID {
			return fiber.NewError(fiber.StatusForbidden, "Scope lembaga tidak sesuai dengan token")
		}
		return c.Next()
	}
}
