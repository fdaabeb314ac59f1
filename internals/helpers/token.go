// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals yang dihydrate oleh middleware AuthJWT
const (
	LocUserID          = "user_id"
	LocRolesGlobal     = "roles_global"
	LocIsOwner         = "is_owner"
	LocLembagaAdminIDs = "lembaga_admin_ids"
)

// --- util kecil biar gak duplikasi parsing ---
func firstUUIDFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
	}

	switch t := v.(type) {
	case []string:
		if len(t) == 0 || strings.TrimSpace(t[0]) == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
		}
		return uuid.Parse(strings.TrimSpace(t[0]))
	case []interface{}:
		if len(t) == 0 {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
		}
		if s, ok := t[0].(string); ok {
			return uuid.Parse(strings.TrimSpace(s))
		}
	case string:
		if strings.TrimSpace(t) == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
		}
		return uuid.Parse(strings.TrimSpace(t))
	}
	return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" tidak valid di token")
}

// GetLembagaIDFromToken mengambil tenant aktif (admin) dari klaim token.
func GetLembagaIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, LocLembagaAdminIDs)
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, LocUserID)
}

// IsOwnerFromToken true jika klaim is_owner diset oleh middleware.
func IsOwnerFromToken(c *fiber.Ctx) bool {
	if v, ok := c.Locals(LocIsOwner).(bool); ok {
		return v
	}
	return false
}

// RolesFromToken mengembalikan roles_global sebagai slice string (bisa kosong).
func RolesFromToken(c *fiber.Ctx) []string {
	switch t := c.Locals(LocRolesGlobal).(type) {
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		return []string{t}
	}
	return nil
}
