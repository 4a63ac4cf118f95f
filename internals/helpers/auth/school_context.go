// file: internals/helpers/auth/school_context.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys diisi oleh middleware auth (lihat internals/middlewares/auth).
const (
	LocalsUserID   = "user_id"
	LocalsRole     = "role"
	LocalsSchoolID = "school_id"
	LocalsTermID   = "active_term_id"
)

// ResolveSchoolIDFromContext mengambil tenant scope (school) dari locals.
// Create call tanpa scope ini harus ditolak sebelum menyentuh DB.
func ResolveSchoolIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocalsSchoolID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "School scope tidak ditemukan di context")
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "School scope tidak valid")
	}
	return id, nil
}

// ResolveTermIDFromContext mengambil scope periode akademik aktif dari locals.
func ResolveTermIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocalsTermID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Academic term scope tidak ditemukan di context")
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Academic term scope tidak valid")
	}
	return id, nil
}

// RoleFromContext membaca role user (admin|teacher|staff|student).
func RoleFromContext(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalsRole).(string)
	return strings.ToLower(strings.TrimSpace(role))
}

// EnsureSchoolAdmin menolak kalau role bukan admin untuk school tsb.
func EnsureSchoolAdmin(c *fiber.Ctx) error {
	if RoleFromContext(c) != "admin" {
		return fiber.NewError(fiber.StatusForbidden, "Hanya admin sekolah yang diizinkan")
	}
	return nil
}
