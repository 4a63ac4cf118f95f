// file: internals/middlewares/auth/auth_middleware.go
//
// Middleware auth: verifikasi JWT lalu angkat klaim konteks (user, role,
// school, term aktif) ke locals. Login/refresh/blacklist bukan urusan service
// ini; token diterbitkan layanan auth terpisah dengan secret yang sama.
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"sekolahku_backend/internals/configs"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AppClaims struct {
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
	SchoolID     string `json:"school_id"`
	ActiveTermID string `json:"active_term_id"`
	jwt.RegisteredClaims
}

func extractToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	// fallback cookie utk klien web
	return c.Cookies("access_token")
}

// AuthMiddleware menolak request tanpa token valid dan mengisi locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := extractToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
		}

		claims := &AppClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid atau kedaluwarsa")
		}

		c.Locals(helperAuth.LocalsUserID, claims.UserID)
		c.Locals(helperAuth.LocalsRole, strings.ToLower(claims.Role))
		c.Locals(helperAuth.LocalsSchoolID, claims.SchoolID)
		c.Locals(helperAuth.LocalsTermID, claims.ActiveTermID)
		return c.Next()
	}
}
