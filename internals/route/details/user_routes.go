// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"

	navRoute "sekolahku_backend/internals/features/home/navigation/route"
)

// UserRoutes: permukaan /api/u/* untuk semua user login.
func UserRoutes(r fiber.Router) {
	navRoute.NavigationUserRoutes(r)
}
