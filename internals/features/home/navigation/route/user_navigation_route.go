// file: internals/features/home/navigation/route/user_navigation_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	navController "sekolahku_backend/internals/features/home/navigation/controller"
)

func NavigationUserRoutes(r fiber.Router) {
	ctrl := navController.NewNavigationController()
	r.Get("/navigation", ctrl.GetMenu)
}
