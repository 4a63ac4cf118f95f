// file: internals/features/home/navigation/controller/navigation_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/features/home/navigation"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type NavigationController struct{}

func NewNavigationController() *NavigationController { return &NavigationController{} }

// GET /api/u/navigation?active_path=/classes — menu sesuai role di token.
func (ctrl *NavigationController) GetMenu(c *fiber.Ctx) error {
	role := helperAuth.RoleFromContext(c)
	if role == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Role tidak ditemukan di context")
	}
	menu := navigation.BuildMenu(role, c.Query("active_path"))
	return helper.JsonOK(c, "ok", menu)
}
