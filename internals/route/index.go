// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "sekolahku_backend/internals/databases"
	authMw "sekolahku_backend/internals/middlewares/auth"
	"sekolahku_backend/internals/route/details"
)

// SetupRoutes memasang dua permukaan API:
//
//	/api/u/* — semua user login (menu, profil ringan)
//	/api/a/* — admin/staff sekolah (CRUD + wizard + stats)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api", authMw.AuthMiddleware())

	details.UserRoutes(api.Group("/u"))
	details.AdminRoutes(api.Group("/a"), db, database.Redis)
}
