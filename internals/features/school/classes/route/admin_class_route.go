// file: internals/features/school/classes/route/admin_class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "sekolahku_backend/internals/features/school/classes/controller"
)

// ClassAdminRoutes: /api/a/classes/*
func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	classes := r.Group("/classes")
	classes.Get("/", ctrl.ListClasses)
	classes.Get("/slug/:slug", ctrl.GetClassBySlug)
	classes.Get("/:id", ctrl.GetClassByID)
	classes.Post("/", ctrl.CreateClass)
	classes.Post("/full", ctrl.CreateClassFull)
	classes.Put("/:id", ctrl.UpdateClass)
	classes.Put("/:id/full", ctrl.UpdateClassFull)
	classes.Patch("/reorder", ctrl.ReorderClasses)
	classes.Patch("/:id/toggle-active", ctrl.ToggleActive)
	classes.Delete("/:id", ctrl.DeleteClass)
	classes.Post("/bulk-delete", ctrl.BulkDeleteClasses)
}
