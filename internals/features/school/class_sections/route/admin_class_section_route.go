// file: internals/features/school/class_sections/route/admin_class_section_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sectionController "sekolahku_backend/internals/features/school/class_sections/controller"
)

// ClassSectionAdminRoutes: /api/a/class-sections/* + nested create di /classes.
func ClassSectionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := sectionController.NewClassSectionController(db)

	sections := r.Group("/class-sections")
	sections.Get("/", ctrl.ListSections)
	sections.Put("/:id", ctrl.UpdateSection)
	sections.Delete("/:id", ctrl.DeleteSection)

	r.Post("/classes/:classId/sections", ctrl.CreateSection)
}
