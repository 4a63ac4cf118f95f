// file: internals/features/school/teachers/route/admin_teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "sekolahku_backend/internals/features/school/teachers/controller"
)

func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)

	teachers := r.Group("/teachers")
	teachers.Get("/", ctrl.ListTeachers)
	teachers.Get("/:id", ctrl.GetTeacherByID)
	teachers.Post("/", ctrl.CreateTeacher)
	teachers.Post("/bulk-toggle", ctrl.BulkToggleTeachers)
	teachers.Put("/:id", ctrl.UpdateTeacher)
	teachers.Delete("/:id", ctrl.DeleteTeacher)
}
