// file: internals/features/school/subjects/route/admin_subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "sekolahku_backend/internals/features/school/subjects/controller"
)

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	subjects := r.Group("/subjects")
	subjects.Get("/", ctrl.ListSubjects)
	subjects.Post("/", ctrl.CreateSubject)
	subjects.Put("/:id", ctrl.UpdateSubject)
	subjects.Delete("/:id", ctrl.DeleteSubject)
}
