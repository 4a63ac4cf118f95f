// file: internals/features/school/exams/route/admin_exam_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examController "sekolahku_backend/internals/features/school/exams/controller"
)

func ExamAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := examController.NewExamController(db)

	exams := r.Group("/exams")
	exams.Get("/", ctrl.ListExams)
	exams.Post("/", ctrl.CreateExam)
	exams.Put("/:id", ctrl.UpdateExam)
	exams.Delete("/:id", ctrl.DeleteExam)
}
