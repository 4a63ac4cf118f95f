// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	approvalRoute "sekolahku_backend/internals/features/approvals/route"
	feeRoute "sekolahku_backend/internals/features/finance/fees/route"
	sectionRoute "sekolahku_backend/internals/features/school/class_sections/route"
	classRoute "sekolahku_backend/internals/features/school/classes/route"
	examRoute "sekolahku_backend/internals/features/school/exams/route"
	statsRoute "sekolahku_backend/internals/features/school/stats/route"
	subjectRoute "sekolahku_backend/internals/features/school/subjects/route"
	teacherRoute "sekolahku_backend/internals/features/school/teachers/route"
	transportRoute "sekolahku_backend/internals/features/school/transport/route"
)

// AdminRoutes: seluruh permukaan /api/a/*.
func AdminRoutes(r fiber.Router, db *gorm.DB, rdb *redis.Client) {
	classRoute.ClassAdminRoutes(r, db)
	sectionRoute.ClassSectionAdminRoutes(r, db)
	teacherRoute.TeacherAdminRoutes(r, db)
	subjectRoute.SubjectAdminRoutes(r, db)
	examRoute.ExamAdminRoutes(r, db)
	transportRoute.TransportAdminRoutes(r, db)
	feeRoute.FeeAdminRoutes(r, db)
	approvalRoute.ApprovalAdminRoutes(r, db)
	statsRoute.StatsAdminRoutes(r, db, rdb)
}
