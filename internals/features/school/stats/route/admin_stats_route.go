// file: internals/features/school/stats/route/admin_stats_route.go
package route

import (
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsController "sekolahku_backend/internals/features/school/stats/controller"
)

func StatsAdminRoutes(r fiber.Router, db *gorm.DB, rdb *redis.Client) {
	ctrl := statsController.NewStatsController(db, rdb)

	stats := r.Group("/stats")
	stats.Get("/summary", ctrl.GetSummary)
	stats.Get("/roster-export", ctrl.ExportRosterXLSX)
}
