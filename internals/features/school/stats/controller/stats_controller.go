// file: internals/features/school/stats/controller/stats_controller.go
package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sectionModel "sekolahku_backend/internals/features/school/class_sections/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	"sekolahku_backend/internals/features/school/stats/service"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

const summaryCacheTTL = 30 * time.Second

type StatsController struct {
	DB    *gorm.DB
	Redis *redis.Client // boleh nil; cache dilewati
}

func NewStatsController(db *gorm.DB, rdb *redis.Client) *StatsController {
	return &StatsController{DB: db, Redis: rdb}
}

// GET /api/a/stats/summary — dihitung ulang per request, cache Redis singkat.
func (ctrl *StatsController) GetSummary(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	cacheKey := fmt.Sprintf("stats:summary:%s", schoolID)
	if ctrl.Redis != nil {
		if raw, err := ctrl.Redis.Get(c.Context(), cacheKey).Bytes(); err == nil {
			var cached service.DashboardSummary
			if sonic.Unmarshal(raw, &cached) == nil {
				return helper.JsonOK(c, "ok (cached)", cached)
			}
		}
	}

	// Tiga read independen; sumber kosong bukan error.
	var classes []classModel.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_school_id = ?", schoolID).
		Find(&classes).Error; err != nil {
		log.Printf("[STATS] fetch classes gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data statistik")
	}

	var sections []sectionModel.ClassSectionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_section_school_id = ?", schoolID).
		Find(&sections).Error; err != nil {
		log.Printf("[STATS] fetch sections gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data statistik")
	}

	var teachers []teacherModel.SchoolTeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("school_teacher_school_id = ?", schoolID).
		Find(&teachers).Error; err != nil {
		log.Printf("[STATS] fetch teachers gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data statistik")
	}

	summary := service.BuildSummary(classes, sections, teachers)

	if ctrl.Redis != nil {
		if raw, err := sonic.Marshal(summary); err == nil {
			// best effort; gagal set cache bukan alasan gagalkan response
			_ = ctrl.Redis.Set(c.Context(), cacheKey, raw, summaryCacheTTL).Err()
		}
	}
	return helper.JsonOK(c, "ok", summary)
}
