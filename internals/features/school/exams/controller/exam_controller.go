// file: internals/features/school/exams/controller/exam_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/exams/dto"
	model "sekolahku_backend/internals/features/school/exams/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/listkit"
)

type ExamController struct {
	DB *gorm.DB
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db}
}

// GET /api/a/exams — Query: cursor, per_page, search, status, term_id
func (ctrl *ExamController) ListExams(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	perPage := listkit.ClampPerPage(c.QueryInt("per_page"))
	cur, err := listkit.DecodeCursor(c.Query("cursor"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.ExamModel{}).
		Where("exam_school_id = ?", schoolID)

	if st := strings.ToLower(strings.TrimSpace(c.Query("status"))); st != "" {
		q = q.Where("exam_status = ?", st)
	}
	if raw := strings.TrimSpace(c.Query("term_id")); raw != "" {
		termID, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "term_id tidak valid")
		}
		q = q.Where("exam_term_id = ?", termID)
	}
	q = listkit.ApplySearch(q, c.Query("search"), "exam_name")
	q = listkit.ApplyCursor(q, "exam_created_at", "exam_id", cur)

	var rows []model.ExamModel
	if err := q.
		Order("exam_created_at DESC, exam_id DESC").
		Limit(perPage).
		Find(&rows).Error; err != nil {
		log.Printf("[EXAM] list gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ujian")
	}

	items := make([]dto.ExamResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewExamResponse(&rows[i]))
	}
	next := ""
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		next = listkit.NextCursorFor(len(rows), perPage, last.ExamCreatedAt, last.ExamID)
	}
	return helper.JsonList(c, "ok", items, helper.BuildCursorPagination(perPage, len(items), next))
}

// POST /api/a/exams
func (ctrl *ExamController) CreateExam(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	termID, err := helperAuth.ResolveTermIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SaveExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.ExamSchoolID = schoolID
	req.ExamTermID = termID
	req.Normalize()
	if errs := req.Validate(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Printf("[EXAM] create gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat ujian")
	}
	return helper.JsonCreated(c, "Ujian berhasil dibuat", dto.NewExamResponse(m))
}

// PUT /api/a/exams/:id
func (ctrl *ExamController) UpdateExam(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	var req dto.SaveExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if errs := req.Validate(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var m model.ExamModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("exam_id = ? AND exam_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ujian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ujian")
	}

	req.Apply(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		log.Printf("[EXAM] update gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui ujian")
	}
	return helper.JsonUpdated(c, "Ujian berhasil diperbarui", dto.NewExamResponse(&m))
}

// DELETE /api/a/exams/:id
func (ctrl *ExamController) DeleteExam(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("exam_id = ? AND exam_school_id = ?", id, schoolID).
		Delete(&model.ExamModel{})
	if res.Error != nil {
		log.Printf("[EXAM] delete gagal: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus ujian")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ujian tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Ujian berhasil dihapus", fiber.Map{"exam_id": id})
}
