// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/teachers/dto"
	model "sekolahku_backend/internals/features/school/teachers/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/listkit"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// GET /api/a/teachers
func (ctrl *TeacherController) ListTeachers(c *fiber.Ctx) error {
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
		Model(&model.SchoolTeacherModel{}).
		Where("school_teacher_school_id = ?", schoolID)
	if c.QueryBool("active_only") {
		q = q.Where("school_teacher_is_active = TRUE")
	}
	q = listkit.ApplySearch(q, c.Query("search"),
		"school_teacher_name", "school_teacher_email", "school_teacher_specialty")
	q = listkit.ApplyCursor(q, "school_teacher_created_at", "school_teacher_id", cur)

	var rows []model.SchoolTeacherModel
	if err := q.
		Order("school_teacher_created_at DESC, school_teacher_id DESC").
		Limit(perPage).
		Find(&rows).Error; err != nil {
		log.Printf("[TEACHER] list gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	items := make([]dto.TeacherResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewTeacherResponse(&rows[i]))
	}
	next := ""
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		next = listkit.NextCursorFor(len(rows), perPage, last.SchoolTeacherCreatedAt, last.SchoolTeacherID)
	}
	return helper.JsonList(c, "ok", items, helper.BuildCursorPagination(perPage, len(items), next))
}

// GET /api/a/teachers/:id
func (ctrl *TeacherController) GetTeacherByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru tidak valid")
	}

	var m model.SchoolTeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("school_teacher_id = ? AND school_teacher_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}
	return helper.JsonOK(c, "ok", dto.NewTeacherResponse(&m))
}

// POST /api/a/teachers
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SaveTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.SchoolTeacherSchoolID = schoolID
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Printf("[TEACHER] create gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data guru")
	}
	return helper.JsonCreated(c, "Guru berhasil ditambahkan", dto.NewTeacherResponse(m))
}

// PUT /api/a/teachers/:id
func (ctrl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru tidak valid")
	}

	var req dto.SaveTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.SchoolTeacherSchoolID = schoolID
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	var m model.SchoolTeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("school_teacher_id = ? AND school_teacher_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	req.Apply(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		log.Printf("[TEACHER] update gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data guru")
	}
	return helper.JsonUpdated(c, "Guru berhasil diperbarui", dto.NewTeacherResponse(&m))
}

// DELETE /api/a/teachers/:id
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("school_teacher_id = ? AND school_teacher_school_id = ?", id, schoolID).
		Delete(&model.SchoolTeacherModel{})
	if res.Error != nil {
		log.Printf("[TEACHER] delete gagal: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data guru")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Guru berhasil dihapus", fiber.Map{"school_teacher_id": id})
}

type bulkToggleRequest struct {
	TeacherIDs []uuid.UUID `json:"teacher_ids" validate:"required,min=1"`
	IsActive   bool        `json:"is_active"`
}

// POST /api/a/teachers/bulk-toggle — satu hasil agregat untuk seleksi tabel.
func (ctrl *TeacherController) BulkToggleTeachers(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req bulkToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.SchoolTeacherModel{}).
		Where("school_teacher_id IN ? AND school_teacher_school_id = ?", req.TeacherIDs, schoolID).
		Update("school_teacher_is_active", req.IsActive)
	if res.Error != nil {
		log.Printf("[TEACHER] bulk toggle gagal: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status guru")
	}
	return helper.JsonUpdated(c, "Status guru diperbarui", fiber.Map{"affected": res.RowsAffected})
}
