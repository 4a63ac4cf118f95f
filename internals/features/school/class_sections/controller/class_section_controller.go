// file: internals/features/school/class_sections/controller/class_section_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/class_sections/dto"
	model "sekolahku_backend/internals/features/school/class_sections/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/listkit"
)

type ClassSectionController struct {
	DB *gorm.DB
}

func NewClassSectionController(db *gorm.DB) *ClassSectionController {
	return &ClassSectionController{DB: db}
}

// ensureClassOwned: guard parent sebelum operasi section standalone.
func (ctrl *ClassSectionController) ensureClassOwned(c *fiber.Ctx, schoolID, classID uuid.UUID) error {
	var n int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&classModel.ClassModel{}).
		Where("class_id = ? AND class_school_id = ?", classID, schoolID).
		Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return nil
}

// GET /api/a/class-sections — list lintas kelas (cursor + search).
// Query: class_id, cursor, per_page, search, active_only
func (ctrl *ClassSectionController) ListSections(c *fiber.Ctx) error {
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
		Model(&model.ClassSectionModel{}).
		Where("class_section_school_id = ?", schoolID)

	if raw := c.Query("class_id"); raw != "" {
		classID, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Where("class_section_class_id = ?", classID)
	}
	if c.QueryBool("active_only") {
		q = q.Where("class_section_is_active = TRUE")
	}

	q = listkit.ApplySearch(q, c.Query("search"), "class_section_name")
	q = listkit.ApplyCursor(q, "class_section_created_at", "class_section_id", cur)

	var rows []model.ClassSectionModel
	if err := q.
		Order("class_section_created_at DESC, class_section_id DESC").
		Limit(perPage).
		Find(&rows).Error; err != nil {
		log.Printf("[SECTION] list gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data section")
	}

	items := make([]dto.ClassSectionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewClassSectionResponse(&rows[i]))
	}
	next := ""
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		next = listkit.NextCursorFor(len(rows), perPage, last.ClassSectionCreatedAt, last.ClassSectionID)
	}
	return helper.JsonList(c, "ok", items, helper.BuildCursorPagination(perPage, len(items), next))
}

// POST /api/a/classes/:classId/sections — tambah satu section di luar wizard.
func (ctrl *ClassSectionController) CreateSection(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	if err := ctrl.ensureClassOwned(c, schoolID, classID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateClassSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.ClassSectionClassID = classID
	req.ClassSectionSchoolID = schoolID
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Printf("[SECTION] create gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat section")
	}
	return helper.JsonCreated(c, "Section berhasil dibuat", dto.NewClassSectionResponse(m))
}

// PUT /api/a/class-sections/:id
func (ctrl *ClassSectionController) UpdateSection(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID section tidak valid")
	}

	var req dto.UpdateClassSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	var m model.ClassSectionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_section_id = ? AND class_section_school_id = ?", sectionID, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data section")
	}

	req.Apply(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		log.Printf("[SECTION] update gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui section")
	}
	return helper.JsonUpdated(c, "Section berhasil diperbarui", dto.NewClassSectionResponse(&m))
}

// DELETE /api/a/class-sections/:id — soft delete.
func (ctrl *ClassSectionController) DeleteSection(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID section tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("class_section_id = ? AND class_section_school_id = ?", sectionID, schoolID).
		Delete(&model.ClassSectionModel{})
	if res.Error != nil {
		log.Printf("[SECTION] delete gagal: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus section")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Section berhasil dihapus", fiber.Map{"class_section_id": sectionID})
}
