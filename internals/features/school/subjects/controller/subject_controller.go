// file: internals/features/school/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/subjects/dto"
	model "sekolahku_backend/internals/features/school/subjects/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/listkit"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// GET /api/a/subjects
func (ctrl *SubjectController) ListSubjects(c *fiber.Ctx) error {
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
		Model(&model.SubjectModel{}).
		Where("subject_school_id = ?", schoolID)
	if c.QueryBool("active_only") {
		q = q.Where("subject_is_active = TRUE")
	}
	q = listkit.ApplySearch(q, c.Query("search"), "subject_name", "subject_code")
	q = listkit.ApplyCursor(q, "subject_created_at", "subject_id", cur)

	var rows []model.SubjectModel
	if err := q.
		Order("subject_created_at DESC, subject_id DESC").
		Limit(perPage).
		Find(&rows).Error; err != nil {
		log.Printf("[SUBJECT] list gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data mapel")
	}

	items := make([]dto.SubjectResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewSubjectResponse(&rows[i]))
	}
	next := ""
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		next = listkit.NextCursorFor(len(rows), perPage, last.SubjectCreatedAt, last.SubjectID)
	}
	return helper.JsonList(c, "ok", items, helper.BuildCursorPagination(perPage, len(items), next))
}

// POST /api/a/subjects
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SaveSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.SubjectSchoolID = schoolID
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	// Kode mapel unik per sekolah.
	var dup int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.SubjectModel{}).
		Where("subject_school_id = ? AND subject_code = ?", schoolID, req.SubjectCode).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kode mapel")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kode mapel sudah dipakai")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Printf("[SUBJECT] create gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat mapel")
	}
	return helper.JsonCreated(c, "Mapel berhasil dibuat", dto.NewSubjectResponse(m))
}

// PUT /api/a/subjects/:id
func (ctrl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mapel tidak valid")
	}

	var req dto.SaveSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.SubjectSchoolID = schoolID
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	var m model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data mapel")
	}

	if req.SubjectCode != m.SubjectCode {
		var dup int64
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&model.SubjectModel{}).
			Where("subject_school_id = ? AND subject_code = ? AND subject_id <> ?", schoolID, req.SubjectCode, id).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kode mapel")
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Kode mapel sudah dipakai")
		}
	}

	req.Apply(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		log.Printf("[SUBJECT] update gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui mapel")
	}
	return helper.JsonUpdated(c, "Mapel berhasil diperbarui", dto.NewSubjectResponse(&m))
}

// DELETE /api/a/subjects/:id
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mapel tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		Delete(&model.SubjectModel{})
	if res.Error != nil {
		log.Printf("[SUBJECT] delete gagal: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus mapel")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Mapel berhasil dihapus", fiber.Map{"subject_id": id})
}
