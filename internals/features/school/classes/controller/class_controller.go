// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sectionModel "sekolahku_backend/internals/features/school/class_sections/model"
	"sekolahku_backend/internals/features/school/classes/dto"
	model "sekolahku_backend/internals/features/school/classes/model"
	"sekolahku_backend/internals/features/school/classes/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/listkit"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

/* ===============================
   LIST (cursor + search)
=================================*/

// GET /api/a/classes
// Query: cursor, per_page, search, active_only, term_id
func (ctrl *ClassController) ListClasses(c *fiber.Ctx) error {
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
		Model(&model.ClassModel{}).
		Where("class_school_id = ?", schoolID)

	if raw := strings.TrimSpace(c.Query("term_id")); raw != "" {
		termID, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "term_id tidak valid")
		}
		q = q.Where("class_term_id = ?", termID)
	}
	if c.QueryBool("active_only") {
		q = q.Where("class_is_active = TRUE")
	}

	q = listkit.ApplySearch(q, c.Query("search"), "class_name", "class_slug")
	q = listkit.ApplyCursor(q, "class_created_at", "class_id", cur)

	var rows []model.ClassModel
	if err := q.
		Order("class_created_at DESC, class_id DESC").
		Limit(perPage).
		Find(&rows).Error; err != nil {
		log.Printf("[CLASS] list gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	items := make([]dto.ClassResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewClassResponse(&rows[i]))
	}

	next := ""
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		next = listkit.NextCursorFor(len(rows), perPage, last.ClassCreatedAt, last.ClassID)
	}
	return helper.JsonList(c, "ok", items, helper.BuildCursorPagination(perPage, len(items), next))
}

/* ===============================
   DETAIL
=================================*/

// GET /api/a/classes/:id — parent + section set (seed utk wizard mode edit).
func (ctrl *ClassController) GetClassByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	cls, secs, err := service.LoadClassWithSections(c.Context(), ctrl.DB, schoolID, classID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	out := dto.ClassWithSectionsResponse{Class: dto.NewClassResponse(cls)}
	for i := range secs {
		out.Sections = append(out.Sections, dto.NewSectionCompactResponse(&secs[i]))
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /api/a/classes/slug/:slug
func (ctrl *ClassController) GetClassBySlug(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug kosong")
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("LOWER(class_slug) = ? AND class_school_id = ?", slug, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}
	return helper.JsonOK(c, "ok", dto.NewClassResponse(&m))
}

/* ===============================
   CREATE / UPDATE / DELETE
=================================*/

// POST /api/a/classes — create parent saja (tanpa sections; utk itu pakai /full).
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
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

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.ClassSchoolID = schoolID
	req.ClassTermID = termID
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	m := req.ToModel()
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "classes", "class_slug",
		helper.Slugify(m.ClassName, 160),
		func(q *gorm.DB) *gorm.DB {
			return q.Where("class_school_id = ? AND class_deleted_at IS NULL", schoolID)
		}, 160)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	m.ClassSlug = slug

	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Printf("[CLASS] create gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.NewClassResponse(m))
}

// PUT /api/a/classes/:id — full-set update field parent.
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_id = ? AND class_school_id = ?", classID, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	req.Apply(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		log.Printf("[CLASS] update gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.NewClassResponse(&m))
}

// DELETE /api/a/classes/:id — soft delete parent + seluruh section-nya.
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("class_id = ? AND class_school_id = ?", classID, schoolID).
			Delete(&model.ClassModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return tx.Where("class_section_class_id = ? AND class_section_school_id = ?", classID, schoolID).
			Delete(&sectionModel.ClassSectionModel{}).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[CLASS] delete gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": classID})
}

// PATCH /api/a/classes/:id/toggle-active
func (ctrl *ClassController) ToggleActive(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_id = ? AND class_school_id = ?", classID, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	m.ClassIsActive = !m.ClassIsActive
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&m).
		Update("class_is_active", m.ClassIsActive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status kelas")
	}
	return helper.JsonUpdated(c, "Status kelas diperbarui", dto.NewClassResponse(&m))
}

/* ===============================
   REORDER & BULK
=================================*/

type reorderRequest struct {
	Orders []struct {
		ClassID      uuid.UUID `json:"class_id"       validate:"required"`
		DisplayOrder int       `json:"display_order"  validate:"gte=0"`
	} `json:"orders" validate:"required,min=1,dive"`
}

// PATCH /api/a/classes/reorder — terima hasil akhir drag-reorder dari klien,
// tulis display_order per id dalam satu transaksi.
func (ctrl *ClassController) ReorderClasses(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req reorderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		for _, o := range req.Orders {
			res := tx.Model(&model.ClassModel{}).
				Where("class_id = ? AND class_school_id = ?", o.ClassID, schoolID).
				Update("class_display_order", o.DisplayOrder)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Kelas "+o.ClassID.String()+" tidak ditemukan")
			}
		}
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[CLASS] reorder gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan urutan kelas")
	}
	return helper.JsonUpdated(c, "Urutan kelas disimpan", fiber.Map{"count": len(req.Orders)})
}

type bulkDeleteRequest struct {
	ClassIDs []uuid.UUID `json:"class_ids" validate:"required,min=1"`
}

// POST /api/a/classes/bulk-delete — aksi untuk seleksi multi-baris di tabel.
func (ctrl *ClassController) BulkDeleteClasses(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req bulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	var affected int64
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("class_id IN ? AND class_school_id = ?", req.ClassIDs, schoolID).
			Delete(&model.ClassModel{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return tx.Where("class_section_class_id IN ? AND class_section_school_id = ?", req.ClassIDs, schoolID).
			Delete(&sectionModel.ClassSectionModel{}).Error
	})
	if err != nil {
		log.Printf("[CLASS] bulk delete gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	return helper.JsonDeleted(c, "Kelas terpilih dihapus", fiber.Map{"deleted": affected})
}
