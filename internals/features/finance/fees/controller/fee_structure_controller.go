// file: internals/features/finance/fees/controller/fee_structure_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/finance/fees/dto"
	model "sekolahku_backend/internals/features/finance/fees/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/listkit"
)

type FeeStructureController struct {
	DB *gorm.DB
}

func NewFeeStructureController(db *gorm.DB) *FeeStructureController {
	return &FeeStructureController{DB: db}
}

// GET /api/a/fee-structures
func (ctrl *FeeStructureController) ListFeeStructures(c *fiber.Ctx) error {
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
		Model(&model.FeeStructureModel{}).
		Where("fee_structure_school_id = ?", schoolID)
	if c.QueryBool("active_only") {
		q = q.Where("fee_structure_is_active = TRUE")
	}
	if cycle := c.Query("billing_cycle"); cycle != "" {
		if !model.ValidBillingCycle(cycle) {
			return helper.JsonError(c, fiber.StatusBadRequest, "billing_cycle tidak valid")
		}
		q = q.Where("fee_structure_billing_cycle = ?", cycle)
	}
	q = listkit.ApplySearch(q, c.Query("search"), "fee_structure_name")
	q = listkit.ApplyCursor(q, "fee_structure_created_at", "fee_structure_id", cur)

	var rows []model.FeeStructureModel
	if err := q.
		Order("fee_structure_created_at DESC, fee_structure_id DESC").
		Limit(perPage).
		Find(&rows).Error; err != nil {
		log.Printf("[FEE] list gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tarif")
	}

	items := make([]dto.FeeStructureResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewFeeStructureResponse(&rows[i]))
	}
	next := ""
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		next = listkit.NextCursorFor(len(rows), perPage, last.FeeStructureCreatedAt, last.FeeStructureID)
	}
	return helper.JsonList(c, "ok", items, helper.BuildCursorPagination(perPage, len(items), next))
}

// guard relasi class opsional: kalau diisi, harus kelas milik sekolah ini.
func (ctrl *FeeStructureController) ensureClassRef(c *fiber.Ctx, schoolID uuid.UUID, classID *uuid.UUID) error {
	if classID == nil {
		return nil
	}
	var n int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&classModel.ClassModel{}).
		Where("class_id = ? AND class_school_id = ?", *classID, schoolID).
		Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "fee_structure_class_id bukan kelas milik sekolah ini")
	}
	return nil
}

// POST /api/a/fee-structures
func (ctrl *FeeStructureController) CreateFeeStructure(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SaveFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.FeeStructureSchoolID = schoolID
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}
	if err := ctrl.ensureClassRef(c, schoolID, req.FeeStructureClassID); err != nil {
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Printf("[FEE] create gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tarif")
	}
	return helper.JsonCreated(c, "Tarif berhasil dibuat", dto.NewFeeStructureResponse(m))
}

// PUT /api/a/fee-structures/:id
func (ctrl *FeeStructureController) UpdateFeeStructure(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tarif tidak valid")
	}

	var req dto.SaveFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.FeeStructureSchoolID = schoolID
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}
	if err := ctrl.ensureClassRef(c, schoolID, req.FeeStructureClassID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.FeeStructureModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tarif tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tarif")
	}

	req.Apply(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		log.Printf("[FEE] update gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tarif")
	}
	return helper.JsonUpdated(c, "Tarif berhasil diperbarui", dto.NewFeeStructureResponse(&m))
}

// DELETE /api/a/fee-structures/:id
func (ctrl *FeeStructureController) DeleteFeeStructure(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tarif tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).
		Delete(&model.FeeStructureModel{})
	if res.Error != nil {
		log.Printf("[FEE] delete gagal: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tarif")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tarif tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Tarif berhasil dihapus", fiber.Map{"fee_structure_id": id})
}
