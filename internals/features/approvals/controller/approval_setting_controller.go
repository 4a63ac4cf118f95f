// file: internals/features/approvals/controller/approval_setting_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "sekolahku_backend/internals/features/approvals/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ApprovalSettingController struct {
	DB *gorm.DB
}

func NewApprovalSettingController(db *gorm.DB) *ApprovalSettingController {
	return &ApprovalSettingController{DB: db}
}

// GET /api/a/approval-settings — seluruh setting sekolah (maks. 1 per aksi).
func (ctrl *ApprovalSettingController) ListSettings(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.ApprovalSettingModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("approval_setting_school_id = ?", schoolID).
		Order("approval_setting_action ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[APPROVAL] list gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil setting approval")
	}
	return helper.JsonOK(c, "ok", rows)
}

type upsertSettingRequest struct {
	ApprovalSettingAction  string          `json:"approval_setting_action"`
	ApprovalSettingEnabled bool            `json:"approval_setting_enabled"`
	ApprovalSettingRoles   map[string]bool `json:"approval_setting_roles"`
}

// PUT /api/a/approval-settings — upsert per (sekolah, aksi).
func (ctrl *ApprovalSettingController) UpsertSetting(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req upsertSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if !model.ValidApprovalAction(req.ApprovalSettingAction) {
		return helper.JsonValidationError(c, map[string]string{
			"approval_setting_action": "unknown action",
		})
	}
	if req.ApprovalSettingRoles == nil {
		req.ApprovalSettingRoles = map[string]bool{}
	}

	rolesJSON, err := sonic.Marshal(req.ApprovalSettingRoles)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Roles tidak valid")
	}

	m := model.ApprovalSettingModel{
		ApprovalSettingSchoolID: schoolID,
		ApprovalSettingAction:   req.ApprovalSettingAction,
		ApprovalSettingEnabled:  req.ApprovalSettingEnabled,
		ApprovalSettingRoles:    datatypes.JSON(rolesJSON),
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "approval_setting_school_id"},
				{Name: "approval_setting_action"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"approval_setting_enabled", "approval_setting_roles", "approval_setting_updated_at",
			}),
		}).
		Create(&m).Error; err != nil {
		log.Printf("[APPROVAL] upsert gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan setting approval")
	}
	return helper.JsonUpdated(c, "Setting approval disimpan", m)
}

// PATCH /api/a/approval-settings/:action/toggle
func (ctrl *ApprovalSettingController) ToggleSetting(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	action := c.Params("action")
	if !model.ValidApprovalAction(action) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Aksi tidak dikenal")
	}

	var m model.ApprovalSettingModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("approval_setting_school_id = ? AND approval_setting_action = ?", schoolID, action).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Setting belum dibuat untuk aksi ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil setting approval")
	}

	m.ApprovalSettingEnabled = !m.ApprovalSettingEnabled
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&m).
		Update("approval_setting_enabled", m.ApprovalSettingEnabled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah setting approval")
	}
	return helper.JsonUpdated(c, "Setting approval diperbarui", m)
}
