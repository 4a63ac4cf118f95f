// file: internals/features/approvals/model/approval_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Aksi yang bisa dimintakan persetujuan per sekolah.
const (
	ApprovalActionClassDelete    = "class_delete"
	ApprovalActionBulkDelete     = "bulk_delete"
	ApprovalActionFeeChange      = "fee_change"
	ApprovalActionTeacherRemoval = "teacher_removal"
)

func ValidApprovalAction(s string) bool {
	switch s {
	case ApprovalActionClassDelete, ApprovalActionBulkDelete,
		ApprovalActionFeeChange, ApprovalActionTeacherRemoval:
		return true
	}
	return false
}

// ApprovalSettingModel: satu baris per (sekolah, aksi). Payload roles berupa
// JSON map role → boolean (siapa saja yang bisa meng-approve aksi tsb).
type ApprovalSettingModel struct {
	ApprovalSettingID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:approval_setting_id" json:"approval_setting_id"`
	ApprovalSettingSchoolID uuid.UUID `gorm:"type:uuid;not null;column:approval_setting_school_id;uniqueIndex:uq_approval_school_action" json:"approval_setting_school_id"`

	ApprovalSettingAction  string `gorm:"size:40;not null;column:approval_setting_action;uniqueIndex:uq_approval_school_action" json:"approval_setting_action"`
	ApprovalSettingEnabled bool   `gorm:"not null;default:false;column:approval_setting_enabled" json:"approval_setting_enabled"`

	// {"admin": true, "teacher": false, ...}
	ApprovalSettingRoles datatypes.JSON `gorm:"type:jsonb;column:approval_setting_roles" json:"approval_setting_roles"`

	ApprovalSettingCreatedAt time.Time `gorm:"column:approval_setting_created_at;autoCreateTime" json:"approval_setting_created_at"`
	ApprovalSettingUpdatedAt time.Time `gorm:"column:approval_setting_updated_at;autoUpdateTime" json:"approval_setting_updated_at"`
}

func (ApprovalSettingModel) TableName() string { return "approval_settings" }
