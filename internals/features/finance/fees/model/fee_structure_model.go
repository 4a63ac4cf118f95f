// file: internals/features/finance/fees/model/fee_structure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BillingCycleOneTime  = "one_time"
	BillingCycleMonthly  = "monthly"
	BillingCycleQuarter  = "quarter"
	BillingCycleSemester = "semester"
	BillingCycleYearly   = "yearly"
)

func ValidBillingCycle(s string) bool {
	switch s {
	case BillingCycleOneTime, BillingCycleMonthly, BillingCycleQuarter,
		BillingCycleSemester, BillingCycleYearly:
		return true
	}
	return false
}

type FeeStructureModel struct {
	FeeStructureID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fee_structure_id" json:"fee_structure_id"`
	FeeStructureSchoolID uuid.UUID `gorm:"type:uuid;not null;column:fee_structure_school_id;index:idx_fees_school" json:"fee_structure_school_id"`

	// Opsional: tarif khusus satu kelas; NULL = berlaku semua kelas.
	FeeStructureClassID *uuid.UUID `gorm:"type:uuid;column:fee_structure_class_id;index:idx_fees_class" json:"fee_structure_class_id,omitempty"`

	FeeStructureName string `gorm:"size:160;not null;column:fee_structure_name" json:"fee_structure_name"`

	// Nominal dalam rupiah utuh (IDR, tanpa pecahan).
	FeeStructureAmount int64 `gorm:"not null;column:fee_structure_amount" json:"fee_structure_amount"`

	// one_time | monthly | quarter | semester | yearly
	FeeStructureBillingCycle string `gorm:"size:20;not null;column:fee_structure_billing_cycle" json:"fee_structure_billing_cycle"`

	FeeStructureIsActive bool `gorm:"not null;default:true;column:fee_structure_is_active" json:"fee_structure_is_active"`

	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;autoCreateTime;index:idx_fees_created_at,sort:desc" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;autoUpdateTime" json:"fee_structure_updated_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;index" json:"fee_structure_deleted_at,omitempty"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }
