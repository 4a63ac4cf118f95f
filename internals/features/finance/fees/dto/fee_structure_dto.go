// file: internals/features/finance/fees/dto/fee_structure_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/finance/fees/model"
)

type SaveFeeStructureRequest struct {
	FeeStructureSchoolID uuid.UUID `json:"-"`

	FeeStructureName         string     `json:"fee_structure_name"               validate:"required,min=1,max=160"`
	FeeStructureAmount       int64      `json:"fee_structure_amount"             validate:"required,gt=0"`
	FeeStructureBillingCycle string     `json:"fee_structure_billing_cycle"      validate:"required,oneof=one_time monthly quarter semester yearly"`
	FeeStructureClassID      *uuid.UUID `json:"fee_structure_class_id,omitempty"`
	FeeStructureIsActive     *bool      `json:"fee_structure_is_active,omitempty"`
}

func (r *SaveFeeStructureRequest) Normalize() {
	r.FeeStructureName = strings.TrimSpace(r.FeeStructureName)
	r.FeeStructureBillingCycle = strings.ToLower(strings.TrimSpace(r.FeeStructureBillingCycle))
}

func (r *SaveFeeStructureRequest) ToModel() *model.FeeStructureModel {
	active := true
	if r.FeeStructureIsActive != nil {
		active = *r.FeeStructureIsActive
	}
	return &model.FeeStructureModel{
		FeeStructureSchoolID:     r.FeeStructureSchoolID,
		FeeStructureClassID:      r.FeeStructureClassID,
		FeeStructureName:         r.FeeStructureName,
		FeeStructureAmount:       r.FeeStructureAmount,
		FeeStructureBillingCycle: r.FeeStructureBillingCycle,
		FeeStructureIsActive:     active,
	}
}

func (r *SaveFeeStructureRequest) Apply(m *model.FeeStructureModel) {
	m.FeeStructureName = r.FeeStructureName
	m.FeeStructureAmount = r.FeeStructureAmount
	m.FeeStructureBillingCycle = r.FeeStructureBillingCycle
	m.FeeStructureClassID = r.FeeStructureClassID
	if r.FeeStructureIsActive != nil {
		m.FeeStructureIsActive = *r.FeeStructureIsActive
	}
}

type FeeStructureResponse struct {
	FeeStructureID           uuid.UUID  `json:"fee_structure_id"`
	FeeStructureSchoolID     uuid.UUID  `json:"fee_structure_school_id"`
	FeeStructureClassID      *uuid.UUID `json:"fee_structure_class_id,omitempty"`
	FeeStructureName         string     `json:"fee_structure_name"`
	FeeStructureAmount       int64      `json:"fee_structure_amount"`
	FeeStructureBillingCycle string     `json:"fee_structure_billing_cycle"`
	FeeStructureIsActive     bool       `json:"fee_structure_is_active"`
	FeeStructureCreatedAt    time.Time  `json:"fee_structure_created_at"`
	FeeStructureUpdatedAt    time.Time  `json:"fee_structure_updated_at"`
}

func NewFeeStructureResponse(m *model.FeeStructureModel) FeeStructureResponse {
	return FeeStructureResponse{
		FeeStructureID:           m.FeeStructureID,
		FeeStructureSchoolID:     m.FeeStructureSchoolID,
		FeeStructureClassID:      m.FeeStructureClassID,
		FeeStructureName:         m.FeeStructureName,
		FeeStructureAmount:       m.FeeStructureAmount,
		FeeStructureBillingCycle: m.FeeStructureBillingCycle,
		FeeStructureIsActive:     m.FeeStructureIsActive,
		FeeStructureCreatedAt:    m.FeeStructureCreatedAt,
		FeeStructureUpdatedAt:    m.FeeStructureUpdatedAt,
	}
}
