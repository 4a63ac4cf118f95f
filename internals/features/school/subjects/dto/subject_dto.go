// file: internals/features/school/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/subjects/model"
)

type SaveSubjectRequest struct {
	SubjectSchoolID uuid.UUID `json:"-"`

	SubjectName         string `json:"subject_name"          validate:"required,min=1,max=120"`
	SubjectCode         string `json:"subject_code"          validate:"required,min=1,max=20"`
	SubjectDisplayOrder int    `json:"subject_display_order" validate:"gte=0"`
	SubjectIsActive     *bool  `json:"subject_is_active,omitempty"`
}

func (r *SaveSubjectRequest) Normalize() {
	r.SubjectName = strings.TrimSpace(r.SubjectName)
	r.SubjectCode = strings.ToUpper(strings.TrimSpace(r.SubjectCode))
}

func (r *SaveSubjectRequest) ToModel() *model.SubjectModel {
	active := true
	if r.SubjectIsActive != nil {
		active = *r.SubjectIsActive
	}
	return &model.SubjectModel{
		SubjectSchoolID:     r.SubjectSchoolID,
		SubjectName:         r.SubjectName,
		SubjectCode:         r.SubjectCode,
		SubjectDisplayOrder: r.SubjectDisplayOrder,
		SubjectIsActive:     active,
	}
}

func (r *SaveSubjectRequest) Apply(m *model.SubjectModel) {
	m.SubjectName = r.SubjectName
	m.SubjectCode = r.SubjectCode
	m.SubjectDisplayOrder = r.SubjectDisplayOrder
	if r.SubjectIsActive != nil {
		m.SubjectIsActive = *r.SubjectIsActive
	}
}

type SubjectResponse struct {
	SubjectID           uuid.UUID `json:"subject_id"`
	SubjectSchoolID     uuid.UUID `json:"subject_school_id"`
	SubjectName         string    `json:"subject_name"`
	SubjectCode         string    `json:"subject_code"`
	SubjectDisplayOrder int       `json:"subject_display_order"`
	SubjectIsActive     bool      `json:"subject_is_active"`
	SubjectCreatedAt    time.Time `json:"subject_created_at"`
	SubjectUpdatedAt    time.Time `json:"subject_updated_at"`
}

func NewSubjectResponse(m *model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:           m.SubjectID,
		SubjectSchoolID:     m.SubjectSchoolID,
		SubjectName:         m.SubjectName,
		SubjectCode:         m.SubjectCode,
		SubjectDisplayOrder: m.SubjectDisplayOrder,
		SubjectIsActive:     m.SubjectIsActive,
		SubjectCreatedAt:    m.SubjectCreatedAt,
		SubjectUpdatedAt:    m.SubjectUpdatedAt,
	}
}
