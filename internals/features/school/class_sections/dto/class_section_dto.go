// file: internals/features/school/class_sections/dto/class_section_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/class_sections/model"
)

type CreateClassSectionRequest struct {
	// Diisi controller dari path & context, bukan dari body.
	ClassSectionClassID  uuid.UUID `json:"-"`
	ClassSectionSchoolID uuid.UUID `json:"-"`

	ClassSectionName      string     `json:"class_section_name"                 validate:"required,min=1,max=100"`
	ClassSectionCapacity  int        `json:"class_section_capacity"             validate:"required,gt=0"`
	ClassSectionTeacherID *uuid.UUID `json:"class_section_teacher_id,omitempty"`
	ClassSectionPosition  int        `json:"class_section_position"             validate:"gte=0"`
}

func (r *CreateClassSectionRequest) Normalize() {
	r.ClassSectionName = strings.TrimSpace(r.ClassSectionName)
}

func (r *CreateClassSectionRequest) ToModel() *model.ClassSectionModel {
	return &model.ClassSectionModel{
		ClassSectionClassID:   r.ClassSectionClassID,
		ClassSectionSchoolID:  r.ClassSectionSchoolID,
		ClassSectionName:      r.ClassSectionName,
		ClassSectionCapacity:  r.ClassSectionCapacity,
		ClassSectionTeacherID: r.ClassSectionTeacherID,
		ClassSectionPosition:  r.ClassSectionPosition,
		ClassSectionIsActive:  true,
	}
}

type UpdateClassSectionRequest struct {
	ClassSectionName      string     `json:"class_section_name"                 validate:"required,min=1,max=100"`
	ClassSectionCapacity  int        `json:"class_section_capacity"             validate:"required,gt=0"`
	ClassSectionTeacherID *uuid.UUID `json:"class_section_teacher_id,omitempty"`
	ClassSectionPosition  int        `json:"class_section_position"             validate:"gte=0"`
	ClassSectionIsActive  *bool      `json:"class_section_is_active,omitempty"`
}

func (r *UpdateClassSectionRequest) Normalize() {
	r.ClassSectionName = strings.TrimSpace(r.ClassSectionName)
}

func (r *UpdateClassSectionRequest) Apply(m *model.ClassSectionModel) {
	m.ClassSectionName = r.ClassSectionName
	m.ClassSectionCapacity = r.ClassSectionCapacity
	m.ClassSectionTeacherID = r.ClassSectionTeacherID
	m.ClassSectionPosition = r.ClassSectionPosition
	if r.ClassSectionIsActive != nil {
		m.ClassSectionIsActive = *r.ClassSectionIsActive
	}
}

type ClassSectionResponse struct {
	ClassSectionID        uuid.UUID  `json:"class_section_id"`
	ClassSectionClassID   uuid.UUID  `json:"class_section_class_id"`
	ClassSectionSchoolID  uuid.UUID  `json:"class_section_school_id"`
	ClassSectionName      string     `json:"class_section_name"`
	ClassSectionCapacity  int        `json:"class_section_capacity"`
	ClassSectionTeacherID *uuid.UUID `json:"class_section_teacher_id,omitempty"`
	ClassSectionPosition  int        `json:"class_section_position"`
	ClassSectionIsActive  bool       `json:"class_section_is_active"`
	ClassSectionCreatedAt time.Time  `json:"class_section_created_at"`
	ClassSectionUpdatedAt time.Time  `json:"class_section_updated_at"`
}

func NewClassSectionResponse(m *model.ClassSectionModel) ClassSectionResponse {
	return ClassSectionResponse{
		ClassSectionID:        m.ClassSectionID,
		ClassSectionClassID:   m.ClassSectionClassID,
		ClassSectionSchoolID:  m.ClassSectionSchoolID,
		ClassSectionName:      m.ClassSectionName,
		ClassSectionCapacity:  m.ClassSectionCapacity,
		ClassSectionTeacherID: m.ClassSectionTeacherID,
		ClassSectionPosition:  m.ClassSectionPosition,
		ClassSectionIsActive:  m.ClassSectionIsActive,
		ClassSectionCreatedAt: m.ClassSectionCreatedAt,
		ClassSectionUpdatedAt: m.ClassSectionUpdatedAt,
	}
}
