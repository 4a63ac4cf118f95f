// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/classes/model"
	sectionModel "sekolahku_backend/internals/features/school/class_sections/model"
)

/*
=========================================================
REQUEST: CREATE / UPDATE CLASS
=========================================================
*/

type CreateClassRequest struct {
	// Tenant scope dipaksa dari context oleh controller, bukan dari klien.
	ClassSchoolID uuid.UUID `json:"-"`
	ClassTermID   uuid.UUID `json:"-"`

	ClassName         string  `json:"class_name"                  form:"class_name"                  validate:"required,min=1,max=120"`
	ClassLevel        *int    `json:"class_level,omitempty"       form:"class_level"                 validate:"omitempty,gte=1,lte=12"`
	ClassDescription  *string `json:"class_description,omitempty" form:"class_description"`
	ClassDisplayOrder int     `json:"class_display_order"         form:"class_display_order"         validate:"gte=0"`
	ClassIsActive     *bool   `json:"class_is_active,omitempty"   form:"class_is_active"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
	if r.ClassDescription != nil {
		s := strings.TrimSpace(*r.ClassDescription)
		if s == "" {
			r.ClassDescription = nil
		} else {
			r.ClassDescription = &s
		}
	}
}

func (r *CreateClassRequest) Validate() error {
	if r.ClassSchoolID == uuid.Nil {
		return errors.New("class_school_id required")
	}
	if r.ClassTermID == uuid.Nil {
		return errors.New("class_term_id required")
	}
	if r.ClassName == "" {
		return errors.New("class_name required")
	}
	if r.ClassLevel != nil && (*r.ClassLevel < 1 || *r.ClassLevel > 12) {
		return errors.New("class_level must be 1..12")
	}
	if r.ClassDisplayOrder < 0 {
		return errors.New("class_display_order must be >= 0")
	}
	return nil
}

func (r *CreateClassRequest) ToModel() *model.ClassModel {
	active := true
	if r.ClassIsActive != nil {
		active = *r.ClassIsActive
	}
	return &model.ClassModel{
		ClassSchoolID:     r.ClassSchoolID,
		ClassTermID:       r.ClassTermID,
		ClassName:         r.ClassName,
		ClassLevel:        r.ClassLevel,
		ClassDescription:  r.ClassDescription,
		ClassDisplayOrder: r.ClassDisplayOrder,
		ClassIsActive:     active,
	}
}

// UpdateClassRequest: full field set (PUT semantics, bukan tri-state patch).
type UpdateClassRequest struct {
	ClassName         string  `json:"class_name"                  validate:"required,min=1,max=120"`
	ClassLevel        *int    `json:"class_level,omitempty"       validate:"omitempty,gte=1,lte=12"`
	ClassDescription  *string `json:"class_description,omitempty"`
	ClassDisplayOrder int     `json:"class_display_order"         validate:"gte=0"`
	ClassIsActive     *bool   `json:"class_is_active,omitempty"`
}

func (r *UpdateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
	if r.ClassDescription != nil {
		s := strings.TrimSpace(*r.ClassDescription)
		if s == "" {
			r.ClassDescription = nil
		} else {
			r.ClassDescription = &s
		}
	}
}

func (r *UpdateClassRequest) Apply(m *model.ClassModel) {
	m.ClassName = r.ClassName
	m.ClassLevel = r.ClassLevel
	m.ClassDescription = r.ClassDescription
	m.ClassDisplayOrder = r.ClassDisplayOrder
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
}

/*
=========================================================
REQUEST: FULL SAVE (class + section set, jalur wizard)
=========================================================
*/

// SectionRowRequest: satu baris section dari step 2 wizard. Id absent = baris
// baru; is_deleted = true menandai baris existing utk dihapus (baris baru yang
// dihapus tidak perlu dikirim sama sekali).
type SectionRowRequest struct {
	ClassSectionID *uuid.UUID `json:"class_section_id,omitempty"`
	Name           string     `json:"class_section_name"               validate:"required,min=1,max=100"`
	Capacity       int        `json:"class_section_capacity"           validate:"required,gt=0"`
	TeacherID      *uuid.UUID `json:"class_section_teacher_id,omitempty"`
	Position       int        `json:"class_section_position"           validate:"gte=0"`
	IsDeleted      bool       `json:"class_section_is_deleted,omitempty"`
}

type SaveClassFullRequest struct {
	Class    CreateClassRequest  `json:"class"`
	Sections []SectionRowRequest `json:"class_sections"`
}

func (r *SaveClassFullRequest) Normalize() {
	r.Class.Normalize()
	for i := range r.Sections {
		r.Sections[i].Name = strings.TrimSpace(r.Sections[i].Name)
	}
}

/*
=========================================================
RESPONSE
=========================================================
*/

type ClassResponse struct {
	ClassID           uuid.UUID `json:"class_id"`
	ClassSchoolID     uuid.UUID `json:"class_school_id"`
	ClassTermID       uuid.UUID `json:"class_term_id"`
	ClassName         string    `json:"class_name"`
	ClassSlug         string    `json:"class_slug"`
	ClassLevel        *int      `json:"class_level,omitempty"`
	ClassDescription  *string   `json:"class_description,omitempty"`
	ClassDisplayOrder int       `json:"class_display_order"`
	ClassIsActive     bool      `json:"class_is_active"`
	ClassCreatedAt    time.Time `json:"class_created_at"`
	ClassUpdatedAt    time.Time `json:"class_updated_at"`
}

func NewClassResponse(m *model.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:           m.ClassID,
		ClassSchoolID:     m.ClassSchoolID,
		ClassTermID:       m.ClassTermID,
		ClassName:         m.ClassName,
		ClassSlug:         m.ClassSlug,
		ClassLevel:        m.ClassLevel,
		ClassDescription:  m.ClassDescription,
		ClassDisplayOrder: m.ClassDisplayOrder,
		ClassIsActive:     m.ClassIsActive,
		ClassCreatedAt:    m.ClassCreatedAt,
		ClassUpdatedAt:    m.ClassUpdatedAt,
	}
}

type ClassWithSectionsResponse struct {
	Class    ClassResponse            `json:"class"`
	Sections []SectionCompactResponse `json:"class_sections"`
}

type SectionCompactResponse struct {
	ClassSectionID       uuid.UUID  `json:"class_section_id"`
	ClassSectionName     string     `json:"class_section_name"`
	ClassSectionCapacity int        `json:"class_section_capacity"`
	TeacherID            *uuid.UUID `json:"class_section_teacher_id,omitempty"`
	Position             int        `json:"class_section_position"`
	IsActive             bool       `json:"class_section_is_active"`
}

func NewSectionCompactResponse(m *sectionModel.ClassSectionModel) SectionCompactResponse {
	return SectionCompactResponse{
		ClassSectionID:       m.ClassSectionID,
		ClassSectionName:     m.ClassSectionName,
		ClassSectionCapacity: m.ClassSectionCapacity,
		TeacherID:            m.ClassSectionTeacherID,
		Position:             m.ClassSectionPosition,
		IsActive:             m.ClassSectionIsActive,
	}
}
