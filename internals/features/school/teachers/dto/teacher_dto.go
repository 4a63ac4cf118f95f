// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/teachers/model"
)

type SaveTeacherRequest struct {
	SchoolTeacherSchoolID uuid.UUID `json:"-"`

	SchoolTeacherName      string  `json:"school_teacher_name"                validate:"required,min=1,max=120"`
	SchoolTeacherEmail     *string `json:"school_teacher_email,omitempty"     validate:"omitempty,email,max=160"`
	SchoolTeacherPhone     *string `json:"school_teacher_phone,omitempty"     validate:"omitempty,max=30"`
	SchoolTeacherSpecialty *string `json:"school_teacher_specialty,omitempty" validate:"omitempty,max=120"`
	SchoolTeacherIsActive  *bool   `json:"school_teacher_is_active,omitempty"`
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

func (r *SaveTeacherRequest) Normalize() {
	r.SchoolTeacherName = strings.TrimSpace(r.SchoolTeacherName)
	r.SchoolTeacherEmail = trimPtr(r.SchoolTeacherEmail)
	r.SchoolTeacherPhone = trimPtr(r.SchoolTeacherPhone)
	r.SchoolTeacherSpecialty = trimPtr(r.SchoolTeacherSpecialty)
}

func (r *SaveTeacherRequest) ToModel() *model.SchoolTeacherModel {
	active := true
	if r.SchoolTeacherIsActive != nil {
		active = *r.SchoolTeacherIsActive
	}
	return &model.SchoolTeacherModel{
		SchoolTeacherSchoolID:  r.SchoolTeacherSchoolID,
		SchoolTeacherName:      r.SchoolTeacherName,
		SchoolTeacherEmail:     r.SchoolTeacherEmail,
		SchoolTeacherPhone:     r.SchoolTeacherPhone,
		SchoolTeacherSpecialty: r.SchoolTeacherSpecialty,
		SchoolTeacherIsActive:  active,
	}
}

func (r *SaveTeacherRequest) Apply(m *model.SchoolTeacherModel) {
	m.SchoolTeacherName = r.SchoolTeacherName
	m.SchoolTeacherEmail = r.SchoolTeacherEmail
	m.SchoolTeacherPhone = r.SchoolTeacherPhone
	m.SchoolTeacherSpecialty = r.SchoolTeacherSpecialty
	if r.SchoolTeacherIsActive != nil {
		m.SchoolTeacherIsActive = *r.SchoolTeacherIsActive
	}
}

type TeacherResponse struct {
	SchoolTeacherID        uuid.UUID `json:"school_teacher_id"`
	SchoolTeacherSchoolID  uuid.UUID `json:"school_teacher_school_id"`
	SchoolTeacherName      string    `json:"school_teacher_name"`
	SchoolTeacherEmail     *string   `json:"school_teacher_email,omitempty"`
	SchoolTeacherPhone     *string   `json:"school_teacher_phone,omitempty"`
	SchoolTeacherSpecialty *string   `json:"school_teacher_specialty,omitempty"`
	SchoolTeacherIsActive  bool      `json:"school_teacher_is_active"`
	SchoolTeacherCreatedAt time.Time `json:"school_teacher_created_at"`
	SchoolTeacherUpdatedAt time.Time `json:"school_teacher_updated_at"`
}

func NewTeacherResponse(m *model.SchoolTeacherModel) TeacherResponse {
	return TeacherResponse{
		SchoolTeacherID:        m.SchoolTeacherID,
		SchoolTeacherSchoolID:  m.SchoolTeacherSchoolID,
		SchoolTeacherName:      m.SchoolTeacherName,
		SchoolTeacherEmail:     m.SchoolTeacherEmail,
		SchoolTeacherPhone:     m.SchoolTeacherPhone,
		SchoolTeacherSpecialty: m.SchoolTeacherSpecialty,
		SchoolTeacherIsActive:  m.SchoolTeacherIsActive,
		SchoolTeacherCreatedAt: m.SchoolTeacherCreatedAt,
		SchoolTeacherUpdatedAt: m.SchoolTeacherUpdatedAt,
	}
}
