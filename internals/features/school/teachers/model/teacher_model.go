// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolTeacherModel struct {
	SchoolTeacherID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_teacher_id" json:"school_teacher_id"`
	SchoolTeacherSchoolID uuid.UUID `gorm:"type:uuid;not null;column:school_teacher_school_id;index:idx_teachers_school" json:"school_teacher_school_id"`

	SchoolTeacherName      string  `gorm:"size:120;not null;column:school_teacher_name" json:"school_teacher_name"`
	SchoolTeacherEmail     *string `gorm:"size:160;column:school_teacher_email" json:"school_teacher_email,omitempty"`
	SchoolTeacherPhone     *string `gorm:"size:30;column:school_teacher_phone" json:"school_teacher_phone,omitempty"`
	SchoolTeacherSpecialty *string `gorm:"size:120;column:school_teacher_specialty" json:"school_teacher_specialty,omitempty"`

	SchoolTeacherIsActive bool `gorm:"not null;default:true;column:school_teacher_is_active" json:"school_teacher_is_active"`

	SchoolTeacherCreatedAt time.Time      `gorm:"column:school_teacher_created_at;autoCreateTime;index:idx_teachers_created_at,sort:desc" json:"school_teacher_created_at"`
	SchoolTeacherUpdatedAt time.Time      `gorm:"column:school_teacher_updated_at;autoUpdateTime" json:"school_teacher_updated_at"`
	SchoolTeacherDeletedAt gorm.DeletedAt `gorm:"column:school_teacher_deleted_at;index" json:"school_teacher_deleted_at,omitempty"`
}

func (SchoolTeacherModel) TableName() string { return "school_teachers" }
