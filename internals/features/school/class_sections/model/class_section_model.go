// file: internals/features/school/class_sections/model/class_section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassSectionModel struct {
	// PK
	ClassSectionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_section_id" json:"class_section_id"`

	// Relasi wajib: parent + tenant
	ClassSectionClassID  uuid.UUID `gorm:"type:uuid;not null;column:class_section_class_id;index:idx_sections_class" json:"class_section_class_id"`
	ClassSectionSchoolID uuid.UUID `gorm:"type:uuid;not null;column:class_section_school_id;index:idx_sections_school" json:"class_section_school_id"`

	// Relasi opsional: walikelas
	ClassSectionTeacherID *uuid.UUID `gorm:"type:uuid;column:class_section_teacher_id;index:idx_sections_teacher" json:"class_section_teacher_id,omitempty"`

	// Identitas
	ClassSectionName string `gorm:"size:100;not null;column:class_section_name" json:"class_section_name"`

	// Kapasitas (harus > 0) & urutan tampil
	ClassSectionCapacity int `gorm:"not null;column:class_section_capacity" json:"class_section_capacity"`
	ClassSectionPosition int `gorm:"not null;default:0;column:class_section_position" json:"class_section_position"`

	// Status
	ClassSectionIsActive bool `gorm:"not null;default:true;column:class_section_is_active;index:idx_sections_active" json:"class_section_is_active"`

	// Timestamps (soft delete)
	ClassSectionCreatedAt time.Time      `gorm:"column:class_section_created_at;autoCreateTime;index:idx_sections_created_at,sort:desc" json:"class_section_created_at"`
	ClassSectionUpdatedAt time.Time      `gorm:"column:class_section_updated_at;autoUpdateTime" json:"class_section_updated_at"`
	ClassSectionDeletedAt gorm.DeletedAt `gorm:"column:class_section_deleted_at;index" json:"class_section_deleted_at,omitempty"`
}

func (ClassSectionModel) TableName() string { return "class_sections" }
