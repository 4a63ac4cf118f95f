// file: internals/features/school/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`
	SubjectSchoolID uuid.UUID `gorm:"type:uuid;not null;column:subject_school_id;index:idx_subjects_school" json:"subject_school_id"`

	SubjectName string `gorm:"size:120;not null;column:subject_name" json:"subject_name"`
	SubjectCode string `gorm:"size:20;not null;column:subject_code;index:idx_subjects_code" json:"subject_code"`

	SubjectDisplayOrder int  `gorm:"not null;default:0;column:subject_display_order" json:"subject_display_order"`
	SubjectIsActive     bool `gorm:"not null;default:true;column:subject_is_active" json:"subject_is_active"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;autoCreateTime;index:idx_subjects_created_at,sort:desc" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
