// file: internals/features/school/exams/model/exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ExamStatusScheduled = "scheduled"
	ExamStatusOngoing   = "ongoing"
	ExamStatusCompleted = "completed"
)

type ExamModel struct {
	ExamID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_id" json:"exam_id"`
	ExamSchoolID uuid.UUID `gorm:"type:uuid;not null;column:exam_school_id;index:idx_exams_school" json:"exam_school_id"`
	ExamTermID   uuid.UUID `gorm:"type:uuid;not null;column:exam_term_id;index:idx_exams_term" json:"exam_term_id"`

	ExamName      string    `gorm:"size:160;not null;column:exam_name" json:"exam_name"`
	ExamStartDate time.Time `gorm:"type:date;not null;column:exam_start_date" json:"exam_start_date"`
	ExamEndDate   time.Time `gorm:"type:date;not null;column:exam_end_date" json:"exam_end_date"`

	// scheduled | ongoing | completed
	ExamStatus string `gorm:"size:20;not null;default:'scheduled';column:exam_status;index:idx_exams_status" json:"exam_status"`

	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;autoCreateTime;index:idx_exams_created_at,sort:desc" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"column:exam_updated_at;autoUpdateTime" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"exam_deleted_at,omitempty"`
}

func (ExamModel) TableName() string { return "examinations" }
