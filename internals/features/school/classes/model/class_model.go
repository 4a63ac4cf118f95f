// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel merepresentasikan tabel `classes` (parent dari class_sections).
type ClassModel struct {
	// PK & tenant
	ClassID       uuid.UUID `json:"class_id"        gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassSchoolID uuid.UUID `json:"class_school_id" gorm:"column:class_school_id;type:uuid;not null;index:idx_classes_school"`
	ClassTermID   uuid.UUID `json:"class_term_id"   gorm:"column:class_term_id;type:uuid;not null;index:idx_classes_term"`

	// Identitas
	ClassName string `json:"class_name" gorm:"column:class_name;type:varchar(120);not null"`
	ClassSlug string `json:"class_slug" gorm:"column:class_slug;type:varchar(160);not null;index:idx_classes_slug"`

	// Info tambahan
	ClassLevel       *int    `json:"class_level,omitempty"       gorm:"column:class_level"`
	ClassDescription *string `json:"class_description,omitempty" gorm:"column:class_description;type:text"`

	// Urutan tampil & status
	ClassDisplayOrder int  `json:"class_display_order" gorm:"column:class_display_order;not null;default:0"`
	ClassIsActive     bool `json:"class_is_active"     gorm:"column:class_is_active;not null;default:true"`

	// Timestamps (soft delete)
	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;type:timestamptz;not null;default:now();index:idx_classes_created_at,sort:desc"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
	ClassDeletedAt gorm.DeletedAt `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at;type:timestamptz;index"`
}

func (ClassModel) TableName() string { return "classes" }
