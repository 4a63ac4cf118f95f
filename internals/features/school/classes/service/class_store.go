// file: internals/features/school/classes/service/class_store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sectionModel "sekolahku_backend/internals/features/school/class_sections/model"
	model "sekolahku_backend/internals/features/school/classes/model"
	"sekolahku_backend/internals/features/school/classes/wizard"
	helper "sekolahku_backend/internals/helpers"
)

var ErrNotFound = errors.New("record tidak ditemukan")

// GormClassStore: implementasi wizard.ClassStore di atas gorm. schoolID
// dipakai sebagai filter tenant untuk update/delete (create sudah bawa scope).
// DB boleh berupa transaction; wizard tidak peduli.
type GormClassStore struct {
	DB       *gorm.DB
	SchoolID uuid.UUID
}

func NewGormClassStore(db *gorm.DB, schoolID uuid.UUID) *GormClassStore {
	return &GormClassStore{DB: db, SchoolID: schoolID}
}

func (s *GormClassStore) CreateClass(ctx context.Context, scope wizard.Scope, f wizard.ParentFields) (uuid.UUID, error) {
	base := helper.Slugify(f.Name, 160)
	slug, err := helper.EnsureUniqueSlugCI(ctx, s.DB, "classes", "class_slug", base,
		func(q *gorm.DB) *gorm.DB {
			return q.Where("class_school_id = ? AND class_deleted_at IS NULL", scope.SchoolID)
		}, 160)
	if err != nil {
		return uuid.Nil, err
	}

	m := &model.ClassModel{
		ClassSchoolID:     scope.SchoolID,
		ClassTermID:       scope.TermID,
		ClassName:         f.Name,
		ClassSlug:         slug,
		ClassLevel:        f.Level,
		ClassDescription:  f.Description,
		ClassDisplayOrder: f.DisplayOrder,
		ClassIsActive:     f.IsActive,
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return uuid.Nil, err
	}
	return m.ClassID, nil
}

func (s *GormClassStore) UpdateClass(ctx context.Context, id uuid.UUID, f wizard.ParentFields) error {
	res := s.DB.WithContext(ctx).
		Model(&model.ClassModel{}).
		Where("class_id = ? AND class_school_id = ?", id, s.SchoolID).
		Updates(map[string]any{
			"class_name":          f.Name,
			"class_level":         f.Level,
			"class_description":   f.Description,
			"class_display_order": f.DisplayOrder,
			"class_is_active":     f.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormClassStore) CreateSection(ctx context.Context, scope wizard.Scope, classID uuid.UUID, f wizard.ChildFields) (uuid.UUID, error) {
	m := &sectionModel.ClassSectionModel{
		ClassSectionClassID:   classID,
		ClassSectionSchoolID:  scope.SchoolID,
		ClassSectionTeacherID: f.TeacherID,
		ClassSectionName:      f.Name,
		ClassSectionCapacity:  f.Capacity,
		ClassSectionPosition:  f.Position,
		ClassSectionIsActive:  true,
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return uuid.Nil, err
	}
	return m.ClassSectionID, nil
}

func (s *GormClassStore) UpdateSection(ctx context.Context, id uuid.UUID, f wizard.ChildFields) error {
	res := s.DB.WithContext(ctx).
		Model(&sectionModel.ClassSectionModel{}).
		Where("class_section_id = ? AND class_section_school_id = ?", id, s.SchoolID).
		Updates(map[string]any{
			"class_section_name":       f.Name,
			"class_section_capacity":   f.Capacity,
			"class_section_teacher_id": f.TeacherID,
			"class_section_position":   f.Position,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormClassStore) DeleteSection(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("class_section_id = ? AND class_section_school_id = ?", id, s.SchoolID).
		Delete(&sectionModel.ClassSectionModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// LoadClassWithSections memuat parent + children utk seed wizard mode edit.
func LoadClassWithSections(ctx context.Context, db *gorm.DB, schoolID, classID uuid.UUID) (*model.ClassModel, []sectionModel.ClassSectionModel, error) {
	var cls model.ClassModel
	if err := db.WithContext(ctx).
		Where("class_id = ? AND class_school_id = ?", classID, schoolID).
		First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var secs []sectionModel.ClassSectionModel
	if err := db.WithContext(ctx).
		Where("class_section_class_id = ? AND class_section_school_id = ?", classID, schoolID).
		Order("class_section_position ASC, class_section_created_at ASC").
		Find(&secs).Error; err != nil {
		return nil, nil, err
	}
	return &cls, secs, nil
}
