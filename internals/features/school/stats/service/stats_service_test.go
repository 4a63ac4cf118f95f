// file: internals/features/school/stats/service/stats_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	sectionModel "sekolahku_backend/internals/features/school/class_sections/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
)

func intPtr(n int) *int { return &n }

func TestBuildSummary_EmptySnapshots(t *testing.T) {
	sum := BuildSummary(nil, nil, nil)

	assert.Equal(t, 0, sum.Classes.Total)
	assert.Equal(t, 0.0, sum.Classes.ActivePercent, "penyebut nol harus 0, bukan NaN")
	assert.Equal(t, 0.0, sum.Sections.ActivePercent)
	assert.Equal(t, 0.0, sum.Teachers.ActivePercent)
	assert.Equal(t, 0.0, sum.AvgSectionCapacity)
	assert.Empty(t, sum.PerLevel)
}

func TestBuildSummary_PartialSnapshots(t *testing.T) {
	// Salah satu sumber kosong: sisanya tetap dihitung.
	teachers := []teacherModel.SchoolTeacherModel{
		{SchoolTeacherID: uuid.New(), SchoolTeacherIsActive: true},
		{SchoolTeacherID: uuid.New(), SchoolTeacherIsActive: false},
	}
	sum := BuildSummary(nil, nil, teachers)

	assert.Equal(t, 2, sum.Teachers.Total)
	assert.Equal(t, 1, sum.Teachers.Active)
	assert.Equal(t, 50.0, sum.Teachers.ActivePercent)
	assert.Equal(t, 0, sum.Classes.Total)
}

func TestBuildSummary_CountsAndCapacity(t *testing.T) {
	c1 := classModel.ClassModel{ClassID: uuid.New(), ClassLevel: intPtr(1), ClassIsActive: true}
	c2 := classModel.ClassModel{ClassID: uuid.New(), ClassLevel: intPtr(1), ClassIsActive: false}
	c3 := classModel.ClassModel{ClassID: uuid.New(), ClassIsActive: true} // tanpa level → bucket 0

	sections := []sectionModel.ClassSectionModel{
		{ClassSectionID: uuid.New(), ClassSectionClassID: c1.ClassID, ClassSectionCapacity: 30, ClassSectionIsActive: true},
		{ClassSectionID: uuid.New(), ClassSectionClassID: c1.ClassID, ClassSectionCapacity: 20, ClassSectionIsActive: true},
		{ClassSectionID: uuid.New(), ClassSectionClassID: c3.ClassID, ClassSectionCapacity: 10, ClassSectionIsActive: false},
	}

	sum := BuildSummary([]classModel.ClassModel{c1, c2, c3}, sections, nil)

	assert.Equal(t, 3, sum.Classes.Total)
	assert.Equal(t, 2, sum.Classes.Active)
	assert.InDelta(t, 66.666, sum.Classes.ActivePercent, 0.01)

	assert.Equal(t, 3, sum.Sections.Total)
	assert.Equal(t, 2, sum.Sections.Active)
	assert.Equal(t, 60, sum.TotalSeatCapacity)
	assert.InDelta(t, 20.0, sum.AvgSectionCapacity, 0.001)

	// per level: bucket 0 (c3) lalu bucket 1 (c1+c2)
	assert.Len(t, sum.PerLevel, 2)
	assert.Equal(t, 0, sum.PerLevel[0].Level)
	assert.Equal(t, 1, sum.PerLevel[0].ClassCount)
	assert.Equal(t, 1, sum.PerLevel[0].SectionCount)
	assert.Equal(t, 10, sum.PerLevel[0].SeatCapacity)

	assert.Equal(t, 1, sum.PerLevel[1].Level)
	assert.Equal(t, 2, sum.PerLevel[1].ClassCount)
	assert.Equal(t, 2, sum.PerLevel[1].SectionCount)
	assert.Equal(t, 50, sum.PerLevel[1].SeatCapacity)
}

func TestBuildSummary_OrphanSectionSkipped(t *testing.T) {
	orphan := sectionModel.ClassSectionModel{
		ClassSectionID:      uuid.New(),
		ClassSectionClassID: uuid.New(), // tidak ada di snapshot kelas
	}
	sum := BuildSummary(nil, []sectionModel.ClassSectionModel{orphan}, nil)

	assert.Equal(t, 1, sum.Sections.Total)
	assert.Empty(t, sum.PerLevel)
}

func TestPercent_ZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, Percent(5, 0))
	assert.Equal(t, 25.0, Percent(1, 4))
}
