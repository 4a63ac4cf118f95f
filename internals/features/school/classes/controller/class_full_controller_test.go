// file: internals/features/school/classes/controller/class_full_controller_test.go
package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sectionModel "sekolahku_backend/internals/features/school/class_sections/model"
	"sekolahku_backend/internals/features/school/classes/dto"
	"sekolahku_backend/internals/features/school/classes/wizard"
)

func secModel(id uuid.UUID, name string, capacity, position int) sectionModel.ClassSectionModel {
	return sectionModel.ClassSectionModel{
		ClassSectionID:       id,
		ClassSectionName:     name,
		ClassSectionCapacity: capacity,
		ClassSectionPosition: position,
	}
}

func TestDiffSections_NewRow(t *testing.T) {
	rows, err := diffSections(nil, []dto.SectionRowRequest{
		{Name: "A", Capacity: 30, Position: 0},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, wizard.RowNew, rows[0].Kind)
	assert.Equal(t, uuid.Nil, rows[0].ID)
	assert.Equal(t, "A", rows[0].Fields.Name)
}

func TestDiffSections_DeletedNewRowSkipped(t *testing.T) {
	rows, err := diffSections(nil, []dto.SectionRowRequest{
		{Name: "A", Capacity: 30, IsDeleted: true},
	})
	require.NoError(t, err)
	assert.Empty(t, rows, "baris baru yang dihapus tidak pernah eksis")
}

func TestDiffSections_UnchangedStaysExisting(t *testing.T) {
	id := uuid.New()
	current := []sectionModel.ClassSectionModel{secModel(id, "A", 30, 0)}

	rows, err := diffSections(current, []dto.SectionRowRequest{
		{ClassSectionID: &id, Name: "A", Capacity: 30, Position: 0},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, wizard.RowExisting, rows[0].Kind, "tanpa perubahan = tanpa update call")
}

func TestDiffSections_ChangedBecomesModified(t *testing.T) {
	id := uuid.New()
	current := []sectionModel.ClassSectionModel{secModel(id, "A", 30, 0)}

	rows, err := diffSections(current, []dto.SectionRowRequest{
		{ClassSectionID: &id, Name: "A", Capacity: 25, Position: 0},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, wizard.RowExistingModified, rows[0].Kind)
	assert.Equal(t, 25, rows[0].Fields.Capacity)
}

func TestDiffSections_TeacherChangeDetected(t *testing.T) {
	id := uuid.New()
	teacherID := uuid.New()
	current := []sectionModel.ClassSectionModel{secModel(id, "A", 30, 0)}

	rows, err := diffSections(current, []dto.SectionRowRequest{
		{ClassSectionID: &id, Name: "A", Capacity: 30, Position: 0, TeacherID: &teacherID},
	})
	require.NoError(t, err)
	assert.Equal(t, wizard.RowExistingModified, rows[0].Kind)
}

func TestDiffSections_ExplicitDelete(t *testing.T) {
	id := uuid.New()
	current := []sectionModel.ClassSectionModel{secModel(id, "A", 30, 0)}

	rows, err := diffSections(current, []dto.SectionRowRequest{
		{ClassSectionID: &id, Name: "A", Capacity: 30, IsDeleted: true},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, wizard.RowMarkedForDeletion, rows[0].Kind)
	assert.Equal(t, id, rows[0].ID)
}

func TestDiffSections_AbsentMeansDeleted(t *testing.T) {
	keep := uuid.New()
	drop := uuid.New()
	current := []sectionModel.ClassSectionModel{
		secModel(keep, "A", 30, 0),
		secModel(drop, "B", 30, 1),
	}

	rows, err := diffSections(current, []dto.SectionRowRequest{
		{ClassSectionID: &keep, Name: "A", Capacity: 30, Position: 0},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, wizard.RowExisting, rows[0].Kind)
	assert.Equal(t, wizard.RowMarkedForDeletion, rows[1].Kind)
	assert.Equal(t, drop, rows[1].ID)
}

func TestDiffSections_ForeignIDRejected(t *testing.T) {
	foreign := uuid.New()
	_, err := diffSections(nil, []dto.SectionRowRequest{
		{ClassSectionID: &foreign, Name: "A", Capacity: 30},
	})
	assert.Error(t, err, "id yang bukan milik kelas ini ditolak")
}
