package wizard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ===============================
   Fake store (merekam call)
=================================*/

type call struct {
	op      string
	id      uuid.UUID
	classID uuid.UUID
	fields  ChildFields
	parent  ParentFields
}

type fakeStore struct {
	calls   []call
	classID uuid.UUID
	nextSec int

	failOn string // op yang harus gagal sekali
}

func newFakeStore() *fakeStore {
	return &fakeStore{classID: uuid.New()}
}

func (f *fakeStore) maybeFail(op string) error {
	if f.failOn == op {
		f.failOn = ""
		return errors.New("remote boom")
	}
	return nil
}

func (f *fakeStore) CreateClass(_ context.Context, scope Scope, p ParentFields) (uuid.UUID, error) {
	if err := f.maybeFail("create_class"); err != nil {
		return uuid.Nil, err
	}
	f.calls = append(f.calls, call{op: "create_class", parent: p, id: scope.SchoolID})
	return f.classID, nil
}

func (f *fakeStore) UpdateClass(_ context.Context, id uuid.UUID, p ParentFields) error {
	if err := f.maybeFail("update_class"); err != nil {
		return err
	}
	f.calls = append(f.calls, call{op: "update_class", id: id, parent: p})
	return nil
}

func (f *fakeStore) CreateSection(_ context.Context, _ Scope, classID uuid.UUID, c ChildFields) (uuid.UUID, error) {
	if err := f.maybeFail("create_section"); err != nil {
		return uuid.Nil, err
	}
	f.nextSec++
	id := uuid.New()
	f.calls = append(f.calls, call{op: "create_section", id: id, classID: classID, fields: c})
	return id, nil
}

func (f *fakeStore) UpdateSection(_ context.Context, id uuid.UUID, c ChildFields) error {
	if err := f.maybeFail("update_section"); err != nil {
		return err
	}
	f.calls = append(f.calls, call{op: "update_section", id: id, fields: c})
	return nil
}

func (f *fakeStore) DeleteSection(_ context.Context, id uuid.UUID) error {
	if err := f.maybeFail("delete_section"); err != nil {
		return err
	}
	f.calls = append(f.calls, call{op: "delete_section", id: id})
	return nil
}

func (f *fakeStore) ops() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.op
	}
	return out
}

func scopeFor(t *testing.T) Scope {
	t.Helper()
	return Scope{SchoolID: uuid.New(), TermID: uuid.New()}
}

/* ===============================
   Create mode end-to-end (skenario A)
=================================*/

func TestCreateMode_DefaultRowAndFullSubmit(t *testing.T) {
	store := newFakeStore()
	s := NewCreateSession(store, scopeFor(t))
	require.Equal(t, StepParentInfo, s.Step())

	err := s.SubmitParent(ParentFields{Name: "Grade 5", IsActive: true, DisplayOrder: 0})
	require.NoError(t, err)
	require.Equal(t, StepChildCollection, s.Step())

	// seed: tepat satu baris default {A, 30}, tanpa walikelas
	rows := s.VisibleRows()
	require.Len(t, rows, 1)
	assert.Equal(t, RowNew, rows[0].Kind)
	assert.Equal(t, "A", rows[0].Fields.Name)
	assert.Equal(t, DefaultChildCapacity, rows[0].Fields.Capacity)
	assert.Nil(t, rows[0].Fields.TeacherID)
	assert.Equal(t, 0, rows[0].Fields.Position)

	require.NoError(t, s.Submit(context.Background()))
	assert.Equal(t, Closed, s.Step())
	assert.Equal(t, store.classID, s.ClassID())

	require.Equal(t, []string{"create_class", "create_section"}, store.ops())
	assert.Equal(t, "Grade 5", store.calls[0].parent.Name)
	assert.Equal(t, store.classID, store.calls[1].classID)
	assert.Equal(t, "A", store.calls[1].fields.Name)
	assert.Equal(t, 30, store.calls[1].fields.Capacity)
}

func TestParentValidationBlocksStepTwo(t *testing.T) {
	s := NewCreateSession(newFakeStore(), scopeFor(t))
	err := s.SubmitParent(ParentFields{Name: ""})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "required", ve.Errors["class_name"])
	assert.Equal(t, StepParentInfo, s.Step())
}

/* ===============================
   Row ops
=================================*/

func TestAddRow_SequentialNamesAndPositions(t *testing.T) {
	s := NewCreateSession(newFakeStore(), scopeFor(t))
	require.NoError(t, s.SubmitParent(ParentFields{Name: "Grade 1"}))
	require.NoError(t, s.AddRow())
	require.NoError(t, s.AddRow())

	rows := s.VisibleRows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{rows[0].Fields.Name, rows[1].Fields.Name, rows[2].Fields.Name})
	assert.Equal(t, []int{0, 1, 2}, []int{rows[0].Fields.Position, rows[1].Fields.Position, rows[2].Fields.Position})
}

func TestRemoveNewRow_ShrinksArrayAndIssuesNoDelete(t *testing.T) {
	store := newFakeStore()
	s := NewCreateSession(store, scopeFor(t))
	require.NoError(t, s.SubmitParent(ParentFields{Name: "Grade 1"}))
	require.NoError(t, s.AddRow())
	require.Len(t, s.Rows(), 2)

	require.NoError(t, s.RemoveRow(1))
	assert.Len(t, s.Rows(), 1) // dibuang dari array, bukan ditandai

	require.NoError(t, s.Submit(context.Background()))
	for _, op := range store.ops() {
		assert.NotEqual(t, "delete_section", op)
	}
}

func TestRemoveExistingRow_MarksHiddenAndDeletesOnSubmit(t *testing.T) {
	store := newFakeStore()
	classID := uuid.New()
	secID := uuid.New()
	keepID := uuid.New()
	s := NewEditSession(store, scopeFor(t), classID,
		ParentFields{Name: "Grade 2"},
		[]Row{
			{ID: keepID, Fields: ChildFields{Name: "A", Capacity: 25, Position: 0}},
			{ID: secID, Fields: ChildFields{Name: "B", Capacity: 25, Position: 1}},
		})
	require.NoError(t, s.SubmitParent(s.Parent()))

	require.NoError(t, s.RemoveRow(1))
	assert.Len(t, s.Rows(), 2) // panjang array tetap
	assert.Len(t, s.VisibleRows(), 1)

	require.NoError(t, s.Submit(context.Background()))

	deletes := 0
	for _, c := range store.calls {
		if c.op == "delete_section" {
			deletes++
			assert.Equal(t, secID, c.id)
		}
	}
	assert.Equal(t, 1, deletes)
}

/* ===============================
   Submit guards
=================================*/

func TestSubmitBlockedOnInvalidCapacity_NoNetworkCall(t *testing.T) {
	store := newFakeStore()
	s := NewCreateSession(store, scopeFor(t))
	require.NoError(t, s.SubmitParent(ParentFields{Name: "Grade 3"}))
	require.NoError(t, s.EditRow(0, ChildFields{Name: "A", Capacity: 0}))

	err := s.Submit(context.Background())
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "rows[0].section_capacity")
	assert.Empty(t, store.calls)
	assert.Equal(t, StepChildCollection, s.Step())
}

func TestSubmitBlockedWhenAllRowsRemoved(t *testing.T) {
	store := newFakeStore()
	s := NewCreateSession(store, scopeFor(t))
	require.NoError(t, s.SubmitParent(ParentFields{Name: "Grade 3"}))
	require.NoError(t, s.RemoveRow(0))

	err := s.Submit(context.Background())
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "rows")
	assert.Empty(t, store.calls)
}

func TestSubmitBlockedOnMissingTenantContext(t *testing.T) {
	store := newFakeStore()
	s := NewCreateSession(store, Scope{}) // scope kosong
	require.NoError(t, s.SubmitParent(ParentFields{Name: "Grade 3"}))

	err := s.Submit(context.Background())
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "required", ve.Errors["school_id"])
	assert.Equal(t, "required", ve.Errors["academic_term_id"])
	assert.Empty(t, store.calls)
}

/* ===============================
   Edit mode end-to-end (skenario B)
=================================*/

func TestEditMode_ReconciliationOrder(t *testing.T) {
	store := newFakeStore()
	classID := uuid.New()
	c1, c2 := uuid.New(), uuid.New()
	s := NewEditSession(store, scopeFor(t), classID,
		ParentFields{Name: "Grade 6"},
		[]Row{
			{ID: c1, Fields: ChildFields{Name: "A", Capacity: 30, Position: 0}},
			{ID: c2, Fields: ChildFields{Name: "B", Capacity: 30, Position: 1}},
		})
	require.NoError(t, s.SubmitParent(s.Parent()))

	// edit C1, hapus C2, tambah baris baru
	require.NoError(t, s.EditRow(0, ChildFields{Name: "A", Capacity: 40, Position: 0}))
	require.NoError(t, s.RemoveRow(1))
	require.NoError(t, s.AddRow())
	require.NoError(t, s.EditRow(1, ChildFields{Name: "C", Capacity: 25, Position: 1}))

	require.NoError(t, s.Submit(context.Background()))
	assert.Equal(t, Closed, s.Step())

	ops := store.ops()
	require.Len(t, ops, 4)
	// parent selalu lebih dulu
	assert.Equal(t, "update_class", ops[0])
	assert.Equal(t, classID, store.calls[0].id)
	assert.ElementsMatch(t, []string{"update_section", "create_section", "delete_section"}, ops[1:])

	for _, c := range store.calls[1:] {
		switch c.op {
		case "update_section":
			assert.Equal(t, c1, c.id)
			assert.Equal(t, 40, c.fields.Capacity)
		case "create_section":
			assert.Equal(t, classID, c.classID)
			assert.Equal(t, "C", c.fields.Name)
			assert.Equal(t, 25, c.fields.Capacity)
		case "delete_section":
			assert.Equal(t, c2, c.id)
		}
	}
}

func TestEditMode_UntouchedRowsIssueNoCalls(t *testing.T) {
	store := newFakeStore()
	s := NewEditSession(store, scopeFor(t), uuid.New(),
		ParentFields{Name: "Grade 6"},
		[]Row{{ID: uuid.New(), Fields: ChildFields{Name: "A", Capacity: 30}}})
	require.NoError(t, s.SubmitParent(s.Parent()))
	require.NoError(t, s.Submit(context.Background()))

	// hanya update parent; row existing yang tak tersentuh dilewati
	assert.Equal(t, []string{"update_class"}, store.ops())
}

/* ===============================
   Partial failure + retry
=================================*/

func TestPartialFailure_KeepsAppliedWorkAndAllowsRetry(t *testing.T) {
	store := newFakeStore()
	s := NewCreateSession(store, scopeFor(t))
	require.NoError(t, s.SubmitParent(ParentFields{Name: "Grade 4"}))
	require.NoError(t, s.AddRow()) // dua baris baru

	store.failOn = "create_section" // gagal di section pertama

	err := s.Submit(context.Background())
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "create_section", se.Op)

	// parent sudah terlanjur dibuat dan TIDAK di-rollback
	require.Equal(t, []string{"create_class"}, store.ops())
	assert.Equal(t, StepChildCollection, s.Step())
	assert.Equal(t, store.classID, s.ClassID())

	// retry: parent tidak dibuat ulang, kedua section dibuat
	require.NoError(t, s.Submit(context.Background()))
	assert.Equal(t, Closed, s.Step())
	assert.Equal(t, []string{"create_class", "create_section", "create_section"}, store.ops())
}

func TestPartialFailure_DeleteFailureRetainsMarkForRetry(t *testing.T) {
	store := newFakeStore()
	c1 := uuid.New()
	s := NewEditSession(store, scopeFor(t), uuid.New(),
		ParentFields{Name: "Grade 4"},
		[]Row{
			{ID: uuid.New(), Fields: ChildFields{Name: "A", Capacity: 30}},
			{ID: c1, Fields: ChildFields{Name: "B", Capacity: 30}},
		})
	require.NoError(t, s.SubmitParent(s.Parent()))
	require.NoError(t, s.RemoveRow(1))

	store.failOn = "delete_section"
	err := s.Submit(context.Background())
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "delete_section", se.Op)
	assert.Equal(t, StepChildCollection, s.Step())

	require.NoError(t, s.Submit(context.Background()))
	assert.Equal(t, Closed, s.Step())

	deletes := 0
	for _, c := range store.calls {
		if c.op == "delete_section" {
			deletes++
			assert.Equal(t, c1, c.id)
		}
	}
	assert.Equal(t, 1, deletes)
}

/* ===============================
   Back & cancel
=================================*/

func TestBackIsNonDestructive(t *testing.T) {
	s := NewCreateSession(newFakeStore(), scopeFor(t))
	require.NoError(t, s.SubmitParent(ParentFields{Name: "Grade 7"}))
	require.NoError(t, s.AddRow())
	require.Len(t, s.VisibleRows(), 2)

	require.NoError(t, s.Back())
	assert.Equal(t, StepParentInfo, s.Step())
	assert.Equal(t, "Grade 7", s.Parent().Name)

	require.NoError(t, s.SubmitParent(ParentFields{Name: "Grade 7B"}))
	assert.Len(t, s.VisibleRows(), 2) // rows tidak di-reset / tidak di-seed ulang
}

func TestCancelDiscardsEverything(t *testing.T) {
	store := newFakeStore()
	s := NewCreateSession(store, scopeFor(t))
	require.NoError(t, s.SubmitParent(ParentFields{Name: "Grade 8"}))
	require.NoError(t, s.AddRow())

	require.NoError(t, s.Cancel())
	assert.Equal(t, Cancelled, s.Step())
	assert.Empty(t, s.Rows())
	assert.Empty(t, store.calls)

	assert.ErrorIs(t, s.Submit(context.Background()), ErrWrongStep)
}

func TestStepGuards(t *testing.T) {
	s := NewCreateSession(newFakeStore(), scopeFor(t))
	assert.ErrorIs(t, s.AddRow(), ErrWrongStep)
	assert.ErrorIs(t, s.Back(), ErrWrongStep)
	assert.ErrorIs(t, s.Submit(context.Background()), ErrWrongStep)
	assert.ErrorIs(t, s.RemoveRow(0), ErrWrongStep)
}

func TestDefaultNameSequence(t *testing.T) {
	for i, want := range []string{"A", "B", "C"} {
		assert.Equal(t, want, defaultName(i))
	}
	assert.Equal(t, "Z", defaultName(25))
	assert.Equal(t, "AA", defaultName(26))
	assert.Equal(t, "AB", defaultName(27), fmt.Sprintf("seq %d", 27))
}
