package listkit

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListState_SearchChangeResetsPageAndSelection(t *testing.T) {
	s := NewListState(10, uuid.New())

	// maju ke halaman 2 dan pilih beberapa baris
	s.Pager().Record("cur-1")
	_, ok := s.Pager().Next()
	require.True(t, ok)
	id := uuid.New()
	s.Select(id)
	s.Select(uuid.New())
	require.Equal(t, 2, s.Page())
	require.Equal(t, 2, s.SelectionCount())

	s.SetSearch("grade")

	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 0, s.SelectionCount())
	assert.False(t, s.Selected(id))
}

func TestListState_SameSearchIsNoop(t *testing.T) {
	s := NewListState(10, uuid.New())
	s.SetSearch("abc")
	s.Select(uuid.New())
	s.Pager().Record("cur-1")
	_, _ = s.Pager().Next()

	s.SetSearch("abc")
	assert.Equal(t, 2, s.Page())
	assert.Equal(t, 1, s.SelectionCount())
}

func TestListState_ScopeAndPerPageChangeReset(t *testing.T) {
	s := NewListState(10, uuid.New())
	s.Select(uuid.New())
	s.SetScope(uuid.New())
	assert.Equal(t, 0, s.SelectionCount())

	s.Select(uuid.New())
	s.SetPerPage(50)
	assert.Equal(t, 0, s.SelectionCount())
	assert.Equal(t, 50, s.Pager().PerPage())
	assert.Equal(t, 1, s.Page())
}

func TestListState_ResolveSelection(t *testing.T) {
	s := NewListState(10, uuid.New())
	a, b := uuid.New(), uuid.New()
	s.Select(a)
	s.Select(b)

	got, err := s.ResolveSelection(func() ([]uuid.UUID, error) {
		t.Fatal("fetchAll tidak boleh dipanggil pada mode explicit")
		return nil, nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{a, b}, got)

	all := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	s.SelectAll()
	got, err = s.ResolveSelection(func() ([]uuid.UUID, error) { return all, nil })
	require.NoError(t, err)
	assert.Equal(t, all, got)
}

func TestMove_ShiftAndNoop(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	// drop baris 0 ke posisi baris 2
	got := Move(ids, 0, 2)
	assert.Equal(t, []uuid.UUID{ids[1], ids[2], ids[0], ids[3]}, got)

	// drop baris 3 ke posisi baris 1
	got = Move(ids, 3, 1)
	assert.Equal(t, []uuid.UUID{ids[0], ids[3], ids[1], ids[2]}, got)

	// drop ke diri sendiri = no-op
	got = Move(ids, 2, 2)
	assert.Equal(t, ids, got)

	pairs := Pairs(got)
	for i, p := range pairs {
		assert.Equal(t, i, p.DisplayOrder)
		assert.Equal(t, got[i], p.ID)
	}
}
