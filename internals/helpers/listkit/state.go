// file: internals/helpers/listkit/state.go
package listkit

import (
	"time"

	"github.com/google/uuid"
)

// DebounceInterval: jeda stabil sebelum term pencarian dikirim sebagai query.
const DebounceInterval = 300 * time.Millisecond

// SelectionMode: pilih baris eksplisit, atau "semua yang match filter".
type SelectionMode int

const (
	SelectExplicit SelectionMode = iota
	SelectAllMatching
)

// ListState memegang state satu tampilan list: term pencarian, scope tenant,
// pagination (Pager), dan selection set. Mengubah search/scope/per_page selalu
// reset ke halaman 1 dan mengosongkan selection.
type ListState struct {
	pager   *Pager
	search  string
	scopeID uuid.UUID

	mode     SelectionMode
	selected map[uuid.UUID]struct{}
}

func NewListState(perPage int, scopeID uuid.UUID) *ListState {
	return &ListState{
		pager:    NewPager(perPage),
		scopeID:  scopeID,
		selected: make(map[uuid.UUID]struct{}),
	}
}

func (s *ListState) Pager() *Pager    { return s.pager }
func (s *ListState) Search() string   { return s.search }
func (s *ListState) Scope() uuid.UUID { return s.scopeID }
func (s *ListState) Page() int        { return s.pager.Page() }

func (s *ListState) resetView() {
	s.pager.Reset()
	s.mode = SelectExplicit
	s.selected = make(map[uuid.UUID]struct{})
}

func (s *ListState) SetSearch(term string) {
	if term == s.search {
		return
	}
	s.search = term
	s.resetView()
}

func (s *ListState) SetScope(id uuid.UUID) {
	if id == s.scopeID {
		return
	}
	s.scopeID = id
	s.resetView()
}

func (s *ListState) SetPerPage(n int) {
	n = ClampPerPage(n)
	if n == s.pager.PerPage() {
		return
	}
	old := s.search
	s.pager = NewPager(n)
	s.search = old
	s.mode = SelectExplicit
	s.selected = make(map[uuid.UUID]struct{})
}

/* ===============================
   Selection
=================================*/

func (s *ListState) Select(id uuid.UUID)   { s.mode = SelectExplicit; s.selected[id] = struct{}{} }
func (s *ListState) Deselect(id uuid.UUID) { delete(s.selected, id) }
func (s *ListState) SelectAll()            { s.mode = SelectAllMatching }
func (s *ListState) SelectionCount() int   { return len(s.selected) }

func (s *ListState) Selected(id uuid.UUID) bool {
	_, ok := s.selected[id]
	return ok
}

// ResolveSelection mengembalikan id set final untuk bulk action. Pada mode
// all-matching, fetchAll dipanggil sekali (query unbounded id-only di server).
func (s *ListState) ResolveSelection(fetchAll func() ([]uuid.UUID, error)) ([]uuid.UUID, error) {
	if s.mode == SelectAllMatching {
		return fetchAll()
	}
	out := make([]uuid.UUID, 0, len(s.selected))
	for id := range s.selected {
		out = append(out, id)
	}
	return out, nil
}
