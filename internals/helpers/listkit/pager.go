// file: internals/helpers/listkit/pager.go
package listkit

// Pager menyimpan rantai cursor per index halaman, karena protokol cursor
// tidak bisa menurunkan cursor mundur. Halaman 1 selalu cursor kosong;
// cursors[i] = cursor untuk fetch halaman i+2.
type Pager struct {
	perPage int
	page    int // 1-based
	cursors []string
}

func NewPager(perPage int) *Pager {
	return &Pager{perPage: ClampPerPage(perPage), page: 1}
}

func (p *Pager) Page() int    { return p.page }
func (p *Pager) PerPage() int { return p.perPage }

// CursorForCurrent: token yang dipakai untuk fetch halaman aktif.
func (p *Pager) CursorForCurrent() string {
	if p.page <= 1 {
		return ""
	}
	idx := p.page - 2
	if idx >= len(p.cursors) {
		return ""
	}
	return p.cursors[idx]
}

// Record mencatat next_cursor hasil fetch halaman aktif ("" = halaman terakhir).
func (p *Pager) Record(nextCursor string) {
	idx := p.page - 1
	for len(p.cursors) <= idx {
		p.cursors = append(p.cursors, "")
	}
	p.cursors[idx] = nextCursor
}

func (p *Pager) HasPrev() bool { return p.page > 1 }

func (p *Pager) HasNext() bool {
	idx := p.page - 1
	return idx < len(p.cursors) && p.cursors[idx] != ""
}

// Next maju satu halaman; return cursor utk fetch + ok=false kalau mentok.
func (p *Pager) Next() (string, bool) {
	if !p.HasNext() {
		return "", false
	}
	cur := p.cursors[p.page-1]
	p.page++
	return cur, true
}

// Prev mundur satu halaman memakai rantai yang sudah disimpan.
func (p *Pager) Prev() (string, bool) {
	if !p.HasPrev() {
		return "", false
	}
	p.page--
	return p.CursorForCurrent(), true
}

// Reset kembali ke halaman 1 dan buang rantai cursor (dipakai saat filter/
// scope/per_page berubah).
func (p *Pager) Reset() {
	p.page = 1
	p.cursors = nil
}
