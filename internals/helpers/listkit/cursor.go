// file: internals/helpers/listkit/cursor.go
//
// Cursor-based pagination (keyset) di atas (created_at DESC, id DESC).
// Cursor dikirim ke klien sebagai token opaque (base64 JSON); klien tidak
// bisa menurunkan cursor mundur — lihat Pager untuk rantai cursor per halaman.
package listkit

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

type Cursor struct {
	CreatedAt time.Time `json:"t"`
	ID        uuid.UUID `json:"id"`
}

func (c Cursor) Encode() string {
	b, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(b)
}

func DecodeCursor(s string) (*Cursor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.New("cursor tidak valid")
	}
	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil || c.ID == uuid.Nil {
		return nil, errors.New("cursor tidak valid")
	}
	return &c, nil
}

// ApplyCursor menambah keyset WHERE untuk halaman berikutnya.
// createdCol/idCol harus nama kolom literal milik kita sendiri (bukan input user).
func ApplyCursor(q *gorm.DB, createdCol, idCol string, cur *Cursor) *gorm.DB {
	if cur == nil {
		return q
	}
	return q.Where("("+createdCol+", "+idCol+") < (?, ?)", cur.CreatedAt, cur.ID)
}

// ApplySearch menambah ILIKE multi-kolom untuk term pencarian (sudah
// di-debounce di sisi klien; server tinggal pakai apa adanya).
func ApplySearch(q *gorm.DB, term string, cols ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(cols) == 0 {
		return q
	}
	pat := "%" + term + "%"
	where := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for _, col := range cols {
		where = append(where, col+" ILIKE ?")
		args = append(args, pat)
	}
	return q.Where(strings.Join(where, " OR "), args...)
}

// ClampPerPage menormalkan per_page dari query string.
func ClampPerPage(n int) int {
	if n <= 0 {
		return DefaultPerPage
	}
	if n > MaxPerPage {
		return MaxPerPage
	}
	return n
}

// NextCursorFor mengembalikan cursor utk item terakhir halaman ini, atau ""
// kalau halaman belum penuh (tidak ada halaman berikutnya).
func NextCursorFor(count, perPage int, lastCreated time.Time, lastID uuid.UUID) string {
	if count < perPage {
		return ""
	}
	return Cursor{CreatedAt: lastCreated, ID: lastID}.Encode()
}
