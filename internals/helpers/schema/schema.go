// file: internals/helpers/schema/schema.go
//
// Schema deklaratif per-field untuk payload form. Validasi sinkron dan murni:
// tidak pernah panic, hasilnya peta field → pesan. Dipakai wizard & DTO yang
// butuh error per-field (bukan sekadar error string pertama).
package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindDate
	KindEnum
)

type Field struct {
	Name     string
	Kind     Kind
	Required bool

	// Bounds inklusif untuk KindInt. nil = tanpa batas.
	Min *int
	Max *int

	// Closed set untuk KindEnum (sudah lowercase).
	Enum []string
}

// DateRange: rule lintas-field; error menempel ke field End, bukan generic.
type DateRange struct {
	Start string
	End   string
}

type Schema struct {
	Fields     []Field
	DateRanges []DateRange
}

type Result struct {
	Valid  bool
	Errors map[string]string
}

func IntBound(v int) *int { return &v }

/* ===============================
   Candidate normalization
=================================*/

// Normalize menyamakan "" dan nil untuk field opsional: string kosong
// dibuang dari map supaya downstream tidak perlu bedakan dua bentuk absent.
func (s Schema) Normalize(candidate map[string]any) map[string]any {
	out := make(map[string]any, len(candidate))
	for k, v := range candidate {
		if sv, ok := v.(string); ok && strings.TrimSpace(sv) == "" {
			continue
		}
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}

/* ===============================
   Validate
=================================*/

func (s Schema) Validate(candidate map[string]any) Result {
	errs := make(map[string]string)
	norm := s.Normalize(candidate)

	for _, f := range s.Fields {
		v, present := norm[f.Name]
		if !present {
			if f.Required {
				errs[f.Name] = "required"
			}
			continue
		}
		if msg := f.check(v); msg != "" {
			errs[f.Name] = msg
		}
	}

	for _, dr := range s.DateRanges {
		start, okS := parseDate(norm[dr.Start])
		end, okE := parseDate(norm[dr.End])
		if !okS || !okE {
			continue // field-level check sudah menangkap format rusak / absent
		}
		if !end.After(start) {
			errs[dr.End] = fmt.Sprintf("must be after %s", dr.Start)
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func (f Field) check(v any) string {
	switch f.Kind {
	case KindString:
		sv, ok := v.(string)
		if !ok {
			return "must be a string"
		}
		if strings.TrimSpace(sv) == "" {
			return "required"
		}
	case KindInt:
		n, ok := toInt(v)
		if !ok {
			return "must be an integer"
		}
		if f.Min != nil && n < *f.Min {
			return fmt.Sprintf("must be >= %d", *f.Min)
		}
		if f.Max != nil && n > *f.Max {
			return fmt.Sprintf("must be <= %d", *f.Max)
		}
	case KindBool:
		if _, ok := v.(bool); !ok {
			return "must be a boolean"
		}
	case KindDate:
		if _, ok := parseDate(v); !ok {
			return "must be a date (YYYY-MM-DD)"
		}
	case KindEnum:
		sv, ok := v.(string)
		if !ok {
			return "must be a string"
		}
		sv = strings.ToLower(strings.TrimSpace(sv))
		for _, e := range f.Enum {
			if sv == e {
				return ""
			}
		}
		return "must be one of: " + strings.Join(f.Enum, ", ")
	}
	return ""
}

/* ===============================
   Coercions
=================================*/

// toInt menerima int asli ataupun angka hasil decode JSON (float64 bulat).
func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t == float64(int(t)) {
			return int(t), true
		}
		return 0, false
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func parseDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case string:
		d, err := time.Parse(DateLayout, strings.TrimSpace(t))
		if err != nil {
			return time.Time{}, false
		}
		return d, true
	default:
		return time.Time{}, false
	}
}
