// file: internals/features/school/classes/wizard/wizard.go
//
// Wizard dua langkah: data kelas (parent) lalu koleksi rombel/section (children),
// dengan rekonsiliasi create/update/delete saat submit terakhir. State machine
// ini tidak tahu-menahu soal HTTP/gorm; semua efek jaringan lewat ClassStore,
// jadi bisa diuji dengan fake yang merekam call.
//
// Kebijakan commit: SEMUA ditunda ke submit terakhir. Transisi Step1→Step2
// hanya menangkap field parent ke memori, tidak ada call jaringan.
package wizard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sekolahku_backend/internals/helpers/schema"
)

/* ===============================
   Field sets
=================================*/

type ParentFields struct {
	Name         string
	Level        *int
	Description  *string
	DisplayOrder int
	IsActive     bool
}

type ChildFields struct {
	Name      string
	Capacity  int
	TeacherID *uuid.UUID
	Position  int
}

const DefaultChildCapacity = 30

/* ===============================
   Child rows (tagged union)
=================================*/

type RowKind int

const (
	RowNew RowKind = iota
	RowExisting
	RowExistingModified
	RowMarkedForDeletion
)

func (k RowKind) String() string {
	switch k {
	case RowNew:
		return "new"
	case RowExisting:
		return "existing"
	case RowExistingModified:
		return "existing_modified"
	case RowMarkedForDeletion:
		return "marked_for_deletion"
	default:
		return "unknown"
	}
}

type Row struct {
	Kind   RowKind
	ID     uuid.UUID // uuid.Nil untuk RowNew
	Fields ChildFields
}

/* ===============================
   Steps & errors
=================================*/

type Step int

const (
	StepParentInfo Step = iota
	StepChildCollection
	Submitting
	Closed
	Cancelled
)

func (s Step) String() string {
	switch s {
	case StepParentInfo:
		return "parent_info"
	case StepChildCollection:
		return "child_collection"
	case Submitting:
		return "submitting"
	case Closed:
		return "closed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ValidationError: gagal guard sebelum call jaringan; Errors = field → pesan.
// Baris child diberi prefix "rows[i]." sesuai index tampilannya.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%d field)", len(e.Errors))
}

// StoreError membungkus kegagalan satu call remote beserta call yang gagal,
// supaya notifikasi bisa menunjuk operasi persisnya.
type StoreError struct {
	Op  string // "create_class" | "update_class" | "create_section" | ...
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

var (
	ErrWrongStep      = fmt.Errorf("wizard: aksi tidak valid untuk step saat ini")
	ErrSubmitInFlight = fmt.Errorf("wizard: submit sedang berjalan")
	ErrRowIndex       = fmt.Errorf("wizard: index baris di luar jangkauan")
)

/* ===============================
   Store contract
=================================*/

type Scope struct {
	SchoolID uuid.UUID
	TermID   uuid.UUID
}

// ClassStore: lapisan akses data remote untuk pasangan class/section.
type ClassStore interface {
	CreateClass(ctx context.Context, scope Scope, f ParentFields) (uuid.UUID, error)
	UpdateClass(ctx context.Context, id uuid.UUID, f ParentFields) error
	CreateSection(ctx context.Context, scope Scope, classID uuid.UUID, f ChildFields) (uuid.UUID, error)
	UpdateSection(ctx context.Context, id uuid.UUID, f ChildFields) error
	DeleteSection(ctx context.Context, id uuid.UUID) error
}

/* ===============================
   Schemas
=================================*/

func parentSchema() schema.Schema {
	return schema.Schema{Fields: []schema.Field{
		{Name: "class_name", Kind: schema.KindString, Required: true},
		{Name: "class_level", Kind: schema.KindInt, Min: schema.IntBound(1), Max: schema.IntBound(12)},
		{Name: "class_display_order", Kind: schema.KindInt, Min: schema.IntBound(0)},
	}}
}

func childSchema() schema.Schema {
	return schema.Schema{Fields: []schema.Field{
		{Name: "section_name", Kind: schema.KindString, Required: true},
		{Name: "section_capacity", Kind: schema.KindInt, Required: true, Min: schema.IntBound(1)},
	}}
}

func (f ParentFields) candidate() map[string]any {
	m := map[string]any{
		"class_name":          f.Name,
		"class_display_order": f.DisplayOrder,
	}
	if f.Level != nil {
		m["class_level"] = *f.Level
	}
	if f.Description != nil {
		m["class_description"] = *f.Description
	}
	return m
}

func (f ChildFields) candidate() map[string]any {
	return map[string]any{
		"section_name":     f.Name,
		"section_capacity": f.Capacity,
	}
}

/* ===============================
   Session
=================================*/

type Session struct {
	store ClassStore
	scope Scope

	step    Step
	classID uuid.UUID // uuid.Nil selama parent belum pernah dipersist (create mode)

	parent         ParentFields
	parentCaptured bool
	parentSynced   bool // parent call sudah berhasil; retry tidak mengulangnya

	rows    []Row
	nameSeq int // penomoran nama default baris baru: A, B, C, ...

	inFlight bool
}

// NewCreateSession: wizard mode create; step 1 kosong.
func NewCreateSession(store ClassStore, scope Scope) *Session {
	return &Session{store: store, scope: scope, step: StepParentInfo}
}

// NewEditSession: wizard mode edit; parent & children existing dimuat dulu.
// Semua row di-tag existing (bukan new, bukan deleted).
func NewEditSession(store ClassStore, scope Scope, classID uuid.UUID, parent ParentFields, existing []Row) *Session {
	rows := make([]Row, 0, len(existing))
	seq := 0
	for _, r := range existing {
		rows = append(rows, Row{Kind: RowExisting, ID: r.ID, Fields: r.Fields})
		seq++
	}
	return &Session{
		store:          store,
		scope:          scope,
		step:           StepParentInfo,
		classID:        classID,
		parent:         parent,
		parentCaptured: true,
		rows:           rows,
		nameSeq:        seq,
	}
}

func (s *Session) Step() Step           { return s.step }
func (s *Session) ClassID() uuid.UUID   { return s.classID }
func (s *Session) Parent() ParentFields { return s.parent }

// Rows mengembalikan seluruh array in-memory (termasuk yang marked-for-deletion).
func (s *Session) Rows() []Row {
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// VisibleRows: baris yang dirender (exclude marked-for-deletion).
func (s *Session) VisibleRows() []Row {
	out := make([]Row, 0, len(s.rows))
	for _, r := range s.rows {
		if r.Kind != RowMarkedForDeletion {
			out = append(out, r)
		}
	}
	return out
}

/* ===============================
   Step 1
=================================*/

// SubmitParent memvalidasi field parent dan menangkapnya ke session state,
// lalu pindah ke step 2. Mode create: seed tepat satu baris default.
// Tidak ada call jaringan di sini (kebijakan defer-to-final-submit).
func (s *Session) SubmitParent(f ParentFields) error {
	if s.step != StepParentInfo {
		return ErrWrongStep
	}
	if res := parentSchema().Validate(f.candidate()); !res.Valid {
		return &ValidationError{Errors: res.Errors}
	}
	s.parent = f
	s.parentCaptured = true
	s.parentSynced = false // field parent berubah, wajib disinkronkan lagi
	s.step = StepChildCollection

	if len(s.rows) == 0 {
		s.seedDefaultRow()
	}
	return nil
}

// Back: Step2 → Step1, non-destruktif (parent & rows tetap).
func (s *Session) Back() error {
	if s.step != StepChildCollection {
		return ErrWrongStep
	}
	s.step = StepParentInfo
	return nil
}

// Cancel membuang seluruh state in-memory tanpa efek jaringan.
// Tidak boleh saat Submitting (call yang sudah jalan tidak bisa dibatalkan).
func (s *Session) Cancel() error {
	if s.step == Submitting {
		return ErrWrongStep
	}
	s.step = Cancelled
	s.parent = ParentFields{}
	s.parentCaptured = false
	s.rows = nil
	return nil
}

/* ===============================
   Step 2: row ops
=================================*/

func (s *Session) seedDefaultRow() {
	s.rows = append(s.rows, Row{
		Kind: RowNew,
		Fields: ChildFields{
			Name:     defaultName(s.nameSeq),
			Capacity: DefaultChildCapacity,
			Position: len(s.VisibleRows()),
		},
	})
	s.nameSeq++
}

// defaultName: A, B, ..., Z, AA, AB, ... (gaya penamaan rombel).
func defaultName(seq int) string {
	name := ""
	n := seq
	for {
		name = string(rune('A'+n%26)) + name
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return name
}

// AddRow menambah baris baru: nama default berurutan, kapasitas default,
// tanpa walikelas, display order = jumlah baris visible saat ini.
func (s *Session) AddRow() error {
	if s.step != StepChildCollection {
		return ErrWrongStep
	}
	s.seedDefaultRow()
	return nil
}

// RemoveRow menghapus baris ke-i dari daftar visible. Baris baru dibuang
// langsung dari array; baris yang sudah punya identitas hanya ditandai
// marked-for-deletion (tetap di array untuk rekonsiliasi).
func (s *Session) RemoveRow(visibleIdx int) error {
	if s.step != StepChildCollection {
		return ErrWrongStep
	}
	real, ok := s.realIndex(visibleIdx)
	if !ok {
		return ErrRowIndex
	}
	if s.rows[real].Kind == RowNew {
		s.rows = append(s.rows[:real], s.rows[real+1:]...)
		return nil
	}
	s.rows[real].Kind = RowMarkedForDeletion
	return nil
}

// EditRow mengganti field baris visible ke-i. Baris existing berubah jadi
// existing_modified supaya rekonsiliasi tahu perlu update call.
func (s *Session) EditRow(visibleIdx int, f ChildFields) error {
	if s.step != StepChildCollection {
		return ErrWrongStep
	}
	real, ok := s.realIndex(visibleIdx)
	if !ok {
		return ErrRowIndex
	}
	s.rows[real].Fields = f
	if s.rows[real].Kind == RowExisting {
		s.rows[real].Kind = RowExistingModified
	}
	return nil
}

// ReplaceRows mengganti seluruh array baris sekaligus (jalur HTTP yang
// menerima set final dari klien). Tag tiap baris harus konsisten dengan
// identitasnya: RowNew tanpa id, selain itu wajib ber-id.
func (s *Session) ReplaceRows(rows []Row) error {
	if s.step != StepChildCollection {
		return ErrWrongStep
	}
	for _, r := range rows {
		if r.Kind == RowNew && r.ID != uuid.Nil {
			return fmt.Errorf("wizard: baris new tidak boleh punya id")
		}
		if r.Kind != RowNew && r.ID == uuid.Nil {
			return fmt.Errorf("wizard: baris %s wajib punya id", r.Kind)
		}
	}
	s.rows = make([]Row, len(rows))
	copy(s.rows, rows)
	return nil
}

func (s *Session) realIndex(visibleIdx int) (int, bool) {
	if visibleIdx < 0 {
		return 0, false
	}
	seen := 0
	for i, r := range s.rows {
		if r.Kind == RowMarkedForDeletion {
			continue
		}
		if seen == visibleIdx {
			return i, true
		}
		seen++
	}
	return 0, false
}

/* ===============================
   Submit: guards + reconciliation
=================================*/

func (s *Session) validateForSubmit() map[string]string {
	errs := make(map[string]string)

	// Context scope wajib untuk create call (missing-context = validation error).
	if s.classID == uuid.Nil || s.hasNewRows() {
		if s.scope.SchoolID == uuid.Nil {
			errs["school_id"] = "required"
		}
		if s.scope.TermID == uuid.Nil {
			errs["academic_term_id"] = "required"
		}
	}

	visible := s.VisibleRows()
	if len(visible) == 0 {
		errs["rows"] = "minimal satu section"
	}
	for i, r := range visible {
		res := childSchema().Validate(r.Fields.candidate())
		for field, msg := range res.Errors {
			errs[fmt.Sprintf("rows[%d].%s", i, field)] = msg
		}
	}
	return errs
}

func (s *Session) hasNewRows() bool {
	for _, r := range s.rows {
		if r.Kind == RowNew {
			return true
		}
	}
	return false
}

// Submit menjalankan rekonsiliasi: parent dulu (create-or-update, ditunggu
// sampai selesai), lalu per-child secara berurutan, delete paling akhir.
// Non-atomik by design: kalau gagal di tengah, call yang sudah berhasil TIDAK
// di-rollback; session balik ke step child-collection supaya user bisa retry.
// Retry tidak mengulang kerja yang sudah berhasil (row yang tercipta sudah
// di-tag existing).
func (s *Session) Submit(ctx context.Context) error {
	if s.step != StepChildCollection {
		return ErrWrongStep
	}
	if s.inFlight {
		return ErrSubmitInFlight
	}
	if errs := s.validateForSubmit(); len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	s.inFlight = true
	s.step = Submitting
	defer func() { s.inFlight = false }()

	fail := func(op string, err error) error {
		s.step = StepChildCollection
		return &StoreError{Op: op, Err: err}
	}

	// 1) Parent: create-or-update, identitas ditangkap sebelum child call apa pun.
	if !s.parentSynced {
		if s.classID == uuid.Nil {
			id, err := s.store.CreateClass(ctx, s.scope, s.parent)
			if err != nil {
				return fail("create_class", err)
			}
			s.classID = id
		} else {
			if err := s.store.UpdateClass(ctx, s.classID, s.parent); err != nil {
				return fail("update_class", err)
			}
		}
		s.parentSynced = true
	}

	// 2) Child visible: create utk row baru, update utk row existing yang berubah.
	//    Row existing tak tersentuh dilewati (tidak ada call yang tidak perlu).
	for i := range s.rows {
		r := &s.rows[i]
		switch r.Kind {
		case RowNew:
			id, err := s.store.CreateSection(ctx, s.scope, s.classID, r.Fields)
			if err != nil {
				return fail("create_section", err)
			}
			r.ID = id
			r.Kind = RowExisting
		case RowExistingModified:
			if err := s.store.UpdateSection(ctx, r.ID, r.Fields); err != nil {
				return fail("update_section", err)
			}
			r.Kind = RowExisting
		}
	}

	// 3) Delete row yang ditandai (punya identitas, per definisi).
	kept := s.rows[:0]
	for i := range s.rows {
		r := s.rows[i]
		if r.Kind != RowMarkedForDeletion {
			kept = append(kept, r)
			continue
		}
		if err := s.store.DeleteSection(ctx, r.ID); err != nil {
			// yang belum sempat dihapus tetap tertinggal di array utk retry
			kept = append(kept, s.rows[i:]...)
			s.rows = kept
			s.step = StepChildCollection
			return &StoreError{Op: "delete_section", Err: err}
		}
	}
	s.rows = kept

	s.step = Closed
	return nil
}
