// file: internals/features/school/classes/controller/class_full_controller.go
//
// Jalur "full save": satu request membawa parent + set final sections dari
// wizard di klien. Controller menerjemahkan payload ke wizard.Session lalu
// menjalankan rekonsiliasinya di dalam satu transaksi DB. Perlu dicatat:
// wizard sendiri non-atomik (didesain utk store remote); transaksi di sini
// bonus dari fakta bahwa store-nya gorm lokal.
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sectionModel "sekolahku_backend/internals/features/school/class_sections/model"
	"sekolahku_backend/internals/features/school/classes/dto"
	model "sekolahku_backend/internals/features/school/classes/model"
	"sekolahku_backend/internals/features/school/classes/service"
	"sekolahku_backend/internals/features/school/classes/wizard"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

func parentFieldsFromRequest(r *dto.CreateClassRequest) wizard.ParentFields {
	active := true
	if r.ClassIsActive != nil {
		active = *r.ClassIsActive
	}
	return wizard.ParentFields{
		Name:         r.ClassName,
		Level:        r.ClassLevel,
		Description:  r.ClassDescription,
		DisplayOrder: r.ClassDisplayOrder,
		IsActive:     active,
	}
}

func childFieldsFromRow(r *dto.SectionRowRequest) wizard.ChildFields {
	return wizard.ChildFields{
		Name:      r.Name,
		Capacity:  r.Capacity,
		TeacherID: r.TeacherID,
		Position:  r.Position,
	}
}

// POST /api/a/classes/full — create kelas + sections sekaligus.
func (ctrl *ClassController) CreateClassFull(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	termID, err := helperAuth.ResolveTermIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SaveClassFullRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	rows := make([]wizard.Row, 0, len(req.Sections))
	for i := range req.Sections {
		sr := &req.Sections[i]
		if sr.ClassSectionID != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Section pada create tidak boleh membawa id")
		}
		if sr.IsDeleted {
			continue // baris baru yang dihapus klien tidak pernah eksis
		}
		rows = append(rows, wizard.Row{Kind: wizard.RowNew, Fields: childFieldsFromRow(sr)})
	}

	scope := wizard.Scope{SchoolID: schoolID, TermID: termID}
	var classID uuid.UUID

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		sess := wizard.NewCreateSession(service.NewGormClassStore(tx, schoolID), scope)
		if err := sess.SubmitParent(parentFieldsFromRequest(&req.Class)); err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := sess.ReplaceRows(rows); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}
		if err := sess.Submit(c.Context()); err != nil {
			return err
		}
		classID = sess.ClassID()
		return nil
	})
	if err != nil {
		return ctrl.renderWizardError(c, err)
	}

	cls, secs, err := service.LoadClassWithSections(c.Context(), ctrl.DB, schoolID, classID)
	if err != nil {
		log.Printf("[CLASS] reload setelah create full gagal: %v", err)
		return helper.JsonCreated(c, "Kelas berhasil dibuat", fiber.Map{"class_id": classID})
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", buildFullResponse(cls, secs))
}

// PUT /api/a/classes/:id/full — update kelas + rekonsiliasi sections.
// Section existing yang tidak muncul di payload dianggap dihapus.
func (ctrl *ClassController) UpdateClassFull(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSchoolAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	termID, err := helperAuth.ResolveTermIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req dto.SaveClassFullRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		cls, secs, lerr := service.LoadClassWithSections(c.Context(), tx, schoolID, classID)
		if lerr != nil {
			if errors.Is(lerr, service.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
			}
			return lerr
		}

		rows, derr := diffSections(secs, req.Sections)
		if derr != nil {
			return derr
		}

		existing := make([]wizard.Row, 0, len(secs))
		for i := range secs {
			existing = append(existing, wizard.Row{
				Kind: wizard.RowExisting,
				ID:   secs[i].ClassSectionID,
				Fields: wizard.ChildFields{
					Name:      secs[i].ClassSectionName,
					Capacity:  secs[i].ClassSectionCapacity,
					TeacherID: secs[i].ClassSectionTeacherID,
					Position:  secs[i].ClassSectionPosition,
				},
			})
		}

		scope := wizard.Scope{SchoolID: schoolID, TermID: termID}
		sess := wizard.NewEditSession(service.NewGormClassStore(tx, schoolID), scope, classID,
			wizard.ParentFields{
				Name:         cls.ClassName,
				Level:        cls.ClassLevel,
				Description:  cls.ClassDescription,
				DisplayOrder: cls.ClassDisplayOrder,
				IsActive:     cls.ClassIsActive,
			}, existing)

		if err := sess.SubmitParent(parentFieldsFromRequest(&req.Class)); err != nil {
			return err
		}
		if err := sess.ReplaceRows(rows); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return sess.Submit(c.Context())
	})
	if err != nil {
		return ctrl.renderWizardError(c, err)
	}

	cls, secs, err := service.LoadClassWithSections(c.Context(), ctrl.DB, schoolID, classID)
	if err != nil {
		log.Printf("[CLASS] reload setelah update full gagal: %v", err)
		return helper.JsonUpdated(c, "Kelas berhasil diperbarui", fiber.Map{"class_id": classID})
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", buildFullResponse(cls, secs))
}

// diffSections mengubah set final dari klien menjadi baris wizard ber-tag,
// dibandingkan dengan state tersimpan:
//   - tanpa id                  → new
//   - id ada, is_deleted        → marked_for_deletion
//   - id ada, field berubah     → existing_modified
//   - id ada, tidak berubah     → existing (tak tersentuh rekonsiliasi)
//   - existing absen dr payload → marked_for_deletion
func diffSections(current []sectionModel.ClassSectionModel, payload []dto.SectionRowRequest) ([]wizard.Row, error) {
	byID := make(map[uuid.UUID]*sectionModel.ClassSectionModel, len(current))
	for i := range current {
		byID[current[i].ClassSectionID] = &current[i]
	}

	rows := make([]wizard.Row, 0, len(payload))
	seen := make(map[uuid.UUID]bool, len(payload))

	for i := range payload {
		sr := &payload[i]
		if sr.ClassSectionID == nil {
			if sr.IsDeleted {
				continue
			}
			rows = append(rows, wizard.Row{Kind: wizard.RowNew, Fields: childFieldsFromRow(sr)})
			continue
		}

		id := *sr.ClassSectionID
		cur, ok := byID[id]
		if !ok {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Section "+id.String()+" bukan milik kelas ini")
		}
		seen[id] = true

		if sr.IsDeleted {
			rows = append(rows, wizard.Row{Kind: wizard.RowMarkedForDeletion, ID: id, Fields: childFieldsFromRow(sr)})
			continue
		}

		kind := wizard.RowExisting
		if sr.Name != cur.ClassSectionName ||
			sr.Capacity != cur.ClassSectionCapacity ||
			sr.Position != cur.ClassSectionPosition ||
			!uuidPtrEqual(sr.TeacherID, cur.ClassSectionTeacherID) {
			kind = wizard.RowExistingModified
		}
		rows = append(rows, wizard.Row{Kind: kind, ID: id, Fields: childFieldsFromRow(sr)})
	}

	for i := range current {
		if !seen[current[i].ClassSectionID] {
			rows = append(rows, wizard.Row{
				Kind: wizard.RowMarkedForDeletion,
				ID:   current[i].ClassSectionID,
			})
		}
	}
	return rows, nil
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func buildFullResponse(cls *model.ClassModel, secs []sectionModel.ClassSectionModel) dto.ClassWithSectionsResponse {
	out := dto.ClassWithSectionsResponse{Class: dto.NewClassResponse(cls)}
	for i := range secs {
		out.Sections = append(out.Sections, dto.NewSectionCompactResponse(&secs[i]))
	}
	return out
}

// renderWizardError memetakan error wizard/transaksi ke envelope standar:
// ValidationError → 422 per-field; StoreError → 500 + nama operasi yang gagal.
func (ctrl *ClassController) renderWizardError(c *fiber.Ctx, err error) error {
	var ve *wizard.ValidationError
	if errors.As(err, &ve) {
		return helper.JsonValidationError(c, ve.Errors)
	}
	var se *wizard.StoreError
	if errors.As(err, &se) {
		log.Printf("[CLASS] wizard %s gagal: %v", se.Op, se.Err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan ("+se.Op+")")
	}
	if fe, ok := err.(*fiber.Error); ok {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[CLASS] full save gagal: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kelas")
}
