// file: internals/features/school/stats/controller/roster_export_controller.go
package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	sectionModel "sekolahku_backend/internals/features/school/class_sections/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// GET /api/a/stats/roster-export — unduh roster kelas+section sebagai XLSX.
func (ctrl *StatsController) ExportRosterXLSX(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var classes []classModel.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_school_id = ?", schoolID).
		Order("class_display_order ASC, class_name ASC").
		Find(&classes).Error; err != nil {
		log.Printf("[STATS] export fetch classes gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data roster")
	}

	var sections []sectionModel.ClassSectionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_section_school_id = ?", schoolID).
		Order("class_section_position ASC").
		Find(&sections).Error; err != nil {
		log.Printf("[STATS] export fetch sections gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data roster")
	}

	secsByClass := make(map[string][]sectionModel.ClassSectionModel, len(classes))
	for i := range sections {
		key := sections[i].ClassSectionClassID.String()
		secsByClass[key] = append(secsByClass[key], sections[i])
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Roster"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Kelas", "Level", "Section", "Kapasitas", "Posisi", "Aktif"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for i := range classes {
		cls := &classes[i]
		lvl := ""
		if cls.ClassLevel != nil {
			lvl = fmt.Sprintf("%d", *cls.ClassLevel)
		}
		secs := secsByClass[cls.ClassID.String()]
		if len(secs) == 0 {
			_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), cls.ClassName)
			_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), lvl)
			row++
			continue
		}
		for j := range secs {
			s := &secs[j]
			_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), cls.ClassName)
			_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), lvl)
			_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), s.ClassSectionName)
			_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), s.ClassSectionCapacity)
			_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), s.ClassSectionPosition)
			_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), s.ClassSectionIsActive)
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("[STATS] tulis xlsx gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file export")
	}

	filename := fmt.Sprintf("roster_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
