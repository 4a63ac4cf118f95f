// file: internals/features/school/stats/service/stats_service.go
//
// Agregasi dashboard: murni di atas snapshot yang sudah di-fetch. Tidak ada
// state tersimpan; setiap request dihitung ulang dari sumbernya. Semua fungsi
// aman terhadap slice nil/kosong — penyebut nol menghasilkan 0, bukan NaN.
package service

import (
	classModel "sekolahku_backend/internals/features/school/classes/model"
	sectionModel "sekolahku_backend/internals/features/school/class_sections/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
)

type CountStat struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	ActivePercent float64 `json:"active_percent"`
}

type LevelStat struct {
	Level        int `json:"level"` // 0 = tanpa level
	ClassCount   int `json:"class_count"`
	SectionCount int `json:"section_count"`
	SeatCapacity int `json:"seat_capacity"`
}

type DashboardSummary struct {
	Classes  CountStat `json:"classes"`
	Sections CountStat `json:"sections"`
	Teachers CountStat `json:"teachers"`

	TotalSeatCapacity  int     `json:"total_seat_capacity"`
	AvgSectionCapacity float64 `json:"avg_section_capacity"`

	PerLevel []LevelStat `json:"per_level"`
}

// Percent menghitung part/total dalam persen; total 0 → 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func countStat(total, active int) CountStat {
	return CountStat{Total: total, Active: active, ActivePercent: Percent(active, total)}
}

// BuildSummary merangkum ketiga snapshot menjadi satu payload dashboard.
func BuildSummary(
	classes []classModel.ClassModel,
	sections []sectionModel.ClassSectionModel,
	teachers []teacherModel.SchoolTeacherModel,
) DashboardSummary {
	activeClasses := 0
	for i := range classes {
		if classes[i].ClassIsActive {
			activeClasses++
		}
	}

	activeSections := 0
	totalCapacity := 0
	for i := range sections {
		if sections[i].ClassSectionIsActive {
			activeSections++
		}
		totalCapacity += sections[i].ClassSectionCapacity
	}

	activeTeachers := 0
	for i := range teachers {
		if teachers[i].SchoolTeacherIsActive {
			activeTeachers++
		}
	}

	avgCapacity := 0.0
	if len(sections) > 0 {
		avgCapacity = float64(totalCapacity) / float64(len(sections))
	}

	return DashboardSummary{
		Classes:            countStat(len(classes), activeClasses),
		Sections:           countStat(len(sections), activeSections),
		Teachers:           countStat(len(teachers), activeTeachers),
		TotalSeatCapacity:  totalCapacity,
		AvgSectionCapacity: avgCapacity,
		PerLevel:           buildPerLevel(classes, sections),
	}
}

// buildPerLevel mengelompokkan kelas & section per level. Kelas tanpa level
// masuk bucket 0. Urutan hasil: level menaik.
func buildPerLevel(
	classes []classModel.ClassModel,
	sections []sectionModel.ClassSectionModel,
) []LevelStat {
	levelOfClass := make(map[string]int, len(classes))
	byLevel := make(map[int]*LevelStat)

	for i := range classes {
		lvl := 0
		if classes[i].ClassLevel != nil {
			lvl = *classes[i].ClassLevel
		}
		levelOfClass[classes[i].ClassID.String()] = lvl
		st, ok := byLevel[lvl]
		if !ok {
			st = &LevelStat{Level: lvl}
			byLevel[lvl] = st
		}
		st.ClassCount++
	}

	for i := range sections {
		lvl, ok := levelOfClass[sections[i].ClassSectionClassID.String()]
		if !ok {
			continue // section yatim (kelas sudah dihapus) tidak dihitung
		}
		st := byLevel[lvl]
		st.SectionCount++
		st.SeatCapacity += sections[i].ClassSectionCapacity
	}

	out := make([]LevelStat, 0, len(byLevel))
	for lvl := 0; lvl <= maxLevel(byLevel); lvl++ {
		if st, ok := byLevel[lvl]; ok {
			out = append(out, *st)
		}
	}
	return out
}

func maxLevel(m map[int]*LevelStat) int {
	max := 0
	for lvl := range m {
		if lvl > max {
			max = lvl
		}
	}
	return max
}
