// file: internals/features/school/exams/dto/exam_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/exams/model"
	"sekolahku_backend/internals/helpers/schema"
)

// SaveExamRequest menerima tanggal sebagai string YYYY-MM-DD dan memvalidasi
// lewat schema (termasuk rule lintas-field end-after-start, error menempel
// di exam_end_date).
type SaveExamRequest struct {
	ExamSchoolID uuid.UUID `json:"-"`
	ExamTermID   uuid.UUID `json:"-"`

	ExamName      string `json:"exam_name"`
	ExamStartDate string `json:"exam_start_date"`
	ExamEndDate   string `json:"exam_end_date"`
	ExamStatus    string `json:"exam_status"`
}

func examSchema() schema.Schema {
	return schema.Schema{
		Fields: []schema.Field{
			{Name: "exam_name", Kind: schema.KindString, Required: true},
			{Name: "exam_start_date", Kind: schema.KindDate, Required: true},
			{Name: "exam_end_date", Kind: schema.KindDate, Required: true},
			{Name: "exam_status", Kind: schema.KindEnum, Enum: []string{
				model.ExamStatusScheduled, model.ExamStatusOngoing, model.ExamStatusCompleted,
			}},
		},
		DateRanges: []schema.DateRange{{Start: "exam_start_date", End: "exam_end_date"}},
	}
}

func (r *SaveExamRequest) Normalize() {
	r.ExamName = strings.TrimSpace(r.ExamName)
	r.ExamStartDate = strings.TrimSpace(r.ExamStartDate)
	r.ExamEndDate = strings.TrimSpace(r.ExamEndDate)
	r.ExamStatus = strings.ToLower(strings.TrimSpace(r.ExamStatus))
	if r.ExamStatus == "" {
		r.ExamStatus = model.ExamStatusScheduled
	}
}

// Validate mengembalikan peta field → pesan; nil kalau lolos.
func (r *SaveExamRequest) Validate() map[string]string {
	res := examSchema().Validate(map[string]any{
		"exam_name":       r.ExamName,
		"exam_start_date": r.ExamStartDate,
		"exam_end_date":   r.ExamEndDate,
		"exam_status":     r.ExamStatus,
	})
	if res.Valid {
		return nil
	}
	return res.Errors
}

func (r *SaveExamRequest) ToModel() *model.ExamModel {
	start, _ := time.Parse(schema.DateLayout, r.ExamStartDate)
	end, _ := time.Parse(schema.DateLayout, r.ExamEndDate)
	return &model.ExamModel{
		ExamSchoolID:  r.ExamSchoolID,
		ExamTermID:    r.ExamTermID,
		ExamName:      r.ExamName,
		ExamStartDate: start,
		ExamEndDate:   end,
		ExamStatus:    r.ExamStatus,
	}
}

func (r *SaveExamRequest) Apply(m *model.ExamModel) {
	start, _ := time.Parse(schema.DateLayout, r.ExamStartDate)
	end, _ := time.Parse(schema.DateLayout, r.ExamEndDate)
	m.ExamName = r.ExamName
	m.ExamStartDate = start
	m.ExamEndDate = end
	m.ExamStatus = r.ExamStatus
}

type ExamResponse struct {
	ExamID        uuid.UUID `json:"exam_id"`
	ExamSchoolID  uuid.UUID `json:"exam_school_id"`
	ExamTermID    uuid.UUID `json:"exam_term_id"`
	ExamName      string    `json:"exam_name"`
	ExamStartDate string    `json:"exam_start_date"`
	ExamEndDate   string    `json:"exam_end_date"`
	ExamStatus    string    `json:"exam_status"`
	ExamCreatedAt time.Time `json:"exam_created_at"`
	ExamUpdatedAt time.Time `json:"exam_updated_at"`
}

func NewExamResponse(m *model.ExamModel) ExamResponse {
	return ExamResponse{
		ExamID:        m.ExamID,
		ExamSchoolID:  m.ExamSchoolID,
		ExamTermID:    m.ExamTermID,
		ExamName:      m.ExamName,
		ExamStartDate: m.ExamStartDate.Format(schema.DateLayout),
		ExamEndDate:   m.ExamEndDate.Format(schema.DateLayout),
		ExamStatus:    m.ExamStatus,
		ExamCreatedAt: m.ExamCreatedAt,
		ExamUpdatedAt: m.ExamUpdatedAt,
	}
}
