package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "class_name", Kind: KindString, Required: true},
			{Name: "class_level", Kind: KindInt, Min: IntBound(1), Max: IntBound(12)},
			{Name: "class_is_active", Kind: KindBool},
			{Name: "class_description", Kind: KindString},
		},
	}
}

func TestValidate_ValidParentFields(t *testing.T) {
	cases := []map[string]any{
		{"class_name": "Grade 5", "class_is_active": true},
		{"class_name": "Grade 5", "class_level": 5},
		{"class_name": "TK A", "class_level": float64(1), "class_description": "pagi"},
	}
	s := classSchema()
	for _, c := range cases {
		res := s.Validate(c)
		assert.True(t, res.Valid, "candidate %v", c)
		assert.Empty(t, res.Errors)
	}
}

func TestValidate_RequiredRejectsEmptyAndAbsentAlike(t *testing.T) {
	s := classSchema()

	absent := s.Validate(map[string]any{})
	empty := s.Validate(map[string]any{"class_name": ""})
	null := s.Validate(map[string]any{"class_name": nil})

	for _, res := range []Result{absent, empty, null} {
		require.False(t, res.Valid)
		assert.Equal(t, "required", res.Errors["class_name"])
	}
}

func TestValidate_OptionalEmptyStringNormalizedAway(t *testing.T) {
	s := classSchema()
	norm := s.Normalize(map[string]any{"class_name": "X", "class_description": "  "})
	_, present := norm["class_description"]
	assert.False(t, present)

	res := s.Validate(map[string]any{"class_name": "X", "class_description": ""})
	assert.True(t, res.Valid)
}

func TestValidate_IntBounds(t *testing.T) {
	s := classSchema()
	res := s.Validate(map[string]any{"class_name": "X", "class_level": 0})
	require.False(t, res.Valid)
	assert.Contains(t, res.Errors["class_level"], ">= 1")

	res = s.Validate(map[string]any{"class_name": "X", "class_level": 13})
	require.False(t, res.Valid)
	assert.Contains(t, res.Errors["class_level"], "<= 12")
}

func TestValidate_Enum(t *testing.T) {
	s := Schema{Fields: []Field{
		{Name: "exam_status", Kind: KindEnum, Enum: []string{"scheduled", "ongoing", "completed"}},
	}}
	assert.True(t, s.Validate(map[string]any{"exam_status": "Ongoing"}).Valid)

	res := s.Validate(map[string]any{"exam_status": "archived"})
	require.False(t, res.Valid)
	assert.Contains(t, res.Errors["exam_status"], "one of")
}

func TestValidate_DateRangeErrorKeyedToEndField(t *testing.T) {
	s := Schema{
		Fields: []Field{
			{Name: "exam_start_date", Kind: KindDate, Required: true},
			{Name: "exam_end_date", Kind: KindDate, Required: true},
		},
		DateRanges: []DateRange{{Start: "exam_start_date", End: "exam_end_date"}},
	}

	res := s.Validate(map[string]any{
		"exam_start_date": "2024-01-01",
		"exam_end_date":   "2023-12-31",
	})
	require.False(t, res.Valid)
	_, generic := res.Errors["_"]
	assert.False(t, generic)
	_, startKeyed := res.Errors["exam_start_date"]
	assert.False(t, startKeyed)
	assert.Contains(t, res.Errors["exam_end_date"], "after")

	// equal endpoints juga ditolak (end harus > start)
	res = s.Validate(map[string]any{
		"exam_start_date": "2024-01-01",
		"exam_end_date":   "2024-01-01",
	})
	assert.False(t, res.Valid)
}
