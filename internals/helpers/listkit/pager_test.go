package listkit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Simulasi 3 fetch berurutan: per_page=2, total 5 item.
func TestPager_CursorChainAcrossThreePages(t *testing.T) {
	p := NewPager(2)

	// page 1: penuh (2 item), ada next_cursor
	assert.Equal(t, 1, p.Page())
	assert.Equal(t, "", p.CursorForCurrent())
	assert.False(t, p.HasPrev())
	p.Record("cur-1")
	assert.True(t, p.HasNext())

	// page 2
	cur, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, "cur-1", cur)
	assert.Equal(t, 2, p.Page())
	assert.True(t, p.HasPrev())
	p.Record("cur-2")
	assert.True(t, p.HasNext())

	// page 3: sisa 1 item, server tidak kasih next_cursor
	cur, ok = p.Next()
	require.True(t, ok)
	assert.Equal(t, "cur-2", cur)
	assert.Equal(t, 3, p.Page())
	assert.True(t, p.HasPrev())
	p.Record("")
	assert.False(t, p.HasNext())

	_, ok = p.Next()
	assert.False(t, ok)

	// mundur pakai rantai yang disimpan
	cur, ok = p.Prev()
	require.True(t, ok)
	assert.Equal(t, "cur-1", cur)
	assert.Equal(t, 2, p.Page())
	assert.True(t, p.HasNext())

	cur, ok = p.Prev()
	require.True(t, ok)
	assert.Equal(t, "", cur)
	assert.Equal(t, 1, p.Page())
	assert.False(t, p.HasPrev())
}

func TestCursor_EncodeDecodeRoundTrip(t *testing.T) {
	c := Cursor{CreatedAt: time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC), ID: uuid.New()}
	got, err := DecodeCursor(c.Encode())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, c.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, c.ID, got.ID)
}

func TestDecodeCursor_EmptyAndGarbage(t *testing.T) {
	got, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = DecodeCursor("not-a-cursor!!!")
	assert.Error(t, err)
}

func TestNextCursorFor_PartialPageMeansNoNext(t *testing.T) {
	id := uuid.New()
	now := time.Now()
	assert.Equal(t, "", NextCursorFor(1, 2, now, id))
	assert.NotEqual(t, "", NextCursorFor(2, 2, now, id))
}
