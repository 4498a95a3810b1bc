package view

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexview/internal/hexfile"
)

func openTestSession(t *testing.T, data []byte) *hexfile.Session {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "hexview_grid_*.bin")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	s, err := hexfile.Open(f.Name(), 0)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestRenderGridShortFile(t *testing.T) {
	// 40 bytes at 16 columns and 3 rows: rows at 0, 16 and 32, the last
	// with 8 data bytes and 8 blank columns, then the end marker.
	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(i)
	}
	s := openTestSession(t, data)
	vp := NewViewport(3, 16, s.Size())

	grid, err := RenderGrid(s, vp)
	require.NoError(t, err)
	require.Len(t, grid.Rows, 4)
	assert.True(t, grid.AtEOF)

	assert.True(t, strings.HasPrefix(grid.Rows[0], "0000:0000|00 01 02 03  04"))
	assert.True(t, strings.HasPrefix(grid.Rows[1], "0000:0010|10 11"))
	assert.True(t, strings.HasPrefix(grid.Rows[2], "0000:0020|20 21 22 23  24 25 26 27  "))
	assert.Equal(t, EndOfFileMarker, grid.Rows[3])

	// All data rows share one width.
	assert.Len(t, grid.Rows[1], len(grid.Rows[0]))
	assert.Len(t, grid.Rows[2], len(grid.Rows[0]))

	// The partial row carries no hex digits past its eighth byte.
	assert.NotContains(t, grid.Rows[2], "28")
}

func TestRenderGridMidFile(t *testing.T) {
	data := make([]byte, 1000)
	s := openTestSession(t, data)
	vp := NewViewport(4, 16, s.Size())
	require.NoError(t, vp.Navigate(Intent{Kind: IntentToOffset, Offset: 256}))

	grid, err := RenderGrid(s, vp)
	require.NoError(t, err)
	assert.Len(t, grid.Rows, 4)
	assert.False(t, grid.AtEOF, "no continuation cue in the middle of the file")
	assert.True(t, strings.HasPrefix(grid.Rows[0], "0000:0100|"))
}

func TestRenderGridEmptyFile(t *testing.T) {
	s := openTestSession(t, nil)
	vp := NewViewport(24, 16, 0)

	grid, err := RenderGrid(s, vp)
	require.NoError(t, err)
	assert.True(t, grid.AtEOF)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, EndOfFileMarker, grid.Rows[0])
}

func TestRenderGridNoSession(t *testing.T) {
	vp := NewViewport(24, 16, 0)
	grid, err := RenderGrid(nil, vp)
	require.NoError(t, err)
	assert.Equal(t, []string{EndOfFileMarker}, grid.Rows)
}

func TestRenderGridLastPage(t *testing.T) {
	data := make([]byte, 1000)
	s := openTestSession(t, data)
	vp := NewViewport(4, 16, s.Size())
	require.NoError(t, vp.Navigate(Intent{Kind: IntentToEnd}))

	grid, err := RenderGrid(s, vp)
	require.NoError(t, err)
	assert.True(t, grid.AtEOF)
	assert.Equal(t, EndOfFileMarker, grid.Rows[len(grid.Rows)-1])
	assert.True(t, strings.HasPrefix(grid.Rows[0], "0000:03B0|"))
}
