package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactModeRoundTrip(t *testing.T) {
	vp := NewViewport(24, 16, 100000)
	var sr ScrollRange
	sr.Reconfigure(vp.FileSize, vp.Columns, vp.Rows)
	require.Equal(t, ModeExact, sr.Mode)
	assert.Equal(t, 24, sr.Extent)
	assert.EqualValues(t, TotalRows(vp.FileSize, vp.Columns), sr.Max)

	for _, offset := range []int64{0, 16, 4096, 99616} {
		require.NoError(t, vp.Navigate(Intent{Kind: IntentToOffset, Offset: offset}))
		sr.SyncValue(vp)
		assert.Equal(t, offset, sr.OffsetForValue(sr.Value, vp))
	}
}

func TestModeSwitchAtThreshold(t *testing.T) {
	const columns = 16
	var sr ScrollRange

	// Row count exactly at the limit still uses the exact model.
	sr.Reconfigure(int64(exactRowLimit)*columns, columns, 24)
	assert.Equal(t, ModeExact, sr.Mode)

	// One more row forces the fractional model.
	sr.Reconfigure(int64(exactRowLimit)*columns+1, columns, 24)
	assert.Equal(t, ModeFractional, sr.Mode)
	assert.Equal(t, FractionalMax, sr.Max)
	assert.Zero(t, sr.Extent)

	// Shrinking the file switches back, e.g. after a column change.
	sr.Reconfigure(int64(exactRowLimit)*columns, columns, 24)
	assert.Equal(t, ModeExact, sr.Mode)
}

func TestFractionalTruncatesNotRounds(t *testing.T) {
	fileSize := int64(exactRowLimit)*16 + 16
	vp := NewViewport(24, 16, fileSize)
	var sr ScrollRange
	sr.Reconfigure(vp.FileSize, vp.Columns, vp.Rows)
	require.Equal(t, ModeFractional, sr.Mode)

	// The maximum control value maps at or before end of file, and the
	// viewport lands on the last page, never past it.
	offset := sr.OffsetForValue(FractionalMax, vp)
	assert.LessOrEqual(t, offset, fileSize)
	require.NoError(t, vp.Navigate(Intent{Kind: IntentScrollTo, Offset: offset}))
	assert.Equal(t, vp.LastPageStart(), vp.DisplayStart)

	// 99.99…% truncates down to 99, not up to 100.
	vp2 := NewViewport(24, 16, fileSize)
	require.NoError(t, vp2.Navigate(Intent{Kind: IntentToOffset, Offset: fileSize - 16*25}))
	sr.SyncValue(vp2)
	assert.Equal(t, 99, sr.Value)
}

func TestFractionalReservedMinimum(t *testing.T) {
	fileSize := int64(exactRowLimit)*16 + 16
	vp := NewViewport(24, 16, fileSize)
	var sr ScrollRange
	sr.Reconfigure(vp.FileSize, vp.Columns, vp.Rows)

	// True start of file is the only position reported as 0.
	sr.SyncValue(vp)
	assert.Zero(t, sr.Value)

	// One row in, the value is held at 1 even though the percentage
	// truncates to 0.
	require.NoError(t, vp.Navigate(Intent{Kind: IntentLineDown}))
	sr.SyncValue(vp)
	assert.Equal(t, 1, sr.Value)
}

func TestSyncValueEmptyFile(t *testing.T) {
	vp := NewViewport(24, 16, 0)
	sr := ScrollRange{Value: 7}
	sr.Reconfigure(vp.FileSize, vp.Columns, vp.Rows)
	sr.SyncValue(vp)
	assert.Zero(t, sr.Value)
	assert.Zero(t, sr.Max)
}

func TestOffsetForValueClampsControlRange(t *testing.T) {
	vp := NewViewport(24, 16, 100000)
	var sr ScrollRange
	sr.Reconfigure(vp.FileSize, vp.Columns, vp.Rows)

	assert.EqualValues(t, 0, sr.OffsetForValue(-5, vp))
	assert.EqualValues(t, int64(sr.Max)*16, sr.OffsetForValue(sr.Max+100, vp))
}
