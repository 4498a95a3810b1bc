package view

// ScrollMode selects how file offsets map onto the bounded scroll control.
type ScrollMode int

const (
	// ModeExact: the control value is the current row index.
	ModeExact ScrollMode = iota
	// ModeFractional: the control value is a percentage of the file.
	ModeFractional
)

const (
	// Largest row count the exact model accepts, safely below the
	// control's 32-bit resolution.
	exactRowLimit = 0x7FFF0000

	// FractionalMax is the control range in fractional mode.
	FractionalMax = 100

	// fractionalBlock is the block (page) increment in fractional mode,
	// where a real page is insignificant against the file size.
	fractionalBlock = 10
)

// ScrollRange maps the 64-bit file offset range onto a bounded control.
// It is derived state: recompute with Reconfigure whenever the file size,
// column count, or row count changes, and with SyncValue after every
// navigation that did not originate from the control itself.
type ScrollRange struct {
	Mode   ScrollMode
	Value  int
	Extent int // rows per page in exact mode, 0 in fractional mode
	Min    int
	Max    int
	Block  int // block increment for page-sized jumps
}

// TotalRows is the row count of the whole file, rounded up.
func TotalRows(fileSize int64, columns int) int64 {
	if fileSize <= 0 {
		return 0
	}
	return (fileSize + int64(columns) - 1) / int64(columns)
}

// Reconfigure picks the mode and bounds for the current configuration.
// The value is left for SyncValue to set.
func (r *ScrollRange) Reconfigure(fileSize int64, columns, rows int) {
	total := TotalRows(fileSize, columns)
	if total <= exactRowLimit {
		r.Mode = ModeExact
		r.Extent = rows
		r.Min = 0
		r.Max = int(total)
		r.Block = rows - scrollKeep
	} else {
		r.Mode = ModeFractional
		r.Extent = 0
		r.Min = 0
		r.Max = FractionalMax
		r.Block = fractionalBlock
	}
}

// SyncValue writes the control value for the viewport's position. This is
// the programmatic direction: the host must not treat the resulting value
// change as a user scroll. Navigations that originate from the control
// arrive as IntentScrollTo, and the host skips this call for them — that
// intent kind is the single source of truth for "came from the control".
func (r *ScrollRange) SyncValue(vp *Viewport) {
	if vp.DisplayStart <= 0 || vp.FileSize <= 0 {
		r.Value = 0
		return
	}
	if r.Mode == ModeExact {
		r.Value = int(vp.DisplayStart / int64(vp.Columns))
		return
	}
	// Truncate rather than round so the maximum value never maps past
	// end of file; value 1 is reserved for "past start but near it",
	// keeping 0 unambiguous as true start of file.
	v := int(float64(vp.DisplayStart) / float64(vp.FileSize) * FractionalMax)
	if v < 1 {
		v = 1
	}
	r.Value = v
}

// OffsetForValue converts a control value back to a file offset. The
// result is a raw target: the viewport clamps and aligns it.
func (r *ScrollRange) OffsetForValue(value int, vp *Viewport) int64 {
	if value < r.Min {
		value = r.Min
	}
	if value > r.Max {
		value = r.Max
	}
	if r.Mode == ModeExact {
		return int64(value) * int64(vp.Columns)
	}
	return int64(float64(vp.FileSize) * float64(value) / FractionalMax)
}
