// Package view is the display core: viewport arithmetic, row formatting,
// and the scroll-range mapping. Everything here is pure computation over a
// session's byte window; nothing touches the terminal.
package view

import (
	"math"

	verr "hexview/internal/errors"
)

// Inclusive ranges and defaults for the display configuration.
const (
	ColumnMin     = 1
	ColumnMax     = 99
	ColumnDefault = 16

	RowMin     = 2
	RowMax     = 99
	RowDefault = 24

	// Rows of context kept when moving by a page.
	scrollKeep = 1
)

type IntentKind int

const (
	IntentToStart IntentKind = iota
	IntentToEnd
	IntentLineUp
	IntentLineDown
	IntentPageUp
	IntentPageDown
	IntentToOffset
	// IntentScrollTo carries an offset already resolved from a scroll
	// control value. It navigates exactly like IntentToOffset; the
	// distinct kind tells the host the update originated from the
	// control, so the control's own value must not be rewritten.
	IntentScrollTo
)

// Intent is one navigation request from the host UI.
type Intent struct {
	Kind   IntentKind
	Lines  int   // line count for IntentLineUp / IntentLineDown; 0 means 1
	Offset int64 // target for IntentToOffset / IntentScrollTo
}

// Viewport owns the display position and dimensions, and derives the valid
// offset range from the file size. The display start is always a multiple
// of the column count and never past the first row of the last page.
type Viewport struct {
	DisplayStart int64
	Rows         int
	Columns      int
	FileSize     int64

	// Enablement for the backward (start, page up, line up) and forward
	// (line down, page down, end) control groups. Recomputed, backward
	// first, on every Navigate call.
	CanGoBackward bool
	CanGoForward  bool
}

func NewViewport(rows, columns int, fileSize int64) *Viewport {
	v := &Viewport{Rows: rows, Columns: columns, FileSize: fileSize}
	v.clamp()
	return v
}

// Navigate applies one intent and re-clamps. Requests past either end of
// the file are clamped, never rejected. An unknown intent kind is a
// programming fault: the viewport is left untouched and a LogicError
// returned for the diagnostic channel.
func (v *Viewport) Navigate(in Intent) error {
	switch in.Kind {
	case IntentToStart:
		v.DisplayStart = 0
	case IntentToEnd:
		v.DisplayStart = v.FileSize
	case IntentLineUp:
		v.DisplayStart = satAdd(v.DisplayStart, -int64(lineCount(in))*int64(v.Columns))
	case IntentLineDown:
		v.DisplayStart = satAdd(v.DisplayStart, int64(lineCount(in))*int64(v.Columns))
	case IntentPageUp:
		v.DisplayStart = satAdd(v.DisplayStart, -int64(v.Rows-scrollKeep)*int64(v.Columns))
	case IntentPageDown:
		v.DisplayStart = satAdd(v.DisplayStart, int64(v.Rows-scrollKeep)*int64(v.Columns))
	case IntentToOffset, IntentScrollTo:
		v.DisplayStart = in.Offset
	default:
		return verr.NewLogicError("unknown navigation intent %d", in.Kind)
	}
	v.clamp()
	return nil
}

// SetColumns changes the bytes-per-row count and re-clamps: both the
// alignment and the last-page offset depend on it.
func (v *Viewport) SetColumns(n int) error {
	if n < ColumnMin || n > ColumnMax {
		return verr.NewConfigError("columns", "",
			"number of columns must be from 1 to 99")
	}
	v.Columns = n
	v.clamp()
	return nil
}

// SetRows changes the rows-per-page count and re-clamps.
func (v *Viewport) SetRows(n int) error {
	if n < RowMin || n > RowMax {
		return verr.NewConfigError("rows", "",
			"number of rows must be from 2 to 99")
	}
	v.Rows = n
	v.clamp()
	return nil
}

// SetFileSize installs the size of a newly opened (or closed) file and
// re-clamps the position against it.
func (v *Viewport) SetFileSize(size int64) {
	v.FileSize = size
	v.clamp()
}

// GridSize is the maximum number of bytes on one page.
func (v *Viewport) GridSize() int {
	return v.Rows * v.Columns
}

// DisplaySize is the number of bytes actually available for this page.
func (v *Viewport) DisplaySize() int {
	size := v.FileSize - v.DisplayStart
	if grid := int64(v.GridSize()); size > grid {
		size = grid
	}
	if size < 0 {
		size = 0
	}
	return int(size)
}

// LastPageStart is the offset of the first row of the final page.
func (v *Viewport) LastPageStart() int64 {
	if v.FileSize <= 0 {
		return 0
	}
	last := v.FileSize - 1
	last -= last % int64(v.Columns)
	last -= int64(v.GridSize())
	last += int64(v.Columns)
	if last < 0 {
		last = 0
	}
	return last
}

// clamp aligns the display start to a column boundary and limits it to the
// valid range, then recomputes the control enablement flags, backward
// before forward.
func (v *Viewport) clamp() {
	if v.FileSize <= 0 {
		v.DisplayStart = 0
		v.CanGoBackward = false
		v.CanGoForward = false
		return
	}

	if v.DisplayStart < 0 {
		v.DisplayStart = 0
	}
	v.DisplayStart -= v.DisplayStart % int64(v.Columns)

	last := v.LastPageStart()
	if v.DisplayStart > last {
		v.DisplayStart = last
	}

	v.CanGoBackward = v.DisplayStart > 0
	v.CanGoForward = v.DisplayStart < last
}

func lineCount(in Intent) int {
	if in.Lines <= 0 {
		return 1
	}
	return in.Lines
}

// satAdd adds without wrapping; offsets saturate at the int64 limits and
// are then clamped to the file by the caller.
func satAdd(a, b int64) int64 {
	s := a + b
	if b > 0 && s < a {
		return math.MaxInt64
	}
	if b < 0 && s > a {
		return math.MinInt64
	}
	return s
}
