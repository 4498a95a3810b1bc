package view

import (
	"hexview/internal/hexfile"
)

// Grid is one render-ready page: formatted rows, with the end-of-file
// marker as the final row when the true end is visible. Recomputed on
// every render, never cached.
type Grid struct {
	Rows  []string
	AtEOF bool
}

// RenderGrid produces the page at the viewport's position. It asks the
// session to cover the display range (refilling the byte window on a miss)
// and formats one row per line of available data; trailing empty rows are
// omitted, but a partial final row is blank-padded to full width by the
// formatter. A read failure is returned as-is: fatal to the session.
func RenderGrid(s *hexfile.Session, vp *Viewport) (Grid, error) {
	digits := OffsetDigits(vp.FileSize)
	size := vp.DisplaySize()

	if s != nil && size > 0 {
		if err := s.Ensure(vp.DisplayStart, size); err != nil {
			return Grid{}, err
		}
	}

	var grid Grid
	offset := vp.DisplayStart
	remaining := size
	for row := 0; row < vp.Rows && remaining > 0; row++ {
		n := vp.Columns
		if n > remaining {
			n = remaining
		}
		grid.Rows = append(grid.Rows, FormatRow(s.Slice(offset, n), offset, vp.Columns, digits))
		offset += int64(n)
		remaining -= n
	}

	if vp.DisplayStart+int64(size) >= vp.FileSize {
		grid.AtEOF = true
		grid.Rows = append(grid.Rows, EndOfFileMarker)
	}
	return grid, nil
}
