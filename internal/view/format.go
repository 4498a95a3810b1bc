package view

import (
	"fmt"
	"strings"
)

// EndOfFileMarker is appended after the last row once the true end of the
// file is visible. Nothing is appended mid-file.
const EndOfFileMarker = "-- end of file --"

const substituteChar = '.'

// OffsetDigits picks the width of the offset field from the file size:
// 8 hex digits for files up to 4 GiB, 12 up to 256 TiB, 16 beyond.
func OffsetDigits(fileSize int64) int {
	if fileSize > 0xFFFFFFFFFFFF {
		return 16
	}
	if fileSize > 0xFFFFFFFF {
		return 12
	}
	return 8
}

// offsetFieldWidth is the rendered width of the grouped offset field.
func offsetFieldWidth(offsetDigits int) int {
	return offsetDigits + (offsetDigits-1)/4
}

// groupOffset renders offset zero-padded to the given digit count, with a
// ':' separator every four digits from the low end.
func groupOffset(offset int64, offsetDigits int) string {
	s := fmt.Sprintf("%0*X", offsetDigits, offset)
	var groups []string
	for len(s) > 4 {
		groups = append([]string{s[len(s)-4:]}, groups...)
		s = s[:len(s)-4]
	}
	groups = append([]string{s}, groups...)
	return strings.Join(groups, ":")
}

// FormatRow renders one fixed-width display row: grouped offset, a vertical
// bar, the hex byte grid (extra space before every fourth byte), a second
// bar, and the printable-ASCII column with '.' for anything outside
// 0x20..0x7E. Columns past len(data) are blank-padded so every row in a
// page has the same width. Pure and deterministic.
func FormatRow(data []byte, offset int64, columns, offsetDigits int) string {
	var b strings.Builder
	b.Grow(offsetFieldWidth(offsetDigits) + 4*columns + columns/4 + 2)

	b.WriteString(groupOffset(offset, offsetDigits))
	b.WriteByte('|')

	for i := 0; i < columns; i++ {
		if i > 0 {
			b.WriteByte(' ')
			if i%4 == 0 {
				b.WriteByte(' ')
			}
		}
		if i < len(data) {
			fmt.Fprintf(&b, "%02X", data[i])
		} else {
			b.WriteString("  ")
		}
	}

	b.WriteByte('|')

	for i := 0; i < columns; i++ {
		if i < len(data) {
			if data[i] >= 0x20 && data[i] < 0x7F {
				b.WriteByte(data[i])
			} else {
				b.WriteByte(substituteChar)
			}
		} else {
			b.WriteByte(' ')
		}
	}

	return b.String()
}

// RowWidth is the constant width of every row produced by FormatRow for
// the given configuration.
func RowWidth(columns, offsetDigits int) int {
	hex := 3*columns - 1 + (columns-1)/4
	return offsetFieldWidth(offsetDigits) + 1 + hex + 1 + columns
}

// FormatHeader renders a column-index ruler aligned with FormatRow output.
func FormatHeader(columns, offsetDigits int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", offsetFieldWidth(offsetDigits)+1))
	for i := 0; i < columns; i++ {
		if i > 0 {
			b.WriteByte(' ')
			if i%4 == 0 {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintf(&b, "%02X", i)
	}
	return b.String()
}
