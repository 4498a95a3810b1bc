package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetDigits(t *testing.T) {
	assert.Equal(t, 8, OffsetDigits(0))
	assert.Equal(t, 8, OffsetDigits(0xFFFFFFFF))
	assert.Equal(t, 12, OffsetDigits(0xFFFFFFFF+1))
	assert.Equal(t, 12, OffsetDigits(0xFFFFFFFFFFFF))
	assert.Equal(t, 16, OffsetDigits(0xFFFFFFFFFFFF+1))
}

func TestGroupOffset(t *testing.T) {
	assert.Equal(t, "0000:0000", groupOffset(0, 8))
	assert.Equal(t, "0001:E240", groupOffset(123456, 8))
	assert.Equal(t, "0000:0000:0020", groupOffset(0x20, 12))
	assert.Equal(t, "0123:4567:89AB:CDEF", groupOffset(0x0123456789ABCDEF, 16))
}

func TestFormatRowFull(t *testing.T) {
	row := FormatRow([]byte("Hello, World!!!!"), 0, 16, 8)
	assert.Equal(t,
		"0000:0000|48 65 6C 6C  6F 2C 20 57  6F 72 6C 64  21 21 21 21|Hello, World!!!!",
		row)
	assert.Len(t, row, RowWidth(16, 8))
}

func TestFormatRowSubstitution(t *testing.T) {
	// 0x20..0x7E render as themselves, everything else as '.'.
	row := FormatRow([]byte{0x00, 0x7F, 0x20, 0x7E, 0x1F, 0xFF}, 0, 8, 8)
	parts := strings.Split(row, "|")
	assert.Equal(t, ".. ~..  ", parts[2])
}

func TestFormatRowBlankPadding(t *testing.T) {
	// A short final row keeps the full grid width, with blank columns.
	row := FormatRow([]byte{0x00, 0x7F, 0x20, 0x7E, 0x41}, 0x20, 16, 8)
	assert.Len(t, row, RowWidth(16, 8))
	assert.True(t, strings.HasPrefix(row, "0000:0020|00 7F 20 7E  41"))
	assert.True(t, strings.HasSuffix(row, "|.. ~A           "))
}

func TestRowWidthConstantAcrossFill(t *testing.T) {
	for _, columns := range []int{1, 4, 16, 17, 99} {
		full := FormatRow(make([]byte, columns), 0, columns, 8)
		for n := 0; n <= columns; n++ {
			partial := FormatRow(make([]byte, n), 0, columns, 8)
			assert.Lenf(t, partial, len(full), "columns=%d fill=%d", columns, n)
		}
		assert.Len(t, full, RowWidth(columns, 8))
	}
}

func TestFormatHeaderAligned(t *testing.T) {
	header := FormatHeader(16, 8)
	row := FormatRow(make([]byte, 16), 0, 16, 8)
	// The header's byte indexes sit over the row's hex cells.
	assert.Equal(t, strings.Index(row, "|")+1, strings.Index(header, "00"))
	assert.Equal(t, "00 01 02 03  04 05 06 07  08 09 0A 0B  0C 0D 0E 0F",
		header[strings.Index(header, "00"):])
}
