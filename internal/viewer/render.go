package viewer

import (
	"fmt"
	"strings"

	"hexview/internal/view"
)

// Grid rows start below the legend, title and column ruler.
const gridTopLine = 3

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderLegend())
	b.WriteString("\n")

	switch m.view {
	case ViewHelp:
		b.WriteString(m.renderHelp())
	case ViewGoto:
		b.WriteString(m.renderGoto())
	case ViewOpen:
		b.WriteString(m.renderOpen())
	case ViewColumns:
		b.WriteString(m.renderDimension("COLUMNS", "Columns (1-99): "))
	case ViewRows:
		b.WriteString(m.renderDimension("ROWS", "Rows (2-99): "))
	default:
		b.WriteString(m.renderMainView())
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		if m.statusIsErr {
			b.WriteString(m.styles.Error.Render(m.statusMsg))
		} else {
			b.WriteString(m.statusMsg)
		}
	}

	return b.String()
}

func (m *Model) renderLegend() string {
	var items []string

	hl := func(text string, highlightIdx int) string {
		var result strings.Builder
		for i, ch := range text {
			if i == highlightIdx {
				result.WriteString(m.styles.LegendKey.Render(string(ch)))
			} else {
				result.WriteString(m.styles.Legend.Render(string(ch)))
			}
		}
		return result.String()
	}

	items = append(items, hl("Quit", 0))
	items = append(items, hl("Help", 0))

	if m.view == ViewMain {
		items = append(items, hl("Open", 0))
		if m.session != nil {
			items = append(items, hl("Goto", 0))
			items = append(items, hl("Columns", 0))
			items = append(items, hl("Rows", 0))
			items = append(items, hl("close Window", 7))
		} else {
			items = append(items, m.styles.Disabled.Render("Goto"))
			items = append(items, m.styles.Disabled.Render("Columns"))
			items = append(items, m.styles.Disabled.Render("Rows"))
		}
	} else {
		items = append(items, m.styles.LegendKey.Render("ESC")+" Back")
	}

	legend := strings.Join(items, m.styles.Legend.Render(" | "))
	return m.styles.Legend.Width(m.width).Render(legend)
}

func (m *Model) renderMainView() string {
	var b strings.Builder

	title := "Hex File Viewer"
	if m.session != nil {
		title += " - " + m.session.Path()
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	if m.session == nil {
		b.WriteString("\nNo file open. Press O to open a file.\n")
		return b.String()
	}

	digits := view.OffsetDigits(m.vp.FileSize)
	rowWidth := view.RowWidth(m.vp.Columns, digits)

	b.WriteString(m.styles.Header.Render(view.FormatHeader(m.vp.Columns, digits)))
	b.WriteString("\n")

	// The marker row can extend the grid one line past the display rows
	// when a full page ends exactly at end of file.
	lines := m.vp.Rows
	if len(m.grid.Rows) > lines {
		lines = len(m.grid.Rows)
	}

	bar := m.scrollbarRunes()
	for i := 0; i < lines; i++ {
		var row string
		if i < len(m.grid.Rows) {
			row = m.grid.Rows[i]
		}
		if row == view.EndOfFileMarker {
			b.WriteString(m.styles.Marker.Render(row))
			if pad := rowWidth - len(row); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		} else if row != "" {
			b.WriteString(m.styles.Text.Render(row))
		} else {
			b.WriteString(strings.Repeat(" ", rowWidth))
		}
		if i < len(bar) {
			b.WriteString(" ")
			b.WriteString(bar[i])
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderNavBar())
	b.WriteString("\n")
	b.WriteString(m.styles.Header.Render(m.positionStatus()))
	b.WriteString("\n")

	return b.String()
}

// renderNavBar shows the directional moves with their current enablement.
// Backward moves grey out at the start of the file, forward moves at the
// last page.
func (m *Model) renderNavBar() string {
	backward := []string{"[|<]", "[PgUp]", "[Up]"}
	forward := []string{"[Dn]", "[PgDn]", "[>|]"}

	style := func(labels []string, enabled bool) []string {
		out := make([]string, len(labels))
		for i, l := range labels {
			if enabled {
				out[i] = m.styles.Text.Render(l)
			} else {
				out[i] = m.styles.Disabled.Render(l)
			}
		}
		return out
	}

	parts := append(style(backward, m.vp.CanGoBackward),
		style(forward, m.vp.CanGoForward)...)
	return strings.Join(parts, " ")
}

// scrollbarGeometry is shared between drawing and mouse hit testing.
func (m *Model) scrollbarGeometry() (col, top, rows int) {
	digits := view.OffsetDigits(m.vp.FileSize)
	return view.RowWidth(m.vp.Columns, digits) + 1, gridTopLine, m.vp.Rows
}

// scrollbarRunes draws one track cell per grid row, with the thumb placed
// proportionally to the control value inside the control range.
func (m *Model) scrollbarRunes() []string {
	rows := m.vp.Rows
	out := make([]string, rows)
	track := m.styles.Track.Render("░")
	for i := range out {
		out[i] = track
	}

	span := m.scroll.Max - m.scroll.Min
	if span <= 0 || rows < 2 {
		out[0] = m.styles.Thumb.Render("█")
		return out
	}
	thumb := (m.scroll.Value - m.scroll.Min) * (rows - 1) / span
	if thumb < 0 {
		thumb = 0
	}
	if thumb >= rows {
		thumb = rows - 1
	}
	out[thumb] = m.styles.Thumb.Render("█")
	return out
}

func (m *Model) renderGoto() string {
	var b strings.Builder
	b.WriteString("\nGOTO OFFSET\n")
	b.WriteString("===========\n\n")
	b.WriteString("Offset: ")
	b.WriteString(m.gotoInput.View())
	b.WriteString("\n\n")
	b.WriteString("(Hexadecimal, no 0x prefix; offsets past the end go to the last page)\n")
	b.WriteString("\nPress Enter to go, ESC to close\n")

	return b.String()
}

func (m *Model) renderDimension(title, prompt string) string {
	var b strings.Builder
	b.WriteString("\n" + title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	b.WriteString(prompt)
	b.WriteString(m.dimInput.View())
	b.WriteString("\n\n")
	b.WriteString("Press Enter to apply, ESC to close\n")

	return b.String()
}

func (m *Model) renderHelp() string {
	var b strings.Builder
	b.WriteString("\nHEX FILE VIEWER HELP\n")
	b.WriteString("====================\n\n")

	keys := []struct{ key, desc string }{
		{"Up/Down", "Move one line"},
		{"PgUp/PgDn", "Move one page (keeps one overlapping row)"},
		{"Shift+Up/Down", "Move one page"},
		{"Home/End", "Start / end of file"},
		{"Wheel", fmt.Sprintf("Move %d lines (with Shift: one page)", wheelLines)},
		{"G", "Go to a hexadecimal offset"},
		{"O", "Open a file"},
		{"C", "Set the number of columns (1-99)"},
		{"R", "Set the number of rows (2-99)"},
		{"W", "Close the current file"},
		{"H", "This help"},
		{"Q/ESC", "Quit"},
	}
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", k.key, k.desc))
	}

	b.WriteString("\nPress ESC to close\n")

	return b.String()
}
