// Package cellwidth measures and pads text for a grid of two-column cells.
package cellwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CellColumns is the terminal width of one manuscript cell: wide enough
// for a full-width glyph.
const CellColumns = 2

// Width returns the terminal width of s. Text runewidth reports as zero
// wide falls back to uniseg, which knows emoji presentation sequences.
func Width(s string) int {
	w := runewidth.StringWidth(s)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(s); fallback > w {
			w = fallback
		}
	}
	return w
}

// Fit pads or truncates s to exactly cols terminal columns.
func Fit(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	w := Width(s)
	if w > cols {
		s = runewidth.Truncate(s, cols, "")
		w = Width(s)
	}
	if w < cols {
		s += strings.Repeat(" ", cols-w)
	}
	return s
}

// Cell renders s into one manuscript cell.
func Cell(s string) string { return Fit(s, CellColumns) }
