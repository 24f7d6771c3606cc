package grid

import (
	"strings"

	"github.com/iw2rmb/genkou/fullwidth"
)

// RowKind classifies a virtual row.
type RowKind int

const (
	// RowEmpty is the single row of an empty physical line; no counter.
	RowEmpty RowKind = iota
	// RowCounted is the last row of a physical line; it shows the line's
	// full length.
	RowCounted
	// RowCarryOver is a continuation row of an overflowing physical line.
	RowCarryOver
)

// VirtualLine is one row of the grid.
type VirtualLine struct {
	Index int
	Kind  RowKind

	// Line is the physical line index the row belongs to.
	Line int
	// Start and End delimit the row's segment within the physical line,
	// in code units: [Start, End).
	Start, End int
	// Count is the length of the whole physical line. Meaningful for
	// RowCounted rows.
	Count int
}

// LineCount is a displayed counter at a virtual row.
type LineCount struct {
	VirtualLine int
	Count       int
}

// Counts holds the counters and carry-over markers of a text.
type Counts struct {
	Counts    []LineCount
	CarryOver []int
}

// Cell addresses one grid cell.
type Cell struct {
	Row int
	Col int
}

// SplitLines splits text on line feeds. It always returns at least one line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// PhysicalLineCount returns the number of newline-delimited lines in text.
func PhysicalLineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// rowsFor returns the number of virtual rows a line of length n occupies.
func rowsFor(n, charsPerLine int) int {
	if n <= 0 {
		return 1
	}
	return ceilDiv(n, charsPerLine)
}

// VirtualLines lays text out into rows of charsPerLine cells.
func VirtualLines(text string, charsPerLine int) []VirtualLine {
	if charsPerLine <= 0 {
		charsPerLine = DefaultCharsPerLine
	}
	lines := SplitLines(text)
	out := make([]VirtualLine, 0, len(lines))
	idx := 0
	for li, line := range lines {
		n := fullwidth.Len(line)
		if n == 0 {
			out = append(out, VirtualLine{Index: idx, Kind: RowEmpty, Line: li})
			idx++
			continue
		}
		rows := rowsFor(n, charsPerLine)
		for k := 0; k < rows; k++ {
			vl := VirtualLine{
				Index: idx,
				Kind:  RowCarryOver,
				Line:  li,
				Start: k * charsPerLine,
				End:   minInt((k+1)*charsPerLine, n),
			}
			if k == rows-1 {
				vl.Kind = RowCounted
				vl.Count = n
			}
			out = append(out, vl)
			idx++
		}
	}
	return out
}

// LineCharCounts returns the per-row counters and carry-over markers of
// text laid out at charsPerLine.
func LineCharCounts(text string, charsPerLine int) Counts {
	return countsOf(VirtualLines(text, charsPerLine))
}

func countsOf(lines []VirtualLine) Counts {
	var c Counts
	for _, vl := range lines {
		switch vl.Kind {
		case RowCounted:
			c.Counts = append(c.Counts, LineCount{VirtualLine: vl.Index, Count: vl.Count})
		case RowCarryOver:
			c.CarryOver = append(c.CarryOver, vl.Index)
		}
	}
	return c
}

// CursorVirtualPosition locates the caret, a code-unit offset into text, on
// the grid.
func CursorVirtualPosition(text string, caret, charsPerLine int) Cell {
	if charsPerLine <= 0 {
		charsPerLine = DefaultCharsPerLine
	}
	before := fullwidth.Slice(text, 0, caret)
	lineIdx := strings.Count(before, "\n")
	inLine := fullwidth.Len(before[strings.LastIndexByte(before, '\n')+1:])

	lines := SplitLines(text)
	row := 0
	for i := 0; i < lineIdx && i < len(lines); i++ {
		row += rowsFor(fullwidth.Len(lines[i]), charsPerLine)
	}
	return Cell{
		Row: row + inLine/charsPerLine,
		Col: inLine % charsPerLine,
	}
}

// OffsetAt maps a grid cell back to a caret offset into text; it inverts
// CursorVirtualPosition. A column past the end of a row's segment lands on
// the segment end, and a row past the layout lands on the end of text.
func OffsetAt(text string, c Cell, charsPerLine int) int {
	if charsPerLine <= 0 {
		charsPerLine = DefaultCharsPerLine
	}
	if c.Row < 0 {
		c = Cell{}
	}
	if c.Col < 0 {
		c.Col = 0
	}
	row, base := 0, 0
	for _, line := range SplitLines(text) {
		n := fullwidth.Len(line)
		rows := rowsFor(n, charsPerLine)
		if c.Row < row+rows {
			k := c.Row - row
			if k == rows-1 && c.Col >= charsPerLine {
				return base + n
			}
			return base + minInt(k*charsPerLine+minInt(c.Col, charsPerLine-1), n)
		}
		row += rows
		base += n + 1
	}
	return fullwidth.Len(text)
}

// CaretLineCount returns the number of characters between the start of the
// caret's physical line and the caret.
func CaretLineCount(text string, caret int) int {
	before := fullwidth.Slice(text, 0, caret)
	return fullwidth.Len(before[strings.LastIndexByte(before, '\n')+1:])
}

// DisabledCells returns the cells of the last allowed row that lie past the
// budget. It is empty when maxChars is a multiple of charsPerLine.
func DisabledCells(maxChars, charsPerLine int) []Cell {
	if charsPerLine <= 0 || maxChars <= 0 {
		return nil
	}
	rem := maxChars % charsPerLine
	if rem == 0 {
		return nil
	}
	row := MaxLines(maxChars, charsPerLine) - 1
	out := make([]Cell, 0, charsPerLine-rem)
	for col := rem; col < charsPerLine; col++ {
		out = append(out, Cell{Row: row, Col: col})
	}
	return out
}

// LineLimitReached reports whether text already has as many physical lines
// as the budget allows rows.
func LineLimitReached(text string, maxChars, charsPerLine int) bool {
	return PhysicalLineCount(text) >= MaxLines(maxChars, charsPerLine)
}

// ExceedsLineLimit reports whether replacing prev with next would push the
// physical line count past the budget. Edits that keep or lower the line
// count are never refused, even when prev is already over the limit.
func ExceedsLineLimit(prev, next string, maxChars, charsPerLine int) bool {
	n := PhysicalLineCount(next)
	return n > MaxLines(maxChars, charsPerLine) && n > PhysicalLineCount(prev)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
