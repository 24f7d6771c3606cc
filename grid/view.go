package grid

import (
	"unicode"

	"github.com/iw2rmb/genkou/fullwidth"
)

// Stats are the document counters shown next to a section.
type Stats struct {
	// Chars is the total length including whitespace and newlines.
	Chars int
	// NonSpace excludes every Unicode whitespace character.
	NonSpace int
	// Lines is the number of physical lines.
	Lines int
	// GridLines is the number of virtual rows.
	GridLines int
}

// View is the derived layout of one section, recomputed after every
// mutation.
type View struct {
	Params Params

	Lines    []VirtualLine
	Counts   Counts
	Cursor   Cell
	Disabled []Cell

	// CaretCount is the caret's in-line character count; CaretCountVisible
	// is false when that count falls on a row boundary.
	CaretCount        int
	CaretCountVisible bool

	// Rows is the number of grid rows to draw: the budget's row count or
	// the laid-out rows, whichever is larger.
	Rows int

	LimitReached bool
	Stats        Stats
}

// Recompute derives the full layout of text with the caret at caret.
func Recompute(text string, caret int, p Params) View {
	p = p.Normalize()
	lines := VirtualLines(text, p.CharsPerLine)

	caretCount := CaretLineCount(text, caret)
	return View{
		Params:            p,
		Lines:             lines,
		Counts:            countsOf(lines),
		Cursor:            CursorVirtualPosition(text, caret, p.CharsPerLine),
		Disabled:          DisabledCells(p.MaxChars, p.CharsPerLine),
		CaretCount:        caretCount,
		CaretCountVisible: caretCount%p.CharsPerLine != 0,
		Rows:              maxInt(MaxLines(p.MaxChars, p.CharsPerLine), len(lines)),
		LimitReached:      LineLimitReached(text, p.MaxChars, p.CharsPerLine),
		Stats:             ComputeStats(text, p.CharsPerLine),
	}
}

// ComputeStats counts characters and lines of text.
func ComputeStats(text string, charsPerLine int) Stats {
	if charsPerLine <= 0 {
		charsPerLine = DefaultCharsPerLine
	}
	st := Stats{Chars: fullwidth.Len(text)}
	for _, r := range text {
		if !unicode.IsSpace(r) {
			st.NonSpace += fullwidth.Len(string(r))
		}
	}
	for _, line := range SplitLines(text) {
		st.Lines++
		st.GridLines += rowsFor(fullwidth.Len(line), charsPerLine)
	}
	return st
}

// IsDisabled reports whether c is one of v's disabled cells.
func (v View) IsDisabled(c Cell) bool {
	for _, d := range v.Disabled {
		if d == c {
			return true
		}
	}
	return false
}
