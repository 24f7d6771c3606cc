package editor

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/genkou/fullwidth"
	"github.com/iw2rmb/genkou/grid"
	"github.com/iw2rmb/genkou/internal/cellwidth"
	"github.com/iw2rmb/genkou/section"
)

// Width of the counter column right of the grid.
const counterWidth = 4

// wideTail fills the second cell of a character that takes two code units.
const wideTail = " "

func (m Model) renderContent() string {
	if m.sec == nil {
		return ""
	}
	if !m.sec.Settings().GridMode {
		return m.renderPlain()
	}
	return m.renderGrid(m.sec.Layout())
}

func (m Model) renderGrid(v grid.View) string {
	st := m.cfg.Style
	lines := grid.SplitLines(m.sec.Text())
	cpl := v.Params.CharsPerLine
	maxRows := grid.MaxLines(v.Params.MaxChars, cpl)
	digits := gutterDigits(v.Rows)

	out := make([]string, 0, v.Rows)
	for row := 0; row < v.Rows; row++ {
		var sb strings.Builder
		if m.cfg.ShowRowNumbers {
			sb.WriteString(st.RowNum.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(st.Gutter.Render(" "))
		}

		var vl *grid.VirtualLine
		var cells []string
		if row < len(v.Lines) {
			vl = &v.Lines[row]
			cells = segmentCells(fullwidth.Slice(lines[vl.Line], vl.Start, vl.End))
		}
		for col := 0; col < cpl; col++ {
			glyph := ""
			if col < len(cells) {
				glyph = cells[col]
			}
			sb.WriteString(m.renderCell(grid.Cell{Row: row, Col: col}, glyph, v, maxRows))
		}

		sb.WriteString(" ")
		sb.WriteString(m.renderCounter(vl))
		if m.focused && row == v.Cursor.Row && v.CaretCountVisible {
			sb.WriteString(" ")
			sb.WriteString(st.CaretCount.Render(fmt.Sprintf("(%d)", v.CaretCount)))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// segmentCells spreads a row segment over cells, one code unit per cell.
func segmentCells(seg string) []string {
	cells := make([]string, 0, len(seg))
	for _, r := range seg {
		cells = append(cells, string(r))
		if utf16.RuneLen(r) == 2 {
			cells = append(cells, wideTail)
		}
	}
	return cells
}

func (m Model) renderCell(c grid.Cell, glyph string, v grid.View, maxRows int) string {
	st := m.cfg.Style
	disabled := v.IsDisabled(c)

	var s string
	var style lipgloss.Style
	switch {
	case glyph == "" && disabled:
		s, style = disabledCellGlyph, st.Disabled
	case glyph == "":
		s, style = emptyCellGlyph, st.Empty
	case disabled || c.Row >= maxRows:
		s, style = glyph, st.Overflow
	default:
		s, style = glyph, st.Cell
	}
	if m.focused && c == v.Cursor {
		style = st.Cursor
	}
	return style.Render(cellwidth.Cell(s))
}

func (m Model) renderCounter(vl *grid.VirtualLine) string {
	st := m.cfg.Style
	if vl == nil {
		return strings.Repeat(" ", counterWidth)
	}
	switch vl.Kind {
	case grid.RowCounted:
		return st.Counter.Render(fmt.Sprintf("%*d", counterWidth, vl.Count))
	case grid.RowCarryOver:
		return st.CarryOver.Render(fmt.Sprintf("%*s", counterWidth, carryOverGlyph))
	default:
		return strings.Repeat(" ", counterWidth)
	}
}

// renderPlain draws the text one physical line per row, without a grid.
func (m Model) renderPlain() string {
	st := m.cfg.Style
	b := m.sec.Buffer()
	cur := b.Cursor()
	digits := gutterDigits(b.LineCount())

	out := make([]string, 0, b.LineCount())
	for row := 0; row < b.LineCount(); row++ {
		var sb strings.Builder
		if m.cfg.ShowRowNumbers {
			sb.WriteString(st.RowNum.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(st.Gutter.Render(" "))
		}
		line := []rune(b.Line(row))
		if !m.focused || cur.Row != row {
			sb.WriteString(st.Cell.Render(string(line)))
			out = append(out, sb.String())
			continue
		}
		col := cur.Col
		if col > len(line) {
			col = len(line)
		}
		sb.WriteString(st.Cell.Render(string(line[:col])))
		if col < len(line) {
			sb.WriteString(st.Cursor.Render(string(line[col])))
			sb.WriteString(st.Cell.Render(string(line[col+1:])))
		} else {
			sb.WriteString(st.Cursor.Render(" "))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m Model) statusLine() string {
	st := m.cfg.Style
	v := m.sec.Layout()
	s := fmt.Sprintf("%d/%d字  空白除く%d字  %d行",
		v.Stats.Chars, v.Params.MaxChars, v.Stats.NonSpace, v.Stats.Lines)
	if m.sec.Settings().GridMode {
		s += fmt.Sprintf("  マス%d/%d行", v.Stats.GridLines, grid.MaxLines(v.Params.MaxChars, v.Params.CharsPerLine))
	}
	if m.sec.State() == section.Composing {
		s += "  [変換中]"
	}
	if !m.sec.Settings().Editable {
		s += "  [閲覧のみ]"
	}
	out := st.Status.Render(s)
	if m.err != nil {
		out += "  " + st.Error.Render(m.err.Error())
	}
	return out
}

func gutterDigits(rows int) int {
	if rows < 1 {
		rows = 1
	}
	return len(strconv.Itoa(rows))
}

// gutterWidth returns the columns taken by the row numbers, if shown.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowRowNumbers || m.sec == nil {
		return 0
	}
	rows := m.sec.Buffer().LineCount()
	if m.sec.Settings().GridMode {
		rows = m.sec.Layout().Rows
	}
	return gutterDigits(rows) + 1
}
