package editor

import (
	"github.com/iw2rmb/genkou/buffer"
	"github.com/iw2rmb/genkou/grid"
	"github.com/iw2rmb/genkou/internal/cellwidth"
)

// screenToOffset maps a viewport-relative point to a caret offset.
func (m Model) screenToOffset(x, y int) int {
	x -= m.gutterWidth()
	if x < 0 {
		x = 0
	}
	row := m.viewport.YOffset + y
	if row < 0 {
		row = 0
	}

	if m.sec.Settings().GridMode {
		v := m.sec.Layout()
		col := x / cellwidth.CellColumns
		// Clicking the counter column lands at the end of the row.
		if col > v.Params.CharsPerLine {
			col = v.Params.CharsPerLine
		}
		return grid.OffsetAt(m.sec.Text(), grid.Cell{Row: row, Col: col}, v.Params.CharsPerLine)
	}

	b := m.sec.Buffer()
	if row >= b.LineCount() {
		return b.Len()
	}
	return b.OffsetFromPos(buffer.Pos{Row: row, Col: columnAt(b.Line(row), x)})
}

// columnAt returns the rune column under terminal column x of line.
func columnAt(line string, x int) int {
	w, col := 0, 0
	for _, r := range line {
		rw := cellwidth.Width(string(r))
		if x < w+rw {
			return col
		}
		w += rw
		col++
	}
	return col
}
