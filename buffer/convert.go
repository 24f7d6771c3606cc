package buffer

import "unicode/utf16"

// Len returns the document length in UTF-16 code units.
func (b *Buffer) Len() int {
	n := 0
	for row, line := range b.lines {
		n += runesLen(line)
		if row < len(b.lines)-1 {
			n++
		}
	}
	return n
}

// OffsetFromPos converts a position into a UTF-16 offset. pos is clamped.
func (b *Buffer) OffsetFromPos(pos Pos) int {
	pos = b.clampPos(pos)
	off := 0
	for row := 0; row < pos.Row; row++ {
		off += runesLen(b.lines[row]) + 1
	}
	return off + runesLen(b.lines[pos.Row][:pos.Col])
}

// PosFromOffset converts a UTF-16 offset into a position. Offsets outside
// the document clamp to its ends; an offset inside a surrogate pair maps to
// the position before that character.
func (b *Buffer) PosFromOffset(off int) Pos { return b.posFromOffset(off) }

// CursorOffset returns the cursor as a UTF-16 offset.
func (b *Buffer) CursorOffset() int { return b.OffsetFromPos(b.cursor) }

// SetCursorOffset moves the cursor to a UTF-16 offset.
func (b *Buffer) SetCursorOffset(off int) { b.SetCursor(b.posFromOffset(off)) }

func (b *Buffer) posFromOffset(off int) Pos {
	if off <= 0 {
		return Pos{}
	}
	cur := 0
	for row, line := range b.lines {
		for col, r := range line {
			w := utf16.RuneLen(r)
			if w < 0 {
				w = 1
			}
			if cur+w > off {
				return Pos{Row: row, Col: col}
			}
			cur += w
		}
		if cur == off || row == len(b.lines)-1 {
			return Pos{Row: row, Col: len(line)}
		}
		cur++ // newline
		if cur == off {
			return Pos{Row: row + 1, Col: 0}
		}
	}
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

func runesLen(line []rune) int {
	n := 0
	for _, r := range line {
		w := utf16.RuneLen(r)
		if w < 0 {
			w = 1
		}
		n += w
	}
	return n
}
