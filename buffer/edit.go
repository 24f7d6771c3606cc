package buffer

import "strings"

// InsertText inserts text (which may contain '\n') at the cursor.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	prev := b.current()
	b.cursor = b.insertAt(b.cursor, s)
	b.commit(prev)
}

// InsertRune inserts a single rune at the cursor.
func (b *Buffer) InsertRune(r rune) { b.InsertText(string(r)) }

// InsertNewline inserts a line break at the cursor.
func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return
	}
	prev := b.current()
	if col > 0 {
		line := b.lines[row]
		b.lines[row] = append(line[:col-1:col-1], line[col:]...)
		b.cursor = Pos{Row: row, Col: col - 1}
		b.commit(prev)
		return
	}

	// Join with previous line (delete the newline).
	prevLen := len(b.lines[row-1])
	b.lines[row-1] = append(b.lines[row-1], b.lines[row]...)
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.cursor = Pos{Row: row - 1, Col: prevLen}
	b.commit(prev)
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.Col
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return
	}
	prev := b.current()
	if col < len(b.lines[row]) {
		line := b.lines[row]
		b.lines[row] = append(line[:col:col], line[col+1:]...)
		b.commit(prev)
		return
	}

	// Join with next line (delete the newline).
	b.lines[row] = append(b.lines[row], b.lines[row+1]...)
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	b.commit(prev)
}

// SetText replaces the whole document and places the cursor at the UTF-16
// offset caret (clamped). It is a single undoable step; replacing the text
// with itself only moves the cursor.
func (b *Buffer) SetText(text string, caret int) {
	if text == b.Text() {
		b.SetCursor(b.posFromOffset(caret))
		return
	}
	prev := b.current()
	b.lines = splitLines(text)
	b.cursor = b.posFromOffset(caret)
	b.commit(prev)
}

func (b *Buffer) insertAt(p Pos, s string) Pos {
	p = b.clampPos(p)
	line := b.lines[p.Row]
	prefix := append([]rune(nil), line[:p.Col]...)
	suffix := append([]rune(nil), line[p.Col:]...)

	parts := strings.Split(s, "\n")
	repl := make([][]rune, 0, len(parts))
	for _, part := range parts {
		repl = append(repl, []rune(part))
	}
	last := len(repl) - 1
	endCol := len(repl[last])
	if last == 0 {
		endCol += len(prefix)
	}
	repl[0] = append(prefix, repl[0]...)
	repl[last] = append(repl[last], suffix...)

	out := make([][]rune, 0, len(b.lines)+last)
	out = append(out, b.lines[:p.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[p.Row+1:]...)
	b.lines = out
	return Pos{Row: p.Row + last, Col: endCol}
}

func (b *Buffer) commit(prev entry) {
	b.version++
	b.textVersion++
	b.recordUndo(prev)
}
