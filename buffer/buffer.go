package buffer

import "strings"

// DefaultHistoryLimit bounds the undo stack when Options leaves it zero.
const DefaultHistoryLimit = 1000

type Options struct {
	// HistoryLimit is the number of undo steps kept. Negative disables
	// history.
	HistoryLimit int
}

// Buffer is the pure document state: text and cursor.
type Buffer struct {
	lines [][]rune

	// version changes on every effective mutation (text or cursor);
	// textVersion only when the text changes.
	version     uint64
	textVersion uint64

	cursor Pos

	hist history
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = DefaultHistoryLimit
	}
	return &Buffer{
		lines: splitLines(text),
		hist:  history{limit: opt.HistoryLimit},
	}
}

// Clone returns an independent copy of b, history included.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		lines:       make([][]rune, len(b.lines)),
		version:     b.version,
		textVersion: b.textVersion,
		cursor:      b.cursor,
		hist:        b.hist.clone(),
	}
	for i, line := range b.lines {
		out.lines[i] = append([]rune(nil), line...)
	}
	return out
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// LineCount returns the number of logical lines (at least 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	return lines
}
