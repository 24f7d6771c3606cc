package buffer

// entry is one undo/redo state. The caret is kept as a code-unit offset,
// the unit every caller above the buffer speaks.
type entry struct {
	text  string
	caret int
}

// history holds bounded undo and redo stacks. A limit of zero or less
// disables recording.
type history struct {
	limit int
	undo  []entry
	redo  []entry
}

func (h *history) push(stack *[]entry, e entry) {
	if h.limit <= 0 {
		return
	}
	*stack = append(*stack, e)
	if n := len(*stack); n > h.limit {
		*stack = (*stack)[n-h.limit:]
	}
}

func pop(stack *[]entry) (entry, bool) {
	n := len(*stack)
	if n == 0 {
		return entry{}, false
	}
	e := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	return e, true
}

func (h history) clone() history {
	return history{
		limit: h.limit,
		undo:  append([]entry(nil), h.undo...),
		redo:  append([]entry(nil), h.redo...),
	}
}

func (b *Buffer) current() entry {
	return entry{text: b.Text(), caret: b.CursorOffset()}
}

// load installs e as the buffer state. It always counts as a text change.
func (b *Buffer) load(e entry) {
	b.lines = splitLines(e.text)
	b.cursor = b.posFromOffset(e.caret)
	b.version++
	b.textVersion++
}

// recordUndo stores prev, the state before an edit, and forgets the redo
// stack.
func (b *Buffer) recordUndo(prev entry) {
	b.hist.push(&b.hist.undo, prev)
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// ClearHistory drops undo and redo state, e.g. after the whole text was
// converted between widths.
func (b *Buffer) ClearHistory() { b.hist = history{limit: b.hist.limit} }

// Undo restores the state before the last edit and reports whether there
// was one.
func (b *Buffer) Undo() bool {
	prev, ok := pop(&b.hist.undo)
	if !ok {
		return false
	}
	b.hist.push(&b.hist.redo, b.current())
	b.load(prev)
	return true
}

// Redo reapplies the last undone edit.
func (b *Buffer) Redo() bool {
	next, ok := pop(&b.hist.redo)
	if !ok {
		return false
	}
	b.hist.push(&b.hist.undo, b.current())
	b.load(next)
	return true
}
