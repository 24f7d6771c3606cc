package section

import (
	"github.com/iw2rmb/genkou/buffer"
	"github.com/iw2rmb/genkou/fullwidth"
	"github.com/iw2rmb/genkou/grid"
)

// HandleInput applies an input event: value is the field's whole new text
// and caret the caret offset within it.
//
// While idle in grid mode the value is converted to full width. An edit
// that would add a physical line past the budget is rejected with
// ErrLineLimit and leaves the section unchanged. While composing the value
// is stored untouched and the line budget is checked when the composition
// ends.
func (s *Section) HandleInput(value string, caret int) error {
	if !s.settings.Editable {
		return ErrReadOnly
	}
	if s.state == Composing {
		s.buf.SetText(value, caret)
		return nil
	}
	return s.commit(value, caret)
}

// CompositionStart enters the composing state.
func (s *Section) CompositionStart() {
	if s.state == Composing {
		return
	}
	s.state = Composing
	s.composeText = s.buf.Text()
	s.composeCaret = s.buf.CursorOffset()
}

// CompositionEnd leaves the composing state and applies the finalized
// value exactly like an idle input. If the budget rejects it, the text from
// before the composition is restored and ErrLineLimit returned.
func (s *Section) CompositionEnd(value string, caret int) error {
	if s.state != Composing {
		return s.HandleInput(value, caret)
	}
	s.state = Idle
	if !s.settings.Editable {
		return ErrReadOnly
	}
	prev := s.composeText
	if err := s.commitFrom(prev, value, caret); err != nil {
		s.buf.SetText(prev, s.composeCaret)
		return err
	}
	return nil
}

// Apply runs edit against a copy of the buffer and feeds the result
// through HandleInput. It is how key presses reach the section. A pending
// caret is flushed first so the edit lands where the user sees the caret.
func (s *Section) Apply(edit func(b *buffer.Buffer)) error {
	if !s.settings.Editable {
		return ErrReadOnly
	}
	s.FlushCaret()
	tmp := s.buf.Clone()
	edit(tmp)
	if tmp.TextVersion() == s.buf.TextVersion() {
		s.buf.SetCursor(tmp.Cursor())
		return nil
	}
	return s.HandleInput(tmp.Text(), tmp.CursorOffset())
}

// InsertNewline handles the Enter key. In grid mode it is refused once the
// text has as many lines as the budget allows rows.
func (s *Section) InsertNewline() error {
	if !s.settings.Editable {
		return ErrReadOnly
	}
	if s.settings.GridMode && s.state == Idle && s.LimitReached() {
		return ErrLineLimit
	}
	return s.Apply(func(b *buffer.Buffer) { b.InsertNewline() })
}

// InsertTab inserts one ideographic space at the caret and advances the
// caret past it, in either mode. It is ignored while composing.
func (s *Section) InsertTab() error {
	if !s.settings.Editable {
		return ErrReadOnly
	}
	if s.state == Composing {
		return nil
	}
	s.FlushCaret()
	before, after := fullwidth.Split(s.buf.Text(), s.buf.CursorOffset())
	s.buf.SetText(before+string(fullwidth.IdeographicSpace)+after, fullwidth.Len(before)+1)
	s.clearPending()
	s.notifyContent()
	return nil
}

// Paste inserts external text at the caret. Line endings are normalized to
// line feeds first.
func (s *Section) Paste(text string) error {
	text = NormalizeNewlines(text)
	if text == "" {
		return nil
	}
	return s.Apply(func(b *buffer.Buffer) { b.InsertText(text) })
}

// Undo reverts the last content change. It is refused like any other edit
// when it would add lines past the budget.
func (s *Section) Undo() error { return s.history((*buffer.Buffer).Undo) }

// Redo reapplies the last undone change.
func (s *Section) Redo() error { return s.history((*buffer.Buffer).Redo) }

func (s *Section) history(step func(*buffer.Buffer) bool) error {
	if !s.settings.Editable {
		return ErrReadOnly
	}
	if s.state == Composing {
		return nil
	}
	tmp := s.buf.Clone()
	if !step(tmp) {
		return nil
	}
	if s.settings.GridMode && grid.ExceedsLineLimit(s.buf.Text(), tmp.Text(), s.maxChars, s.settings.charsPerLine()) {
		return ErrLineLimit
	}
	s.buf = tmp
	s.clearPending()
	s.notifyContent()
	return nil
}

// Reformat converts the whole content with conv, keeping the caret on the
// same character. It bypasses the editable flag and clears the undo
// history; the controller uses it when grid mode is toggled.
func (s *Section) Reformat(conv fullwidth.Converter) {
	text, caret, changed := fullwidth.ConvertWithCaret(s.buf.Text(), s.buf.CursorOffset(), conv)
	if !changed {
		return
	}
	s.buf.SetText(text, caret)
	s.buf.ClearHistory()
	s.clearPending()
	s.notifyContent()
}

// PendingCaret returns the caret still to be applied after the last
// normalizing input.
func (s *Section) PendingCaret() (int, bool) { return s.pendingCaret, s.hasPending }

// FlushCaret applies the pending caret, if any, and reports whether there
// was one.
func (s *Section) FlushCaret() bool {
	if !s.hasPending {
		return false
	}
	s.buf.SetCursorOffset(s.pendingCaret)
	s.clearPending()
	return true
}

func (s *Section) clearPending() {
	s.pendingCaret, s.hasPending = 0, false
}

func (s *Section) commit(value string, caret int) error {
	return s.commitFrom(s.buf.Text(), value, caret)
}

// commitFrom validates value against prev, the last committed text, and
// stores it. When normalization changed the text the caret is left at the
// end of the new text and the mapped caret becomes pending.
func (s *Section) commitFrom(prev, value string, caret int) error {
	next, nextCaret, changed := value, caret, false
	if s.settings.GridMode {
		next, nextCaret, changed = fullwidth.ConvertWithCaret(value, caret, fullwidth.ToFullWidth)
		if grid.ExceedsLineLimit(prev, next, s.maxChars, s.settings.charsPerLine()) {
			return ErrLineLimit
		}
	}

	textChanged := next != prev
	if changed {
		s.buf.SetText(next, fullwidth.Len(next))
		s.pendingCaret, s.hasPending = nextCaret, true
	} else {
		s.buf.SetText(next, nextCaret)
		s.clearPending()
	}
	if textChanged {
		s.notifyContent()
	}
	return nil
}

// Move moves the caret. Movement is allowed while read-only.
func (s *Section) Move(m buffer.Move) {
	s.FlushCaret()
	s.buf.Move(m)
}

// SetCaret places the caret at the UTF-16 offset off, clamped to the text.
func (s *Section) SetCaret(off int) {
	s.clearPending()
	s.buf.SetCursorOffset(off)
}
