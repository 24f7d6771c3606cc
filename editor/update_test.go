package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/genkou/section"
)

func TestUpdate_TypingDefersCaret(t *testing.T) {
	sec := newSection("あい", 400, 40, true)
	sec.SetCaret(1)
	m := New(sec, Config{})

	m, cmd := m.Update(keyRunes("a"))
	if got := sec.Text(); got != "あａい" {
		t.Fatalf("text: got %q", got)
	}
	if got := sec.Caret(); got != 3 {
		t.Fatalf("caret before flush: got %d, want 3", got)
	}

	var flush tea.Msg
	for _, msg := range drain(cmd) {
		if f, ok := msg.(CaretFlushMsg); ok {
			flush = f
		}
	}
	if flush == nil {
		t.Fatalf("expected a CaretFlushMsg")
	}
	m, _ = m.Update(flush)
	if got := sec.Caret(); got != 2 {
		t.Fatalf("caret after flush: got %d, want 2", got)
	}
	if m.Err() != nil {
		t.Fatalf("err: %v", m.Err())
	}
}

func TestUpdate_FlushForOtherSectionIgnored(t *testing.T) {
	sec := newSection("", 400, 40, true)
	m := New(sec, Config{})
	m, _ = m.Update(keyRunes("ab"))
	_, _ = m.Update(CaretFlushMsg{SectionID: "other"})
	if _, ok := sec.PendingCaret(); !ok {
		t.Fatalf("pending caret applied by a foreign flush")
	}
}

func TestUpdate_SpaceAndTab(t *testing.T) {
	sec := newSection("", 400, 40, true)
	m := New(sec, Config{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := sec.Text(); got != "　　" {
		t.Fatalf("text: got %q", got)
	}
}

func TestUpdate_EnterAtLineLimit(t *testing.T) {
	sec := newSection("あ", 4, 4, true)
	sec.SetCaret(1)
	m := New(sec, Config{})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !errors.Is(m.Err(), section.ErrLineLimit) {
		t.Fatalf("err: got %v, want ErrLineLimit", m.Err())
	}
	if got := sec.Text(); got != "あ" {
		t.Fatalf("text changed: %q", got)
	}
	msgs := drain(cmd)
	if len(msgs) != 1 {
		t.Fatalf("msgs: got %d, want 1", len(msgs))
	}
	rej, ok := msgs[0].(RejectedMsg)
	if !ok || rej.SectionID != "s1" || !errors.Is(rej.Err, section.ErrLineLimit) {
		t.Fatalf("msg: got %#v", msgs[0])
	}

	// The next accepted input clears the error.
	m, _ = m.Update(keyRunes("い"))
	if m.Err() != nil {
		t.Fatalf("err after accepted input: %v", m.Err())
	}
}

func TestUpdate_DeleteKeys(t *testing.T) {
	sec := newSection("あいう", 400, 40, true)
	sec.SetCaret(1)
	m := New(sec, Config{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := sec.Text(); got != "いう" {
		t.Fatalf("backspace: got %q", got)
	}
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if got := sec.Text(); got != "う" {
		t.Fatalf("delete: got %q", got)
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	sec := newSection("", 400, 40, true)
	m := New(sec, Config{})

	m, _ = m.Update(keyRunes("a"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := sec.Text(); got != "" {
		t.Fatalf("undo: got %q", got)
	}
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := sec.Text(); got != "ａ" {
		t.Fatalf("redo: got %q", got)
	}
}

func TestUpdate_ReadOnly(t *testing.T) {
	sec := newSection("あい", 400, 40, true)
	sec.SetSettings(section.Settings{GridMode: true, CharsPerLine: 40})
	m := New(sec, Config{})

	m, _ = m.Update(keyRunes("a"))
	if got := sec.Text(); got != "あい" {
		t.Fatalf("text changed: %q", got)
	}
	if !errors.Is(m.Err(), section.ErrReadOnly) {
		t.Fatalf("err: got %v", m.Err())
	}

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := sec.Caret(); got != 1 {
		t.Fatalf("caret: got %d, want 1", got)
	}
}

func TestUpdate_Blurred(t *testing.T) {
	sec := newSection("", 400, 40, true)
	m := New(sec, Config{}).Blur()
	_, cmd := m.Update(keyRunes("a"))
	if sec.Text() != "" || cmd != nil {
		t.Fatalf("blurred editor accepted input: text=%q", sec.Text())
	}
}

func TestUpdate_Clipboard(t *testing.T) {
	sec := newSection("", 400, 40, true)
	clip := &memClipboard{text: "x\r\ny"}
	m := New(sec, Config{Clipboard: clip})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := sec.Text(); got != "ｘ\nｙ" {
		t.Fatalf("paste: got %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if clip.text != "ｘ\nｙ" {
		t.Fatalf("copy: got %q", clip.text)
	}

	clip.err = errors.New("no display")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if m.Err() == nil {
		t.Fatalf("expected clipboard error")
	}
}

func TestUpdate_BracketedPaste(t *testing.T) {
	sec := newSection("", 400, 40, true)
	m := New(sec, Config{})

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p\r\nq"), Paste: true})
	if got := sec.Text(); got != "ｐ\nｑ" {
		t.Fatalf("paste: got %q", got)
	}
}

func TestUpdate_Compose(t *testing.T) {
	sec := newSection("", 400, 40, true)
	m := New(sec, Config{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if sec.State() != section.Composing {
		t.Fatalf("state: got %v", sec.State())
	}
	m, _ = m.Update(keyRunes("k"))
	m, _ = m.Update(keyRunes("a"))
	if got := sec.Text(); got != "ka" {
		t.Fatalf("raw text while composing: got %q", got)
	}

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if sec.State() != section.Idle {
		t.Fatalf("state after end: got %v", sec.State())
	}
	if got := sec.Text(); got != "ｋａ" {
		t.Fatalf("text after end: got %q", got)
	}
}

func TestUpdate_VerticalGrid(t *testing.T) {
	sec := newSection("あいうえお", 400, 2, true)
	sec.SetCaret(1)
	m := New(sec, Config{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := sec.Caret(); got != 3 {
		t.Fatalf("down: got %d, want 3", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := sec.Caret(); got != 1 {
		t.Fatalf("up: got %d, want 1", got)
	}
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := sec.Caret(); got != 1 {
		t.Fatalf("up from first row: got %d, want 1", got)
	}
}

func TestUpdate_VerticalPlain(t *testing.T) {
	sec := newSection("abc\nd", 400, 40, false)
	sec.SetCaret(2)
	m := New(sec, Config{})

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := sec.Caret(); got != 5 {
		t.Fatalf("down: got %d, want 5", got)
	}
}

func TestSetSection(t *testing.T) {
	a := newSection("", 400, 40, true)
	m := New(a, Config{})
	m, _ = m.Update(keyRunes("ab"))

	b := newSection("い", 400, 40, true)
	m = m.SetSection(b)
	if _, ok := a.PendingCaret(); ok {
		t.Fatalf("pending caret of the previous section not applied")
	}
	if m.Section() != b {
		t.Fatalf("section not switched")
	}
}
