package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/genkou/buffer"
	"github.com/iw2rmb/genkou/grid"
	"github.com/iw2rmb/genkou/section"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case CaretFlushMsg:
		if m.sec != nil && msg.SectionID == m.sec.ID() && m.sec.FlushCaret() {
			m.followCursor()
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		m.rebuildContent()
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.sec == nil {
		return m, nil
	}
	s := m.sec
	km := m.cfg.KeyMap

	// Bracketed paste arrives as one runes message.
	if msg.Paste && len(msg.Runes) > 0 {
		return m.afterEdit(s.Paste(string(msg.Runes)))
	}

	var err error
	switch {
	case key.Matches(msg, km.Left):
		s.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		s.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.moveVertical(-1)
	case key.Matches(msg, km.Down):
		m.moveVertical(1)
	case key.Matches(msg, km.Home):
		s.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		s.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		s.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		s.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		err = s.Apply(func(b *buffer.Buffer) { b.DeleteBackward() })
	case key.Matches(msg, km.Delete):
		err = s.Apply(func(b *buffer.Buffer) { b.DeleteForward() })
	case key.Matches(msg, km.Enter):
		err = s.InsertNewline()
	case key.Matches(msg, km.Tab):
		err = s.InsertTab()

	case key.Matches(msg, km.Undo):
		err = s.Undo()
	case key.Matches(msg, km.Redo):
		err = s.Redo()
	case key.Matches(msg, km.Copy):
		err = m.copySection()
	case key.Matches(msg, km.Paste):
		err = m.pasteClipboard()
	case key.Matches(msg, km.Compose):
		err = m.toggleCompose()

	default:
		if text, ok := insertedText(msg); ok {
			err = s.Apply(func(b *buffer.Buffer) { b.InsertText(text) })
		}
	}
	return m.afterEdit(err)
}

func insertedText(msg tea.KeyMsg) (string, bool) {
	if msg.Alt {
		return "", false
	}
	switch msg.Type { //nolint:exhaustive
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return "", false
		}
		return string(msg.Runes), true
	case tea.KeySpace:
		return " ", true
	default:
		return "", false
	}
}

// afterEdit records the outcome of an input and schedules the follow-up
// messages: a rejection notice and the deferred caret placement.
func (m Model) afterEdit(err error) (Model, tea.Cmd) {
	m.err = err
	m.followCursor()

	var cmds []tea.Cmd
	if err != nil {
		cmds = append(cmds, rejectedCmd(m.sec.ID(), err))
	}
	if _, ok := m.sec.PendingCaret(); ok {
		cmds = append(cmds, flushCaretCmd(m.sec.ID()))
	}
	return m, tea.Batch(cmds...)
}

// moveVertical moves the caret one grid row in grid mode and one physical
// line otherwise, keeping the column.
func (m Model) moveVertical(delta int) {
	s := m.sec
	if !s.Settings().GridMode {
		dir := buffer.DirUp
		if delta > 0 {
			dir = buffer.DirDown
		}
		s.Move(buffer.Move{Unit: buffer.MoveRune, Dir: dir})
		return
	}

	s.FlushCaret()
	v := s.Layout()
	target := grid.Cell{Row: v.Cursor.Row + delta, Col: v.Cursor.Col}
	if target.Row < 0 || target.Row >= len(v.Lines) {
		return
	}
	s.SetCaret(grid.OffsetAt(s.Text(), target, v.Params.CharsPerLine))
}

func (m Model) toggleCompose() error {
	s := m.sec
	if s.State() == section.Composing {
		return s.CompositionEnd(s.Text(), s.Caret())
	}
	s.CompositionStart()
	return nil
}

func (m Model) copySection() error {
	if m.cfg.Clipboard == nil {
		return nil
	}
	if err := m.cfg.Clipboard.WriteText(m.sec.Text()); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

func (m Model) pasteClipboard() error {
	if m.cfg.Clipboard == nil {
		return nil
	}
	text, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	if text == "" {
		return nil
	}
	return m.sec.Paste(text)
}
