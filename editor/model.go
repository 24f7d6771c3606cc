package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/genkou/section"
)

// Model is a Bubble Tea component that renders and edits one section.
type Model struct {
	cfg Config
	sec *section.Section

	focused bool

	viewport viewport.Model

	// err is the last refused input; cleared by the next accepted one.
	err error
}

func New(sec *section.Section, cfg Config) Model {
	m := Model{
		cfg:      cfg.withDefaults(),
		sec:      sec,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.rebuildContent()
	return m
}

func (m Model) Section() *section.Section { return m.sec }

// SetSection switches the component to another section. A caret still
// pending on the previous section is applied first.
func (m Model) SetSection(sec *section.Section) Model {
	if m.sec != nil {
		m.sec.FlushCaret()
	}
	m.sec = sec
	m.err = nil
	m.viewport.SetYOffset(0)
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if m.cfg.ShowStats && height > 0 {
		height--
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Err returns the reason the last input was refused, or nil.
func (m Model) Err() error { return m.err }

// View renders from the section's current state, so changes made by the
// host outside Update (settings toggles, imports) show up immediately.
func (m Model) View() string {
	vp := m.viewport
	vp.SetContent(m.renderContent())
	if !m.cfg.ShowStats || m.sec == nil {
		return vp.View()
	}
	return vp.View() + "\n" + m.statusLine()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls the minimum amount that keeps the caret row visible.
func (m *Model) followCursor() {
	if m.sec == nil || m.viewport.Height <= 0 {
		return
	}
	m.rebuildContent()
	row := m.cursorRow()
	top := m.viewport.YOffset
	switch {
	case row < top:
		m.viewport.SetYOffset(row)
	case row >= top+m.viewport.Height:
		m.viewport.SetYOffset(row - m.viewport.Height + 1)
	}
}

func (m Model) cursorRow() int {
	if m.sec.Settings().GridMode {
		return m.sec.Layout().Cursor.Row
	}
	return m.sec.Buffer().Cursor().Row
}
