package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/genkou/essay"
	"github.com/iw2rmb/genkou/section"
)

func newSection(content string, maxChars, charsPerLine int, grid bool) *section.Section {
	return section.New(
		essay.Section{ID: "s1", Title: "設問", Content: content, MaxCharacters: maxChars},
		section.Settings{GridMode: grid, CharsPerLine: charsPerLine, Editable: true, EditableStructure: true},
		section.Callbacks{},
	)
}

func bracket(left, right string) lipgloss.Style {
	return lipgloss.NewStyle().Transform(func(s string) string { return left + s + right })
}

// plainStyle renders every part unstyled except the cursor.
func plainStyle() Style {
	return Style{Cursor: bracket("[", "]")}
}

// drain runs cmd and flattens batches into their messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, drain(c)...)
	}
	return out
}

type memClipboard struct {
	text string
	err  error
}

func (c *memClipboard) ReadText() (string, error) { return c.text, c.err }

func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
