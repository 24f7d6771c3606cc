package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestMouse_GridClick(t *testing.T) {
	cases := []struct {
		name string
		x, y int
		want int
	}{
		{name: "first cell", x: 0, y: 0, want: 0},
		{name: "third cell", x: 4, y: 0, want: 2},
		{name: "right half of a cell", x: 5, y: 0, want: 2},
		{name: "second row", x: 0, y: 1, want: 4},
		{name: "past last row segment", x: 6, y: 1, want: 5},
		{name: "counter column", x: 12, y: 1, want: 5},
		{name: "below text", x: 0, y: 3, want: 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sec := newSection("あいうえお", 400, 4, true)
			m := New(sec, Config{}).SetSize(40, 10)
			_, _ = m.Update(click(tc.x, tc.y))
			if got := sec.Caret(); got != tc.want {
				t.Fatalf("caret: got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMouse_GutterOffset(t *testing.T) {
	sec := newSection("あいうえお", 400, 4, true)
	m := New(sec, Config{ShowRowNumbers: true}).SetSize(40, 10)

	// Rows run to 100, so the gutter is four columns wide.
	_, _ = m.Update(click(4+2, 0))
	if got := sec.Caret(); got != 1 {
		t.Fatalf("caret: got %d, want 1", got)
	}
}

func TestMouse_PlainClick(t *testing.T) {
	sec := newSection("aあb\nc", 400, 40, false)
	m := New(sec, Config{}).SetSize(40, 10)

	_, _ = m.Update(click(2, 0))
	if got := sec.Caret(); got != 1 {
		t.Fatalf("caret on wide rune: got %d, want 1", got)
	}
	_, _ = m.Update(click(3, 0))
	if got := sec.Caret(); got != 2 {
		t.Fatalf("caret after wide rune: got %d, want 2", got)
	}
	_, _ = m.Update(click(9, 1))
	if got := sec.Caret(); got != 5 {
		t.Fatalf("caret past line end: got %d, want 5", got)
	}
}

func TestMouse_OutOfBoundsIgnored(t *testing.T) {
	sec := newSection("あい", 400, 4, true)
	sec.SetCaret(1)
	m := New(sec, Config{}).SetSize(10, 2)

	_, _ = m.Update(click(0, 5))
	if got := sec.Caret(); got != 1 {
		t.Fatalf("caret moved: got %d", got)
	}
}
