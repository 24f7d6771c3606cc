package editor

import "github.com/charmbracelet/lipgloss"

// Glyphs drawn into cells that hold no text.
const (
	emptyCellGlyph    = "・"
	disabledCellGlyph = "／"
	carryOverGlyph    = "↓"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter lipgloss.Style
	RowNum lipgloss.Style

	// Cell styles an occupied cell; Empty and Disabled style the glyphs of
	// blank cells inside and past the budget.
	Cell     lipgloss.Style
	Empty    lipgloss.Style
	Disabled lipgloss.Style
	// Overflow styles text in disabled cells or below the last allowed row.
	Overflow lipgloss.Style
	Cursor   lipgloss.Style

	Counter    lipgloss.Style
	CarryOver  lipgloss.Style
	CaretCount lipgloss.Style

	Status lipgloss.Style
	Error  lipgloss.Style
}

// NewStyle builds the default style on r, so hosts rendering to a non-default
// output get the right color profile.
func NewStyle(r *lipgloss.Renderer) Style {
	muted := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:     muted,
		RowNum:     muted,
		Cell:       r.NewStyle(),
		Empty:      r.NewStyle().Foreground(lipgloss.Color("238")),
		Disabled:   r.NewStyle().Foreground(lipgloss.Color("236")),
		Overflow:   r.NewStyle().Foreground(lipgloss.Color("203")),
		Cursor:     r.NewStyle().Reverse(true),
		Counter:    muted,
		CarryOver:  muted,
		CaretCount: r.NewStyle().Foreground(lipgloss.Color("111")),
		Status:     r.NewStyle().Foreground(lipgloss.Color("245")),
		Error:      r.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}

func DefaultStyle() Style { return NewStyle(lipgloss.DefaultRenderer()) }
