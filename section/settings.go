package section

import "github.com/iw2rmb/genkou/grid"

// Settings is the document-wide configuration a section edits under. The
// controller owns it and hands every section the same value.
type Settings struct {
	GridMode          bool
	CharsPerLine      int
	Editable          bool
	EditableStructure bool
}

// DefaultSettings returns grid mode on, the default width and everything
// editable.
func DefaultSettings() Settings {
	return Settings{
		GridMode:          true,
		CharsPerLine:      grid.DefaultCharsPerLine,
		Editable:          true,
		EditableStructure: true,
	}
}

func (s Settings) charsPerLine() int {
	if s.CharsPerLine <= 0 {
		return grid.DefaultCharsPerLine
	}
	return s.CharsPerLine
}

// MaxCharsOptions are the preset budgets offered next to a custom value.
var MaxCharsOptions = []int{20, 25, 30, 35, 40, 45, 50, 100, 200, 400, 1000}

// IsPresetMaxChars reports whether n is one of MaxCharsOptions.
func IsPresetMaxChars(n int) bool {
	for _, v := range MaxCharsOptions {
		if v == n {
			return true
		}
	}
	return false
}
