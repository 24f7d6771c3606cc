package section

import (
	"strings"

	"github.com/iw2rmb/genkou/essay"
	"github.com/iw2rmb/genkou/grid"
)

// SetTitle renames the section.
func (s *Section) SetTitle(title string) error {
	if !s.settings.EditableStructure {
		return ErrStructureLocked
	}
	if title == s.title {
		return nil
	}
	s.title = title
	if s.cb.OnTitleChange != nil {
		s.cb.OnTitleChange(s.id, title)
	}
	return nil
}

// SetMaxChars sets the character budget, clamped to [grid.MinMaxChars,
// grid.MaxMaxChars], and returns the value applied. Existing content is
// never truncated.
func (s *Section) SetMaxChars(n int) int {
	n = grid.ClampMaxChars(n)
	if n == s.maxChars {
		return n
	}
	s.maxChars = n
	s.notifyContent()
	return n
}

// SetInstruction replaces the grader's instruction text.
func (s *Section) SetInstruction(text string) { s.instruction = text }

// SetScoring replaces the section's scoring.
func (s *Section) SetScoring(sc essay.Scoring) { s.scoring = sc }

// NormalizeNewlines converts CRLF and lone CR line endings to LF.
func NormalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
