package essay

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/iw2rmb/genkou/fullwidth"
)

const (
	// DefaultMaxCharacters is the budget of a new or imported section
	// that does not specify one.
	DefaultMaxCharacters = 400

	defaultTitlePrefix = "セクション"
)

// Timer is the writing timer carried with the document. Both values are
// seconds.
type Timer struct {
	Limit   int
	Elapsed int
}

// GlobalSettings apply to the whole document.
type GlobalSettings struct {
	Timer Timer
	// Editable allows content edits.
	Editable bool
	// EditableStructure allows adding, deleting and renaming sections.
	EditableStructure bool
}

// DefaultGlobalSettings returns settings with a zero timer and everything
// editable.
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{Editable: true, EditableStructure: true}
}

// Scoring grades one section. A nil pointer means unset and is never
// coerced to zero.
type Scoring struct {
	MaxPoints *int
	Points    *int
	Comment   string
}

// IsZero reports whether every field is unset.
func (s Scoring) IsZero() bool {
	return s.MaxPoints == nil && s.Points == nil && s.Comment == ""
}

// Equal compares by value.
func (s Scoring) Equal(o Scoring) bool {
	return intPtrEqual(s.MaxPoints, o.MaxPoints) && intPtrEqual(s.Points, o.Points) && s.Comment == o.Comment
}

// TotalScoring grades the whole document.
type TotalScoring struct {
	MaxPoints      *int
	Points         *int
	OverallComment string
}

func (s TotalScoring) IsZero() bool {
	return s.MaxPoints == nil && s.Points == nil && s.OverallComment == ""
}

func (s TotalScoring) Equal(o TotalScoring) bool {
	return intPtrEqual(s.MaxPoints, o.MaxPoints) && intPtrEqual(s.Points, o.Points) && s.OverallComment == o.OverallComment
}

// Section is the stored form of one section.
type Section struct {
	ID            string
	Title         string
	Content       string
	MaxCharacters int
	Instruction   string
	Scoring       Scoring
}

func (s Section) Equal(o Section) bool {
	return s.ID == o.ID &&
		s.Title == o.Title &&
		s.Content == o.Content &&
		s.MaxCharacters == o.MaxCharacters &&
		s.Instruction == o.Instruction &&
		s.Scoring.Equal(o.Scoring)
}

// Document is a whole essay.
type Document struct {
	Title        string
	Settings     GlobalSettings
	Sections     []Section
	TotalScoring TotalScoring
}

// New returns a document holding one default section.
func New() Document {
	return Document{
		Settings: DefaultGlobalSettings(),
		Sections: []Section{NewSection(1)},
	}
}

// Equal compares two documents field by field.
func (d Document) Equal(o Document) bool {
	if d.Title != o.Title || d.Settings != o.Settings || !d.TotalScoring.Equal(o.TotalScoring) {
		return false
	}
	if len(d.Sections) != len(o.Sections) {
		return false
	}
	for i := range d.Sections {
		if !d.Sections[i].Equal(o.Sections[i]) {
			return false
		}
	}
	return true
}

// Canonical returns a copy of d whose section content is full width.
func (d Document) Canonical() Document {
	out := d
	out.Sections = make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		s.Content = fullwidth.ToFullWidth(s.Content)
		out.Sections[i] = s
	}
	return out
}

// NewID returns a fresh opaque section id.
func NewID() string { return uuid.NewString() }

// DefaultTitle is the title of the section at 1-based position n.
func DefaultTitle(n int) string { return fmt.Sprintf("%s%d", defaultTitlePrefix, n) }

// NewSection returns an empty section titled for 1-based position n.
func NewSection(n int) Section {
	return Section{
		ID:            NewID(),
		Title:         DefaultTitle(n),
		MaxCharacters: DefaultMaxCharacters,
	}
}

// IntPtr returns a pointer to v, for building Scoring values.
func IntPtr(v int) *int { return &v }

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
