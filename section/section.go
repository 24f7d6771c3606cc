package section

import (
	"github.com/iw2rmb/genkou/buffer"
	"github.com/iw2rmb/genkou/essay"
	"github.com/iw2rmb/genkou/grid"
)

// State is the input state of a section.
type State int

const (
	// Idle normalizes every input event.
	Idle State = iota
	// Composing passes input through untouched until the composition ends.
	Composing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Composing:
		return "composing"
	default:
		return "unknown"
	}
}

// Callbacks notify the owner of changes. Either may be nil.
type Callbacks struct {
	// OnContentChange fires after the content or the budget changed.
	OnContentChange func(id, text string, maxChars int)
	// OnTitleChange fires after the title changed.
	OnTitleChange func(id, title string)
}

// Section is one editable unit of an essay.
type Section struct {
	id          string
	title       string
	maxChars    int
	instruction string
	scoring     essay.Scoring

	buf      *buffer.Buffer
	settings Settings
	cb       Callbacks

	state State
	// Text and caret before the current composition session.
	composeText  string
	composeCaret int

	pendingCaret int
	hasPending   bool
}

// New builds a section from its stored form. Content is taken as is;
// normalization happens on the next input.
func New(rec essay.Section, settings Settings, cb Callbacks) *Section {
	maxChars := rec.MaxCharacters
	if maxChars <= 0 {
		maxChars = essay.DefaultMaxCharacters
	}
	return &Section{
		id:          rec.ID,
		title:       rec.Title,
		maxChars:    maxChars,
		instruction: rec.Instruction,
		scoring:     rec.Scoring,
		buf:         buffer.New(rec.Content, buffer.Options{}),
		settings:    settings,
		cb:          cb,
	}
}

func (s *Section) ID() string             { return s.id }
func (s *Section) Title() string          { return s.title }
func (s *Section) Text() string           { return s.buf.Text() }
func (s *Section) MaxChars() int          { return s.maxChars }
func (s *Section) Instruction() string    { return s.instruction }
func (s *Section) Scoring() essay.Scoring { return s.scoring }
func (s *Section) Settings() Settings     { return s.settings }
func (s *Section) State() State           { return s.state }

// Caret returns the caret as a UTF-16 offset into Text.
func (s *Section) Caret() int { return s.buf.CursorOffset() }

// Buffer exposes the underlying buffer for rendering. Callers must not
// mutate it; edits go through Apply or HandleInput.
func (s *Section) Buffer() *buffer.Buffer { return s.buf }

// Record returns the stored form of the section.
func (s *Section) Record() essay.Section {
	return essay.Section{
		ID:            s.id,
		Title:         s.title,
		Content:       s.buf.Text(),
		MaxCharacters: s.maxChars,
		Instruction:   s.instruction,
		Scoring:       s.scoring,
	}
}

// SetSettings replaces the settings. Content is not converted; see Reformat.
func (s *Section) SetSettings(settings Settings) { s.settings = settings }

// SetCallbacks replaces the change callbacks.
func (s *Section) SetCallbacks(cb Callbacks) { s.cb = cb }

// Params returns the grid parameters of the section.
func (s *Section) Params() grid.Params {
	return grid.Params{CharsPerLine: s.settings.charsPerLine(), MaxChars: s.maxChars}
}

// Layout recomputes the grid view for the current text and caret.
func (s *Section) Layout() grid.View {
	return grid.Recompute(s.buf.Text(), s.buf.CursorOffset(), s.Params())
}

// LimitReached reports whether the section already uses every row of its
// budget.
func (s *Section) LimitReached() bool {
	return grid.LineLimitReached(s.buf.Text(), s.maxChars, s.settings.charsPerLine())
}

func (s *Section) notifyContent() {
	if s.cb.OnContentChange != nil {
		s.cb.OnContentChange(s.id, s.buf.Text(), s.maxChars)
	}
}
