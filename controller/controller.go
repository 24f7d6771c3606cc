package controller

import (
	"log/slog"

	"github.com/iw2rmb/genkou/essay"
	"github.com/iw2rmb/genkou/fullwidth"
	"github.com/iw2rmb/genkou/grid"
	"github.com/iw2rmb/genkou/section"
)

// Controller owns the document being edited.
type Controller struct {
	cfg Config
	log *slog.Logger

	title    string
	timer    essay.Timer
	settings section.Settings
	total    essay.TotalScoring
	sections []*section.Section

	modified bool
	sendMu   chan struct{}
}

// New returns a controller editing doc. A document without sections gets
// one default section.
func New(doc essay.Document, cfg Config) *Controller {
	cfg = cfg.withDefaults()
	c := &Controller{
		cfg:    cfg,
		log:    cfg.Logger,
		sendMu: make(chan struct{}, 1),
		settings: section.Settings{
			GridMode:     cfg.GridMode,
			CharsPerLine: cfg.CharsPerLine,
		},
	}
	c.load(doc)
	return c
}

// load replaces all document state with doc. The new section list is
// built completely before it is installed.
func (c *Controller) load(doc essay.Document) {
	settings := c.settings
	settings.Editable = doc.Settings.Editable
	settings.EditableStructure = doc.Settings.EditableStructure

	recs := doc.Sections
	if len(recs) == 0 {
		recs = []essay.Section{essay.NewSection(1)}
	}
	secs := make([]*section.Section, 0, len(recs))
	for _, rec := range recs {
		secs = append(secs, section.New(rec, settings, c.callbacks()))
	}

	c.title = doc.Title
	c.timer = doc.Settings.Timer
	c.settings = settings
	c.total = doc.TotalScoring
	c.sections = secs
	c.modified = false
}

func (c *Controller) callbacks() section.Callbacks {
	host := c.cfg.Callbacks
	return section.Callbacks{
		OnContentChange: func(id, text string, maxChars int) {
			c.modified = true
			if host.OnContentChange != nil {
				host.OnContentChange(id, text, maxChars)
			}
		},
		OnTitleChange: func(id, title string) {
			c.modified = true
			if host.OnTitleChange != nil {
				host.OnTitleChange(id, title)
			}
		},
	}
}

// Document returns the stored form of the current state.
func (c *Controller) Document() essay.Document {
	doc := essay.Document{
		Title: c.title,
		Settings: essay.GlobalSettings{
			Timer:             c.timer,
			Editable:          c.settings.Editable,
			EditableStructure: c.settings.EditableStructure,
		},
		TotalScoring: c.total,
		Sections:     make([]essay.Section, 0, len(c.sections)),
	}
	for _, s := range c.sections {
		doc.Sections = append(doc.Sections, s.Record())
	}
	return doc
}

// Replace installs doc as the whole document, as an import does.
func (c *Controller) Replace(doc essay.Document) {
	c.load(doc)
	c.log.Info("document replaced", "sections", len(c.sections))
}

// Modified reports whether anything changed since the document was loaded
// or last exported.
func (c *Controller) Modified() bool { return c.modified }

func (c *Controller) Title() string { return c.title }

// SetTitle sets the document title.
func (c *Controller) SetTitle(title string) {
	if title == c.title {
		return
	}
	c.title = title
	c.modified = true
}

func (c *Controller) Settings() section.Settings { return c.settings }

func (c *Controller) Timer() essay.Timer { return c.timer }

func (c *Controller) TotalScoring() essay.TotalScoring { return c.total }

// SetTotalScoring replaces the document-wide scoring.
func (c *Controller) SetTotalScoring(ts essay.TotalScoring) {
	c.total = ts
	c.modified = true
}

// SetGridMode switches grid mode and converts every section: to full
// width when turning it on, to half width when turning it off.
func (c *Controller) SetGridMode(on bool) {
	if on == c.settings.GridMode {
		return
	}
	c.settings.GridMode = on
	conv := fullwidth.ToHalfWidth
	if on {
		conv = fullwidth.ToFullWidth
	}
	for _, s := range c.sections {
		s.SetSettings(c.settings)
		s.Reformat(conv)
	}
	c.log.Debug("grid mode changed", "on", on)
}

// SetCharsPerLine changes the grid width. n must be one of
// grid.CharsPerLineOptions.
func (c *Controller) SetCharsPerLine(n int) error {
	if !grid.ValidCharsPerLine(n) {
		return ErrInvalidCharsPerLine
	}
	c.settings.CharsPerLine = n
	c.pushSettings()
	return nil
}

// SetEditable toggles content editing for every section.
func (c *Controller) SetEditable(on bool) {
	c.settings.Editable = on
	c.pushSettings()
	c.modified = true
}

// SetEditableStructure toggles adding, deleting, reordering and renaming.
func (c *Controller) SetEditableStructure(on bool) {
	c.settings.EditableStructure = on
	c.pushSettings()
	c.modified = true
}

func (c *Controller) pushSettings() {
	for _, s := range c.sections {
		s.SetSettings(c.settings)
	}
}

// Layout recomputes the grid view of the section with id.
func (c *Controller) Layout(id string) (grid.View, error) {
	s, err := c.Section(id)
	if err != nil {
		return grid.View{}, err
	}
	return s.Layout(), nil
}

// PlainText returns the half-width download form of the section with id.
func (c *Controller) PlainText(id string) (string, error) {
	s, err := c.Section(id)
	if err != nil {
		return "", err
	}
	return essay.PlainText(s.Text()), nil
}
