package essay

// Wire types mirror the exchange shape. Pointers distinguish absent fields
// from zero values so decoding can default each field independently; both
// the JSON and the YAML decoders fill them.

type wireRoot struct {
	Essay *wireEssay `json:"essay"`
}

type wireEssay struct {
	Title          *string       `json:"title,omitempty"`
	GlobalSettings *wireSettings `json:"globalSettings,omitempty"`
	Metadata       *wireDocMeta  `json:"metadata,omitempty"`
	Sections       []wireSection `json:"sections"`
}

type wireSettings struct {
	Timer             *wireTimer `json:"timer,omitempty"`
	Editable          *bool      `json:"editable,omitempty"`
	EditableStructure *bool      `json:"editable_structure,omitempty"`
}

type wireTimer struct {
	Limit   *int `json:"limit,omitempty"`
	Elapsed *int `json:"elapsed,omitempty"`
}

type wireDocMeta struct {
	TotalScoring *wireTotalScoring `json:"totalScoring,omitempty"`
}

type wireTotalScoring struct {
	MaxPoints      *int    `json:"maxPoints"`
	Points         *int    `json:"points"`
	OverallComment *string `json:"overallComment,omitempty"`
}

type wireSection struct {
	ID            *string          `json:"id,omitempty"`
	Title         *string          `json:"title,omitempty"`
	Content       *string          `json:"content,omitempty"`
	MaxCharacters *int             `json:"maxCharacters,omitempty"`
	Metadata      *wireSectionMeta `json:"metadata,omitempty"`
}

type wireSectionMeta struct {
	Instruction *string      `json:"instruction,omitempty"`
	Scoring     *wireScoring `json:"scoring,omitempty"`
}

type wireScoring struct {
	MaxPoints *int    `json:"maxPoints"`
	Points    *int    `json:"points"`
	Comment   *string `json:"comment,omitempty"`
}

// fromWire builds a Document, defaulting every absent field.
func fromWire(w *wireEssay) Document {
	d := Document{Settings: DefaultGlobalSettings()}
	d.Title = stringOr(w.Title, "")

	if gs := w.GlobalSettings; gs != nil {
		if gs.Timer != nil {
			d.Settings.Timer.Limit = intOr(gs.Timer.Limit, 0)
			d.Settings.Timer.Elapsed = intOr(gs.Timer.Elapsed, 0)
		}
		d.Settings.Editable = boolOr(gs.Editable, true)
		d.Settings.EditableStructure = boolOr(gs.EditableStructure, true)
	}

	if w.Metadata != nil && w.Metadata.TotalScoring != nil {
		ts := w.Metadata.TotalScoring
		d.TotalScoring = TotalScoring{
			MaxPoints:      ts.MaxPoints,
			Points:         ts.Points,
			OverallComment: stringOr(ts.OverallComment, ""),
		}
	}

	d.Sections = make([]Section, 0, len(w.Sections))
	for i, ws := range w.Sections {
		n := i + 1
		s := Section{
			ID:            stringOr(ws.ID, ""),
			Title:         stringOr(ws.Title, DefaultTitle(n)),
			Content:       stringOr(ws.Content, ""),
			MaxCharacters: intOr(ws.MaxCharacters, DefaultMaxCharacters),
		}
		if s.ID == "" {
			s.ID = NewID()
		}
		if s.MaxCharacters <= 0 {
			s.MaxCharacters = DefaultMaxCharacters
		}
		if m := ws.Metadata; m != nil {
			s.Instruction = stringOr(m.Instruction, "")
			if m.Scoring != nil {
				s.Scoring = Scoring{
					MaxPoints: m.Scoring.MaxPoints,
					Points:    m.Scoring.Points,
					Comment:   stringOr(m.Scoring.Comment, ""),
				}
			}
		}
		d.Sections = append(d.Sections, s)
	}
	if len(d.Sections) == 0 {
		d.Sections = []Section{NewSection(1)}
	}
	return d
}

// toWire builds the exchange shape of an already canonical document.
func toWire(d Document) *wireEssay {
	w := &wireEssay{
		Title: strPtr(d.Title),
		GlobalSettings: &wireSettings{
			Timer: &wireTimer{
				Limit:   IntPtr(d.Settings.Timer.Limit),
				Elapsed: IntPtr(d.Settings.Timer.Elapsed),
			},
			Editable:          boolPtr(d.Settings.Editable),
			EditableStructure: boolPtr(d.Settings.EditableStructure),
		},
		Sections: make([]wireSection, 0, len(d.Sections)),
	}
	if !d.TotalScoring.IsZero() {
		w.Metadata = &wireDocMeta{TotalScoring: &wireTotalScoring{
			MaxPoints:      d.TotalScoring.MaxPoints,
			Points:         d.TotalScoring.Points,
			OverallComment: strPtr(d.TotalScoring.OverallComment),
		}}
	}
	for _, s := range d.Sections {
		ws := wireSection{
			ID:            strPtr(s.ID),
			Title:         strPtr(s.Title),
			Content:       strPtr(s.Content),
			MaxCharacters: IntPtr(s.MaxCharacters),
		}
		if s.Instruction != "" || !s.Scoring.IsZero() {
			ws.Metadata = &wireSectionMeta{}
			if s.Instruction != "" {
				ws.Metadata.Instruction = strPtr(s.Instruction)
			}
			if !s.Scoring.IsZero() {
				ws.Metadata.Scoring = &wireScoring{
					MaxPoints: s.Scoring.MaxPoints,
					Points:    s.Scoring.Points,
					Comment:   strPtr(s.Scoring.Comment),
				}
			}
		}
		w.Sections = append(w.Sections, ws)
	}
	return w
}

func stringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
