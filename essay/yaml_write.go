package essay

import (
	"bytes"
	"strconv"
	"strings"
)

// blockIndent is added to a key's indentation for the lines of its block
// literal.
const blockIndent = 4

// EncodeYAML writes d in the YAML layout: title, globalSettings,
// totalScoring and sections at the top level. Multi-line strings become
// block literals. Section content is canonicalized to full width.
func EncodeYAML(d Document) []byte {
	d = d.Canonical()
	w := &yamlWriter{}

	w.str(0, "title", d.Title)
	w.key(0, "globalSettings")
	w.key(2, "timer")
	w.int(4, "limit", IntPtr(d.Settings.Timer.Limit))
	w.int(4, "elapsed", IntPtr(d.Settings.Timer.Elapsed))
	w.bool(2, "editable", d.Settings.Editable)
	w.bool(2, "editable_structure", d.Settings.EditableStructure)

	if ts := d.TotalScoring; !ts.IsZero() {
		w.key(0, "totalScoring")
		w.int(2, "maxPoints", ts.MaxPoints)
		w.int(2, "points", ts.Points)
		w.str(2, "overallComment", ts.OverallComment)
	}

	if len(d.Sections) == 0 {
		w.line(0, "sections: []")
		return w.buf.Bytes()
	}
	w.key(0, "sections")
	for _, s := range d.Sections {
		w.line(2, "- id: "+strconv.Quote(s.ID))
		w.str(4, "title", s.Title)
		w.int(4, "maxCharacters", IntPtr(s.MaxCharacters))
		w.str(4, "content", s.Content)
		if s.Instruction != "" {
			w.str(4, "instruction", s.Instruction)
		}
		if !s.Scoring.IsZero() {
			w.key(4, "scoring")
			w.int(6, "maxPoints", s.Scoring.MaxPoints)
			w.int(6, "points", s.Scoring.Points)
			w.str(6, "comment", s.Scoring.Comment)
		}
	}
	return w.buf.Bytes()
}

type yamlWriter struct {
	buf bytes.Buffer
}

func (w *yamlWriter) line(indent int, s string) {
	w.buf.WriteString(strings.Repeat(" ", indent))
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

func (w *yamlWriter) key(indent int, k string) { w.line(indent, k+":") }

func (w *yamlWriter) int(indent int, k string, v *int) {
	if v == nil {
		w.line(indent, k+": null")
		return
	}
	w.line(indent, k+": "+strconv.Itoa(*v))
}

func (w *yamlWriter) bool(indent int, k string, v bool) {
	w.line(indent, k+": "+strconv.FormatBool(v))
}

// str writes a quoted scalar, or a block literal when v spans lines. Every
// block line, blank ones included, carries the full block indentation.
// Text whose first line starts with a space cannot be a block literal
// without an indentation indicator and stays quoted. So does text with a
// carriage return, which the reader folds away outside quotes.
func (w *yamlWriter) str(indent int, k string, v string) {
	if !strings.Contains(v, "\n") || strings.HasPrefix(strings.TrimLeft(v, "\n"), " ") || strings.ContainsRune(v, '\r') {
		w.line(indent, k+": "+strconv.Quote(v))
		return
	}
	header := "|-"
	if strings.HasSuffix(v, "\n") {
		header, v = "|+", v[:len(v)-1]
	}
	w.line(indent, k+": "+header)
	pad := indent + blockIndent
	for _, l := range strings.Split(v, "\n") {
		w.line(pad, l)
	}
}
