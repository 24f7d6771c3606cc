package essay

import (
	"errors"
	"strings"
	"testing"
)

func TestYAML_RoundTrip(t *testing.T) {
	d := sampleDocument()
	data := EncodeYAML(d)
	got, err := DecodeYAML(data)
	if err != nil {
		t.Fatalf("decode: %v\n%s", err, data)
	}
	want := d.Canonical()
	if !got.Equal(want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v\n%s", got, want, data)
	}
}

func TestYAML_RoundTripAwkwardStrings(t *testing.T) {
	cases := []string{
		"",
		"one line",
		"trailing newline\n",
		"two trailing\n\n",
		"\nleading blank",
		"  indented first\nline",
		"# not a comment\n- not an item",
		"quote \" and \\ backslash",
		"key: value\nother: thing",
		"a\r\nb",
		"lone\rreturn\n",
	}
	for _, c := range cases {
		d := New()
		d.Sections[0].Instruction = c
		d.TotalScoring.OverallComment = c
		data := EncodeYAML(d)
		got, err := DecodeYAML(data)
		if err != nil {
			t.Fatalf("%q: decode: %v\n%s", c, err, data)
		}
		if got.Sections[0].Instruction != c {
			t.Fatalf("instruction: got %q, want %q\n%s", got.Sections[0].Instruction, c, data)
		}
		if got.TotalScoring.OverallComment != c {
			t.Fatalf("overallComment: got %q, want %q\n%s", got.TotalScoring.OverallComment, c, data)
		}
	}
}

func TestYAML_BlockIndentation(t *testing.T) {
	d := Document{
		Settings: DefaultGlobalSettings(),
		TotalScoring: TotalScoring{
			OverallComment: "a\nb",
		},
		Sections: []Section{{
			ID:            "x",
			Title:         "t",
			Content:       "あ\nい",
			MaxCharacters: 400,
			Scoring:       Scoring{Comment: "c\nd"},
		}},
	}
	out := string(EncodeYAML(d))
	for _, want := range []string{
		"  overallComment: |-\n      a\n      b\n",
		"    content: |-\n        あ\n        い\n",
		"      comment: |-\n          c\n          d\n",
		"  - id: \"x\"\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestYAML_EmptySections(t *testing.T) {
	d := Document{Settings: DefaultGlobalSettings()}
	out := string(EncodeYAML(d))
	if !strings.Contains(out, "\nsections: []\n") {
		t.Fatalf("expected empty sequence, got:\n%s", out)
	}
	got, err := DecodeYAML([]byte(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Sections) != 1 || got.Sections[0].Title != "セクション1" {
		t.Fatalf("expected one default section, got %+v", got.Sections)
	}
}

func TestYAML_DecodeHandWritten(t *testing.T) {
	in := `---
# exported by hand
title: 'It''s mine'
globalSettings:
  editable: false
sections:
- id: a
  title: "一"
  content: |
    first

    third
  maxCharacters: 200
  metadata_unknown: ignored
- title: 二
  scoring:
    maxPoints: 10
    points: ~
`
	d, err := DecodeYAML([]byte(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Title != "It's mine" {
		t.Fatalf("title: got %q", d.Title)
	}
	if d.Settings.Editable || !d.Settings.EditableStructure {
		t.Fatalf("settings: %+v", d.Settings)
	}
	if len(d.Sections) != 2 {
		t.Fatalf("sections: got %d", len(d.Sections))
	}
	a, b := d.Sections[0], d.Sections[1]
	if a.ID != "a" || a.Title != "一" || a.MaxCharacters != 200 {
		t.Fatalf("first: %+v", a)
	}
	if a.Content != "first\n\nthird\n" {
		t.Fatalf("content: got %q", a.Content)
	}
	if b.Title != "二" || b.ID == "" || b.MaxCharacters != DefaultMaxCharacters {
		t.Fatalf("second: %+v", b)
	}
	if b.Scoring.MaxPoints == nil || *b.Scoring.MaxPoints != 10 || b.Scoring.Points != nil {
		t.Fatalf("scoring: %+v", b.Scoring)
	}
}

func TestYAML_DecodeRejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{name: "missing sections", in: "title: \"x\"\n"},
		{name: "flow mapping", in: "title: {a: 1}\nsections: []\n"},
		{name: "anchor", in: "title: &a x\nsections: []\n"},
		{name: "tab indent", in: "globalSettings:\n\teditable: true\nsections: []\n"},
		{name: "bad indent", in: "title: x\n  stray: y\nsections: []\n"},
		{name: "duplicate key", in: "title: a\ntitle: b\nsections: []\n"},
		{name: "scalar item", in: "sections:\n  - just text\n"},
		{name: "sections not a list", in: "sections: x\n"},
		{name: "bad int", in: "sections:\n  - maxCharacters: lots\n"},
		{name: "bad bool", in: "globalSettings:\n  editable: yes\nsections: []\n"},
		{name: "second document", in: "sections: []\n---\nsections: []\n"},
		{name: "not a map", in: "- a: 1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeYAML([]byte(tc.in))
			if !errors.Is(err, ErrMalformedDocument) {
				t.Fatalf("got %v, want ErrMalformedDocument", err)
			}
		})
	}
}

func TestYAML_CRLF(t *testing.T) {
	in := "title: \"x\"\r\nsections:\r\n  - content: |-\r\n      a\r\n      b\r\n"
	d, err := DecodeYAML([]byte(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Sections[0].Content != "a\nb" {
		t.Fatalf("content: got %q", d.Sections[0].Content)
	}
}

func TestEncodeDecode_Dispatch(t *testing.T) {
	d := sampleDocument()
	for _, f := range []Format{FormatJSON, FormatYAML} {
		data, err := Encode(d, f)
		if err != nil {
			t.Fatalf("%v: encode: %v", f, err)
		}
		got, err := Decode(data, f)
		if err != nil {
			t.Fatalf("%v: decode: %v", f, err)
		}
		if !got.Equal(d.Canonical()) {
			t.Fatalf("%v: mismatch", f)
		}
	}
}
