package fullwidth

import "unicode/utf16"

// Converter is a whole-text conversion such as ToFullWidth.
type Converter func(string) string

// ConvertWithCaret converts text and maps caret, a UTF-16 offset into text,
// to the matching offset in the result. The new caret is the converted
// length of the prefix before the old caret.
//
// changed reports whether conversion altered text; when it did not, the
// caret is returned unchanged.
func ConvertWithCaret(text string, caret int, conv Converter) (out string, nextCaret int, changed bool) {
	out = conv(text)
	if out == text {
		return text, caret, false
	}
	before := Slice(text, 0, caret)
	return out, Len(conv(before)), true
}

// Len returns the length of s in UTF-16 code units.
func Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Slice returns the substring of s between UTF-16 offsets [start, end).
// Offsets are clamped into range. A character whose surrogate pair is split
// by either offset is excluded.
func Slice(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}
	from, to := -1, len(s)
	pos := 0
	for i, r := range s {
		if from < 0 && pos >= start {
			from = i
		}
		if pos >= end {
			to = i
			break
		}
		w := utf16.RuneLen(r)
		if w < 0 {
			w = 1
		}
		if pos+w > end {
			to = i
			break
		}
		pos += w
	}
	if from < 0 {
		return ""
	}
	if to < from {
		return ""
	}
	return s[from:to]
}

// Split returns text split at the UTF-16 offset off.
func Split(text string, off int) (before, after string) {
	before = Slice(text, 0, off)
	return before, text[len(before):]
}
