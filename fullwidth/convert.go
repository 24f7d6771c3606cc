package fullwidth

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	// IdeographicSpace is the full-width counterpart of the ASCII space.
	IdeographicSpace = '　'

	offset = 0xFEE0

	halfFirst = 0x20
	halfLast  = 0x7E
	fullFirst = 0xFF01
	fullLast  = 0xFF5E
)

// IsHalfWidth reports whether r is printable ASCII (U+0020..U+007E).
func IsHalfWidth(r rune) bool { return r >= halfFirst && r <= halfLast }

// IsFullWidth reports whether r is a full-width ASCII variant
// (U+FF01..U+FF5E) or the ideographic space.
func IsFullWidth(r rune) bool {
	return r == IdeographicSpace || (r >= fullFirst && r <= fullLast)
}

// Widen maps a single half-width rune to full width. Other runes are
// returned unchanged.
func Widen(r rune) rune {
	switch {
	case r == ' ':
		return IdeographicSpace
	case IsHalfWidth(r):
		return r + offset
	default:
		return r
	}
}

// Narrow is the inverse of Widen.
func Narrow(r rune) rune {
	switch {
	case r == IdeographicSpace:
		return ' '
	case r >= fullFirst && r <= fullLast:
		return r - offset
	default:
		return r
	}
}

// Widener returns a transformer applying Widen to every rune.
func Widener() transform.Transformer { return runes.Map(Widen) }

// Narrower returns a transformer applying Narrow to every rune.
func Narrower() transform.Transformer { return runes.Map(Narrow) }

// ToFullWidth converts every half-width character of text to full width.
// It is idempotent.
func ToFullWidth(text string) string { return convert(text, Widener(), IsHalfWidth) }

// ToHalfWidth converts every full-width ASCII variant and ideographic space
// of text to half width. It is idempotent.
func ToHalfWidth(text string) string { return convert(text, Narrower(), IsFullWidth) }

func convert(text string, t transform.Transformer, match func(rune) bool) string {
	if !containsFunc(text, match) {
		return text
	}
	out, _, err := transform.String(t, text)
	if err != nil {
		// runes.Map only fails on short destination buffers, which
		// transform.String grows internally.
		return text
	}
	return out
}

func containsFunc(text string, match func(rune) bool) bool {
	for _, r := range text {
		if match(r) {
			return true
		}
	}
	return false
}
