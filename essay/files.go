package essay

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/genkou/fullwidth"
)

// Format selects a document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// PlainTextFileName is the download name of a single plain-text buffer.
const PlainTextFileName = "小論文.txt"

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FileName is the export file name for f.
func (f Format) FileName() string { return "essay-output." + f.String() }

// MIMEType is the export content type for f.
func (f Format) MIMEType() string {
	if f == FormatYAML {
		return "text/yaml"
	}
	return "application/json"
}

// ParseFormat maps a name or file extension ("json", ".yml", ...) to a
// Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unknown format %q", s)
	}
}

// FormatForPath picks a format from a file name; anything that is not YAML
// is read as JSON.
func FormatForPath(path string) Format {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		if f, err := ParseFormat(path[i:]); err == nil {
			return f
		}
	}
	return FormatJSON
}

// Encode serializes d in format f.
func Encode(d Document, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return EncodeJSON(d)
	case FormatYAML:
		return EncodeYAML(d), nil
	default:
		return nil, fmt.Errorf("encode: unknown format %v", f)
	}
}

// Decode parses data in format f.
func Decode(data []byte, f Format) (Document, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return Document{}, fmt.Errorf("decode: unknown format %v", f)
	}
}

// PlainText is the download form of a single buffer: always half width.
func PlainText(content string) string { return fullwidth.ToHalfWidth(content) }
