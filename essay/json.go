package essay

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeJSON parses the {"essay": {...}} exchange shape.
func DecodeJSON(data []byte) (Document, error) {
	var root wireRoot
	if err := json.Unmarshal(data, &root); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if root.Essay == nil {
		return Document{}, fmt.Errorf("%w: missing \"essay\" key", ErrMalformedDocument)
	}
	return fromWire(root.Essay), nil
}

// EncodeJSON writes d in the exchange shape, indented by two spaces.
// Section content is canonicalized to full width.
func EncodeJSON(d Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wireRoot{Essay: toWire(d.Canonical())}); err != nil {
		return nil, fmt.Errorf("encode essay: %w", err)
	}
	return buf.Bytes(), nil
}
