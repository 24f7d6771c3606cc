package essay

import (
	"fmt"
	"strconv"
	"strings"
)

// The reader accepts the subset EncodeYAML produces: block mappings, block
// sequences of mappings, plain or quoted scalars and block literals ("|",
// "|-" or "|+"). Flow collections other than "[]", anchors, tags, tabs in
// indentation and multi-document streams are rejected.

type yamlKind int

const (
	yamlScalar yamlKind = iota
	yamlBlock
	yamlMap
	yamlList
)

type yamlNode struct {
	kind yamlKind
	line int

	// scalar: raw text after "key: "; block: the literal content.
	value string

	keys   []string
	fields map[string]*yamlNode
	items  []*yamlNode
}

type yamlParser struct {
	lines []string
	pos   int
}

// DecodeYAML parses the YAML layout written by EncodeYAML. A top-level
// "sections" key is required.
func DecodeYAML(data []byte) (Document, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	p := &yamlParser{lines: strings.Split(text, "\n")}

	root, err := p.parseMap(0)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if _, ok := root.fields["sections"]; !ok {
		return Document{}, fmt.Errorf("%w: missing \"sections\" key", ErrMalformedDocument)
	}
	w, err := wireFromYAML(root)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return fromWire(w), nil
}

// next returns the index and indentation of the next line carrying
// structure, skipping blank and comment lines. ok is false at EOF.
func (p *yamlParser) next() (idx, indent int, ok bool, err error) {
	for i := p.pos; i < len(p.lines); i++ {
		l := p.lines[i]
		trimmed := strings.TrimLeft(l, " ")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, "\t") {
			return 0, 0, false, fmt.Errorf("line %d: tab in indentation", i+1)
		}
		if trimmed == "---" && p.pos == 0 && l == trimmed {
			p.pos = i + 1
			continue
		}
		if trimmed == "---" || trimmed == "..." {
			return 0, 0, false, fmt.Errorf("line %d: multiple documents are not supported", i+1)
		}
		return i, len(l) - len(trimmed), true, nil
	}
	return len(p.lines), 0, false, nil
}

func (p *yamlParser) parseMap(indent int) (*yamlNode, error) {
	n := &yamlNode{kind: yamlMap, line: p.pos + 1, fields: map[string]*yamlNode{}}
	for {
		idx, ind, ok, err := p.next()
		if err != nil {
			return nil, err
		}
		if !ok || ind < indent {
			p.pos = idx
			return n, nil
		}
		if ind > indent {
			return nil, fmt.Errorf("line %d: unexpected indentation", idx+1)
		}
		content := p.lines[idx][ind:]
		if strings.HasPrefix(content, "- ") || content == "-" {
			return nil, fmt.Errorf("line %d: unexpected sequence item", idx+1)
		}
		key, rest, err := splitKey(content)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", idx+1, err)
		}
		if _, dup := n.fields[key]; dup {
			return nil, fmt.Errorf("line %d: duplicate key %q", idx+1, key)
		}
		p.pos = idx + 1

		val, err := p.parseValue(indent, idx, rest)
		if err != nil {
			return nil, err
		}
		n.keys = append(n.keys, key)
		n.fields[key] = val
	}
}

func (p *yamlParser) parseValue(indent, idx int, rest string) (*yamlNode, error) {
	null := &yamlNode{kind: yamlScalar, line: idx + 1, value: "null"}
	switch {
	case rest == "":
		next, ind, ok, err := p.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return null, nil
		}
		content := p.lines[next][ind:]
		isItem := strings.HasPrefix(content, "- ") || content == "-"
		if isItem && ind >= indent {
			return p.parseList(ind)
		}
		if ind > indent {
			return p.parseMap(ind)
		}
		return null, nil
	case rest == "|" || rest == "|-" || rest == "|+":
		return p.parseBlock(indent, idx, rest[1:]), nil
	case rest == "[]":
		return &yamlNode{kind: yamlList, line: idx + 1}, nil
	case strings.ContainsAny(rest[:1], "{[&*!|>%@`"):
		return nil, fmt.Errorf("line %d: unsupported value %q", idx+1, rest)
	default:
		return &yamlNode{kind: yamlScalar, line: idx + 1, value: rest}, nil
	}
}

// parseBlock collects a block literal. Its indentation is that of the first
// non-blank line, which must be deeper than the key; the block ends at the
// first non-blank line indented less. chomp is "", "-" or "+" as in the
// header.
func (p *yamlParser) parseBlock(keyIndent, idx int, chomp string) *yamlNode {
	n := &yamlNode{kind: yamlBlock, line: idx + 1}
	pad := -1
	end := p.pos
	var out []string
	for i := p.pos; i < len(p.lines); i++ {
		l := p.lines[i]
		trimmed := strings.TrimLeft(l, " ")
		ind := len(l) - len(trimmed)
		if trimmed == "" {
			switch {
			case pad >= 0 && ind >= pad:
				out = append(out, l[pad:])
				end = i + 1
			case pad < 0 && ind > keyIndent:
				out = append(out, "")
				end = i + 1
			default:
				out = append(out, "")
			}
			continue
		}
		if pad < 0 {
			if ind <= keyIndent {
				break
			}
			pad = ind
		}
		if ind < pad {
			break
		}
		out = append(out, l[pad:])
		end = i + 1
	}
	out = out[:end-p.pos]
	p.pos = end

	switch chomp {
	case "+":
		n.value = strings.Join(out, "\n") + "\n"
	default:
		for len(out) > 0 && out[len(out)-1] == "" {
			out = out[:len(out)-1]
		}
		n.value = strings.Join(out, "\n")
		if chomp == "" && n.value != "" {
			n.value += "\n"
		}
	}
	return n
}

func (p *yamlParser) parseList(indent int) (*yamlNode, error) {
	n := &yamlNode{kind: yamlList, line: p.pos + 1}
	for {
		idx, ind, ok, err := p.next()
		if err != nil {
			return nil, err
		}
		if !ok || ind < indent {
			p.pos = idx
			return n, nil
		}
		content := p.lines[idx][ind:]
		if ind > indent {
			return nil, fmt.Errorf("line %d: unexpected indentation", idx+1)
		}
		if !strings.HasPrefix(content, "- ") {
			// A key at the list's own indentation ends a compact sequence.
			p.pos = idx
			return n, nil
		}
		itemIndent := indent + 2
		first := strings.TrimLeft(content[2:], " ")
		itemIndent += len(content[2:]) - len(first)
		if _, _, err := splitKey(first); err != nil {
			return nil, fmt.Errorf("line %d: sequence items must be mappings", idx+1)
		}
		p.lines[idx] = strings.Repeat(" ", itemIndent) + first
		p.pos = idx
		item, err := p.parseMap(itemIndent)
		if err != nil {
			return nil, err
		}
		n.items = append(n.items, item)
	}
}

// splitKey splits "key: value" or "key:".
func splitKey(s string) (key, rest string, err error) {
	i := strings.Index(s, ":")
	if i <= 0 {
		return "", "", fmt.Errorf("expected \"key: value\", got %q", s)
	}
	key = s[:i]
	if strings.ContainsAny(key[:1], "\"'{[&*!|>%@`?#") || strings.TrimSpace(key) != key {
		return "", "", fmt.Errorf("unsupported key %q", key)
	}
	rest = s[i+1:]
	if rest != "" && rest[0] != ' ' {
		return "", "", fmt.Errorf("expected space after %q:", key)
	}
	return key, strings.TrimSpace(rest), nil
}

// Typed accessors. A missing key or a null scalar yields nil.

func (n *yamlNode) child(key string) *yamlNode {
	if n == nil || n.kind != yamlMap {
		return nil
	}
	return n.fields[key]
}

func isNull(n *yamlNode) bool {
	return n == nil || (n.kind == yamlScalar && (n.value == "null" || n.value == "~"))
}

func yamlString(n *yamlNode) (*string, error) {
	if isNull(n) {
		return nil, nil
	}
	switch n.kind {
	case yamlBlock:
		return strPtr(n.value), nil
	case yamlScalar:
		s, err := unquote(n.value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", n.line, err)
		}
		return &s, nil
	default:
		return nil, fmt.Errorf("line %d: expected a string", n.line)
	}
}

func yamlInt(n *yamlNode) (*int, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.kind != yamlScalar {
		return nil, fmt.Errorf("line %d: expected an integer", n.line)
	}
	v, err := strconv.Atoi(n.value)
	if err != nil {
		return nil, fmt.Errorf("line %d: expected an integer, got %q", n.line, n.value)
	}
	return &v, nil
}

func yamlBool(n *yamlNode) (*bool, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.kind == yamlScalar {
		switch n.value {
		case "true":
			return boolPtr(true), nil
		case "false":
			return boolPtr(false), nil
		}
	}
	return nil, fmt.Errorf("line %d: expected true or false", n.line)
}

func expectMap(n *yamlNode, what string) error {
	if n == nil || n.kind == yamlMap || isNull(n) {
		return nil
	}
	return fmt.Errorf("line %d: %s must be a mapping", n.line, what)
}

func unquote(s string) (string, error) {
	switch {
	case strings.HasPrefix(s, `"`):
		return strconv.Unquote(s)
	case strings.HasPrefix(s, "'"):
		if len(s) < 2 || !strings.HasSuffix(s, "'") {
			return "", fmt.Errorf("unterminated string %s", s)
		}
		return strings.ReplaceAll(s[1:len(s)-1], "''", "'"), nil
	default:
		if i := strings.Index(s, " #"); i >= 0 {
			s = strings.TrimSpace(s[:i])
		}
		return s, nil
	}
}

// wireFromYAML maps the parsed tree onto the wire types shared with JSON.
func wireFromYAML(root *yamlNode) (*wireEssay, error) {
	w := &wireEssay{}
	var err error
	if w.Title, err = yamlString(root.child("title")); err != nil {
		return nil, err
	}

	if gs := root.child("globalSettings"); !isNull(gs) {
		if err := expectMap(gs, "globalSettings"); err != nil {
			return nil, err
		}
		w.GlobalSettings = &wireSettings{}
		if timer := gs.child("timer"); !isNull(timer) {
			if err := expectMap(timer, "timer"); err != nil {
				return nil, err
			}
			w.GlobalSettings.Timer = &wireTimer{}
			if w.GlobalSettings.Timer.Limit, err = yamlInt(timer.child("limit")); err != nil {
				return nil, err
			}
			if w.GlobalSettings.Timer.Elapsed, err = yamlInt(timer.child("elapsed")); err != nil {
				return nil, err
			}
		}
		if w.GlobalSettings.Editable, err = yamlBool(gs.child("editable")); err != nil {
			return nil, err
		}
		if w.GlobalSettings.EditableStructure, err = yamlBool(gs.child("editable_structure")); err != nil {
			return nil, err
		}
	}

	if ts := root.child("totalScoring"); !isNull(ts) {
		if err := expectMap(ts, "totalScoring"); err != nil {
			return nil, err
		}
		t := &wireTotalScoring{}
		if t.MaxPoints, err = yamlInt(ts.child("maxPoints")); err != nil {
			return nil, err
		}
		if t.Points, err = yamlInt(ts.child("points")); err != nil {
			return nil, err
		}
		if t.OverallComment, err = yamlString(ts.child("overallComment")); err != nil {
			return nil, err
		}
		w.Metadata = &wireDocMeta{TotalScoring: t}
	}

	secs := root.child("sections")
	if isNull(secs) {
		return w, nil
	}
	if secs.kind != yamlList {
		return nil, fmt.Errorf("line %d: sections must be a sequence", secs.line)
	}
	for _, item := range secs.items {
		s, err := wireSectionFromYAML(item)
		if err != nil {
			return nil, err
		}
		w.Sections = append(w.Sections, s)
	}
	return w, nil
}

func wireSectionFromYAML(item *yamlNode) (wireSection, error) {
	var (
		s   wireSection
		err error
	)
	if s.ID, err = yamlString(item.child("id")); err != nil {
		return s, err
	}
	if s.Title, err = yamlString(item.child("title")); err != nil {
		return s, err
	}
	if s.Content, err = yamlString(item.child("content")); err != nil {
		return s, err
	}
	if s.MaxCharacters, err = yamlInt(item.child("maxCharacters")); err != nil {
		return s, err
	}

	instr, err := yamlString(item.child("instruction"))
	if err != nil {
		return s, err
	}
	var scoring *wireScoring
	if sc := item.child("scoring"); !isNull(sc) {
		if err := expectMap(sc, "scoring"); err != nil {
			return s, err
		}
		scoring = &wireScoring{}
		if scoring.MaxPoints, err = yamlInt(sc.child("maxPoints")); err != nil {
			return s, err
		}
		if scoring.Points, err = yamlInt(sc.child("points")); err != nil {
			return s, err
		}
		if scoring.Comment, err = yamlString(sc.child("comment")); err != nil {
			return s, err
		}
	}
	if instr != nil || scoring != nil {
		s.Metadata = &wireSectionMeta{Instruction: instr, Scoring: scoring}
	}
	return s, nil
}
