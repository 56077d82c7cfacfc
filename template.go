package lazylog

import "strings"

// template is a format string pre-parsed at call-site construction so the
// flush path walks segments instead of rescanning for braces per record.
type template struct {
	segments []segment
}

type segment struct {
	literal     string
	placeholder bool
	name        string // empty for positional "{}"
}

// parseTemplate splits format into literal and placeholder segments. "{{"
// and "}}" escape literal braces. A "{" without a closing "}" is kept as a
// literal.
func parseTemplate(format string) template {
	var segs []segment
	var lit strings.Builder
	for i := 0; i < len(format); {
		c := format[i]
		switch {
		case c == '{' && i+1 < len(format) && format[i+1] == '{':
			lit.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(format) && format[i+1] == '}':
			lit.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(format[i:], '}')
			if end < 0 {
				lit.WriteByte('{')
				i++
				continue
			}
			if lit.Len() > 0 {
				segs = append(segs, segment{literal: lit.String()})
				lit.Reset()
			}
			segs = append(segs, segment{placeholder: true, name: strings.TrimSpace(format[i+1 : i+end])})
			i += end + 1
		default:
			lit.WriteByte(c)
			i++
		}
	}
	if lit.Len() > 0 {
		segs = append(segs, segment{literal: lit.String()})
	}
	return template{segments: segs}
}

// render substitutes decoded tokens into the template. Positional
// placeholders consume unnamed tokens in declaration order, falling back to
// unconsumed named tokens once the unnamed ones run out. Named placeholders
// resolve against the slot-name table; repeated use of the same name
// renders the same token. Named slots never consumed by a placeholder are
// returned as leftover fields in declaration order.
func (t template) render(slots []Slot, tokens []string) (string, []NamedField) {
	var sb strings.Builder
	consumed := make([]bool, len(tokens))
	nextPositional := func() (string, bool) {
		for i := range tokens {
			if !consumed[i] && slots[i].Name == "" {
				consumed[i] = true
				return tokens[i], true
			}
		}
		for i := range tokens {
			if !consumed[i] {
				consumed[i] = true
				return tokens[i], true
			}
		}
		return "", false
	}
	byName := func(name string) (string, bool) {
		for i := range tokens {
			if slots[i].Name == name {
				consumed[i] = true
				return tokens[i], true
			}
		}
		return "", false
	}
	for _, seg := range t.segments {
		if !seg.placeholder {
			sb.WriteString(seg.literal)
			continue
		}
		var tok string
		var ok bool
		if seg.name == "" {
			tok, ok = nextPositional()
		} else {
			tok, ok = byName(seg.name)
		}
		if !ok {
			// No token left for this placeholder: keep it visible rather
			// than dropping it silently.
			sb.WriteByte('{')
			sb.WriteString(seg.name)
			sb.WriteByte('}')
			continue
		}
		sb.WriteString(tok)
	}
	var leftover []NamedField
	for i := range tokens {
		if consumed[i] || slots[i].Name == "" {
			continue
		}
		leftover = append(leftover, NamedField{Name: slots[i].Name, Token: tokens[i]})
	}
	return sb.String(), leftover
}

// appendNamedFields attaches leftover named fields to a rendered message as
// "name=token", space-separated, in declaration order.
func appendNamedFields(line string, fields []NamedField) string {
	if len(fields) == 0 {
		return line
	}
	var sb strings.Builder
	sb.WriteString(line)
	for _, f := range fields {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		sb.WriteString(f.Token)
	}
	return sb.String()
}
