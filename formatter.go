package lazylog

import (
	"time"
	"unicode/utf8"
)

// Formatter turns a decoded record into the final output line. Formatters
// are invoked serially on the flush path and need not be thread-safe; they
// may keep internal scratch state between calls.
type Formatter interface {
	// Format renders the reconstructed message line together with the
	// record's wall-clock time and call-site metadata. The result is handed
	// to the sink verbatim, so it normally ends with a newline.
	Format(ts time.Time, meta *Callsite, line string) string
}

// NamedField is one named argument decoded from a record that the format
// template did not consume.
type NamedField struct {
	Name  string
	Token string
}

// StructuredFormatter is an optional extension of Formatter. A formatter
// implementing it receives the message line without the "name=token"
// suffixes and gets the unconsumed named fields separately, so it can place
// them in its own structure. FormatStructured is called instead of Format.
type StructuredFormatter interface {
	Formatter
	FormatStructured(ts time.Time, meta *Callsite, line string, fields []NamedField) string
}

// TextFormatterOptions selects the optional prefix elements of a
// TextFormatter.
type TextFormatterOptions struct {
	// IncludeLevel prefixes the line with the severity short name.
	IncludeLevel bool
	// IncludeTarget prefixes the line with the call site's target.
	IncludeTarget bool
	// IncludeSource prefixes the line with file:line of the call site.
	IncludeSource bool
}

// TextFormatter renders "[timestamp] line\n" with optional bracketed level,
// target and source segments. The zero value is the package default:
// timestamp and message only.
type TextFormatter struct {
	opts TextFormatterOptions
	buf  []byte
}

// NewTextFormatter returns a text formatter with the supplied options.
func NewTextFormatter(opts TextFormatterOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

func (f *TextFormatter) Format(ts time.Time, meta *Callsite, line string) string {
	buf := f.buf[:0]
	buf = append(buf, '[')
	buf = appendTimestampUTC(buf, ts)
	buf = append(buf, ']')
	if f.opts.IncludeLevel {
		buf = append(buf, '[')
		buf = append(buf, meta.Level().Short()...)
		buf = append(buf, ']')
	}
	if f.opts.IncludeTarget {
		buf = append(buf, '[')
		buf = append(buf, meta.Target()...)
		buf = append(buf, ']')
	}
	if f.opts.IncludeSource {
		buf = append(buf, '[')
		buf = append(buf, meta.File()...)
		buf = append(buf, ':')
		buf = appendInt(buf, meta.Line())
		buf = append(buf, ']')
	}
	buf = append(buf, ' ')
	buf = append(buf, line...)
	buf = append(buf, '\n')
	f.buf = buf
	return string(buf)
}

// JSONFormatter renders records as one JSON object per line:
//
//	{"timestamp":"...","level":"INF","fields":{"message":"...","a":"1"}}
//
// It implements StructuredFormatter: unconsumed named fields become members
// of the fields object instead of name=token suffixes.
type JSONFormatter struct {
	buf []byte
}

// NewJSONFormatter returns a JSON line formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Format(ts time.Time, meta *Callsite, line string) string {
	return f.FormatStructured(ts, meta, line, nil)
}

func (f *JSONFormatter) FormatStructured(ts time.Time, meta *Callsite, line string, fields []NamedField) string {
	buf := f.buf[:0]
	buf = append(buf, `{"timestamp":"`...)
	buf = appendTimestampUTC(buf, ts)
	buf = append(buf, `","level":"`...)
	buf = append(buf, meta.Level().Short()...)
	buf = append(buf, '"')
	if line != "" || len(fields) > 0 {
		buf = append(buf, `,"fields":{`...)
		first := true
		if line != "" {
			buf = append(buf, `"message":"`...)
			buf = appendJSONEscaped(buf, line)
			buf = append(buf, '"')
			first = false
		}
		for _, field := range fields {
			if !first {
				buf = append(buf, ',')
			}
			buf = append(buf, '"')
			buf = appendJSONEscaped(buf, field.Name)
			buf = append(buf, `":"`...)
			buf = appendJSONEscaped(buf, field.Token)
			buf = append(buf, '"')
			first = false
		}
		buf = append(buf, '}')
	}
	buf = append(buf, "}\n"...)
	f.buf = buf
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	if v >= 10 {
		buf = appendInt(buf, v/10)
	}
	return append(buf, byte('0'+v%10))
}

// appendJSONEscaped appends s with the escapes required inside a JSON
// string. Invalid UTF-8 bytes are replaced.
func appendJSONEscaped(buf []byte, s string) []byte {
	const hex = "0123456789abcdef"
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' && c < utf8.RuneSelf {
			buf = append(buf, c)
			i++
			continue
		}
		if c < utf8.RuneSelf {
			switch c {
			case '"':
				buf = append(buf, '\\', '"')
			case '\\':
				buf = append(buf, '\\', '\\')
			case '\n':
				buf = append(buf, '\\', 'n')
			case '\r':
				buf = append(buf, '\\', 'r')
			case '\t':
				buf = append(buf, '\\', 't')
			default:
				buf = append(buf, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf = append(buf, `�`...)
			i++
			continue
		}
		buf = append(buf, s[i:i+size]...)
		i += size
	}
	return buf
}
