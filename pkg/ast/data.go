package ast

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrMalformedData reports a quoted DATA field followed by something other
// than blanks before the next comma.
var ErrMalformedData = errors.New("malformed DATA field")

// DataStatement is DATA followed by its raw, untokenized payload.
type DataStatement struct {
	stmt
	Text string
}

func (s *DataStatement) Render(sb *strings.Builder) {
	sb.WriteString("DATA")
	if s.Text != "" {
		sb.WriteByte(' ')
		sb.WriteString(s.Text)
	}
}

// Items lazily yields the fields of the payload. Each call starts a fresh
// scan. Iteration stops at the first malformed field; use Fields to see the
// error.
func (s *DataStatement) Items() iter.Seq[string] {
	return func(yield func(string) bool) {
		r := dataReader{text: s.Text}
		for {
			field, ok, err := r.next()
			if err != nil || !ok || !yield(field) {
				return
			}
		}
	}
}

// Fields reads the whole payload.
func (s *DataStatement) Fields() ([]string, error) {
	r := dataReader{text: s.Text}
	var fields []string
	for {
		field, ok, err := r.next()
		if err != nil {
			return fields, err
		}
		if !ok {
			return fields, nil
		}
		fields = append(fields, field)
	}
}

type dataReader struct {
	text string
	pos  int
	done bool
}

// next returns the next field. ok is false once the payload is exhausted.
func (r *dataReader) next() (string, bool, error) {
	if r.done || strings.TrimSpace(r.text) == "" {
		return "", false, nil
	}
	for r.pos < len(r.text) && isBlank(r.text[r.pos]) {
		r.pos++
	}

	var field string
	if r.pos < len(r.text) && r.text[r.pos] == '"' {
		start := r.pos + 1
		end := strings.IndexByte(r.text[start:], '"')
		if end < 0 {
			field = r.text[start:]
			r.pos = len(r.text)
		} else {
			field = r.text[start : start+end]
			r.pos = start + end + 1
		}
		for r.pos < len(r.text) && isBlank(r.text[r.pos]) {
			r.pos++
		}
		if r.pos < len(r.text) && r.text[r.pos] != ',' {
			r.done = true
			return "", false, fmt.Errorf("%w: unexpected %q after quoted field at offset %d",
				ErrMalformedData, r.text[r.pos], r.pos)
		}
	} else {
		end := strings.IndexByte(r.text[r.pos:], ',')
		if end < 0 {
			end = len(r.text) - r.pos
		}
		field = strings.TrimRight(r.text[r.pos:r.pos+end], " \t")
		r.pos += end
	}

	if r.pos < len(r.text) {
		r.pos++ // comma
	} else {
		r.done = true
	}
	return field, true, nil
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }
