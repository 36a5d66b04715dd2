// Package literal decodes the raw text found in URL path segments and query
// values: percent-decoding and the literal grammar of the primitive types a
// template slot can hold.
package literal

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

// Unescape percent-decodes s.
//
// '+' is kept as is. It reports false if s holds a malformed escape or if
// the decoded bytes are not valid UTF-8.
func Unescape(s string) (string, bool) {
	i := indexPercent(s)
	if i < 0 {
		return s, utf8.ValidString(s)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(s[:i])

	for ; i < len(s); i++ {
		c := s[i]
		if c != percent {
			buf.WriteByte(c)
			continue
		}

		if i+2 >= len(s) {
			return "", false
		}

		hi, lo := unhex(s[i+1]), unhex(s[i+2])
		if hi < 0 || lo < 0 {
			return "", false
		}

		buf.WriteByte(byte(hi<<4 | lo))
		i += 2
	}

	if !utf8.Valid(buf.B) {
		return "", false
	}

	return buf.String(), true
}

// Bool parses exactly "true" or "false".
func Bool(s string) (bool, bool) {
	switch s {
	case literalTrue:
		return true, true
	case literalFalse:
		return false, true
	}

	return false, false
}

// Int parses a base-10 integer with an optional sign that fits in int.
func Int(s string) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}

	v, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}

	return int(v), true
}

// Double parses a floating point number. Values out of range are reported
// as ±Inf rather than as failures.
func Double(s string) (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}

		return 0, false
	}

	return v, true
}
