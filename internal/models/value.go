package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Text is a free-form JSON field that is read as a string.
// Strings are kept as-is and non-zero numbers keep their literal spelling.
// Empty values (null, false, zero) read as empty, true reads as "True", and
// objects and arrays read as empty.
type Text string

// UnmarshalJSON never fails, so one odd optional field cannot reject a request.
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*t = Text(s)
		}
	case c == '-' || (c >= '0' && c <= '9'):
		if !isEmptyJSON(data) {
			*t = Text(data)
		}
	case bytes.Equal(data, []byte("true")):
		*t = "True"
	}
	return nil
}

// isEmptyJSON reports whether data is null, false, zero, or an empty
// string, object or array.
func isEmptyJSON(data []byte) bool {
	if len(data) == 0 {
		return true
	}

	switch c := data[0]; {
	case c == 'n', c == 'f':
		return true
	case c == 't':
		return false
	case c == '"':
		var s string
		return json.Unmarshal(data, &s) == nil && s == ""
	case c == '{':
		var m map[string]json.RawMessage
		return json.Unmarshal(data, &m) == nil && len(m) == 0
	case c == '[':
		var a []json.RawMessage
		return json.Unmarshal(data, &a) == nil && len(a) == 0
	default:
		v, err := strconv.ParseFloat(string(data), 64)
		return err == nil && v == 0
	}
}

// String returns the text value.
func (t Text) String() string {
	return string(t)
}

// Number is a JSON field that may hold a number or a numeric string.
// Values that do not parse as a finite number are left invalid instead of
// rejecting the request; callers substitute their own default.
type Number struct {
	Raw   string
	Value float64
	Valid bool
}

// UnmarshalJSON never fails; see Number.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	n.Raw = raw
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n.Value = v
	n.Valid = true
	return nil
}

// Float returns the numeric value, or def when the field was absent or invalid.
func (n Number) Float(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Value
}
