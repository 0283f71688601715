package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// MaxHeightMeters is the tallest accepted height. Larger values are assumed
// to be centimeters.
const MaxHeightMeters = 3.0

const (
	msgMissingField    = "Weight and height are required"
	msgInvalidValue    = "Weight and height must be positive numbers"
	msgImplausibleUnit = "Height must be in meters (e.g., 1.75)"
)

type rawKind int

const (
	rawAbsent rawKind = iota
	rawText
	rawNumber
	rawOther
)

// RawValue is an input value as supplied by a caller, before parsing. The
// zero value means "not provided".
type RawValue struct {
	kind rawKind
	text string
	num  float64
}

// Text returns a RawValue holding s.
func Text(s string) RawValue {
	return RawValue{kind: rawText, text: s}
}

// Number returns a RawValue holding f.
func Number(f float64) RawValue {
	return RawValue{kind: rawNumber, num: f}
}

// UnmarshalJSON accepts numbers and strings. null leaves the value absent;
// any other JSON type is kept as present but unparseable.
func (v *RawValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = RawValue{}
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Text(s)
	case len(b) > 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')):
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			*v = RawValue{kind: rawOther}
			return nil
		}
		*v = Number(f)
	default:
		*v = RawValue{kind: rawOther}
	}
	return nil
}

func (v RawValue) empty() bool {
	switch v.kind {
	case rawAbsent:
		return true
	case rawText:
		return strings.TrimSpace(v.text) == ""
	}
	return false
}

// float returns the parsed value, or NaN when it cannot be parsed.
func (v RawValue) float() float64 {
	var f float64
	switch v.kind {
	case rawNumber:
		f = v.num
	case rawText:
		p, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil {
			return math.NaN()
		}
		f = p
	default:
		return math.NaN()
	}
	if math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

// Validate checks and parses a weight/height pair.
func Validate(weight, height RawValue) (Measurement, error) {
	if weight.empty() || height.empty() {
		return Measurement{}, NewError(KindMissingField, msgMissingField)
	}

	w, h := weight.float(), height.float()
	// NaN fails both comparisons.
	if !(w > 0) || !(h > 0) {
		return Measurement{}, NewError(KindInvalidValue, msgInvalidValue)
	}
	if h > MaxHeightMeters {
		return Measurement{}, NewError(KindImplausibleUnit, msgImplausibleUnit)
	}

	m := Measurement{Weight: w, Height: h}
	if math.IsInf(Compute(m), 0) {
		return Measurement{}, NewError(KindInvalidValue, msgInvalidValue)
	}
	return m, nil
}
