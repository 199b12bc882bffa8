// Package validate checks raw form values against optional constraints.
package validate

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validatable is a value plus the constraints it must satisfy.
//
// Value must be a string or a number (int, int64, float64). Nil constraint pointers are
// absent and never reject. Length constraints only apply to strings; Min/Max only apply
// to numbers.
type Validatable struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Validate reports whether every present, type-applicable constraint holds.
func Validate(v Validatable) bool {
	ok := true
	if v.Required {
		ok = ok && strings.TrimSpace(stringify(v.Value)) != ""
	}

	if s, isStr := v.Value.(string); isStr {
		n := utf8.RuneCountInString(s)
		if v.MinLength != nil {
			ok = ok && n >= *v.MinLength
		}
		if v.MaxLength != nil {
			ok = ok && n <= *v.MaxLength
		}
	}

	if f, isNum := number(v.Value); isNum {
		// NaN compares false against every bound, so it fails any present bound.
		if v.Min != nil {
			ok = ok && f >= *v.Min
		}
		if v.Max != nil {
			ok = ok && f <= *v.Max
		}
	}
	return ok
}

// ParseNumber converts raw field text into a number the way the input form expects:
// blank text is 0 and text that is not a number is NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// Int returns a pointer to n, for length constraints.
func Int(n int) *int { return &n }

// Float returns a pointer to f, for numeric bounds.
func Float(f float64) *float64 { return &f }

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func number(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}
