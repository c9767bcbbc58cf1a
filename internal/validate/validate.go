package validate

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Value is a form value, either text or a number
type Value struct {
	text    string
	number  float64
	numeric bool
}

// Text wraps a text value
func Text(s string) Value {
	return Value{text: s}
}

// Number wraps a numeric value
func Number(n float64) Value {
	return Value{number: n, numeric: true}
}

// IsNumeric reports whether the value holds a number
func (v Value) IsNumeric() bool {
	return v.numeric
}

// String returns the value's string form
func (v Value) String() string {
	if v.numeric {
		if math.IsNaN(v.number) {
			return "NaN"
		}
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}
	return v.text
}

// Validatable describes the constraints applied to one field value.
// A nil bound is not checked.
type Validatable struct {
	Value     Value
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Validate returns true iff every constraint set on input holds
func Validate(input Validatable) bool {
	isValid := true

	if input.Required {
		isValid = isValid && len(strings.TrimSpace(input.Value.String())) != 0
	}

	if !input.Value.numeric {
		// Length is measured on the raw text, before trimming
		length := utf8.RuneCountInString(input.Value.text)
		if input.MinLength != nil {
			isValid = isValid && length >= *input.MinLength
		}
		if input.MaxLength != nil {
			isValid = isValid && length <= *input.MaxLength
		}
	} else {
		if input.Min != nil {
			isValid = isValid && input.Value.number >= *input.Min
		}
		if input.Max != nil {
			isValid = isValid && input.Value.number <= *input.Max
		}
	}

	return isValid
}

// ParseNumber converts raw field text to a number. Empty or malformed
// text yields NaN, which fails any Min or Max bound.
func ParseNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN()
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// Int returns a pointer to n, for use as a length bound
func Int(n int) *int {
	return &n
}

// Float returns a pointer to n, for use as a numeric bound
func Float(n float64) *float64 {
	return &n
}
