// File: format.go
// Title: Value Rendering
// Description: Renders values for print statements. Floats use the
//              shortest %g form with a configurable number of significant
//              digits; bools render as words or as 1/0.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package value

import (
	"fmt"
	"strconv"
	"strings"
)

// BoolStyle selects how bools are printed
type BoolStyle int

const (
	// BoolWords prints true and false
	BoolWords BoolStyle = iota

	// BoolNumeric prints 1 and 0
	BoolNumeric
)

// String returns the configuration name of the style
func (s BoolStyle) String() string {
	if s == BoolNumeric {
		return "numeric"
	}
	return "words"
}

// ParseBoolStyle parses "words" or "numeric"
func ParseBoolStyle(s string) (BoolStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "words", "word":
		return BoolWords, nil
	case "numeric", "number":
		return BoolNumeric, nil
	default:
		return BoolWords, fmt.Errorf("invalid bool style %q", s)
	}
}

// DefaultPrecision is the number of significant digits printed for floats
const DefaultPrecision = 6

// Format holds the rendering options
type Format struct {
	BoolStyle BoolStyle

	// Precision is the number of significant float digits. Zero selects
	// DefaultPrecision, a negative value the shortest exact form.
	Precision int
}

// DefaultFormat returns words for bools and six significant float digits
func DefaultFormat() Format {
	return Format{BoolStyle: BoolWords, Precision: DefaultPrecision}
}

// Format renders v as one print line without the newline
func (f Format) Format(v Value) string {
	switch v.typ {
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		prec := f.Precision
		if prec == 0 {
			prec = DefaultPrecision
		}
		return strconv.FormatFloat(v.f, 'g', prec, 64)
	case TypeBool:
		if f.BoolStyle == BoolNumeric {
			if v.b {
				return "1"
			}
			return "0"
		}
		return strconv.FormatBool(v.b)
	case TypeChar:
		return string(v.c)
	default:
		return "<invalid>"
	}
}
