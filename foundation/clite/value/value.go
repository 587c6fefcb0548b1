// File: value.go
// Title: Scalar Values
// Description: Tagged scalar values of the clite language. Every value
//              carries exactly one runtime type; literals and variables
//              share the same tags so promotion follows a single rule.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package value

import (
	"strconv"
	"strings"

	mdwerror "github.com/msto63/clite/foundation/core/error"
)

// Type is the runtime type tag of a value
type Type int

const (
	TypeInvalid Type = iota
	TypeInt
	TypeFloat
	TypeBool
	TypeChar
)

// String returns the language keyword of the type
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeChar:
		return "char"
	default:
		return "invalid"
	}
}

// IsNumeric reports whether arithmetic is defined on the type
func (t Type) IsNumeric() bool {
	return t == TypeInt || t == TypeFloat
}

// ParseType maps a type keyword to its Type
func ParseType(keyword string) (Type, bool) {
	switch keyword {
	case "int":
		return TypeInt, true
	case "float":
		return TypeFloat, true
	case "bool":
		return TypeBool, true
	case "char":
		return TypeChar, true
	default:
		return TypeInvalid, false
	}
}

// Value is a scalar of one of the four language types. The zero Value is
// invalid.
type Value struct {
	typ Type
	i   int64
	f   float64
	b   bool
	c   rune
}

// Int returns an int value
func Int(i int64) Value { return Value{typ: TypeInt, i: i} }

// Float returns a float value
func Float(f float64) Value { return Value{typ: TypeFloat, f: f} }

// Bool returns a bool value
func Bool(b bool) Value { return Value{typ: TypeBool, b: b} }

// Char returns a char value
func Char(c rune) Value { return Value{typ: TypeChar, c: c} }

// Zero returns the zero value of t
func Zero(t Type) Value {
	return Value{typ: t}
}

// Type returns the runtime type tag
func (v Value) Type() Type { return v.typ }

// IsValid reports whether v carries a language type
func (v Value) IsValid() bool { return v.typ != TypeInvalid }

// AsInt returns the int payload
func (v Value) AsInt() int64 { return v.i }

// AsFloat returns the numeric payload as float, widening ints
func (v Value) AsFloat() float64 {
	if v.typ == TypeInt {
		return float64(v.i)
	}
	return v.f
}

// AsBool returns the bool payload
func (v Value) AsBool() bool { return v.b }

// AsChar returns the char payload
func (v Value) AsChar() rune { return v.c }

// Widen converts v to t if the language allows it implicitly. Only the
// identity and int to float are allowed.
func (v Value) Widen(t Type) (Value, bool) {
	switch {
	case v.typ == t:
		return v, true
	case v.typ == TypeInt && t == TypeFloat:
		return Float(float64(v.i)), true
	default:
		return v, false
	}
}

// Equal reports whether both values have the same type and payload
func (v Value) Equal(o Value) bool {
	return v == o
}

// String renders the value with the default format
func (v Value) String() string {
	return DefaultFormat().Format(v)
}

// ParseLiteral builds a value from the lexeme of a literal token
func ParseLiteral(t Type, lexeme string) (Value, error) {
	switch t {
	case TypeInt:
		i, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return Value{}, literalError(t, lexeme)
		}
		return Int(i), nil

	case TypeFloat:
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return Value{}, literalError(t, lexeme)
		}
		return Float(f), nil

	case TypeBool:
		switch lexeme {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
		return Value{}, literalError(t, lexeme)

	case TypeChar:
		c, ok := parseChar(lexeme)
		if !ok {
			return Value{}, literalError(t, lexeme)
		}
		return Char(c), nil
	}

	return Value{}, literalError(t, lexeme)
}

var charEscapes = map[string]rune{
	`\n`: '\n',
	`\t`: '\t',
	`\r`: '\r',
	`\0`: 0,
	`\\`: '\\',
	`\'`: '\'',
}

func parseChar(lexeme string) (rune, bool) {
	body := lexeme
	if len(body) >= 2 && strings.HasPrefix(body, "'") && strings.HasSuffix(body, "'") {
		body = body[1 : len(body)-1]
	}
	if c, ok := charEscapes[body]; ok {
		return c, true
	}
	runes := []rune(body)
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}

func literalError(t Type, lexeme string) error {
	return mdwerror.Newf(mdwerror.CodeSyntax, "malformed %s literal '%s'", t, lexeme).
		WithDetail("lexeme", lexeme)
}
