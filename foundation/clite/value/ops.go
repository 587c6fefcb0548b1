// File: ops.go
// Title: Operators
// Description: Arithmetic, comparison and logical operators with the
//              language's promotion rule: if either operand is float the
//              other is widened and the operation is done in float,
//              otherwise both are int. Bool and char take part only in
//              logical operators.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package value

import (
	"math"

	mdwerror "github.com/msto63/clite/foundation/core/error"
)

// Op is a binary operator, spelled as in source text
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpMod Op = "%"

	OpEq Op = "=="
	OpNe Op = "!="
	OpLt Op = "<"
	OpLe Op = "<="
	OpGt Op = ">"
	OpGe Op = ">="

	OpAnd Op = "&&"
	OpOr  Op = "||"
)

// Family groups operators by their typing rule
type Family int

const (
	FamilyUnknown Family = iota
	FamilyArithmetic
	FamilyComparison
	FamilyLogical
)

// Family returns the operator family of op
func (op Op) Family() Family {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod:
		return FamilyArithmetic
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return FamilyComparison
	case OpAnd, OpOr:
		return FamilyLogical
	default:
		return FamilyUnknown
	}
}

// ResultType returns the type op yields for operands of type a and b,
// without computing anything.
func ResultType(op Op, a, b Type) (Type, error) {
	switch op.Family() {
	case FamilyArithmetic:
		if !a.IsNumeric() || !b.IsNumeric() {
			return TypeInvalid, operandError(op, a, b)
		}
		if a == TypeFloat || b == TypeFloat {
			return TypeFloat, nil
		}
		return TypeInt, nil

	case FamilyComparison:
		if !a.IsNumeric() || !b.IsNumeric() {
			return TypeInvalid, operandError(op, a, b)
		}
		return TypeBool, nil

	case FamilyLogical:
		if a != TypeBool || b != TypeBool {
			return TypeInvalid, operandError(op, a, b)
		}
		return TypeBool, nil
	}

	return TypeInvalid, mdwerror.Newf(mdwerror.CodeSyntax, "unknown operator '%s'", string(op)).
		WithDetail("operator", string(op))
}

// Apply evaluates a op b
func Apply(op Op, a, b Value) (Value, error) {
	rt, err := ResultType(op, a.typ, b.typ)
	if err != nil {
		return Value{}, err
	}

	switch op.Family() {
	case FamilyArithmetic:
		if rt == TypeFloat {
			return Float(floatArith(op, a.AsFloat(), b.AsFloat())), nil
		}
		return intArith(op, a.i, b.i)

	case FamilyComparison:
		if a.typ == TypeFloat || b.typ == TypeFloat {
			return Bool(compareFloat(op, a.AsFloat(), b.AsFloat())), nil
		}
		return Bool(compareInt(op, a.i, b.i)), nil

	default:
		if op == OpAnd {
			return Bool(a.b && b.b), nil
		}
		return Bool(a.b || b.b), nil
	}
}

func intArith(op Op, a, b int64) (Value, error) {
	switch op {
	case OpAdd:
		return Int(a + b), nil
	case OpSub:
		return Int(a - b), nil
	case OpMul:
		return Int(a * b), nil
	}

	if b == 0 {
		return Value{}, mdwerror.Newf(mdwerror.CodeDivisionByZero, "integer division by zero").
			WithDetail("operator", string(op))
	}
	if op == OpDiv {
		return Int(a / b), nil
	}
	return Int(a % b), nil
}

func floatArith(op Op, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		return math.Mod(a, b)
	}
}

func compareInt(op Op, a, b int64) bool {
	switch op {
	case OpEq:
		return a == b
	case OpNe:
		return a != b
	case OpLt:
		return a < b
	case OpLe:
		return a <= b
	case OpGt:
		return a > b
	default:
		return a >= b
	}
}

func compareFloat(op Op, a, b float64) bool {
	switch op {
	case OpEq:
		return a == b
	case OpNe:
		return a != b
	case OpLt:
		return a < b
	case OpLe:
		return a <= b
	case OpGt:
		return a > b
	default:
		return a >= b
	}
}

func operandError(op Op, a, b Type) error {
	return mdwerror.Newf(mdwerror.CodeInvalidOperandType,
		"operator '%s' is not defined for %s and %s", string(op), a, b).
		WithDetail("operator", string(op)).
		WithDetail("left", a.String()).
		WithDetail("right", b.String())
}
