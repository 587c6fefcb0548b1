// File: expressions.go
// Title: Expression Evaluator
// Description: Precedence climbing over six levels. Each level parses its
//              left operand at the next tighter level, folds in operators of
//              its own class and applies the value rules as it goes. Both
//              operands of && and || are always evaluated.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package interp

import (
	"github.com/msto63/clite/foundation/clite/token"
	"github.com/msto63/clite/foundation/clite/value"
	mdwerror "github.com/msto63/clite/foundation/core/error"
)

var operatorsByClass = map[token.Class][]value.Op{
	token.Or:     {value.OpOr},
	token.And:    {value.OpAnd},
	token.EquOp:  {value.OpEq, value.OpNe},
	token.RelOp:  {value.OpLt, value.OpLe, value.OpGt, value.OpGe},
	token.AddOp:  {value.OpAdd, value.OpSub},
	token.MultOp: {value.OpMul, value.OpDiv, value.OpMod},
}

var literalTypes = map[token.Class]value.Type{
	token.IntLiteral:   value.TypeInt,
	token.FloatLiteral: value.TypeFloat,
	token.BoolLiteral:  value.TypeBool,
	token.CharLiteral:  value.TypeChar,
}

type level func(exec bool) (value.Value, error)

// expression -> conjunction (|| conjunction)*
func (in *Interpreter) expression(exec bool) (value.Value, error) {
	return in.repeated(token.Or, in.conjunction, exec)
}

// conjunction -> equality (&& equality)*
func (in *Interpreter) conjunction(exec bool) (value.Value, error) {
	return in.repeated(token.And, in.equality, exec)
}

// equality -> relation (equOp relation)?
func (in *Interpreter) equality(exec bool) (value.Value, error) {
	return in.optional(token.EquOp, in.relation, exec)
}

// relation -> addition (relOp addition)?
func (in *Interpreter) relation(exec bool) (value.Value, error) {
	return in.optional(token.RelOp, in.addition, exec)
}

// addition -> term (addOp term)*
func (in *Interpreter) addition(exec bool) (value.Value, error) {
	return in.repeated(token.AddOp, in.term, exec)
}

// term -> factor (multOp factor)*
func (in *Interpreter) term(exec bool) (value.Value, error) {
	return in.repeated(token.MultOp, in.factor, exec)
}

// repeated folds left associative operators of one class
func (in *Interpreter) repeated(class token.Class, next level, exec bool) (value.Value, error) {
	left, err := next(exec)
	if err != nil {
		return value.Value{}, err
	}
	for in.cur.Peek() == class {
		left, err = in.binary(left, next, exec)
		if err != nil {
			return value.Value{}, err
		}
	}
	return left, nil
}

// optional applies at most one operator of the class; a second one is
// left for the caller, where it is a syntax error
func (in *Interpreter) optional(class token.Class, next level, exec bool) (value.Value, error) {
	left, err := next(exec)
	if err != nil {
		return value.Value{}, err
	}
	if in.cur.Peek() == class {
		return in.binary(left, next, exec)
	}
	return left, nil
}

// binary consumes an operator token and its right operand and combines
// them with left
func (in *Interpreter) binary(left value.Value, next level, exec bool) (value.Value, error) {
	opTok, err := in.cur.Advance()
	if err != nil {
		return value.Value{}, err
	}
	op, err := operator(opTok)
	if err != nil {
		return value.Value{}, err
	}

	right, err := next(exec)
	if err != nil {
		return value.Value{}, err
	}

	if !exec {
		rt, err := value.ResultType(op, left.Type(), right.Type())
		if err != nil {
			return value.Value{}, at(err, opTok)
		}
		return value.Zero(rt), nil
	}

	result, err := value.Apply(op, left, right)
	if err != nil {
		return value.Value{}, at(err, opTok)
	}
	return result, nil
}

func operator(tok token.Token) (value.Op, error) {
	ops := operatorsByClass[tok.Class]
	if len(ops) == 1 {
		return ops[0], nil
	}
	for _, op := range ops {
		if string(op) == tok.Lexeme {
			return op, nil
		}
	}
	return "", syntaxError(tok, "unknown %s operator '%s'", tok.Class, tok.Lexeme)
}

// factor -> id | intLiteral | boolLiteral | floatLiteral | charLiteral | ( expression )
func (in *Interpreter) factor(exec bool) (value.Value, error) {
	tok, err := in.cur.Advance()
	if err != nil {
		return value.Value{}, err
	}

	switch tok.Class {
	case token.ID:
		return in.variable(tok, exec)

	case token.IntLiteral, token.FloatLiteral, token.BoolLiteral, token.CharLiteral:
		v, err := value.ParseLiteral(literalTypes[tok.Class], tok.Lexeme)
		if err != nil {
			return value.Value{}, at(err, tok)
		}
		return v, nil

	case token.LParen:
		v, err := in.expression(exec)
		if err != nil {
			return value.Value{}, err
		}
		if _, err := in.cur.Expect(token.RParen); err != nil {
			return value.Value{}, err
		}
		return v, nil
	}

	return value.Value{}, syntaxError(tok, "missing factor, found %s", tok)
}

func (in *Interpreter) variable(tok token.Token, exec bool) (value.Value, error) {
	entry, err := in.table.Lookup(tok.Lexeme)
	if err != nil {
		return value.Value{}, at(err, tok)
	}

	if !exec || entry.Set || in.opts.ZeroUninitialized {
		return entry.Value, nil
	}

	return value.Value{}, newError(mdwerror.CodeUninitializedValue, tok,
		"identifier '%s' is read before it is assigned", tok.Lexeme).
		WithDetail("name", tok.Lexeme)
}
