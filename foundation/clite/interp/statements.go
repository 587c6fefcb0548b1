// File: statements.go
// Title: Statement Executor
// Description: Trial dispatch over the statement kinds. Each trial checks
//              its leading token and either handles the whole statement or
//              reports no match; on no match the cursor is restored before
//              the next kind is tried. The exec flag threads through every
//              statement so suppressed code is parsed but has no effect.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package interp

import (
	"fmt"
	"strconv"

	"github.com/msto63/clite/foundation/clite/symbols"
	"github.com/msto63/clite/foundation/clite/token"
	"github.com/msto63/clite/foundation/clite/value"
	mdwerror "github.com/msto63/clite/foundation/core/error"
	mdwlog "github.com/msto63/clite/foundation/core/log"
)

type trial func(exec bool) (bool, error)

func (in *Interpreter) trials() []trial {
	return []trial{
		in.assignment,
		in.printStatement,
		in.ifStatement,
		in.whileStatement,
		in.returnStatement,
		in.block,
	}
}

// statements -> statement*
func (in *Interpreter) statements(exec bool) error {
	for {
		if err := in.checkContext(); err != nil {
			return err
		}
		matched, err := in.statement(exec)
		if err != nil {
			return err
		}
		if !matched {
			return nil
		}
	}
}

// statement tries every statement kind in order and reports whether one
// matched
func (in *Interpreter) statement(exec bool) (bool, error) {
	for _, try := range in.trials() {
		mark := in.cur.Mark()
		matched, err := try(exec)
		if err != nil {
			return false, err
		}
		if matched {
			if exec {
				in.stats.Statements++
			}
			return true, nil
		}
		in.cur.Reset(mark)
	}
	return false, nil
}

// requireStatement parses the statement that must follow if, else or while
func (in *Interpreter) requireStatement(exec bool) error {
	matched, err := in.statement(exec)
	if err != nil {
		return err
	}
	if !matched {
		next := in.cur.PeekToken()
		return syntaxError(next, "expected a statement but found %s", next)
	}
	return nil
}

// assignment -> id assignOp expression ;
func (in *Interpreter) assignment(exec bool) (bool, error) {
	if in.cur.Peek() != token.ID {
		return false, nil
	}
	idTok, _ := in.cur.Advance()

	if _, err := in.cur.Expect(token.AssignOp); err != nil {
		return true, err
	}
	v, err := in.expression(exec)
	if err != nil {
		return true, err
	}
	if _, err := in.cur.Expect(token.Semicolon); err != nil {
		return true, err
	}

	event := Event{
		Kind:     KindAssign,
		Position: idTok.Index,
		Line:     idTok.Line,
		Executed: exec,
		Name:     idTok.Lexeme,
	}

	if !exec {
		if _, err := in.table.Lookup(idTok.Lexeme); err != nil {
			return true, at(err, idTok)
		}
		in.emit(event)
		return true, nil
	}

	outcome, err := in.table.Assign(idTok.Lexeme, v)
	if err != nil {
		return true, at(err, idTok)
	}
	in.stats.Assignments++
	event.Value = in.format.Format(v)
	event.Detail = outcome.String()

	if outcome == symbols.OutcomeIgnored {
		in.stats.Ignored++
		entry, _ := in.table.Lookup(idTok.Lexeme)
		in.logger.Debug("assignment ignored, value type does not fit the declaration", mdwlog.Fields{
			"name":      idTok.Lexeme,
			"declared":  entry.Declared.String(),
			"valueType": v.Type().String(),
			"position":  idTok.Index,
		})
	}

	in.emit(event)
	return true, nil
}

// printStatement -> print expression ;
func (in *Interpreter) printStatement(exec bool) (bool, error) {
	if in.cur.Peek() != token.Print {
		return false, nil
	}
	printTok, _ := in.cur.Advance()

	v, err := in.expression(exec)
	if err != nil {
		return true, err
	}
	if _, err := in.cur.Expect(token.Semicolon); err != nil {
		return true, err
	}

	event := Event{
		Kind:     KindPrint,
		Position: printTok.Index,
		Line:     printTok.Line,
		Executed: exec,
	}
	// Skipped statements carry no value, their operands were never read
	if !exec {
		in.emit(event)
		return true, nil
	}

	text := in.format.Format(v)
	event.Value = text
	in.emit(event)

	if _, err := fmt.Fprintln(in.out, text); err != nil {
		return true, mdwerror.Wrap(err, "writing program output").
			WithCode(mdwerror.CodeInternal).
			WithDetail("position", printTok.Index)
	}
	in.stats.Prints++
	return true, nil
}

// ifStatement -> if ( expression ) statement (else statement)?
func (in *Interpreter) ifStatement(exec bool) (bool, error) {
	if in.cur.Peek() != token.If {
		return false, nil
	}
	ifTok, _ := in.cur.Advance()

	cond, err := in.condition(exec)
	if err != nil {
		return true, err
	}
	taken := exec && cond.AsBool()

	hasElse := false
	if err := in.requireStatement(taken); err != nil {
		return true, err
	}
	if in.cur.Peek() == token.Else {
		_, _ = in.cur.Advance()
		hasElse = true
		if err := in.requireStatement(exec && !cond.AsBool()); err != nil {
			return true, err
		}
	}

	event := Event{
		Kind:     KindBranch,
		Position: ifTok.Index,
		Line:     ifTok.Line,
		Executed: exec,
	}
	if exec {
		event.Value = in.format.Format(cond)
		switch {
		case cond.AsBool():
			event.Detail = "then"
		case hasElse:
			event.Detail = "else"
		default:
			event.Detail = "none"
		}
	}
	in.emit(event)
	return true, nil
}

// whileStatement -> while ( expression ) statement
//
// Every iteration rewinds to the start of the condition and parses it
// again against the live symbol values. After the condition turns false
// the body is parsed once more with execution suppressed, which leaves the
// cursor just past the loop.
func (in *Interpreter) whileStatement(exec bool) (bool, error) {
	if in.cur.Peek() != token.While {
		return false, nil
	}
	whileTok, _ := in.cur.Advance()
	start := in.cur.Mark()

	iterations := 0
	for {
		in.cur.Reset(start)

		cond, err := in.condition(exec)
		if err != nil {
			return true, err
		}
		run := exec && cond.AsBool()

		if run {
			if err := in.checkContext(); err != nil {
				return true, err
			}
			iterations++
			in.stats.Iterations++
			in.emit(Event{
				Kind:     KindLoop,
				Position: whileTok.Index,
				Line:     whileTok.Line,
				Executed: true,
				Detail:   "iteration " + strconv.Itoa(iterations),
			})
		}

		if err := in.requireStatement(run); err != nil {
			return true, err
		}
		if !run {
			break
		}
	}

	event := Event{
		Kind:     KindLoop,
		Position: whileTok.Index,
		Line:     whileTok.Line,
		Executed: exec,
	}
	if exec {
		event.Detail = fmt.Sprintf("exit after %d iterations", iterations)
	}
	in.emit(event)
	return true, nil
}

// returnStatement -> return expression ;
//
// There is no caller to return to, the value is evaluated and dropped.
func (in *Interpreter) returnStatement(exec bool) (bool, error) {
	if in.cur.Peek() != token.Return {
		return false, nil
	}
	retTok, _ := in.cur.Advance()

	v, err := in.expression(exec)
	if err != nil {
		return true, err
	}
	if _, err := in.cur.Expect(token.Semicolon); err != nil {
		return true, err
	}

	event := Event{
		Kind:     KindReturn,
		Position: retTok.Index,
		Line:     retTok.Line,
		Executed: exec,
	}
	if exec {
		event.Value = in.format.Format(v)
	}
	in.emit(event)
	return true, nil
}

// block -> { statement* }
func (in *Interpreter) block(exec bool) (bool, error) {
	if in.cur.Peek() != token.LBrace {
		return false, nil
	}
	_, _ = in.cur.Advance()

	if err := in.statements(exec); err != nil {
		return true, err
	}
	if _, err := in.cur.Expect(token.RBrace); err != nil {
		return true, err
	}
	return true, nil
}

// condition parses expression ) and requires a bool result. The opening
// parenthesis is consumed here as well.
func (in *Interpreter) condition(exec bool) (value.Value, error) {
	if _, err := in.cur.Expect(token.LParen); err != nil {
		return value.Value{}, err
	}
	first := in.cur.PeekToken()

	cond, err := in.expression(exec)
	if err != nil {
		return value.Value{}, err
	}
	if cond.Type() != value.TypeBool {
		return value.Value{}, newError(mdwerror.CodeTypeError, first,
			"condition must be bool, found %s", cond.Type())
	}

	if _, err := in.cur.Expect(token.RParen); err != nil {
		return value.Value{}, err
	}
	return cond, nil
}
