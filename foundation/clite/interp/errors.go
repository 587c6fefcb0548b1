// File: errors.go
// Title: Interpreter Errors
// Description: Helpers that build errors carrying the token position of
//              the violation.
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

	"github.com/msto63/clite/foundation/clite/token"
	mdwerror "github.com/msto63/clite/foundation/core/error"
)

func newError(code mdwerror.Code, tok token.Token, format string, args ...interface{}) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf(format, args...)).
		WithCode(code).
		WithDetail("position", tok.Index).
		WithDetail("line", tok.Line).
		WithDetail("found", tok.Lexeme)
}

func syntaxError(tok token.Token, format string, args ...interface{}) error {
	return newError(mdwerror.CodeSyntax, tok, format, args...)
}

// at attaches the position of tok to err unless it already has one
func at(err error, tok token.Token) error {
	mdwErr, ok := mdwerror.As(err)
	if !ok {
		return err
	}
	if _, has := mdwErr.Detail("position"); !has {
		mdwErr.WithDetail("position", tok.Index).WithDetail("line", tok.Line)
	}
	return err
}

// annotate makes sure every error leaving Run is a coded error with a
// position
func (in *Interpreter) annotate(err error) error {
	if _, ok := mdwerror.As(err); !ok {
		err = mdwerror.Wrap(err, "interpretation failed").WithCode(mdwerror.CodeInternal)
	}
	return at(err, in.cur.Current())
}

func (in *Interpreter) checkContext() error {
	if err := in.ctx.Err(); err != nil {
		tok := in.cur.Current()
		return mdwerror.Wrap(err, "interpretation canceled").
			WithCode(mdwerror.CodeCanceled).
			WithDetail("position", tok.Index).
			WithDetail("line", tok.Line)
	}
	return nil
}
