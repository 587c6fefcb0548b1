// File: declarations.go
// Title: Declaration Parser
// Description: Parses the declaration groups at the top of main and
//              registers every identifier unset in the symbol table.
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
)

// declarations -> (type id (, id)* ;)*
func (in *Interpreter) declarations() error {
	for in.cur.Peek() == token.Type {
		typeTok, _ := in.cur.Advance()
		typ, ok := value.ParseType(typeTok.Lexeme)
		if !ok {
			return syntaxError(typeTok, "unknown type '%s'", typeTok.Lexeme)
		}

		for {
			idTok, err := in.cur.Expect(token.ID)
			if err != nil {
				return err
			}
			if err := in.table.Declare(idTok.Lexeme, typ); err != nil {
				return at(err, idTok)
			}
			in.stats.Declarations++
			in.emit(Event{
				Kind:     KindDeclare,
				Position: idTok.Index,
				Line:     idTok.Line,
				Executed: true,
				Name:     idTok.Lexeme,
				Detail:   typ.String(),
			})

			if in.cur.Peek() != token.Comma {
				break
			}
			_, _ = in.cur.Advance()
		}

		if _, err := in.cur.Expect(token.Semicolon); err != nil {
			return err
		}
	}
	return nil
}
