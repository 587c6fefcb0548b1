// File: cursor.go
// Title: Token Cursor
// Description: Positional view over a token stream. The cursor always
//              points at the last consumed token and starts before the
//              first one. Checkpoints capture and restore the position for
//              trial dispatch and loop re-evaluation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package token

import (
	mdwerror "github.com/msto63/clite/foundation/core/error"
)

// Checkpoint is a captured cursor position
type Checkpoint int

// Cursor walks a Stream. It is not safe for concurrent use.
type Cursor struct {
	stream *Stream
	pos    int
}

// NewCursor returns a cursor positioned before the first token
func NewCursor(stream *Stream) *Cursor {
	return &Cursor{stream: stream, pos: -1}
}

// Peek returns the class of the next token without consuming it, or EOF
func (c *Cursor) Peek() Class {
	return c.stream.At(c.pos + 1).Class
}

// PeekToken returns the next token without consuming it
func (c *Cursor) PeekToken() Token {
	return c.stream.At(c.pos + 1)
}

// Advance consumes and returns the next token
func (c *Cursor) Advance() (Token, error) {
	next := c.stream.At(c.pos + 1)
	if next.Class == EOF {
		return next, mdwerror.Newf(mdwerror.CodeUnexpectedEOF, "unexpected end of token stream").
			WithDetail("position", c.pos+1)
	}
	c.pos++
	return next, nil
}

// Expect consumes the next token and fails unless it has the given class.
// On a mismatch the token is still consumed, the run is over anyway.
func (c *Cursor) Expect(class Class) (Token, error) {
	tok, err := c.Advance()
	if err != nil {
		if e, ok := mdwerror.As(err); ok {
			e.WithDetail("expected", string(class))
		}
		return tok, err
	}
	if tok.Class != class {
		return tok, mdwerror.Newf(mdwerror.CodeSyntax, "expected '%s' but found %s", class, tok).
			WithDetail("position", tok.Index).
			WithDetail("line", tok.Line).
			WithDetail("expected", string(class)).
			WithDetail("found", tok.Lexeme)
	}
	return tok, nil
}

// Rewind steps back exactly one position
func (c *Cursor) Rewind() {
	if c.pos >= 0 {
		c.pos--
	}
}

// Mark captures the current position
func (c *Cursor) Mark() Checkpoint {
	return Checkpoint(c.pos)
}

// Reset restores a position captured by Mark
func (c *Cursor) Reset(cp Checkpoint) {
	c.pos = int(cp)
}

// Pos returns the index of the last consumed token, -1 before the first
func (c *Cursor) Pos() int {
	return c.pos
}

// Current returns the last consumed token
func (c *Cursor) Current() Token {
	return c.stream.At(c.pos)
}

// Remaining returns the number of unconsumed tokens
func (c *Cursor) Remaining() int {
	return c.stream.Len() - c.pos - 1
}
