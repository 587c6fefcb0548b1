// File: token_test.go
// Title: Token Stream and Cursor Tests
// Description: Tests for stream construction, class validation and the
//              cursor's peek, advance, expect and checkpoint operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test suite

package token

import (
	"testing"

	mdwerror "github.com/msto63/clite/foundation/core/error"
)

func mustPairs(t *testing.T, classes, lexemes []string) *Stream {
	t.Helper()
	s, err := FromPairs(classes, lexemes)
	if err != nil {
		t.Fatalf("FromPairs() error = %v", err)
	}
	return s
}

func TestFromPairs(t *testing.T) {
	tests := []struct {
		name     string
		classes  []string
		lexemes  []string
		wantCode mdwerror.Code
		wantLen  int
	}{
		{
			name:    "valid",
			classes: []string{"id", "assignOp", "intLiteral", ";"},
			lexemes: []string{"x", "=", "5", ";"},
			wantLen: 4,
		},
		{
			name:    "empty",
			classes: nil,
			lexemes: nil,
			wantLen: 0,
		},
		{
			name:     "length mismatch",
			classes:  []string{"id", "assignOp"},
			lexemes:  []string{"x"},
			wantCode: mdwerror.CodeInvalidInput,
		},
		{
			name:     "unknown class",
			classes:  []string{"id", "colon"},
			lexemes:  []string{"x", ":"},
			wantCode: mdwerror.CodeInvalidInput,
		},
		{
			name:     "EOF is not a stream class",
			classes:  []string{"EOF"},
			lexemes:  []string{""},
			wantCode: mdwerror.CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromPairs(tt.classes, tt.lexemes)
			if tt.wantCode != "" {
				if !mdwerror.HasCode(err, tt.wantCode) {
					t.Fatalf("FromPairs() error = %v, want code %v", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromPairs() error = %v", err)
			}
			if s.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.wantLen)
			}
		})
	}
}

func TestStreamIndexesAndPairs(t *testing.T) {
	s, err := NewStream([]Token{
		{Class: Print, Lexeme: "print", Index: 99, Line: 3},
		{Class: ID, Lexeme: "x", Line: 3},
	})
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	if s.At(0).Index != 0 || s.At(1).Index != 1 {
		t.Errorf("indexes not renumbered: %+v", s.Tokens())
	}
	if s.At(0).Line != 3 {
		t.Errorf("At(0).Line = %d, want 3", s.At(0).Line)
	}
	if s.At(2).Class != EOF || s.At(-1).Class != EOF {
		t.Error("out of range At() should return EOF")
	}

	classes, lexemes := s.Pairs()
	if classes[1] != "id" || lexemes[1] != "x" {
		t.Errorf("Pairs() = %v, %v", classes, lexemes)
	}

	tokens := s.Tokens()
	tokens[0].Lexeme = "mutated"
	if s.At(0).Lexeme != "print" {
		t.Error("Tokens() should return a copy")
	}
}

func TestClassHelpers(t *testing.T) {
	if len(Classes()) != 25 {
		t.Errorf("Classes() length = %d, want 25", len(Classes()))
	}
	for _, c := range Classes() {
		if !c.IsValid() {
			t.Errorf("%v should be valid", c)
		}
	}
	if !CharLiteral.IsLiteral() || ID.IsLiteral() {
		t.Error("IsLiteral() mismatch")
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Class: Semicolon, Lexeme: ";"}, "';'"},
		{Token{Class: ID, Lexeme: "x"}, "id 'x'"},
		{Token{Class: EOF}, "end of stream"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCursorPeekAdvance(t *testing.T) {
	s := mustPairs(t, []string{"id", ";"}, []string{"x", ";"})
	c := NewCursor(s)

	if c.Pos() != -1 {
		t.Errorf("Pos() = %d, want -1", c.Pos())
	}
	if c.Peek() != ID {
		t.Errorf("Peek() = %v, want id", c.Peek())
	}
	if c.Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2", c.Remaining())
	}

	tok, err := c.Advance()
	if err != nil || tok.Lexeme != "x" {
		t.Fatalf("Advance() = %v, %v", tok, err)
	}
	if c.Current().Lexeme != "x" {
		t.Errorf("Current() = %v", c.Current())
	}

	if _, err := c.Advance(); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if c.Peek() != EOF {
		t.Errorf("Peek() at end = %v, want EOF", c.Peek())
	}

	_, err = c.Advance()
	if !mdwerror.HasCode(err, mdwerror.CodeUnexpectedEOF) {
		t.Errorf("Advance() at end error = %v, want %v", err, mdwerror.CodeUnexpectedEOF)
	}
	if c.Pos() != 1 {
		t.Errorf("failed Advance() should not move the cursor, Pos() = %d", c.Pos())
	}
}

func TestCursorExpect(t *testing.T) {
	s := mustPairs(t, []string{"print", "id"}, []string{"print", "x"})

	c := NewCursor(s)
	if _, err := c.Expect(Print); err != nil {
		t.Fatalf("Expect(print) error = %v", err)
	}

	_, err := c.Expect(Semicolon)
	mdwErr, ok := mdwerror.As(err)
	if !ok || mdwErr.Code() != mdwerror.CodeSyntax {
		t.Fatalf("Expect(;) error = %v, want SYNTAX", err)
	}
	if v, _ := mdwErr.Detail("position"); v != 1 {
		t.Errorf("position detail = %v, want 1", v)
	}
	if v, _ := mdwErr.Detail("found"); v != "x" {
		t.Errorf("found detail = %v, want x", v)
	}
	if mdwErr.Message() != "expected ';' but found id 'x'" {
		t.Errorf("Message() = %q", mdwErr.Message())
	}

	_, err = c.Expect(Semicolon)
	if !mdwerror.HasCode(err, mdwerror.CodeUnexpectedEOF) {
		t.Errorf("Expect() at end error = %v, want %v", err, mdwerror.CodeUnexpectedEOF)
	}
}

func TestCursorRewindAndCheckpoints(t *testing.T) {
	s := mustPairs(t, []string{"id", "assignOp", "intLiteral"}, []string{"x", "=", "1"})
	c := NewCursor(s)

	c.Rewind()
	if c.Pos() != -1 {
		t.Errorf("Rewind() before start moved to %d", c.Pos())
	}

	mark := c.Mark()
	_, _ = c.Advance()
	_, _ = c.Advance()
	c.Rewind()
	if c.Pos() != 0 {
		t.Errorf("Rewind() Pos() = %d, want 0", c.Pos())
	}

	c.Reset(mark)
	if c.Pos() != -1 || c.Peek() != ID {
		t.Errorf("Reset() Pos() = %d, Peek() = %v", c.Pos(), c.Peek())
	}
}
