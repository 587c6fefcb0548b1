// File: token.go
// Title: Token Classes and Streams
// Description: Defines the token classes of the clite language and the
//              immutable token stream the interpreter consumes. Streams are
//              built from already split (class, lexeme) pairs; lexing is not
//              part of this package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package token

import (
	"fmt"

	mdwerror "github.com/msto63/clite/foundation/core/error"
)

// Class is the grammatical category of a lexeme
type Class string

const (
	// Structure
	Type      Class = "type"
	Main      Class = "main"
	ID        Class = "id"
	LParen    Class = "("
	RParen    Class = ")"
	LBrace    Class = "{"
	RBrace    Class = "}"
	Comma     Class = ","
	Semicolon Class = ";"

	// Keywords
	Print  Class = "print"
	If     Class = "if"
	Else   Class = "else"
	While  Class = "while"
	Return Class = "return"

	// Operators
	AssignOp Class = "assignOp"
	EquOp    Class = "equOp"
	RelOp    Class = "relOp"
	AddOp    Class = "addOp"
	MultOp   Class = "multOp"
	Or       Class = "||"
	And      Class = "&&"

	// Literals
	IntLiteral   Class = "intLiteral"
	FloatLiteral Class = "floatLiteral"
	BoolLiteral  Class = "boolLiteral"
	CharLiteral  Class = "charLiteral"

	// EOF is reported by a cursor past the last token. It never appears
	// inside a stream.
	EOF Class = "EOF"
)

var classes = []Class{
	Type, Main, ID, LParen, RParen, LBrace, RBrace, Comma, Semicolon,
	Print, If, Else, While, Return,
	AssignOp, EquOp, RelOp, AddOp, MultOp, Or, And,
	IntLiteral, FloatLiteral, BoolLiteral, CharLiteral,
}

var classSet = func() map[Class]bool {
	m := make(map[Class]bool, len(classes))
	for _, c := range classes {
		m[c] = true
	}
	return m
}()

// Classes returns every class that may appear in a stream
func Classes() []Class {
	result := make([]Class, len(classes))
	copy(result, classes)
	return result
}

// IsValid reports whether c may appear in a stream
func (c Class) IsValid() bool {
	return classSet[c]
}

// IsLiteral reports whether c is one of the literal classes
func (c Class) IsLiteral() bool {
	switch c {
	case IntLiteral, FloatLiteral, BoolLiteral, CharLiteral:
		return true
	}
	return false
}

// String returns the class name
func (c Class) String() string {
	return string(c)
}

// Token is one (class, lexeme) pair with its position in the stream.
// Line is the 1-based source line when the loader knows it, else 0.
type Token struct {
	Class  Class
	Lexeme string
	Index  int
	Line   int
}

// String returns a compact representation used in diagnostics
func (t Token) String() string {
	if t.Class == EOF {
		return "end of stream"
	}
	if string(t.Class) == t.Lexeme {
		return fmt.Sprintf("'%s'", t.Lexeme)
	}
	return fmt.Sprintf("%s '%s'", t.Class, t.Lexeme)
}

// Stream is an ordered, immutable sequence of tokens
type Stream struct {
	tokens []Token
}

// NewStream builds a stream from tokens. Indexes are renumbered to match
// the position in the stream; classes are validated.
func NewStream(tokens []Token) (*Stream, error) {
	s := &Stream{tokens: make([]Token, len(tokens))}
	for i, t := range tokens {
		if !t.Class.IsValid() {
			return nil, mdwerror.Newf(mdwerror.CodeInvalidInput, "unknown token class %q", string(t.Class)).
				WithDetail("position", i).
				WithDetail("line", t.Line).
				WithDetail("lexeme", t.Lexeme)
		}
		t.Index = i
		s.tokens[i] = t
	}
	return s, nil
}

// FromPairs builds a stream from two index-aligned slices of classes and
// lexemes.
func FromPairs(classes []string, lexemes []string) (*Stream, error) {
	if len(classes) != len(lexemes) {
		return nil, mdwerror.Newf(mdwerror.CodeInvalidInput,
			"token classes and lexemes differ in length (%d != %d)", len(classes), len(lexemes))
	}

	tokens := make([]Token, len(classes))
	for i := range classes {
		tokens[i] = Token{Class: Class(classes[i]), Lexeme: lexemes[i]}
	}
	return NewStream(tokens)
}

// Len returns the number of tokens
func (s *Stream) Len() int {
	return len(s.tokens)
}

// At returns the token at index i. Out of range indexes yield an EOF token.
func (s *Stream) At(i int) Token {
	if i < 0 || i >= len(s.tokens) {
		return Token{Class: EOF, Index: i}
	}
	return s.tokens[i]
}

// Tokens returns a copy of the tokens
func (s *Stream) Tokens() []Token {
	result := make([]Token, len(s.tokens))
	copy(result, s.tokens)
	return result
}

// Pairs returns the stream as two index-aligned slices
func (s *Stream) Pairs() (classes []string, lexemes []string) {
	classes = make([]string, len(s.tokens))
	lexemes = make([]string, len(s.tokens))
	for i, t := range s.tokens {
		classes[i] = string(t.Class)
		lexemes[i] = t.Lexeme
	}
	return classes, lexemes
}
