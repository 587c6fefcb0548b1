package source

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/msto63/clite/foundation/clite/token"
	mdwerror "github.com/msto63/clite/foundation/core/error"
)

// Document is the YAML layout of a token file:
//
//	name: sum
//	tokens:
//	  - {class: type, lexeme: int}
//	  - [main, main]
type Document struct {
	Name        string  `yaml:"name,omitempty"`
	Description string  `yaml:"description,omitempty"`
	Tokens      []Entry `yaml:"tokens"`
}

// Entry is one token, written as a mapping or as a two element sequence
type Entry struct {
	Class  string `yaml:"class"`
	Lexeme string `yaml:"lexeme"`
	line   int
}

// UnmarshalYAML accepts both entry forms
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	e.line = node.Line

	switch node.Kind {
	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return mdwerror.Newf(mdwerror.CodeInvalidInput,
				"line %d: token needs exactly [class, lexeme], got %d elements", node.Line, len(node.Content)).
				WithDetail("line", node.Line)
		}
		e.Class = node.Content[0].Value
		e.Lexeme = node.Content[1].Value
		return e.validate(node.Line)

	case yaml.MappingNode:
		type plain Entry
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		e.Class = p.Class
		e.Lexeme = p.Lexeme
		return e.validate(node.Line)
	}

	return mdwerror.Newf(mdwerror.CodeInvalidInput,
		"line %d: token must be a mapping or a sequence", node.Line).
		WithDetail("line", node.Line)
}

func (e *Entry) validate(line int) error {
	if e.Class == "" || e.Lexeme == "" {
		return mdwerror.Newf(mdwerror.CodeInvalidInput,
			"line %d: token needs a class and a lexeme", line).
			WithDetail("line", line)
	}
	return nil
}

// ParseYAML reads a Document from r and returns its token stream
func ParseYAML(r io.Reader) (*token.Stream, error) {
	doc, err := DecodeDocument(r)
	if err != nil {
		return nil, err
	}
	return doc.Stream()
}

// DecodeDocument reads a Document from r
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, mdwerror.New("empty input file").WithCode(mdwerror.CodeInvalidInput)
		}
		if _, ok := mdwerror.As(err); ok {
			return nil, err
		}
		return nil, mdwerror.Wrap(err, "invalid token document").WithCode(mdwerror.CodeInvalidInput)
	}
	if len(doc.Tokens) == 0 {
		return nil, mdwerror.New("token document has no tokens").WithCode(mdwerror.CodeInvalidInput)
	}
	return &doc, nil
}

// Stream converts the document entries into a token stream
func (d *Document) Stream() (*token.Stream, error) {
	tokens := make([]token.Token, len(d.Tokens))
	for i, e := range d.Tokens {
		tokens[i] = token.Token{Class: token.Class(e.Class), Lexeme: e.Lexeme, Line: e.line}
	}
	return token.NewStream(tokens)
}

// EncodeYAML writes stream as a Document with mapping entries
func EncodeYAML(w io.Writer, name string, stream *token.Stream) error {
	doc := Document{Name: name}
	for _, tok := range stream.Tokens() {
		doc.Tokens = append(doc.Tokens, Entry{Class: string(tok.Class), Lexeme: tok.Lexeme})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return mdwerror.Wrap(err, "encoding token document").WithCode(mdwerror.CodeInternal)
	}
	return enc.Close()
}
