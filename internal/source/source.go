// ============================================================================
// clite - Token Stream Interpreter
// ============================================================================
//
// Package:     source
// Description: Loads token streams from pairs files and YAML documents
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package source

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/msto63/clite/foundation/clite/token"
	mdwerror "github.com/msto63/clite/foundation/core/error"
)

// Format identifies a token file layout
type Format int

const (
	// FormatAuto picks the format from the file extension
	FormatAuto Format = iota

	// FormatPairs is whitespace separated words, alternately token class
	// and lexeme
	FormatPairs

	// FormatYAML is a document with a tokens list
	FormatYAML
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatPairs:
		return "pairs"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "pairs", "tok", "txt":
		return FormatPairs, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, mdwerror.Newf(mdwerror.CodeInvalidInput, "unknown source format %q", name).
			WithDetail("format", name)
	}
}

// DetectFormat returns the format for path by its extension. Anything
// other than .yaml and .yml is read as pairs.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatPairs
	}
}

// Load reads the token stream stored at path
func Load(path string) (*token.Stream, error) {
	return LoadFormat(path, FormatAuto)
}

// LoadFormat reads the token stream stored at path in the given format
func LoadFormat(path string, format Format) (*token.Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeInvalidInput
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "could not open input file "+path).
			WithCode(code).
			WithDetail("path", path)
	}

	if format == FormatAuto {
		format = DetectFormat(path)
	}

	stream, err := Parse(bytes.NewReader(data), format)
	if err != nil {
		if mdwErr, ok := mdwerror.As(err); ok {
			mdwErr.WithDetail("path", path)
		}
		return nil, err
	}
	return stream, nil
}

// Parse reads a token stream from r. FormatAuto reads pairs.
func Parse(r io.Reader, format Format) (*token.Stream, error) {
	switch format {
	case FormatYAML:
		return ParseYAML(r)
	case FormatAuto, FormatPairs:
		return ParsePairs(r)
	default:
		return nil, mdwerror.Newf(mdwerror.CodeInvalidInput, "unknown source format %d", int(format))
	}
}

// ParsePairs reads whitespace separated words, alternately a token class
// and its lexeme. Each token remembers the line its class word is on.
func ParsePairs(r io.Reader) (*token.Stream, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		tokens  []token.Token
		pending *token.Token
		line    int
	)
	for scanner.Scan() {
		line++
		for _, word := range strings.Fields(scanner.Text()) {
			if pending == nil {
				pending = &token.Token{Class: token.Class(word), Line: line}
				continue
			}
			pending.Lexeme = word
			tokens = append(tokens, *pending)
			pending = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "reading token pairs").WithCode(mdwerror.CodeInvalidInput)
	}

	if len(tokens) == 0 && pending == nil {
		return nil, mdwerror.New("empty input file").WithCode(mdwerror.CodeInvalidInput)
	}
	if pending != nil {
		return nil, mdwerror.Newf(mdwerror.CodeInvalidInput,
			"token class '%s' on line %d has no lexeme", pending.Class, pending.Line).
			WithDetail("position", len(tokens)).
			WithDetail("line", pending.Line)
	}

	return token.NewStream(tokens)
}
