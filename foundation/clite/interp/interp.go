// File: interp.go
// Title: Interpreter
// Description: Single pass interpreter over a token stream. Parsing and
//              evaluation are interleaved: every production consumes its
//              tokens and, when execution is enabled, performs its effect
//              at once. Suppressed code (untaken branches, the final pass
//              over a loop body, dry runs) is parsed and type checked
//              without side effects.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package interp

import (
	"context"
	"io"

	"github.com/msto63/clite/foundation/clite/symbols"
	"github.com/msto63/clite/foundation/clite/token"
	"github.com/msto63/clite/foundation/clite/value"
	mdwlog "github.com/msto63/clite/foundation/core/log"
)

// Options configures an Interpreter
type Options struct {
	// Logger for interpreter diagnostics (defaults to the default logger)
	Logger *mdwlog.Logger

	// Output receives one line per executed print (defaults to io.Discard)
	Output io.Writer

	// Format controls how printed values are rendered
	Format value.Format

	// ZeroUninitialized makes reads of unassigned variables yield the zero
	// value of their declared type instead of failing
	ZeroUninitialized bool

	// DryRun parses and type checks the whole program without executing it
	DryRun bool

	// Tracer receives an event for every interpreted statement (optional)
	Tracer Tracer
}

// Stats counts what a run did
type Stats struct {
	Tokens       int `json:"tokens"`
	Declarations int `json:"declarations"`
	Statements   int `json:"statements"`
	Assignments  int `json:"assignments"`
	Ignored      int `json:"ignored_assignments"`
	Prints       int `json:"prints"`
	Iterations   int `json:"loop_iterations"`
}

// Interpreter runs one program. It is not safe for concurrent use and
// Run must be called at most once.
type Interpreter struct {
	stream *token.Stream
	cur    *token.Cursor
	table  *symbols.Table
	out    io.Writer
	format value.Format
	logger *mdwlog.Logger
	tracer Tracer
	opts   Options

	ctx   context.Context
	stats Stats
}

// New creates an interpreter for stream
func New(stream *token.Stream, opts Options) *Interpreter {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	if opts.Format == (value.Format{}) {
		opts.Format = value.DefaultFormat()
	}

	return &Interpreter{
		stream: stream,
		cur:    token.NewCursor(stream),
		table:  symbols.New(),
		out:    opts.Output,
		format: opts.Format,
		logger: opts.Logger.WithField("component", "clite-interp"),
		tracer: opts.Tracer,
		opts:   opts,
		ctx:    context.Background(),
		stats:  Stats{Tokens: stream.Len()},
	}
}

// Run interprets the program. The context is checked between statements
// and on every loop iteration.
func (in *Interpreter) Run(ctx context.Context) error {
	if ctx != nil {
		in.ctx = ctx
	}

	in.logger.Debug("interpretation started", mdwlog.Fields{
		"tokens": in.stream.Len(),
		"dryRun": in.opts.DryRun,
	})

	if err := in.program(); err != nil {
		err = in.annotate(err)
		in.logger.LogError(err)
		return err
	}

	in.logger.Debug("interpretation completed", mdwlog.Fields{
		"statements": in.stats.Statements,
		"prints":     in.stats.Prints,
		"iterations": in.stats.Iterations,
	})
	return nil
}

// Symbols returns the symbol table of the run
func (in *Interpreter) Symbols() *symbols.Table {
	return in.table
}

// Stats returns the counters of the run so far
func (in *Interpreter) Stats() Stats {
	return in.stats
}

// program -> type main ( ) { declarations statements }
func (in *Interpreter) program() error {
	typeTok, err := in.cur.Expect(token.Type)
	if err != nil {
		return err
	}
	if _, ok := value.ParseType(typeTok.Lexeme); !ok {
		return syntaxError(typeTok, "unknown type '%s'", typeTok.Lexeme)
	}

	for _, class := range []token.Class{token.Main, token.LParen, token.RParen, token.LBrace} {
		if _, err := in.cur.Expect(class); err != nil {
			return err
		}
	}

	if err := in.declarations(); err != nil {
		return err
	}

	if err := in.statements(!in.opts.DryRun); err != nil {
		return err
	}

	if _, err := in.cur.Expect(token.RBrace); err != nil {
		return err
	}

	if in.cur.Peek() != token.EOF {
		next := in.cur.PeekToken()
		return syntaxError(next, "unexpected %s after end of program", next)
	}
	return nil
}
