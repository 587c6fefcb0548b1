// File: clite.go
// Title: clite Engine
// Description: High level API of the interpreter. The Engine wires logger,
//              timer and rendering options around one interpreter per run
//              and returns run statistics together with the final symbol
//              table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial engine implementation

package clite

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/msto63/clite/foundation/clite/interp"
	"github.com/msto63/clite/foundation/clite/symbols"
	"github.com/msto63/clite/foundation/clite/token"
	"github.com/msto63/clite/foundation/clite/value"
	mdwerror "github.com/msto63/clite/foundation/core/error"
	mdwlog "github.com/msto63/clite/foundation/core/log"
)

// MaxFloatPrecision is the largest meaningful number of significant digits
// of a float64
const MaxFloatPrecision = 17

// Engine runs clite programs
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// Output receives the lines written by print (default: discard)
	Output io.Writer

	// BoolStyle selects true/false or 1/0 for printed bools
	BoolStyle value.BoolStyle

	// FloatPrecision is the number of significant digits of printed floats.
	// Zero selects the default of 6, a negative value the shortest exact form.
	FloatPrecision int

	// ZeroUninitialized lets unassigned variables read as zero
	ZeroUninitialized bool

	// DryRun checks the program without executing it
	DryRun bool

	// Tracer receives one event per interpreted statement (optional)
	Tracer interp.Tracer
}

// Result describes a finished run
type Result struct {
	// RunID is the id found in the context, if any
	RunID string

	// DryRun reports whether the program was only checked
	DryRun bool

	// Stats counts what the interpreter did
	Stats interp.Stats

	// Symbols is the symbol table at the end of the run
	Symbols []symbols.Entry

	// Duration is the wall time of the run
	Duration time.Duration

	// Phases are the timer checkpoints of the run
	Phases []mdwlog.Checkpoint
}

type runIDKey struct{}

// WithRunID returns a context carrying a run id. The engine tags its log
// entries and errors with it.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunIDFromContext returns the run id stored by WithRunID
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// NewEngine creates a new engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger: mdwlog.GetDefault(),
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		options.Output = provided.Output
		options.BoolStyle = provided.BoolStyle
		options.FloatPrecision = provided.FloatPrecision
		options.ZeroUninitialized = provided.ZeroUninitialized
		options.DryRun = provided.DryRun
		options.Tracer = provided.Tracer
	}

	if options.FloatPrecision > MaxFloatPrecision {
		return nil, mdwerror.Newf(mdwerror.CodeInvalidConfig,
			"float precision %d exceeds %d", options.FloatPrecision, MaxFloatPrecision).
			WithDetail("float_precision", options.FloatPrecision)
	}
	if options.BoolStyle != value.BoolWords && options.BoolStyle != value.BoolNumeric {
		return nil, mdwerror.Newf(mdwerror.CodeInvalidConfig, "unknown bool style %d", int(options.BoolStyle))
	}

	logger := options.Logger.WithField("component", "clite-engine")
	logger.Debug("clite engine initialized", mdwlog.Fields{
		"boolStyle":         options.BoolStyle.String(),
		"floatPrecision":    options.FloatPrecision,
		"zeroUninitialized": options.ZeroUninitialized,
		"dryRun":            options.DryRun,
	})

	return &Engine{logger: logger, options: options}, nil
}

// Execute interprets stream. The returned result is never nil; on failure
// it holds the statistics up to the failing token.
func (e *Engine) Execute(ctx context.Context, stream *token.Stream) (*Result, error) {
	return e.run(ctx, stream, e.options.DryRun)
}

// Check parses and type checks stream without executing it
func (e *Engine) Check(ctx context.Context, stream *token.Stream) (*Result, error) {
	return e.run(ctx, stream, true)
}

// ExecutePairs builds a stream from index-aligned classes and lexemes and
// executes it
func (e *Engine) ExecutePairs(ctx context.Context, classes, lexemes []string) (*Result, error) {
	stream, err := token.FromPairs(classes, lexemes)
	if err != nil {
		return &Result{RunID: RunIDFromContext(ctx)}, err
	}
	return e.Execute(ctx, stream)
}

func (e *Engine) run(ctx context.Context, stream *token.Stream, dryRun bool) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	runID := RunIDFromContext(ctx)
	logger := e.logger
	if runID != "" {
		logger = logger.WithRunID(runID)
	}

	result := &Result{RunID: runID, DryRun: dryRun}
	if stream == nil {
		return result, mdwerror.New("no token stream given").WithCode(mdwerror.CodeInvalidInput)
	}

	timer := logger.StartTimer("clite_run").WithField("tokens", stream.Len())

	in := interp.New(stream, interp.Options{
		Logger: logger,
		Output: e.options.Output,
		Format: value.Format{
			BoolStyle: e.options.BoolStyle,
			Precision: e.options.FloatPrecision,
		},
		ZeroUninitialized: e.options.ZeroUninitialized,
		DryRun:            dryRun,
		Tracer:            e.options.Tracer,
	})

	err := in.Run(ctx)
	timer.Checkpoint("interpreted")

	result.Stats = in.Stats()
	result.Symbols = in.Symbols().Entries()
	result.Phases = timer.Checkpoints()

	if err != nil {
		if mdwErr, ok := mdwerror.As(err); ok && runID != "" {
			mdwErr.WithRunID(runID)
		}
		result.Duration = timer.StopWithError(err)
		return result, err
	}

	result.Duration = timer.Stop()
	return result, nil
}

// Describe renders an error produced by the engine as one diagnostic line
func Describe(err error) string {
	mdwErr, ok := mdwerror.As(err)
	if !ok {
		return err.Error()
	}

	where := ""
	if pos, ok := mdwErr.Detail("position"); ok {
		where = fmt.Sprintf(" at token %v", pos)
		if line, ok := mdwErr.Detail("line"); ok && line != 0 {
			where += fmt.Sprintf(" (line %v)", line)
		}
	}
	return fmt.Sprintf("%s%s: %s", mdwErr.Code(), where, err.Error())
}
