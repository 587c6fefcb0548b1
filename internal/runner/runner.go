// ============================================================================
// clite - Token Stream Interpreter
// ============================================================================
//
// Package:     runner
// Description: Loads token files, runs them through the engine and records
//              the outcome in the run journal
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package runner

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/clite/foundation/clite"
	"github.com/msto63/clite/foundation/clite/interp"
	"github.com/msto63/clite/foundation/clite/symbols"
	"github.com/msto63/clite/foundation/clite/token"
	mdwerror "github.com/msto63/clite/foundation/core/error"
	mdwlog "github.com/msto63/clite/foundation/core/log"
	"github.com/msto63/clite/internal/journal"
	"github.com/msto63/clite/internal/source"
	"github.com/msto63/clite/pkg/core/config"
)

// Runner executes programs with the settings of one configuration
type Runner struct {
	cfg     *config.Config
	logger  *mdwlog.Logger
	journal journal.Store
	stdout  io.Writer
}

// Options configures a Runner
type Options struct {
	// Config supplies output, semantics and limits (default: config.Default())
	Config *config.Config

	// Logger for runner operations (default: the default logger)
	Logger *mdwlog.Logger

	// Journal records every run when set
	Journal journal.Store

	// Stdout receives program output as it is printed (default: discard)
	Stdout io.Writer
}

// Request describes one run
type Request struct {
	// Path of the token file
	Path string

	// Format of the token file (default: by extension)
	Format source.Format

	// Mode selects run, check or trace
	Mode journal.Mode

	// Tracer receives interpreter events (optional)
	Tracer interp.Tracer

	// Metadata is stored with the journal entry
	Metadata map[string]string
}

// Result describes a finished run
type Result struct {
	RunID     string
	Source    string
	Mode      journal.Mode
	StartedAt time.Time
	Duration  time.Duration
	Output    string
	Stats     interp.Stats
	Symbols   []symbols.Entry
}

// New creates a runner
func New(opts Options) *Runner {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}

	return &Runner{
		cfg:     opts.Config,
		logger:  opts.Logger.WithField("component", "runner"),
		journal: opts.Journal,
		stdout:  opts.Stdout,
	}
}

// Run loads req.Path and executes it. The result is never nil; on failure
// it holds whatever the run produced before the error.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	result := r.newResult(req.Path, req.Mode)

	stream, err := source.LoadFormat(req.Path, req.Format)
	if err != nil {
		r.finish(ctx, result, req.Metadata, err)
		return result, err
	}

	return r.execute(ctx, result, stream, req)
}

// RunStream executes an already loaded stream. name identifies it in the
// journal.
func (r *Runner) RunStream(ctx context.Context, name string, stream *token.Stream, req Request) (*Result, error) {
	result := r.newResult(name, req.Mode)
	return r.execute(ctx, result, stream, req)
}

func (r *Runner) newResult(src string, mode journal.Mode) *Result {
	if mode == "" {
		mode = journal.ModeRun
	}
	return &Result{
		RunID:     uuid.NewString(),
		Source:    src,
		Mode:      mode,
		StartedAt: time.Now(),
	}
}

func (r *Runner) execute(ctx context.Context, result *Result, stream *token.Stream, req Request) (*Result, error) {
	result.Stats.Tokens = stream.Len()

	if limit := r.cfg.Limits.MaxTokens; limit > 0 && stream.Len() > limit {
		err := mdwerror.Newf(mdwerror.CodeInvalidInput, "token stream has %d tokens, the limit is %d", stream.Len(), limit).
			WithDetail("tokens", stream.Len()).
			WithDetail("max_tokens", limit)
		r.finish(ctx, result, req.Metadata, err)
		return result, err
	}

	if timeout := r.cfg.Limits.Timeout.Duration; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	runCtx := clite.WithRunID(ctx, result.RunID)

	var captured bytes.Buffer
	engine, err := clite.NewEngine(clite.Options{
		Logger:            r.logger.WithRunID(result.RunID),
		Output:            io.MultiWriter(r.stdout, &captured),
		BoolStyle:         r.cfg.BoolStyle(),
		FloatPrecision:    r.cfg.Output.FloatPrecision,
		ZeroUninitialized: r.cfg.ZeroUninitialized(),
		DryRun:            result.Mode == journal.ModeCheck,
		Tracer:            req.Tracer,
	})
	if err != nil {
		r.finish(ctx, result, req.Metadata, err)
		return result, err
	}

	res, err := engine.Execute(runCtx, stream)
	result.Output = captured.String()
	result.Stats = res.Stats
	result.Symbols = res.Symbols

	r.finish(ctx, result, req.Metadata, err)
	return result, err
}

// finish stamps the duration and records the run. A journal failure is
// logged and does not change the outcome of the run.
func (r *Runner) finish(ctx context.Context, result *Result, metadata map[string]string, runErr error) {
	result.Duration = time.Since(result.StartedAt)

	fields := mdwlog.Fields{
		"run_id":   result.RunID,
		"source":   result.Source,
		"mode":     string(result.Mode),
		"duration": result.Duration.String(),
	}
	if runErr != nil {
		fields["error_code"] = mdwerror.GetCode(runErr).String()
	}
	r.logger.Info("run finished", fields)

	if r.journal == nil {
		return
	}

	entry := &journal.Run{
		ID:         result.RunID,
		StartedAt:  result.StartedAt,
		Duration:   result.Duration,
		Source:     result.Source,
		Mode:       result.Mode,
		Status:     journal.StatusOK,
		Tokens:     result.Stats.Tokens,
		Statements: result.Stats.Statements,
		Prints:     result.Stats.Prints,
		Iterations: result.Stats.Iterations,
		Output:     result.Output,
		Metadata:   metadata,
	}
	if runErr != nil {
		entry.Status = journal.StatusFailed
		entry.ErrorCode = mdwerror.GetCode(runErr).String()
		entry.ErrorSeverity = mdwerror.GetSeverity(runErr).String()
		entry.ErrorMessage = clite.Describe(runErr)
	}

	// The run context may already be cancelled or timed out
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := r.journal.Record(recordCtx, entry); err != nil {
		r.logger.WarnWithErr("failed to record run in journal", err, mdwlog.Fields{"run_id": result.RunID})
	}
}
