// ============================================================================
// clite - Token Stream Interpreter
// ============================================================================
//
// Package:     cmd
// Description: CLI commands that execute token files
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/msto63/clite/foundation/clite/token"
	"github.com/msto63/clite/internal/journal"
	"github.com/msto63/clite/internal/runner"
	"github.com/msto63/clite/internal/source"
)

var (
	runFormat string
	runWatch  bool
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Execute a token file",
	Long: `Executes a token file and writes one line per print statement
to stdout.

The file holds whitespace separated pairs of token class and lexeme,
or a YAML document with a tokens list (.yaml/.yml).

With --watch the file is executed again every time it changes until
the command is interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFormat, "format", "f", "auto", "input format: auto, pairs or yaml")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "run again whenever the file changes")
}

func newRunner(store journal.Store, stdout io.Writer) *runner.Runner {
	return runner.New(runner.Options{
		Config:  appConfig,
		Logger:  logger,
		Journal: store,
		Stdout:  stdout,
	})
}

func runProgram(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := source.ParseFormat(runFormat)
	if err != nil {
		return err
	}

	store, err := openJournal()
	if err != nil {
		return err
	}
	defer closeJournal(store)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	r := newRunner(store, cmd.OutOrStdout())
	req := runner.Request{
		Path:     path,
		Format:   format,
		Mode:     journal.ModeRun,
		Metadata: map[string]string{"command": "run"},
	}

	_, err = r.Run(ctx, req)
	if !runWatch {
		return err
	}
	if err != nil {
		printDiagnostic(err)
	}

	return watchProgram(ctx, cmd, r, req)
}

func watchProgram(ctx context.Context, cmd *cobra.Command, r *runner.Runner, req runner.Request) error {
	req.Metadata = map[string]string{"command": "run", "trigger": "watch"}

	w := source.NewWatcher(req.Path, source.WatchOptions{Format: req.Format, Logger: logger})
	err := w.Run(ctx, func(stream *token.Stream, loadErr error) {
		if loadErr != nil {
			printDiagnostic(loadErr)
			return
		}
		fmt.Fprintln(cmd.ErrOrStderr(), paint(mutedStyle, "--- "+req.Path+" changed"))
		if _, err := r.RunStream(ctx, req.Path, stream, req); err != nil {
			printDiagnostic(err)
		}
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}
