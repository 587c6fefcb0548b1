package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/clite/foundation/clite/interp"
	mdwerror "github.com/msto63/clite/foundation/core/error"
	"github.com/msto63/clite/internal/journal"
	"github.com/msto63/clite/internal/runner"
	"github.com/msto63/clite/internal/source"
	"github.com/msto63/clite/internal/tui/traceviewer"
)

var (
	traceFormat string
	tracePlain  bool
	traceKinds  []string
)

var traceCmd = &cobra.Command{
	Use:   "trace FILE",
	Short: "Execute a token file and inspect every statement",
	Long: `Executes a token file and records an event for each declaration,
assignment, print, branch decision, loop iteration and return.

By default the events are shown in an interactive viewer:

  1-6         Toggle kinds (declare, assign, print, branch, loop, return)
  0           Show all kinds
  o           Switch between events and program output
  a           Toggle auto-scroll
  g / G       Jump to top / bottom
  PgUp/PgDn   Scroll
  q / Ctrl+C  Quit

With --plain the events are written to stderr while program output
goes to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: traceProgram,
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().StringVarP(&traceFormat, "format", "f", "auto", "input format: auto, pairs or yaml")
	traceCmd.Flags().BoolVar(&tracePlain, "plain", false, "print events instead of starting the viewer")
	traceCmd.Flags().StringSliceVarP(&traceKinds, "kinds", "k", nil, "event kinds shown with --plain (default: all)")
}

func traceProgram(cmd *cobra.Command, args []string) error {
	format, err := source.ParseFormat(traceFormat)
	if err != nil {
		return err
	}
	kinds, err := parseKinds(traceKinds)
	if err != nil {
		return err
	}

	store, err := openJournal()
	if err != nil {
		return err
	}
	defer closeJournal(store)

	req := runner.Request{
		Path:     args[0],
		Format:   format,
		Mode:     journal.ModeTrace,
		Metadata: map[string]string{"command": "trace"},
	}

	if !tracePlain {
		r := newRunner(store, nil)
		_, err := traceviewer.Run(traceviewer.Config{
			Title: args[0],
			Run: func(ctx context.Context, tracer interp.Tracer) (*runner.Result, error) {
				req.Tracer = tracer
				return r.Run(ctx, req)
			},
		})
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	stderr := cmd.ErrOrStderr()
	req.Tracer = interp.TracerFunc(func(e interp.Event) {
		if kinds[e.Kind] {
			fmt.Fprintln(stderr, paint(mutedStyle, e.String()))
		}
	})
	_, err = newRunner(store, cmd.OutOrStdout()).Run(ctx, req)
	return err
}

// parseKinds turns kind names into a filter. No names selects every kind.
func parseKinds(names []string) (map[interp.Kind]bool, error) {
	filter := make(map[interp.Kind]bool)
	if len(names) == 0 {
		for _, k := range interp.Kinds() {
			filter[k] = true
		}
		return filter, nil
	}

	for _, name := range names {
		found := false
		for _, k := range interp.Kinds() {
			if strings.EqualFold(strings.TrimSpace(name), k.String()) {
				filter[k] = true
				found = true
				break
			}
		}
		if !found {
			return nil, mdwerror.Newf(mdwerror.CodeInvalidInput, "unknown event kind %q", name)
		}
	}
	return filter, nil
}
