// ============================================================================
// clite - Token Stream Interpreter
// ============================================================================
//
// Package:     cmd
// Description: CLI commands for the run journal
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/clite/foundation/core/error"
	"github.com/msto63/clite/internal/journal"
)

var (
	historyStatus string
	historyMode   string
	historySource string
	historyCode   string
	historySince  time.Duration
	historyLimit  int

	pruneOlderThan time.Duration
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"journal"},
	Short:   "Inspect the run journal",
	Long: `Lists, shows and prunes recorded runs. The journal is written when
journal.enabled is set in the configuration.`,
	RunE: listHistory,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	RunE:  listHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one run including its output",
	Long:  `Shows a run by its id. A unique prefix of at least 4 characters is enough.`,
	Args:  cobra.ExactArgs(1),
	RunE:  showHistory,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the journal",
	RunE:  historyStats,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old runs",
	Long:  `Deletes runs older than --older-than (default: journal.retention_days) and compacts the database.`,
	RunE:  pruneHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyStatsCmd, historyPruneCmd)

	for _, c := range []*cobra.Command{historyCmd, historyListCmd} {
		c.Flags().StringVar(&historyStatus, "status", "", "only runs with status ok or failed")
		c.Flags().StringVar(&historyMode, "mode", "", "only runs of mode run, check or trace")
		c.Flags().StringVar(&historySource, "source", "", "only runs of this file")
		c.Flags().StringVar(&historyCode, "code", "", "only runs that failed with this error code")
		c.Flags().DurationVar(&historySince, "since", 0, "only runs younger than this")
		c.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs")
	}

	historyPruneCmd.Flags().DurationVar(&pruneOlderThan, "older-than", 0, "age of the runs to delete")
}

func openHistory() (journal.Store, error) {
	store, err := openJournal()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, mdwerror.New("run journal is disabled, set journal.enabled = true").
			WithCode(mdwerror.CodeConfigError)
	}
	return store, nil
}

func listHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer closeJournal(store)

	filter := journal.Filter{
		Status:    journal.Status(historyStatus),
		Mode:      journal.Mode(historyMode),
		Source:    historySource,
		ErrorCode: historyCode,
		Limit:     historyLimit,
	}
	if historySince > 0 {
		filter.Since = time.Now().Add(-historySince)
	}

	runs, err := store.List(cmd.Context(), filter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	t := table.New().Headers("ID", "STARTED", "MODE", "STATUS", "SOURCE", "DURATION", "ERROR")
	for _, run := range runs {
		t.Row(
			shortID(run.ID),
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			string(run.Mode),
			renderStatus(run.Status),
			run.Source,
			run.Duration.Round(time.Microsecond).String(),
			run.ErrorCode,
		)
	}
	fmt.Fprintln(out, renderTable(t))
	return nil
}

func showHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer closeJournal(store)

	run, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	field := func(name, value string) {
		fmt.Fprintf(out, "%s %s\n", paint(headerStyle, fmt.Sprintf("%-11s", name+":")), value)
	}

	field("Run", run.ID)
	field("Started", run.StartedAt.Local().Format(time.RFC3339))
	field("Duration", run.Duration.String())
	field("Source", run.Source)
	field("Mode", string(run.Mode))
	field("Status", renderStatus(run.Status))
	if run.Status == journal.StatusFailed {
		field("Error", run.ErrorMessage)
		field("Severity", run.ErrorSeverity)
	}
	field("Tokens", strconv.Itoa(run.Tokens))
	field("Statements", strconv.Itoa(run.Statements))
	field("Prints", strconv.Itoa(run.Prints))
	field("Iterations", strconv.Itoa(run.Iterations))

	keys := make([]string, 0, len(run.Metadata))
	for k := range run.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		field(k, run.Metadata[k])
	}

	if run.Output != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, paint(headerStyle, "Output:"))
		fmt.Fprint(out, run.Output)
	}
	return nil
}

func historyStats(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer closeJournal(store)

	stats, err := store.Stats(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Runs:          %d\n", stats.Total)
	fmt.Fprintf(out, "Sources:       %d\n", stats.Sources)
	fmt.Fprintf(out, "Succeeded:     %d\n", stats.ByStatus[string(journal.StatusOK)])
	fmt.Fprintf(out, "Failed:        %d\n", stats.ByStatus[string(journal.StatusFailed)])
	fmt.Fprintf(out, "Avg duration:  %s\n", stats.AvgDuration.Round(time.Microsecond))
	if !stats.LastRun.IsZero() {
		fmt.Fprintf(out, "Last run:      %s\n", stats.LastRun.Local().Format(time.RFC3339))
	}

	if len(stats.ByErrorCode) > 0 {
		codes := make([]string, 0, len(stats.ByErrorCode))
		for code := range stats.ByErrorCode {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		t := table.New().Headers("ERROR CODE", "RUNS")
		for _, code := range codes {
			t.Row(code, strconv.FormatInt(stats.ByErrorCode[code], 10))
		}
		fmt.Fprintln(out, renderTable(t))
	}
	return nil
}

func pruneHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer closeJournal(store)

	olderThan := pruneOlderThan
	if olderThan <= 0 {
		olderThan = appConfig.Retention()
	}

	deleted, err := store.Prune(cmd.Context(), olderThan)
	if err != nil {
		return err
	}
	if err := store.Vacuum(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d runs older than %s.\n", deleted, olderThan)
	return nil
}

func renderStatus(status journal.Status) string {
	if status == journal.StatusFailed {
		return paint(errorStyle, string(status))
	}
	return paint(okStyle, string(status))
}
