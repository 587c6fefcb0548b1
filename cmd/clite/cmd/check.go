package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/msto63/clite/internal/journal"
	"github.com/msto63/clite/internal/runner"
	"github.com/msto63/clite/internal/source"
)

var (
	checkFormat  string
	checkSymbols bool
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Parse and type check a token file without executing it",
	Long: `Parses the whole program and checks declarations, identifiers and
operand types without executing any statement. Nothing is printed by
the program itself.`,
	Args: cobra.ExactArgs(1),
	RunE: checkProgram,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "auto", "input format: auto, pairs or yaml")
	checkCmd.Flags().BoolVar(&checkSymbols, "symbols", false, "list the declared variables")
}

func checkProgram(cmd *cobra.Command, args []string) error {
	format, err := source.ParseFormat(checkFormat)
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

	result, err := newRunner(store, io.Discard).Run(ctx, runner.Request{
		Path:     args[0],
		Format:   format,
		Mode:     journal.ModeCheck,
		Metadata: map[string]string{"command": "check"},
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s (%d tokens, %d declarations, %d statements)\n",
		paint(okStyle, "ok"), args[0],
		result.Stats.Tokens, result.Stats.Declarations, result.Stats.Statements)

	if checkSymbols && len(result.Symbols) > 0 {
		t := table.New().Headers("NAME", "TYPE")
		for _, s := range result.Symbols {
			t.Row(s.Name, s.Declared.String())
		}
		fmt.Fprintln(out, renderTable(t))
	}
	return nil
}

func renderTable(t *table.Table) string {
	if colorEnabled() {
		t.StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	} else {
		t.StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	}
	return t.Render()
}
