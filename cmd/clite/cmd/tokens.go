package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/msto63/clite/internal/source"
)

var (
	tokensFormat string
	tokensYAML   bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Show the token stream of a file",
	Long: `Loads a token file and lists every token with its position, line,
class and lexeme. With --yaml the stream is written as a YAML token
document instead, which converts pairs files to YAML.`,
	Args: cobra.ExactArgs(1),
	RunE: showTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVarP(&tokensFormat, "format", "f", "auto", "input format: auto, pairs or yaml")
	tokensCmd.Flags().BoolVar(&tokensYAML, "yaml", false, "write the stream as YAML")
}

func showTokens(cmd *cobra.Command, args []string) error {
	format, err := source.ParseFormat(tokensFormat)
	if err != nil {
		return err
	}
	stream, err := source.LoadFormat(args[0], format)
	if err != nil {
		return err
	}

	if tokensYAML {
		name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		return source.EncodeYAML(cmd.OutOrStdout(), name, stream)
	}

	t := table.New().Headers("#", "LINE", "CLASS", "LEXEME")
	for _, tok := range stream.Tokens() {
		line := ""
		if tok.Line > 0 {
			line = strconv.Itoa(tok.Line)
		}
		t.Row(strconv.Itoa(tok.Index), line, string(tok.Class), tok.Lexeme)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(t))
	return nil
}
