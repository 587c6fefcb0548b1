package cmd

import (
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/clite/foundation/core/error"
	mdwlog "github.com/msto63/clite/foundation/core/log"
	"github.com/msto63/clite/internal/journal"
	"github.com/msto63/clite/pkg/core/config"
	"github.com/msto63/clite/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	noColor   bool

	appConfig *config.Config
	logger    *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "clite",
	Short: "clite - interpreter for pre-tokenized programs",
	Long: `clite interprets programs of a small imperative language that
arrive as a stream of (token class, lexeme) pairs.

The language has int, float, bool and char variables, assignment,
print, if/else, while and return inside a single main function.

Commands:
  run      - execute a token file
  check    - parse and type check without executing
  trace    - execute and inspect every statement
  tokens   - show or convert a token file
  history  - inspect the run journal`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the CLI and returns the process exit status. Failures are
// reported as a single diagnostic line on stderr.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	printDiagnostic(err)
	return exitCode(err)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if _, ok := mdwerror.As(err); !ok {
		// cobra usage errors
		return 2
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CLITE_CONFIG or ./configs/clite.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json, console or logfmt")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if logFormat != "" {
		cfg.General.LogFormat = logFormat
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if noColor {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	logger = logging.Install(logging.FromGeneral("clite", cfg.General))
	logger.Debug("configuration loaded", mdwlog.Fields{"command": cmd.Name(), "config": cfgFile})
	return nil
}

// loadConfig uses --config, then CLITE_CONFIG and the default paths. Without
// any config file the built-in defaults apply.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil && mdwerror.HasCode(err, mdwerror.CodeNotFound) && os.Getenv(config.EnvConfigPath) == "" {
		return config.Default(), nil
	}
	return cfg, err
}

// openJournal returns nil when the journal is disabled
func openJournal() (journal.Store, error) {
	if !appConfig.Journal.Enabled {
		return nil, nil
	}
	store, err := journal.NewSQLiteStore(journal.SQLiteConfig{Path: appConfig.Journal.Path})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func closeJournal(store journal.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.WarnWithErr("failed to close journal", err)
	}
}
