package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/webstrap-labs/webstrap/internal/branding"
	"github.com/webstrap-labs/webstrap/internal/config"
	"github.com/webstrap-labs/webstrap/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevel string
	log      *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` bootstraps front-end projects: it verifies your toolchain,
runs the base scaffold, wires linting, formatting, editor settings, and git
hooks, optionally installs a test framework, and records the first commit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		level := logLevel
		if level == "" {
			level = config.Get(config.KeyLogLevel)
		}
		log = logging.NewLogger(os.Stderr, logging.ParseLevel(level))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// logger returns the process logger, falling back to info level when a
// command runs outside the cobra lifecycle (tests call RunE directly).
func logger() *slog.Logger {
	if log == nil {
		log = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	return log
}
