package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structmatch/structmatch/pkg/logging"
)

// BuildInfo carries build-time version metadata set via ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// log is the CLI-wide logger, configured by the root command's
// persistent flags before any subcommand runs.
var log = logging.Nop()

// NewRootCmd builds the structmatch root command and its subcommands.
func NewRootCmd(info BuildInfo) *cobra.Command {
	var logLevel, logFormat string

	root := &cobra.Command{
		Use:   "structmatch",
		Short: "Structural pattern matching for JSON and YAML data",
		Long: `structmatch matches arbitrary JSON data against declarative pattern
documents and extracts named selections.

A pattern document describes the required shape of a value: literals,
tuples, minimum object shapes, and matcher operators such as $or,
$optional, $array, $select, and $expr guards.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", info.Version, info.Commit, info.BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			log = logging.New(logging.Config{
				Level:  logging.ParseLevel(logLevel),
				Format: logging.ParseFormat(logFormat),
			})
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newKeysCmd())

	return root
}

// Execute runs the CLI.
func Execute(info BuildInfo) error {
	return NewRootCmd(info).Execute()
}
