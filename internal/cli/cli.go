// Package cli implements the deptally command-line interface.
//
// deptally is a single command: given a PyPI package and an output path, it
// builds a CSV of every package depending on it, ranked by GitHub stars and
// annotated with last-month download counts. Progress is checkpointed in
// the output file, so a run interrupted by rate limiting resumes where it
// left off.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"deptally/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "deptally"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var flags rankFlags

	root := &cobra.Command{
		Use:   appName,
		Short: "Find the most downloaded dependents of your PyPI package",
		Long: `Deptally builds a CSV of every PyPI package that depends on yours, ranked
by GitHub stars and annotated with last-month download counts.

Intermediate results are cached in the output file: if you hit a
TOO_MANY_REQUESTS error, wait a bit and run again to resume where the
previous run stopped.

Requires a libraries.io API key in the LIBRARIES_API_KEY environment
variable (a .env file in the working directory is honored).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRank(cmd.Context(), flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&flags.pkg, "package", "p", "", "PyPI package to inspect")
	root.Flags().StringVarP(&flags.output, "output", "o", "", "path to the output/checkpoint CSV")
	_ = root.MarkFlagRequired("package")
	_ = root.MarkFlagRequired("output")

	return root
}
