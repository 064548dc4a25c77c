// Package commands implements the CLI commands for shlibdeps.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/shlibdeps/internal/app"
	"go.trai.ch/shlibdeps/internal/build"
)

// Generator is the application operation the CLI drives.
type Generator interface {
	Generate(ctx context.Context, opts app.GenerateOptions) error
}

// LogControl adjusts logging behavior from persistent flags.
type LogControl interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// CLI represents the command line interface for shlibdeps.
type CLI struct {
	gen     Generator
	logs    LogControl
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given generator. logs may be
// nil when the logger does not support runtime adjustment.
func New(gen Generator, logs LogControl) *CLI {
	rootCmd := &cobra.Command{
		Use:           "shlibdeps",
		Short:         "Compute distribution package dependencies of compiled executables",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		gen:     gen,
		logs:    logs,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logs == nil {
			return
		}
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.logs.SetJSON(jsonLogs)
		c.logs.SetVerbose(verbose)
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output and errors. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}
