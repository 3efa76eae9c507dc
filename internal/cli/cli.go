// Package cli implements the dependgen command-line interface.
//
// dependgen has a single operation: walk the composer.json dependency graph
// of a repository URL and write a Markdown report with a Mermaid diagram.
// The root command carries that operation; completion is the only
// subcommand.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/thejimbirch/dependgen/pkg/buildinfo"
)

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
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. The root command itself runs
// the generate operation: dependgen <repository_url> [branch].
func (c *CLI) RootCommand() *cobra.Command {
	opts := generateOpts{}

	root := &cobra.Command{
		Use:   "dependgen <repository_url> [branch]",
		Short: "dependgen graphs a repository's composer dependencies",
		Long: `dependgen walks the composer.json dependency graph of a repository hosted
on GitHub, GitLab, or Drupal GitLab, recursively resolving each recognized
dependency's own repository and manifest. It writes DEPENDENCIES.md with a
Mermaid diagram and a per-repository dependency listing.

When no branch is given, the provider API is asked for the repository's
default branch.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&opts.output, "output", "o", "", "report file (default from config, DEPENDENCIES.md)")
	root.Flags().StringVar(&opts.configPath, "config", "", "config file (default dependgen.toml if present)")
	root.Flags().BoolVar(&opts.svg, "svg", false, "also render the graph to SVG via Graphviz")

	root.AddCommand(c.completionCommand())

	return root
}
