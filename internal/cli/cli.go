// Package cli implements the techstack command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/techstack/internal/config"
	"github.com/matzehuels/techstack/pkg/analyze"
	"github.com/matzehuels/techstack/pkg/buildinfo"
	"github.com/matzehuels/techstack/pkg/categorize"
	"github.com/matzehuels/techstack/pkg/completion"
	"github.com/matzehuels/techstack/pkg/render"
)

// appName is the application name used for display.
const appName = "techstack"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Without a subcommand the root command analyzes a project.
func (c *CLI) RootCommand() *cobra.Command {
	opts := defaultAnalyzeOpts()
	root := &cobra.Command{
		Use:   appName + " [path]",
		Short: "Techstack describes the technology stack of a project",
		Long: `Techstack reads package.json and requirements.txt, groups the declared
dependencies into categories and produces a human-readable summary of the stack.
An AI completion service, when configured, writes the overview and filters output
by focus area or technology.`,
		Version:       buildinfo.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd, args, &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: techstack.{yaml,toml} in . or "+configDirHint()+")")
	opts.bind(root)

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.rulesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Construction
// =============================================================================

func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(config.Options{File: c.configFile})
}

// loadRules returns the rule tables from path, or the built-in ones.
func loadRules(path string) (categorize.Set, error) {
	if path == "" {
		return categorize.Defaults(), nil
	}
	return categorize.LoadRules(path)
}

// newClient returns a completion client, or nil when offline is set or no
// credentials are configured.
func (c *CLI) newClient(ctx context.Context, cfg *config.Config, offline bool) (*completion.Client, error) {
	logger := loggerFromContext(ctx)
	if offline {
		return nil, nil
	}
	if !cfg.HasCredentials() {
		logger.Warn("No API key configured, running offline", "provider", cfg.Completion.Provider)
		return nil, nil
	}
	return completion.New(cfg.Completion, completion.WithLogger(logger))
}

// newServices builds the analyzer and renderer around an optional client.
func newServices(logger *log.Logger, rules categorize.Set, client *completion.Client, aiCategories bool) (*analyze.Analyzer, *render.Renderer) {
	aopts := []analyze.Option{analyze.WithRules(rules), analyze.WithLogger(logger)}
	var filter render.Filter
	if client != nil {
		aopts = append(aopts, analyze.WithDescriber(client))
		if aiCategories {
			aopts = append(aopts, analyze.WithCategorizer(client))
		}
		filter = client
	}
	return analyze.New(aopts...), render.New(filter, render.WithLogger(logger))
}

func configDirHint() string {
	if dir, err := config.Dir(); err == nil {
		return dir
	}
	return "$XDG_CONFIG_HOME/" + appName
}
