package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/techstack/pkg/analyze"
	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/errors"
	"github.com/matzehuels/techstack/pkg/render"
)

// Views select what the analyze command prints.
const (
	viewSummary    = "summary"    // the summary document
	viewList       = "list"       // one entry per dependency
	viewCategories = "categories" // dependencies grouped by category
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	path         string // project directory when no argument is given
	format       string // markdown, text, inline or json
	view         string // summary, list or categories
	showVersions bool   // append (vMAJOR) to entries
	focus        string // focus area filter
	tech         string // technology focus filter
	offline      bool   // never call the completion service
	aiCategories bool   // ask the completion service for categories
	rules        string // rules file overriding the built-in tables
	output       string // output file, stdout when empty
}

func defaultAnalyzeOpts() analyzeOpts {
	return analyzeOpts{path: ".", format: string(render.FormatMarkdown), view: viewSummary}
}

func (o *analyzeOpts) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.path, "path", "p", o.path, "path to the project directory")
	f.StringVarP(&o.format, "format", "f", o.format, "output format: markdown, text, inline, json")
	f.StringVar(&o.view, "view", o.view, "what to print: summary, list, categories")
	f.BoolVar(&o.showVersions, "show-versions", false, "show major versions")
	f.StringVar(&o.focus, "focus", "", "only show technologies of a focus area (frontend, backend, fullstack, ...)")
	f.StringVar(&o.tech, "tech", "", "only show technologies of one ecosystem (react, vue, angular, node, python)")
	f.BoolVar(&o.offline, "offline", false, "do not call the completion service")
	f.BoolVar(&o.aiCategories, "ai-categories", false, "categorize with the completion service, falling back to the rules")
	f.StringVar(&o.rules, "rules", "", "categorization rules file (.toml or .yaml)")
	f.StringVarP(&o.output, "output", "o", "", "write output to a file")
}

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	opts := defaultAnalyzeOpts()
	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze the dependencies of a project",
		Long: `Analyze reads package.json and requirements.txt in the project directory and
prints a summary, a dependency list or the categorized dependencies.

--focus and --tech narrow list and categories output. Given without --view they
select the categories view.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd, args, &opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func (c *CLI) runAnalyze(cmd *cobra.Command, args []string, opts *analyzeOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	path := opts.path
	if len(args) > 0 {
		path = args[0]
	}
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	view := strings.ToLower(opts.view)
	if !cmd.Flags().Changed("view") && (opts.focus != "" || opts.tech != "") {
		view = viewCategories
	}
	if err := validateView(view); err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	rulesFile := opts.rules
	if rulesFile == "" {
		rulesFile = cfg.Rules
	}
	rules, err := loadRules(rulesFile)
	if err != nil {
		return err
	}
	client, err := c.newClient(ctx, cfg, opts.offline)
	if err != nil {
		return err
	}
	if err := errors.ValidateTechFocus(opts.tech); err != nil {
		return err
	}
	if client == nil {
		// Offline focus areas are limited to the built-in keyword tables.
		if err := errors.ValidateFocusArea(opts.focus, render.FocusAreas); err != nil {
			return err
		}
	}
	analyzer, renderer := newServices(logger, rules, client, opts.aiCategories)

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	prog := newProgress(logger)
	spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Analyzing project at "+path+"...")
	spinner.Start()
	snap, err := analyzer.Analyze(ctx, path)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Analyzed %s project", snap.Type()))

	if !snap.Detected() && view != viewSummary && format != render.FormatJSON {
		printWarning(cmd.ErrOrStderr(), "%s", analyze.NotDetectedMessage)
		return nil
	}
	out, err := renderSnapshot(ctx, renderer, snap, view, format, render.Options{
		ShowVersions: opts.showVersions,
		FocusArea:    opts.focus,
		TechFocus:    opts.tech,
		Dependencies: snap.Dependencies(),
	})
	if err != nil {
		return err
	}
	return writeOutput(cmd, opts.output, out)
}

func validateView(view string) error {
	switch view {
	case viewSummary, viewList, viewCategories:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown view %q (want summary, list or categories)", view)
}

// renderSnapshot renders snap in the requested view and format.
func renderSnapshot(ctx context.Context, r *render.Renderer, snap *analyze.Snapshot, view string, format render.Format, opts render.Options) (string, error) {
	switch view {
	case viewList:
		if format == render.FormatJSON {
			return marshalIndent(nonNil(snap.Dependencies()))
		}
		return r.Render(ctx, analyze.BulletList(deps.Names(snap.Dependencies())), format, opts)
	case viewCategories:
		return r.RenderCategories(ctx, snap.Categories(), format, opts)
	}

	switch format {
	case render.FormatJSON:
		return marshalIndent(snap)
	case render.FormatText:
		return render.PlainText(analyze.Summary(snap)), nil
	case render.FormatInline:
		return r.Render(ctx, analyze.BulletList(deps.Names(snap.Dependencies())), format, opts)
	}
	return analyze.Summary(snap), nil
}

func nonNil(list []deps.Dependency) []deps.Dependency {
	if list == nil {
		return []deps.Dependency{}
	}
	return list
}

func marshalIndent(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode output")
	}
	return string(data), nil
}

// writeOutput prints out, or writes it to path when one is given.
func writeOutput(cmd *cobra.Command, path, out string) error {
	out = strings.TrimRight(out, "\n")
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	}
	if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	printSuccess(cmd.ErrOrStderr(), "Wrote output")
	printFile(cmd.ErrOrStderr(), path)
	return nil
}
