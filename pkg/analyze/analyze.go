package analyze

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/techstack/pkg/categorize"
	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/deps/javascript"
	"github.com/matzehuels/techstack/pkg/deps/python"
	"github.com/matzehuels/techstack/pkg/errors"
	"github.com/matzehuels/techstack/pkg/observability"
)

// Languages lists the supported ecosystems in processing order.
var Languages = []*deps.Language{
	javascript.Language,
	python.Language,
}

// Describer produces a description of one ecosystem's dependencies.
// *completion.Client implements it.
type Describer interface {
	GenerateDescription(ctx context.Context, eco deps.Ecosystem, list []deps.Dependency) (string, error)
}

// Categorizer groups dependencies into categories.
// *completion.Client implements it.
type Categorizer interface {
	CategorizeDependencies(ctx context.Context, list []deps.Dependency) (categorize.Map, error)
}

// Analyzer analyzes project directories. It is safe for concurrent use.
type Analyzer struct {
	open        func(dir string) fs.FS
	describer   Describer
	categorizer Categorizer
	rules       categorize.Set
	logger      *log.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDescriber enables description generation. Without one the
// description is the bullet list of dependency names.
func WithDescriber(d Describer) Option {
	return func(a *Analyzer) { a.describer = d }
}

// WithCategorizer replaces rule-based categories with the categorizer's
// answer. A failed or empty answer keeps the rule-based categories.
func WithCategorizer(c Categorizer) Option {
	return func(a *Analyzer) { a.categorizer = c }
}

// WithRules replaces the categorization rules. Ecosystems missing from
// set keep the built-in rules.
func WithRules(set categorize.Set) Option {
	return func(a *Analyzer) {
		for _, r := range set {
			a.rules = a.rules.With(r)
		}
	}
}

// WithLogger sets the logger for warnings and progress.
func WithLogger(l *log.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithFileSystem replaces the directory opener, which defaults to
// os.DirFS. Paths are not validated against the OS when it is set.
func WithFileSystem(open func(dir string) fs.FS) Option {
	return func(a *Analyzer) { a.open = open }
}

// New creates an Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		rules:  categorize.Defaults(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze inspects the project at path. Only an invalid path is an error;
// a project without manifests yields a snapshot whose Detected is false.
func (a *Analyzer) Analyze(ctx context.Context, path string) (*Snapshot, error) {
	open := a.open
	if open == nil {
		if err := errors.ValidateProjectPath(path); err != nil {
			return nil, err
		}
		open = os.DirFS
	}

	hooks := observability.Analysis()
	hooks.OnAnalyzeStart(ctx, path)
	start := time.Now()

	fsys := open(path)
	snap := &Snapshot{}
	for _, lang := range deps.Detect(fsys, Languages...) {
		if err := ctx.Err(); err != nil {
			hooks.OnAnalyzeComplete(ctx, path, len(snap.Ecosystems), time.Since(start), err)
			return nil, err
		}
		snap.Ecosystems = append(snap.Ecosystems, lang.Ecosystem)
		snap.setStack(lang.Ecosystem, a.analyzeLanguage(ctx, fsys, lang, snap))
	}

	a.logger.Debug("analysis finished", "path", path, "type", snap.Type(), "warnings", len(snap.Warnings))
	hooks.OnAnalyzeComplete(ctx, path, len(snap.Ecosystems), time.Since(start), nil)
	return snap, nil
}

func (a *Analyzer) analyzeLanguage(ctx context.Context, fsys fs.FS, lang *deps.Language, snap *Snapshot) *Stack {
	hooks := observability.Analysis()
	hooks.OnEcosystemStart(ctx, string(lang.Ecosystem))
	start := time.Now()

	list, err := a.parse(fsys, lang)
	if err != nil {
		a.warn(snap, fmt.Sprintf("%s: %s", lang.Title, errors.UserMessage(err)))
	}
	if list == nil {
		list = []deps.Dependency{}
	}

	rules, ok := a.rules.For(lang.Ecosystem)
	if !ok {
		rules = categorize.Rules{Ecosystem: lang.Ecosystem}
	}
	stack := &Stack{
		Dependencies: list,
		Categories:   categorize.Categorize(rules, list),
	}
	if cats, cerr := a.categorize(ctx, list); cerr != nil {
		a.warn(snap, fmt.Sprintf("%s AI categories unavailable, using rules: %s", lang.Title, errors.UserMessage(cerr)))
	} else if len(cats) > 0 {
		stack.Categories = cats
	}
	a.logger.Debug("categorized dependencies", "ecosystem", lang.Ecosystem, "dependencies", len(list), "categories", len(stack.Categories))

	desc, derr := a.describe(ctx, lang, list)
	if derr != nil {
		a.warn(snap, fmt.Sprintf("%s description unavailable: %s", lang.Title, errors.UserMessage(derr)))
	}
	stack.Description = desc

	hooks.OnEcosystemComplete(ctx, string(lang.Ecosystem), len(list), time.Since(start), err)
	return stack
}

func (a *Analyzer) parse(fsys fs.FS, lang *deps.Language) ([]deps.Dependency, error) {
	data, err := deps.ReadManifest(fsys, lang)
	if err != nil {
		return nil, err
	}
	return lang.Parse(data)
}

func (a *Analyzer) categorize(ctx context.Context, list []deps.Dependency) (categorize.Map, error) {
	if a.categorizer == nil || len(list) == 0 {
		return nil, nil
	}
	return a.categorizer.CategorizeDependencies(ctx, list)
}

func (a *Analyzer) describe(ctx context.Context, lang *deps.Language, list []deps.Dependency) (string, error) {
	if len(list) == 0 {
		return "", nil
	}
	if a.describer == nil {
		return BulletList(deps.Names(list)), nil
	}
	return a.describer.GenerateDescription(ctx, lang.Ecosystem, list)
}

func (a *Analyzer) warn(snap *Snapshot, msg string) {
	a.logger.Warn(msg)
	snap.Warnings = append(snap.Warnings, msg)
}

// BulletList renders names as "• name" lines.
func BulletList(names []string) string {
	lines := make([]string, len(names))
	for i, n := range names {
		lines[i] = "• " + n
	}
	return strings.Join(lines, "\n")
}
