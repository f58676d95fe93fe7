package render

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/techstack/pkg/categorize"
	"github.com/matzehuels/techstack/pkg/completion"
	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/errors"
)

// Filter narrows a technology list with a rendered filter prompt.
// *completion.Client implements it.
type Filter interface {
	FilterTechnologies(ctx context.Context, prompt string) ([]string, error)
}

// Options controls filtering and version display.
type Options struct {
	ShowVersions bool              `json:"show_versions,omitempty"`
	FocusArea    string            `json:"focus_area,omitempty"`
	TechFocus    string            `json:"tech_focus,omitempty"`
	Dependencies []deps.Dependency `json:"dependencies,omitempty"` // version lookup for ShowVersions
}

// Renderer formats technology lists and category maps.
type Renderer struct {
	filter Filter
	logger *log.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used to report filter failures.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns a Renderer. filter may be nil, in which case focus areas
// fall back to the built-in keyword tables.
func New(filter Filter, opts ...Option) *Renderer {
	r := &Renderer{filter: filter, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render extracts the bullet items of content, filters them and renders
// them in format. JSON content is returned unchanged.
func (r *Renderer) Render(ctx context.Context, content string, format Format, opts Options) (string, error) {
	style, err := r.layout(format)
	if err != nil {
		return "", err
	}
	if format == FormatJSON {
		return content, nil
	}

	techs := r.narrow(ctx, BulletItems(content), opts)
	lines := make([]string, len(techs))
	for i, name := range techs {
		lines[i] = style.bullet + name + versionSuffix(name, opts)
	}
	if format == FormatInline {
		return strings.Join(lines, ", "), nil
	}
	return strings.Join(lines, "\n"), nil
}

// RenderCategories filters the members of cats and renders the non-empty
// groups in input order.
func (r *Renderer) RenderCategories(ctx context.Context, cats categorize.Map, format Format, opts Options) (string, error) {
	style, err := r.layout(format)
	if err != nil {
		return "", err
	}
	if format == FormatJSON {
		if cats == nil {
			cats = categorize.Map{}
		}
		data, err := json.MarshalIndent(cats, "", "  ")
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "encode categories")
		}
		return string(data), nil
	}

	keep := make(map[string]bool)
	for _, name := range r.narrow(ctx, cats.All(), opts) {
		keep[name] = true
	}
	kept := cats.Filter(func(name string) bool { return keep[name] })

	blocks := make([]string, 0, len(kept))
	for _, c := range kept {
		items := make([]string, len(c.Members))
		for i, m := range c.Members {
			items[i] = strings.TrimSpace(m) + versionSuffix(m, opts)
		}
		title := strings.ReplaceAll(c.Name, "_", " ")
		if format == FormatInline {
			blocks = append(blocks, title+": "+strings.Join(items, ", "))
			continue
		}
		for i := range items {
			items[i] = style.bullet + items[i]
		}
		blocks = append(blocks, style.subheader+title+"\n"+strings.Join(items, "\n"))
	}
	if format == FormatInline {
		return strings.Join(blocks, "\n"), nil
	}
	return strings.TrimSpace(strings.Join(blocks, "\n\n")), nil
}

func (r *Renderer) layout(format Format) (layout, error) {
	if format == FormatJSON {
		return layout{}, nil
	}
	style, ok := layouts[format]
	if !ok {
		return layout{}, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	return style, nil
}

// narrow applies the focus area and then the tech focus to techs.
func (r *Renderer) narrow(ctx context.Context, techs []string, opts Options) []string {
	if len(techs) == 0 {
		return techs
	}
	if area := strings.TrimSpace(opts.FocusArea); area != "" {
		techs = r.byArea(ctx, techs, area)
	}
	if tech := strings.TrimSpace(opts.TechFocus); tech != "" {
		techs = r.byTech(ctx, techs, tech)
	}
	return techs
}

func (r *Renderer) byArea(ctx context.Context, techs []string, area string) []string {
	if r.filter == nil {
		if kw, ok := AreaKeywords(area); ok {
			return nonEmpty(matchAny(techs, kw), techs)
		}
		return techs
	}
	return r.ask(ctx, techs, completion.FocusAreaFilter(techs, area), "focus area "+area)
}

func (r *Renderer) byTech(ctx context.Context, techs []string, tech string) []string {
	if kw, ok := RelatedKeywords(tech); ok {
		techs = nonEmpty(matchAny(techs, kw), techs)
	}
	if r.filter == nil {
		return techs
	}
	return r.ask(ctx, techs, completion.TechFocusFilter(techs, tech), "tech focus "+tech)
}

// ask runs the filter and keeps the candidates it selected. Candidates are
// matched case-insensitively and keep their original spelling and order.
func (r *Renderer) ask(ctx context.Context, techs []string, prompt, what string) []string {
	result, err := r.filter.FilterTechnologies(ctx, prompt)
	if err != nil {
		r.logger.Warn("Failed to filter technologies", "filter", what, "err", errors.UserMessage(err))
		return techs
	}
	picked := make(map[string]bool, len(result))
	for _, name := range result {
		picked[strings.ToLower(strings.TrimSpace(name))] = true
	}
	var out []string
	for _, name := range techs {
		if picked[strings.ToLower(name)] {
			out = append(out, name)
		}
	}
	return nonEmpty(out, techs)
}

func nonEmpty(narrowed, fallback []string) []string {
	if len(narrowed) == 0 {
		return fallback
	}
	return narrowed
}

func versionSuffix(name string, opts Options) string {
	if !opts.ShowVersions {
		return ""
	}
	d, ok := deps.Find(opts.Dependencies, strings.TrimSpace(name))
	if !ok {
		return ""
	}
	if major := d.MajorVersion(); major != "" {
		return " (v" + major + ")"
	}
	return ""
}

// BulletItems returns the first word of every line that starts with a
// bullet glyph (•, - or *).
func BulletItems(content string) []string {
	var items []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := cutBullet(line)
		if !ok {
			continue
		}
		if fields := strings.Fields(rest); len(fields) > 0 {
			items = append(items, fields[0])
		}
	}
	return items
}

func cutBullet(line string) (string, bool) {
	for _, glyph := range []string{"•", "-", "*"} {
		if rest, ok := strings.CutPrefix(line, glyph); ok {
			return rest, true
		}
	}
	return "", false
}
