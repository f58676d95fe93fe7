// Package render turns technology lists and category maps into output text.
//
// # Formats
//
//   - [FormatMarkdown]: "### " category headers and "• " bullets
//   - [FormatText]: bare category headers and "• " bullets
//   - [FormatInline]: a single comma-separated line
//   - [FormatJSON]: content passed through, or the category map as
//     indented JSON
//
// # Filtering
//
// [Options] can narrow the output to a focus area (frontend, backend,
// fullstack) or to the ecosystem of one technology (react, vue, node...).
// Narrowing asks a [Filter], usually a *completion.Client. A filter answer
// replaces the working list only when it is non-empty; a failing filter is
// logged and the unfiltered list is rendered. Filtering never applies to
// JSON output.
//
//	r := render.New(client)
//	out, err := r.RenderCategories(ctx, cats, render.FormatText, render.Options{FocusArea: "frontend"})
//
// Without a Filter, focus areas are matched against built-in keyword tables.
package render
