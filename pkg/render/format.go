package render

import (
	"regexp"
	"strings"

	"github.com/matzehuels/techstack/pkg/errors"
)

// Format selects the output shape.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatInline   Format = "inline"
	FormatJSON     Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{FormatMarkdown, FormatText, FormatInline, FormatJSON}

// ParseFormat parses a format name. The empty string selects markdown.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatMarkdown, nil
	}
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want markdown, text, inline or json)", s)
}

type layout struct {
	subheader string
	bullet    string
}

var layouts = map[Format]layout{
	FormatMarkdown: {subheader: "### ", bullet: "• "},
	FormatText:     {subheader: "", bullet: "• "},
	FormatInline:   {},
}

var headingRE = regexp.MustCompile(`(?m)^#{1,3} `)

// PlainText converts a markdown summary to plain text by dropping heading
// markers and collapsing blank lines.
func PlainText(markdown string) string {
	return strings.ReplaceAll(headingRE.ReplaceAllString(markdown, ""), "\n\n", "\n")
}
