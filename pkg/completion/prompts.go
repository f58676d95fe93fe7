package completion

import (
	"encoding/json"
	"regexp"
)

// System instructions for each call site.
const (
	DescriptionSystemPrompt    = "You are a technical expert who specializes in analyzing project dependencies and providing clear, concise descriptions of tech stacks."
	CategorizationSystemPrompt = "You are a technical expert who specializes in categorizing software dependencies."
	FilterSystemPrompt         = "You are a technical expert who filters lists of software technologies. You answer with a JSON array only."
)

// BaseAnalysisPrompt holds the output rules shared by the analysis prompts.
const BaseAnalysisPrompt = `List the technologies this project is built with.
Return ONLY technology names, one per line, each line starting with "• ".
NO descriptions. NO explanations. NO headers. NO categories. NO versions.`

// NodeAnalysisPrompt asks for the technologies of a Node.js project.
const NodeAnalysisPrompt = BaseAnalysisPrompt + `

Cover the main frameworks and libraries, build and development tooling, and testing tools of this Node.js project.

Dependencies:
{{dependencies}}`

// PythonAnalysisPrompt asks for the technologies of a Python project.
const PythonAnalysisPrompt = BaseAnalysisPrompt + `

Cover the main frameworks and libraries, data processing libraries, and testing and development tools of this Python project.

Dependencies:
{{dependencies}}`

// CategorizationPrompt asks for a category object.
const CategorizationPrompt = `Group these technologies into categories:
{{dependencies}}

Categories to use:
- Core Technologies
- Testing
- Development Tools
- Utilities

Use every technology name exactly as given and place each one in exactly one category.
NO descriptions. NO explanations.
Return a JSON object where each key is a category and each value is an array of technology names.`

// FocusAreaPrompt asks for the technologies belonging to a focus area.
const FocusAreaPrompt = `Filter and return ONLY the technologies from this list that belong to the {{focusArea}} of a project:
{{dependencies}}

The focus area is one of frontend, backend, or fullstack. Use technology names exactly as given.
NO descriptions. NO explanations. NO categories.
Return the result as a JSON array of strings.`

// TechFocusPrompt asks for the technologies related to one technology.
const TechFocusPrompt = `Filter and return ONLY the technologies from this list that are part of the {{techFocus}} ecosystem:
{{dependencies}}

Include:
- Core libraries and frameworks
- Testing tools
- Development tools
- Related ecosystem packages

Use technology names exactly as given. NO descriptions. NO explanations. NO categories.
Return the result as a JSON array of strings.`

var placeholderRE = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// RenderPrompt replaces every {{key}} in template with vars[key].
// Placeholders without a value are left as they are. Substituted values are
// not scanned again.
func RenderPrompt(template string, vars map[string]string) string {
	return placeholderRE.ReplaceAllStringFunc(template, func(m string) string {
		if v, ok := vars[m[2:len(m)-2]]; ok {
			return v
		}
		return m
	})
}

// FocusAreaFilter renders FocusAreaPrompt for techs.
func FocusAreaFilter(techs []string, area string) string {
	return RenderPrompt(FocusAreaPrompt, map[string]string{
		"dependencies": jsonList(techs),
		"focusArea":    area,
	})
}

// TechFocusFilter renders TechFocusPrompt for techs.
func TechFocusFilter(techs []string, tech string) string {
	return RenderPrompt(TechFocusPrompt, map[string]string{
		"dependencies": jsonList(techs),
		"techFocus":    tech,
	})
}

func jsonList(items []string) string {
	if items == nil {
		items = []string{}
	}
	data, _ := json.Marshal(items)
	return string(data)
}
