package python

import (
	"regexp"

	"github.com/matzehuels/techstack/pkg/deps"
)

// Language describes the Python ecosystem.
var Language = &deps.Language{
	Ecosystem:    deps.EcosystemPython,
	Title:        "Python",
	ManifestFile: "requirements.txt",
	Parse:        parseFile,
}

var requirementRE = regexp.MustCompile(`^([a-zA-Z0-9._-]+)(?:([<>=!~]=|[<>])(.+))?$`)

// ParseRequirement parses a single requirement line. A line that is not a
// plain specifier becomes a dependency named after the whole line, with no
// version or constraint.
func ParseRequirement(line string) deps.Dependency {
	m := requirementRE.FindStringSubmatch(line)
	if m == nil {
		return deps.Dependency{Name: line}
	}
	return deps.Dependency{Name: m[1], Constraint: m[2], Version: m[3]}
}

// ParseRequirements parses lines in order. It never fails.
func ParseRequirements(lines []string) []deps.Dependency {
	out := make([]deps.Dependency, 0, len(lines))
	for _, line := range lines {
		out = append(out, ParseRequirement(line))
	}
	return out
}

func parseFile(data []byte) ([]deps.Dependency, error) {
	return ParseRequirements(deps.RequirementLines(data)), nil
}
