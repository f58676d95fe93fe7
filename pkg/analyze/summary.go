package analyze

import (
	"strings"

	"github.com/matzehuels/techstack/pkg/deps"
)

// NotDetectedMessage is the summary body when no manifest was found.
const NotDetectedMessage = "No recognized dependency files found (package.json or requirements.txt)."

var sectionTitles = map[deps.Ecosystem]string{
	deps.EcosystemNode:   "Node.js Dependencies",
	deps.EcosystemPython: "Python Dependencies",
}

var categoryTitles = map[deps.Ecosystem]map[string]string{
	deps.EcosystemNode: {
		"framework":  "Frameworks",
		"testing":    "Testing Tools",
		"bundler":    "Build Tools & Bundlers",
		"linter":     "Linting & Code Style",
		"typescript": "TypeScript",
		"utilities":  "Utilities",
		"other":      "Other Dependencies",
	},
	deps.EcosystemPython: {
		"web_framework": "Web Frameworks",
		"testing":       "Testing Tools",
		"database":      "Database & ORM",
		"async":         "Async & Task Queue",
		"data_science":  "Data Science & ML",
		"utilities":     "Utilities",
		"other":         "Other Dependencies",
	},
}

// CategoryTitle returns the display title of a category. Names without a
// fixed title are title-cased with underscores as spaces.
func CategoryTitle(eco deps.Ecosystem, name string) string {
	if t, ok := categoryTitles[eco][name]; ok {
		return t
	}
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}

// Summary renders snap as a markdown document.
func Summary(snap *Snapshot) string {
	lines := []string{"# Project Tech Stack Analysis\n"}
	if !snap.Detected() {
		lines = append(lines, NotDetectedMessage)
		return strings.Join(lines, "\n")
	}

	for i, eco := range snap.Ecosystems {
		st := snap.Stack(eco)
		if st == nil {
			continue
		}
		if i > 0 {
			lines = append(lines, "\n")
		}
		lines = append(lines, "## "+sectionTitles[eco]+"\n")
		if st.Description != "" {
			lines = append(lines, "### Overview", st.Description+"\n")
		}
		for _, c := range st.Categories {
			if len(c.Members) == 0 {
				continue
			}
			lines = append(lines, "### "+CategoryTitle(eco, c.Name), strings.Join(c.Members, ", ")+"\n")
		}
	}
	return strings.Join(lines, "\n")
}
