package deps

import "strings"

// Language describes how one ecosystem declares its dependencies.
type Language struct {
	Ecosystem    Ecosystem                          // Ecosystem identifier
	Title        string                             // Display name (e.g., "Node.js")
	ManifestFile string                             // Manifest filename in the project root
	Parse        func([]byte) ([]Dependency, error) // Decodes raw manifest content
}

// Supports reports whether filename is this language's manifest.
func (l *Language) Supports(filename string) bool {
	return strings.EqualFold(filename, l.ManifestFile)
}

// Lookup returns the language for ecosystem e from langs.
func Lookup(e Ecosystem, langs ...*Language) (*Language, bool) {
	for _, l := range langs {
		if l.Ecosystem == e {
			return l, true
		}
	}
	return nil, false
}
