package deps

import (
	"fmt"
	"strings"
)

// Ecosystem identifies a package ecosystem.
type Ecosystem string

const (
	EcosystemNode   Ecosystem = "node"
	EcosystemPython Ecosystem = "python"
)

// Kind tags a dependency with the manifest group it was declared in.
// Ecosystems without groups (requirements.txt) use KindNone.
type Kind int

const (
	KindNone Kind = iota
	KindRuntime
	KindDevelopment
)

var kindNames = map[Kind]string{
	KindNone:        "",
	KindRuntime:     "runtime",
	KindDevelopment: "development",
}

func (k Kind) String() string { return kindNames[k] }

// MarshalText encodes the kind as "runtime", "development" or "".
func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("invalid dependency kind %d", int(k))
	}
	return []byte(s), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("invalid dependency kind %q", text)
}

// Dependency is a single direct dependency declared in a manifest.
type Dependency struct {
	Name       string `json:"name"`                 // Declared package identifier, case preserved
	Version    string `json:"version"`              // Normalized version, "" when unknown
	Kind       Kind   `json:"kind,omitempty"`       // Manifest group (package.json only)
	Constraint string `json:"constraint,omitempty"` // Version operator (requirements.txt only)
}

// MajorVersion returns the first dot-delimited segment of Version, or ""
// when the version is unknown.
func (d Dependency) MajorVersion() string {
	major, _, _ := strings.Cut(d.Version, ".")
	return major
}

// Names returns the dependency names in order.
func Names(list []Dependency) []string {
	names := make([]string, len(list))
	for i, d := range list {
		names[i] = d.Name
	}
	return names
}

// Find returns the first dependency named name.
func Find(list []Dependency, name string) (Dependency, bool) {
	for _, d := range list {
		if d.Name == name {
			return d, true
		}
	}
	return Dependency{}, false
}
