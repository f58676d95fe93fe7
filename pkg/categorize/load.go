package categorize

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/errors"
)

// file is the on-disk layout of a rules file:
//
//	[node]
//	fallback = "other"
//
//	[[node.groups]]
//	name = "framework"
//	keywords = ["react", "vue"]
type file struct {
	Node   *Rules `toml:"node,omitempty" yaml:"node,omitempty"`
	Python *Rules `toml:"python,omitempty" yaml:"python,omitempty"`
}

// LoadRules reads a TOML (.toml) or YAML (.yaml, .yml) rules file. Each
// ecosystem present in the file replaces the built-in table; the others keep
// their defaults.
func LoadRules(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read rules file")
	}

	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRules, err, "decode %s", filepath.Base(path))
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidRules, "unknown key %q in %s", undecoded[0].String(), filepath.Base(path))
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidRules, err, "decode %s", filepath.Base(path))
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidRules, "unsupported rules file extension %q", ext)
	}

	set := Defaults()
	for eco, r := range map[deps.Ecosystem]*Rules{deps.EcosystemNode: f.Node, deps.EcosystemPython: f.Python} {
		if r == nil {
			continue
		}
		r.Ecosystem = eco
		if err := r.validate(); err != nil {
			return nil, err
		}
		set = set.With(*r)
	}
	return set, nil
}

func (r Rules) validate() error {
	if len(r.Groups) == 0 {
		return errors.New(errors.ErrCodeInvalidRules, "%s: no groups defined", r.Ecosystem)
	}
	seen := make(map[string]bool)
	for i, g := range r.Groups {
		if g.Name == "" {
			return errors.New(errors.ErrCodeInvalidRules, "%s: group %d has no name", r.Ecosystem, i+1)
		}
		if seen[g.Name] {
			return errors.New(errors.ErrCodeInvalidRules, "%s: duplicate group %q", r.Ecosystem, g.Name)
		}
		seen[g.Name] = true
	}
	return nil
}

// Encode writes rules as a TOML rules file that LoadRules accepts.
func Encode(w io.Writer, rules ...Rules) error {
	var f file
	for i := range rules {
		r := rules[i]
		switch r.Ecosystem {
		case deps.EcosystemNode:
			f.Node = &r
		case deps.EcosystemPython:
			f.Python = &r
		default:
			return errors.New(errors.ErrCodeUnsupported, "unsupported ecosystem %q", r.Ecosystem)
		}
	}
	return toml.NewEncoder(w).Encode(f)
}
