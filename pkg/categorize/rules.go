package categorize

import (
	"strings"

	"github.com/matzehuels/techstack/pkg/deps"
)

// DefaultFallback is the category for dependencies that match no group.
const DefaultFallback = "other"

// Group is a named keyword set.
type Group struct {
	Name     string   `toml:"name" yaml:"name" json:"name"`
	Keywords []string `toml:"keywords" yaml:"keywords" json:"keywords"`
}

// Rules is the ordered rule table for one ecosystem.
type Rules struct {
	Ecosystem deps.Ecosystem `toml:"-" yaml:"-" json:"ecosystem"`
	Groups    []Group        `toml:"groups" yaml:"groups" json:"groups"`
	Fallback  string         `toml:"fallback,omitempty" yaml:"fallback,omitempty" json:"fallback,omitempty"`
}

// Match returns the category for a dependency name.
func (r Rules) Match(name string) string {
	lower := strings.ToLower(name)
	for _, g := range r.Groups {
		for _, kw := range g.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return g.Name
			}
		}
	}
	return r.fallback()
}

func (r Rules) fallback() string {
	if r.Fallback == "" {
		return DefaultFallback
	}
	return r.Fallback
}

// NodeRules returns the built-in Node.js rule table.
func NodeRules() Rules {
	return Rules{
		Ecosystem: deps.EcosystemNode,
		Groups: []Group{
			{"framework", []string{"react", "vue", "angular", "next", "nuxt", "express", "koa", "fastify", "nest"}},
			{"testing", []string{"jest", "mocha", "chai", "cypress", "playwright", "vitest", "ava", "karma"}},
			{"bundler", []string{"webpack", "rollup", "parcel", "vite", "esbuild", "babel"}},
			{"linter", []string{"eslint", "prettier", "tslint", "stylelint"}},
			{"typescript", []string{"typescript", "@types"}},
			{"utilities", []string{"lodash", "moment", "axios", "chalk", "commander", "dotenv", "uuid"}},
		},
		Fallback: DefaultFallback,
	}
}

// PythonRules returns the built-in Python rule table.
func PythonRules() Rules {
	return Rules{
		Ecosystem: deps.EcosystemPython,
		Groups: []Group{
			{"web_framework", []string{"django", "flask", "fastapi", "pyramid", "tornado", "aiohttp", "sanic"}},
			{"testing", []string{"pytest", "unittest", "nose", "coverage", "tox", "mock"}},
			{"database", []string{"sqlalchemy", "django-orm", "psycopg2", "pymongo", "redis", "peewee"}},
			{"async", []string{"asyncio", "aiohttp", "celery", "dramatiq", "rq"}},
			{"data_science", []string{"numpy", "pandas", "scipy", "scikit-learn", "tensorflow", "pytorch", "matplotlib"}},
			{"utilities", []string{"requests", "click", "pyyaml", "python-dotenv", "pillow", "beautifulsoup4"}},
		},
		Fallback: DefaultFallback,
	}
}

// Set holds one rule table per ecosystem.
type Set []Rules

// Defaults returns the built-in rule tables in processing order.
func Defaults() Set {
	return Set{NodeRules(), PythonRules()}
}

// For returns the rules for ecosystem e.
func (s Set) For(e deps.Ecosystem) (Rules, bool) {
	for _, r := range s {
		if r.Ecosystem == e {
			return r, true
		}
	}
	return Rules{}, false
}

// With returns a copy of s where r replaces the table for r.Ecosystem,
// or is appended when s has none.
func (s Set) With(r Rules) Set {
	out := make(Set, 0, len(s)+1)
	replaced := false
	for _, cur := range s {
		if cur.Ecosystem == r.Ecosystem {
			out = append(out, r)
			replaced = true
			continue
		}
		out = append(out, cur)
	}
	if !replaced {
		out = append(out, r)
	}
	return out
}
