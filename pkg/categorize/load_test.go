package categorize

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRulesTOML(t *testing.T) {
	path := writeFile(t, "rules.toml", `
[python]
fallback = "misc"

[[python.groups]]
name = "web"
keywords = ["flask", "django"]
`)

	set, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}

	py, _ := set.For(deps.EcosystemPython)
	if py.Fallback != "misc" || len(py.Groups) != 1 || py.Groups[0].Name != "web" {
		t.Errorf("python rules = %+v", py)
	}
	node, _ := set.For(deps.EcosystemNode)
	if node.Groups[0].Name != "framework" {
		t.Errorf("node rules should keep defaults, got %+v", node.Groups[0])
	}
}

func TestLoadRulesYAML(t *testing.T) {
	path := writeFile(t, "rules.yaml", `
node:
  groups:
    - name: ui
      keywords: [react, vue]
    - name: tooling
      keywords: [vite]
`)

	set, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	node, _ := set.For(deps.EcosystemNode)
	if len(node.Groups) != 2 || node.Groups[1].Name != "tooling" {
		t.Errorf("node rules = %+v", node)
	}
	if got := node.Match("left-pad"); got != DefaultFallback {
		t.Errorf("Match(left-pad) = %q, want %q", got, DefaultFallback)
	}
}

func TestLoadRulesErrors(t *testing.T) {
	tests := []struct {
		name, file, content string
		code                errors.Code
	}{
		{"bad extension", "rules.json", `{}`, errors.ErrCodeInvalidRules},
		{"bad toml", "rules.toml", `[node`, errors.ErrCodeInvalidRules},
		{"unknown toml key", "rules.toml", "[ruby]\nfallback = \"x\"\n", errors.ErrCodeInvalidRules},
		{"unknown yaml key", "rules.yml", "node:\n  colour: red\n", errors.ErrCodeInvalidRules},
		{"no groups", "rules.toml", "[node]\nfallback = \"x\"\n", errors.ErrCodeInvalidRules},
		{"unnamed group", "rules.yaml", "node:\n  groups:\n    - keywords: [a]\n", errors.ErrCodeInvalidRules},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRules(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}

	if _, err := LoadRules(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("missing file err = %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Defaults()...); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	path := writeFile(t, "rules.toml", buf.String())
	set, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules(encoded): %v\n%s", err, buf.String())
	}
	for _, want := range Defaults() {
		got, ok := set.For(want.Ecosystem)
		if !ok {
			t.Fatalf("missing %s", want.Ecosystem)
		}
		if len(got.Groups) != len(want.Groups) || got.Groups[0].Name != want.Groups[0].Name || got.Fallback != want.Fallback {
			t.Errorf("%s round trip = %+v", want.Ecosystem, got)
		}
	}
}

func TestEncodeUnsupported(t *testing.T) {
	err := Encode(&bytes.Buffer{}, Rules{Ecosystem: "ruby"})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("err = %v", err)
	}
}
