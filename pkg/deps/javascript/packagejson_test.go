package javascript

import (
	"reflect"
	"testing"

	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/errors"
)

func TestParsePackageJSON(t *testing.T) {
	content := `{
  "name": "my-package",
  "version": "1.0.0",
  "scripts": {"test": "jest"},
  "dependencies": {
    "react": "^17.0.2",
    "express": "~4.18.0"
  },
  "devDependencies": {
    "jest": ">=29.0.0"
  }
}`

	got, err := ParsePackageJSON([]byte(content))
	if err != nil {
		t.Fatalf("ParsePackageJSON: %v", err)
	}

	want := []deps.Dependency{
		{Name: "react", Version: "17.0.2", Kind: deps.KindRuntime},
		{Name: "express", Version: "4.18.0", Kind: deps.KindRuntime},
		{Name: "jest", Version: "29.0.0", Kind: deps.KindDevelopment},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParsePackageJSON() =\n%+v\nwant\n%+v", got, want)
	}
}

func TestParsePackageJSONRuntimeFirst(t *testing.T) {
	content := `{"devDependencies": {"typescript": "^5.0.0"}, "dependencies": {"vue": "3.3.4"}}`

	got, err := ParsePackageJSON([]byte(content))
	if err != nil {
		t.Fatalf("ParsePackageJSON: %v", err)
	}
	if names := deps.Names(got); !reflect.DeepEqual(names, []string{"vue", "typescript"}) {
		t.Errorf("order = %v, want [vue typescript]", names)
	}
}

func TestParsePackageJSONEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no groups", `{"name": "x"}`},
		{"empty groups", `{"dependencies": {}, "devDependencies": {}}`},
		{"null groups", `{"dependencies": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePackageJSON([]byte(tt.content))
			if err != nil {
				t.Fatalf("ParsePackageJSON: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("got %d dependencies, want 0", len(got))
			}
		})
	}
}

func TestParsePackageJSONInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `{"dependencies": {"react": "17"`},
		{"not an object", `["react"]`},
		{"trailing data", `{} {}`},
		{"group not an object", `{"dependencies": ["react"]}`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePackageJSON([]byte(tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidManifest) {
				t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidManifest)
			}
		})
	}
}

func TestParsePackageJSONDuplicateKeys(t *testing.T) {
	got, err := ParsePackageJSON([]byte(`{"dependencies": {"a": "1", "b": "2", "a": "3"}}`))
	if err != nil {
		t.Fatalf("ParsePackageJSON: %v", err)
	}
	want := []deps.Dependency{
		{Name: "a", Version: "3", Kind: deps.KindRuntime},
		{Name: "b", Version: "2", Kind: deps.KindRuntime},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"^4.18.0", "4.18.0"},
		{"~1.2.3", "1.2.3"},
		{">= 2.0.0", "2.0.0"},
		{"<3", "3"},
		{"latest", "latest"},
		{"", ""},
		{"1.x || 2.x", "1.x||2.x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeVersion(tt.in); got != tt.want {
				t.Errorf("NormalizeVersion(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLanguage(t *testing.T) {
	if Language.Ecosystem != deps.EcosystemNode {
		t.Errorf("Ecosystem = %q", Language.Ecosystem)
	}
	if !Language.Supports("package.json") {
		t.Error("Language should support package.json")
	}
}
