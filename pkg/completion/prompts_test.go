package completion

import (
	"strings"
	"testing"
)

func TestPromptsContainRules(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   []string
	}{
		{"base", BaseAnalysisPrompt, []string{"ONLY", "technology names", "NO descriptions", "NO explanations"}},
		{"node", NodeAnalysisPrompt, []string{"ONLY", "technology names", "{{dependencies}}", "NO descriptions", "NO explanations", "NO headers", "NO categories", "NO versions"}},
		{"python", PythonAnalysisPrompt, []string{"ONLY", "technology names", "{{dependencies}}", "NO descriptions", "NO explanations", "NO headers", "NO categories", "NO versions"}},
		{"categorization", CategorizationPrompt, []string{"Group these technologies", "Categories to use", "Core Technologies", "Testing", "Development Tools", "{{dependencies}}", "NO descriptions", "NO explanations"}},
		{"focus area", FocusAreaPrompt, []string{"Filter and return ONLY", "{{dependencies}}", "{{focusArea}}", "frontend, backend, or fullstack", "JSON array", "NO descriptions", "NO explanations", "NO categories"}},
		{"tech focus", TechFocusPrompt, []string{"Filter and return ONLY", "{{dependencies}}", "{{techFocus}}", "Core libraries and frameworks", "Testing tools", "Development tools", "Related ecosystem packages", "JSON array", "NO descriptions", "NO explanations", "NO categories"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, w := range tt.want {
				if !strings.Contains(tt.prompt, w) {
					t.Errorf("prompt missing %q", w)
				}
			}
		})
	}
}

func TestRenderPrompt(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     map[string]string
		want     string
	}{
		{"replaces", "Hello {{name}}, your age is {{age}}", map[string]string{"name": "John", "age": "30"}, "Hello John, your age is 30"},
		{"repeats", "{{name}} {{name}} {{name}}", map[string]string{"name": "test"}, "test test test"},
		{"unmatched", "Hello {{name}}, {{unmatched}}", map[string]string{"name": "John"}, "Hello John, {{unmatched}}"},
		{"no vars", "Hello {{name}}", nil, "Hello {{name}}"},
		{"value not rescanned", "{{a}} {{b}}", map[string]string{"a": "{{b}}", "b": "x"}, "{{b}} x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderPrompt(tt.template, tt.vars); got != tt.want {
				t.Errorf("RenderPrompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterPrompts(t *testing.T) {
	p := FocusAreaFilter([]string{"react", "express"}, "frontend")
	if !strings.Contains(p, `["react","express"]`) || !strings.Contains(p, "the frontend of") {
		t.Errorf("FocusAreaFilter() = %q", p)
	}
	if strings.Contains(p, "{{") {
		t.Errorf("unresolved placeholder in %q", p)
	}

	p = TechFocusFilter(nil, "react")
	if !strings.Contains(p, "[]") || !strings.Contains(p, "react ecosystem") {
		t.Errorf("TechFocusFilter() = %q", p)
	}
}
