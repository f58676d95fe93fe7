package completion

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/techstack/pkg/categorize"
	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/errors"
)

var analysisPrompts = map[deps.Ecosystem]string{
	deps.EcosystemNode:   NodeAnalysisPrompt,
	deps.EcosystemPython: PythonAnalysisPrompt,
}

// GenerateDescription asks for a bullet list of the technologies behind
// list.
func (c *Client) GenerateDescription(ctx context.Context, eco deps.Ecosystem, list []deps.Dependency) (string, error) {
	tpl, ok := analysisPrompts[eco]
	if !ok {
		return "", errors.New(errors.ErrCodeUnsupported, "no analysis prompt for ecosystem %q", eco)
	}
	return c.Complete(ctx, "generate tech stack description", Request{
		System:      DescriptionSystemPrompt,
		User:        RenderPrompt(tpl, map[string]string{"dependencies": dependencyJSON(list)}),
		Temperature: 0.7,
		MaxTokens:   1000,
	})
}

// CategorizeDependencies asks the service to group list into categories.
// An answer that is not a category object yields [ErrUnparseable].
func (c *Client) CategorizeDependencies(ctx context.Context, list []deps.Dependency) (categorize.Map, error) {
	text, err := c.Complete(ctx, "categorize dependencies", Request{
		System:      CategorizationSystemPrompt,
		User:        RenderPrompt(CategorizationPrompt, map[string]string{"dependencies": dependencyJSON(list)}),
		Temperature: 0.3,
		MaxTokens:   500,
		JSON:        true,
	})
	if err != nil {
		return nil, err
	}
	m, _, err := DecodeCategories(text)
	return m, err
}

// FilterTechnologies sends a rendered filter prompt and returns the
// technologies in the answer. An answer without a JSON string array yields
// [ErrUnparseable].
func (c *Client) FilterTechnologies(ctx context.Context, prompt string) ([]string, error) {
	text, err := c.Complete(ctx, "filter technologies", Request{
		System:      FilterSystemPrompt,
		User:        prompt,
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		return nil, err
	}
	res := DecodeArray(text)
	if !res.OK() {
		return nil, fmt.Errorf("%w: %s", ErrUnparseable, snippet(text))
	}
	c.logger.Debug("decoded filter response", "stage", res.Stage, "items", len(res.Items))
	return res.Items, nil
}

type promptDependency struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func dependencyJSON(list []deps.Dependency) string {
	out := make([]promptDependency, len(list))
	for i, d := range list {
		out[i] = promptDependency{Name: d.Name, Version: d.Version}
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	return string(data)
}
