package completion_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/techstack/pkg/completion"
)

func ExampleRenderPrompt() {
	out := completion.RenderPrompt("Filter {{dependencies}} for {{focusArea}} ({{unknown}})", map[string]string{
		"dependencies": `["react","express"]`,
		"focusArea":    "frontend",
	})
	fmt.Println(out)
	// Output:
	// Filter ["react","express"] for frontend ({{unknown}})
}

func ExampleDecodeArray() {
	res := completion.DecodeArray("The frontend technologies are:\n```json\n[\"react\", \"vite\"]\n```")
	fmt.Println(res.Stage, res.Items)
	// Output:
	// extracted [react vite]
}

func ExampleClient_FilterTechnologies() {
	stub := completion.ProviderFunc(func(ctx context.Context, req completion.Request) (string, error) {
		return `["react"]`, nil
	})
	client, _ := completion.New(completion.Config{}, completion.WithProvider(stub))

	prompt := completion.FocusAreaFilter([]string{"react", "express"}, "frontend")
	techs, err := client.FilterTechnologies(context.Background(), prompt)
	fmt.Println(techs, err)
	// Output:
	// [react] <nil>
}
