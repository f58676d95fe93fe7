// Package pkg provides the core libraries of techstack.
//
// # Overview
//
// Techstack reads a project's dependency manifests and describes its
// technology stack. The pkg directory is organized as follows:
//
//  1. [deps] - Manifest parsing (package.json, requirements.txt)
//  2. [categorize] - Rule-based grouping of dependencies
//  3. [completion] - AI completion client with retries and response decoding
//  4. [analyze] - Orchestration and the summary document
//  5. [render] - Output formats and AI-assisted filtering
//  6. [server] - HTTP API over analyze and render
//
// # Architecture
//
// The data flow for one analysis:
//
//	package.json / requirements.txt
//	         ↓
//	    [deps] (parse)
//	         ↓
//	    [categorize] (group by keyword rules)
//	         ↓
//	    [completion] (optional description)
//	         ↓
//	    [analyze] (Snapshot, Summary)
//	         ↓
//	    [render] (markdown, text, inline, json)
//
// # Quick Start
//
//	client, err := completion.New(completion.Config{APIKey: os.Getenv("OPENAI_API_KEY")})
//	if err != nil {
//	    return err
//	}
//	snap, err := analyze.New(analyze.WithDescriber(client)).Analyze(ctx, ".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(analyze.Summary(snap))
//
//	out, err := render.New(client).RenderCategories(ctx, snap.Categories(), render.FormatText,
//	    render.Options{FocusArea: "frontend"})
//
// Supporting packages: [errors] (coded errors), [httputil] (retry and JSON
// requests), [observability] (event hooks), [buildinfo] (version stamps).
//
// [deps]: github.com/matzehuels/techstack/pkg/deps
// [categorize]: github.com/matzehuels/techstack/pkg/categorize
// [completion]: github.com/matzehuels/techstack/pkg/completion
// [analyze]: github.com/matzehuels/techstack/pkg/analyze
// [render]: github.com/matzehuels/techstack/pkg/render
// [server]: github.com/matzehuels/techstack/pkg/server
// [errors]: github.com/matzehuels/techstack/pkg/errors
// [httputil]: github.com/matzehuels/techstack/pkg/httputil
// [observability]: github.com/matzehuels/techstack/pkg/observability
// [buildinfo]: github.com/matzehuels/techstack/pkg/buildinfo
package pkg
