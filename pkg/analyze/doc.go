// Package analyze runs the per-project analysis: detect manifests, parse,
// categorize, and describe.
//
// # Overview
//
// [Analyzer.Analyze] looks for package.json and requirements.txt in the
// project directory and processes each present ecosystem in [Languages]
// order:
//
//  1. Read and parse the manifest
//  2. Categorize with the ecosystem's rules
//  3. Describe the stack (best effort)
//
// A manifest that cannot be parsed leaves that ecosystem with no
// dependencies and a warning; the other ecosystem is still analyzed. A
// failed description is dropped with a warning. Neither aborts the run.
//
// Without a [Describer] (offline mode) the description is the bullet list
// of dependency names.
//
// # Summary
//
// [Summary] renders a [Snapshot] as a markdown document with one section
// per ecosystem and one subsection per non-empty category.
package analyze
