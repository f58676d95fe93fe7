// Package completion invokes an external text-completion service.
//
// # Overview
//
// A [Client] wraps a [Provider] backend with a fixed retry budget:
//
//   - up to Config.MaxAttempts attempts (3 by default)
//   - linear backoff of attempt*Config.BaseDelay between attempts
//   - empty responses count as failed attempts
//
// When the budget is exhausted the error names the operation and the
// attempt count, e.g. "failed to categorize dependencies after 3 attempts".
//
// # Providers
//
//   - openai: any OpenAI-compatible chat completions endpoint (default)
//   - gemini: Google Gemini via google.golang.org/genai
//   - ollama: a local Ollama server
//
// # Call Sites
//
// Three named operations are layered on [Client.Complete]:
//
//   - [Client.GenerateDescription]: a bullet list of technologies for one ecosystem
//   - [Client.CategorizeDependencies]: an AI-built [categorize.Map]
//   - [Client.FilterTechnologies]: the subset of a list matching a criterion
//
// Responses that must be JSON are decoded in two stages, see [DecodeArray].
// A response that cannot be decoded yields [ErrUnparseable] and is not
// retried.
//
// [categorize.Map]: github.com/matzehuels/techstack/pkg/categorize.Map
package completion
