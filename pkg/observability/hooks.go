// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation is optional and backend-neutral. Consumers register hooks
// at startup to receive events about analysis runs, completion attempts and
// outgoing HTTP calls; libraries emit events through the registered hooks
// and default to no-ops.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCompletionHooks(&myCompletionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Analysis().OnEcosystemStart(ctx, "node")
//	// ... parse and categorize ...
//	observability.Analysis().OnEcosystemComplete(ctx, "node", count, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Analysis Hooks
// =============================================================================

// AnalysisHooks receives events from project analysis.
type AnalysisHooks interface {
	OnAnalyzeStart(ctx context.Context, path string)
	OnAnalyzeComplete(ctx context.Context, path string, ecosystems int, duration time.Duration, err error)

	OnEcosystemStart(ctx context.Context, ecosystem string)
	OnEcosystemComplete(ctx context.Context, ecosystem string, dependencies int, duration time.Duration, err error)
}

// =============================================================================
// Completion Hooks
// =============================================================================

// CompletionHooks receives events from completion calls.
type CompletionHooks interface {
	// OnAttempt records the start of one attempt of operation.
	OnAttempt(ctx context.Context, operation string, attempt int)

	// OnAttemptFailed records a failed attempt.
	OnAttemptFailed(ctx context.Context, operation string, attempt int, err error)

	// OnComplete records the outcome of an operation after all attempts.
	OnComplete(ctx context.Context, operation string, attempts int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAnalysisHooks is a no-op implementation of AnalysisHooks.
type NoopAnalysisHooks struct{}

func (NoopAnalysisHooks) OnAnalyzeStart(context.Context, string)                             {}
func (NoopAnalysisHooks) OnAnalyzeComplete(context.Context, string, int, time.Duration, error) {}
func (NoopAnalysisHooks) OnEcosystemStart(context.Context, string)                           {}
func (NoopAnalysisHooks) OnEcosystemComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCompletionHooks is a no-op implementation of CompletionHooks.
type NoopCompletionHooks struct{}

func (NoopCompletionHooks) OnAttempt(context.Context, string, int)                             {}
func (NoopCompletionHooks) OnAttemptFailed(context.Context, string, int, error)                {}
func (NoopCompletionHooks) OnComplete(context.Context, string, int, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	analysisHooks   AnalysisHooks   = NoopAnalysisHooks{}
	completionHooks CompletionHooks = NoopCompletionHooks{}
	httpHooks       HTTPHooks       = NoopHTTPHooks{}
	hooksMu         sync.RWMutex
)

// SetAnalysisHooks registers custom analysis hooks.
// This should be called once at application startup.
func SetAnalysisHooks(h AnalysisHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		analysisHooks = h
	}
}

// SetCompletionHooks registers custom completion hooks.
// This should be called once at application startup.
func SetCompletionHooks(h CompletionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		completionHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Analysis returns the registered analysis hooks.
func Analysis() AnalysisHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return analysisHooks
}

// Completion returns the registered completion hooks.
func Completion() CompletionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return completionHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	analysisHooks = NoopAnalysisHooks{}
	completionHooks = NoopCompletionHooks{}
	httpHooks = NoopHTTPHooks{}
}
