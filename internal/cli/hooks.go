package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/techstack/pkg/observability"
)

// InstallHooks routes analysis, completion and HTTP events to the debug log.
func (c *CLI) InstallHooks() {
	h := logHooks{logger: c.Logger}
	observability.SetAnalysisHooks(h)
	observability.SetCompletionHooks(h)
	observability.SetHTTPHooks(h)
}

type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnAnalyzeStart(_ context.Context, path string) {
	h.logger.Debug("analyze", "path", path)
}

func (h logHooks) OnAnalyzeComplete(_ context.Context, path string, ecosystems int, d time.Duration, err error) {
	h.logger.Debug("analyze done", "path", path, "ecosystems", ecosystems, "duration", d.Round(time.Millisecond), "err", err)
}

func (h logHooks) OnEcosystemStart(_ context.Context, ecosystem string) {
	h.logger.Debug("ecosystem", "name", ecosystem)
}

func (h logHooks) OnEcosystemComplete(_ context.Context, ecosystem string, n int, d time.Duration, err error) {
	h.logger.Debug("ecosystem done", "name", ecosystem, "dependencies", n, "duration", d.Round(time.Millisecond), "err", err)
}

func (h logHooks) OnAttempt(_ context.Context, op string, attempt int) {
	h.logger.Debug("completion attempt", "op", op, "attempt", attempt)
}

func (h logHooks) OnAttemptFailed(_ context.Context, op string, attempt int, err error) {
	h.logger.Debug("completion attempt failed", "op", op, "attempt", attempt, "err", err)
}

func (h logHooks) OnComplete(_ context.Context, op string, attempts int, d time.Duration, err error) {
	h.logger.Debug("completion done", "op", op, "attempts", attempts, "duration", d.Round(time.Millisecond), "err", err)
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
