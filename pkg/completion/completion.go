package completion

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/techstack/pkg/errors"
	"github.com/matzehuels/techstack/pkg/httputil"
	"github.com/matzehuels/techstack/pkg/observability"
)

// Provider names.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// Defaults applied by [New] to zero Config fields.
const (
	DefaultModel         = "gpt-4o-mini"
	DefaultGeminiModel   = "gemini-2.5-flash"
	DefaultOllamaModel   = "llama3"
	DefaultMaxAttempts   = 3
	DefaultBaseDelay     = time.Second
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOllamaBaseURL = "http://localhost:11434"
)

var (
	// ErrEmptyContent is returned by providers when the service answered
	// without text. It counts against the retry budget.
	ErrEmptyContent = errors.New(errors.ErrCodeCompletionTransport, "no content in completion response")

	// ErrUnparseable reports a response that is not in the expected shape.
	ErrUnparseable = errors.New(errors.ErrCodeCompletionParse, "completion response is not in the expected shape")
)

// Config selects and configures the completion backend.
type Config struct {
	Provider    string        // openai, gemini or ollama
	APIKey      string        // Credential for hosted providers
	Model       string        // Model identifier
	BaseURL     string        // Service endpoint override
	MaxAttempts int           // Attempts per call
	BaseDelay   time.Duration // Linear backoff unit
	Timeout     time.Duration // Per-attempt timeout, 0 for none
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.Model == "" {
		switch c.Provider {
		case ProviderGemini:
			c.Model = DefaultGeminiModel
		case ProviderOllama:
			c.Model = DefaultOllamaModel
		default:
			c.Model = DefaultModel
		}
	}
	if c.BaseURL == "" {
		switch c.Provider {
		case ProviderOpenAI:
			c.BaseURL = DefaultOpenAIBaseURL
		case ProviderOllama:
			c.BaseURL = DefaultOllamaBaseURL
		}
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = DefaultBaseDelay
	}
	return c
}

// Client runs completion requests with retry.
type Client struct {
	provider Provider
	attempts int
	delay    time.Duration
	timeout  time.Duration
	logger   *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithProvider replaces the backend selected by Config.Provider.
func WithProvider(p Provider) Option {
	return func(c *Client) { c.provider = p }
}

// WithRetry overrides the attempt budget and the backoff unit.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts = max(attempts, 1)
		c.delay = delay
	}
}

// WithLogger sets the logger used for attempt diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Client from cfg. Zero fields take their defaults.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg = cfg.withDefaults()
	c := &Client{
		attempts: cfg.MaxAttempts,
		delay:    cfg.BaseDelay,
		timeout:  cfg.Timeout,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.provider != nil {
		return c, nil
	}

	var err error
	switch cfg.Provider {
	case ProviderOpenAI:
		c.provider, err = newOpenAI(cfg)
	case ProviderGemini:
		c.provider, err = newGemini(cfg)
	case ProviderOllama:
		c.provider, err = newOllama(cfg)
	default:
		err = errors.New(errors.ErrCodeInvalidInput, "unknown completion provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Complete sends req, retrying failed or empty responses. operation names
// the call in the exhaustion error.
func (c *Client) Complete(ctx context.Context, operation string, req Request) (string, error) {
	hooks := observability.Completion()
	start := time.Now()

	var (
		text     string
		attempts int
	)
	err := httputil.Retry(ctx, c.attempts, c.delay, func(attempt int) error {
		attempts = attempt
		hooks.OnAttempt(ctx, operation, attempt)

		out, err := c.attempt(ctx, req)
		if err == nil && strings.TrimSpace(out) == "" {
			err = ErrEmptyContent
		}
		if err != nil {
			hooks.OnAttemptFailed(ctx, operation, attempt, err)
			c.logger.Debug("completion attempt failed", "operation", operation, "attempt", attempt, "err", err)
			return err
		}
		text = out
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && attempts < c.attempts {
			err = errors.Wrap(errors.ErrCodeCompletionTransport, ctxErr, "%s cancelled after %d attempts", operation, attempts)
		} else {
			err = errors.Wrap(errors.ErrCodeCompletionTransport, err, "failed to %s after %d attempts", operation, attempts)
		}
	}
	hooks.OnComplete(ctx, operation, attempts, time.Since(start), err)
	return text, err
}

func (c *Client) attempt(ctx context.Context, req Request) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.provider.Complete(ctx, req)
}
