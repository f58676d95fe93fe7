package completion

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/JexSrs/go-ollama"

	"github.com/matzehuels/techstack/pkg/errors"
)

// ollamaProvider calls the generate endpoint of an Ollama server.
type ollamaProvider struct {
	client *ollama.Ollama
	model  string
}

func newOllama(cfg Config) (*ollamaProvider, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Host == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid ollama URL %q", cfg.BaseURL)
	}
	return &ollamaProvider{client: ollama.New(*u), model: cfg.Model}, nil
}

type ollamaResult struct {
	text string
	err  error
}

// generateOptions maps req onto generate request options. MaxTokens becomes
// num_predict and JSON selects the json response format.
func (p *ollamaProvider) generateOptions(req Request) []func(*ollama.GenerateRequestBuilder) {
	gen := p.client.Generate
	opts := ollama.Options{Temperature: ptr(float64(req.Temperature))}
	if req.MaxTokens > 0 {
		opts.NumPredict = ptr(req.MaxTokens)
	}
	out := []func(*ollama.GenerateRequestBuilder){
		gen.WithModel(p.model),
		gen.WithSystem(req.System),
		gen.WithPrompt(req.User),
		gen.WithOptions(opts),
	}
	if req.JSON {
		out = append(out, gen.WithFormat("json"))
	}
	return out
}

func ptr[T any](v T) *T { return &v }

// Complete runs the blocking generate call in a goroutine so that ctx can
// abandon it.
func (p *ollamaProvider) Complete(ctx context.Context, req Request) (string, error) {
	done := make(chan ollamaResult, 1)
	go func() {
		res, err := p.client.Generate(p.generateOptions(req)...)
		if err != nil {
			done <- ollamaResult{err: fmt.Errorf("ollama generate: %w", err)}
			return
		}
		if !res.Done {
			done <- ollamaResult{err: fmt.Errorf("ollama generate: response not finished")}
			return
		}
		done <- ollamaResult{text: strings.TrimSpace(strings.Trim(res.Response, "`"))}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.text, r.err
	}
}
