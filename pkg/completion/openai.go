package completion

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/techstack/pkg/errors"
	"github.com/matzehuels/techstack/pkg/httputil"
)

// openAIProvider calls an OpenAI-compatible chat completions endpoint.
type openAIProvider struct {
	http   *http.Client
	apiKey string
	model  string
	url    string
}

func newOpenAI(cfg Config) (*openAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New(errors.ErrCodeUnauthorized, "openai provider requires an API key")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &openAIProvider{
		http:   &http.Client{Timeout: timeout},
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		url:    strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions",
	}, nil
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float32           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *openAIProvider) Complete(ctx context.Context, req Request) (string, error) {
	body := chatRequest{
		Model:       p.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.System})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.User})
	if req.JSON {
		body.ResponseFormat = map[string]string{"type": "json_object"}
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+p.apiKey)

	var out chatResponse
	if err := httputil.PostJSON(ctx, p.http, p.url, header, body, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", ErrEmptyContent
	}
	return out.Choices[0].Message.Content, nil
}
