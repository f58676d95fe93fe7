package completion

import (
	"context"
	stderrors "errors"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/matzehuels/techstack/pkg/categorize"
	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/errors"
)

func recording(reqs *[]Request, answer string) Provider {
	return ProviderFunc(func(ctx context.Context, req Request) (string, error) {
		*reqs = append(*reqs, req)
		return answer, nil
	})
}

func TestGenerateDescription(t *testing.T) {
	var reqs []Request
	c := newTestClient(t, recording(&reqs, "• React\n• Express"))

	list := []deps.Dependency{{Name: "react", Version: "17.0.2"}, {Name: "express", Version: "4.18.0"}}
	got, err := c.GenerateDescription(context.Background(), deps.EcosystemNode, list)
	if err != nil {
		t.Fatalf("GenerateDescription: %v", err)
	}
	if got != "• React\n• Express" {
		t.Errorf("description = %q", got)
	}

	req := reqs[0]
	if req.System != DescriptionSystemPrompt || req.Temperature != 0.7 || req.MaxTokens != 1000 || req.JSON {
		t.Errorf("request = %+v", req)
	}
	if !strings.Contains(req.User, `"name": "react"`) || !strings.Contains(req.User, "Node.js") {
		t.Errorf("user prompt = %q", req.User)
	}

	if _, err := c.GenerateDescription(context.Background(), "ruby", list); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("unsupported ecosystem err = %v", err)
	}
}

func TestCategorizeDependencies(t *testing.T) {
	var reqs []Request
	c := newTestClient(t, recording(&reqs, `{"Core Technologies":["react"],"Testing":["jest"]}`))

	got, err := c.CategorizeDependencies(context.Background(), []deps.Dependency{{Name: "react"}, {Name: "jest"}})
	if err != nil {
		t.Fatalf("CategorizeDependencies: %v", err)
	}
	want := categorize.Map{
		{Name: "Core Technologies", Members: []string{"react"}},
		{Name: "Testing", Members: []string{"jest"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("categories = %+v", got)
	}
	if req := reqs[0]; !req.JSON || req.Temperature != 0.3 || req.MaxTokens != 500 || req.System != CategorizationSystemPrompt {
		t.Errorf("request = %+v", req)
	}
}

func TestCategorizeDependenciesUnparseableIsNotRetried(t *testing.T) {
	var calls int32
	c := newTestClient(t, stub(&calls, reply("I cannot do that")))

	_, err := c.CategorizeDependencies(context.Background(), nil)
	if !stderrors.Is(err, ErrUnparseable) || !errors.Is(err, errors.ErrCodeCompletionParse) {
		t.Errorf("err = %v, want ErrUnparseable", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestFilterTechnologies(t *testing.T) {
	var reqs []Request
	c := newTestClient(t, recording(&reqs, "Sure: [\"react\"]"))

	prompt := FocusAreaFilter([]string{"react", "express"}, "frontend")
	got, err := c.FilterTechnologies(context.Background(), prompt)
	if err != nil {
		t.Fatalf("FilterTechnologies: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"react"}) {
		t.Errorf("got %v", got)
	}
	if reqs[0].User != prompt || reqs[0].JSON {
		t.Errorf("request = %+v", reqs[0])
	}

	c = newTestClient(t, recording(&reqs, `Note [1]: ["react"]`))
	if got, err := c.FilterTechnologies(context.Background(), prompt); err != nil || !reflect.DeepEqual(got, []string{"react"}) {
		t.Errorf("footnote answer = %v, %v", got, err)
	}

	c = newTestClient(t, recording(&reqs, "react and express"))
	if _, err := c.FilterTechnologies(context.Background(), prompt); !stderrors.Is(err, ErrUnparseable) {
		t.Errorf("err = %v, want ErrUnparseable", err)
	}
}

func TestCallSitesRetryBound(t *testing.T) {
	list := []deps.Dependency{{Name: "react"}}
	calls := map[string]func(*Client) error{
		"generate tech stack description": func(c *Client) error {
			_, err := c.GenerateDescription(context.Background(), deps.EcosystemPython, list)
			return err
		},
		"categorize dependencies": func(c *Client) error {
			_, err := c.CategorizeDependencies(context.Background(), list)
			return err
		},
		"filter technologies": func(c *Client) error {
			_, err := c.FilterTechnologies(context.Background(), "prompt")
			return err
		},
	}

	for op, call := range calls {
		t.Run(op, func(t *testing.T) {
			var n int32
			c := newTestClient(t, ProviderFunc(func(context.Context, Request) (string, error) {
				atomic.AddInt32(&n, 1)
				return "", stderrors.New("service unavailable")
			}))

			err := call(c)
			if n != 3 {
				t.Errorf("attempts = %d, want 3", n)
			}
			if err == nil || !strings.Contains(err.Error(), "failed to "+op+" after 3 attempts") {
				t.Errorf("err = %v", err)
			}
		})
	}
}
