package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	a := NoopAnalysisHooks{}
	a.OnAnalyzeStart(ctx, "/tmp/project")
	a.OnAnalyzeComplete(ctx, "/tmp/project", 2, time.Second, nil)
	a.OnEcosystemStart(ctx, "node")
	a.OnEcosystemComplete(ctx, "node", 12, time.Second, nil)

	c := NoopCompletionHooks{}
	c.OnAttempt(ctx, "categorize dependencies", 1)
	c.OnAttemptFailed(ctx, "categorize dependencies", 1, errors.New("timeout"))
	c.OnComplete(ctx, "categorize dependencies", 3, time.Second, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "api.openai.com", "/v1/chat/completions")
	h.OnResponse(ctx, "POST", "api.openai.com", "/v1/chat/completions", 200, time.Second)
	h.OnError(ctx, "POST", "api.openai.com", "/v1/chat/completions", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Analysis().(NoopAnalysisHooks); !ok {
		t.Error("Analysis() should return NoopAnalysisHooks by default")
	}
	if _, ok := Completion().(NoopCompletionHooks); !ok {
		t.Error("Completion() should return NoopCompletionHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customAnalysis := &testAnalysisHooks{}
	SetAnalysisHooks(customAnalysis)
	if Analysis() != customAnalysis {
		t.Error("SetAnalysisHooks should set custom hooks")
	}

	customCompletion := &testCompletionHooks{}
	SetCompletionHooks(customCompletion)
	if Completion() != customCompletion {
		t.Error("SetCompletionHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Completion().(NoopCompletionHooks); !ok {
		t.Error("Reset() should restore NoopCompletionHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testCompletionHooks{}
	SetCompletionHooks(custom)
	SetCompletionHooks(nil)

	if Completion() != custom {
		t.Error("SetCompletionHooks(nil) should be ignored")
	}

	Reset()
}

type testAnalysisHooks struct{ NoopAnalysisHooks }
type testCompletionHooks struct{ NoopCompletionHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
