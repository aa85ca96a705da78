package assist

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dileep-u-k/math-assist/internal/api"
	"github.com/dileep-u-k/math-assist/internal/formula"
	"github.com/dileep-u-k/math-assist/internal/llm"
	"github.com/dileep-u-k/math-assist/internal/tools"
)

// reply is one scripted answer of the fake client.
type reply struct {
	res *llm.GenerationResult
	err error
}

type fakeClient struct {
	mu      sync.Mutex
	replies []reply
	calls   [][]llm.Message
	closed  bool
}

func (f *fakeClient) Generate(_ context.Context, messages []llm.Message, _ *llm.GenerationConfig, _ []tools.Tool) (*llm.GenerationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, messages)
	if len(f.replies) == 0 {
		return nil, errors.New("fake client: no scripted reply")
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r.res, r.err
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func toolCall(name, args string) reply {
	return reply{res: &llm.GenerationResult{
		ToolCalls: []*tools.ToolCall{{ID: "call_1", Type: tools.ToolTypeFunction,
			Function: tools.ToolCallFunction{Name: name, Arguments: args}}},
		Usage: api.Usage{PromptTokens: 100, CompletionTokens: 10, TotalTokens: 110},
	}}
}

func text(s string) reply {
	return reply{res: &llm.GenerationResult{Content: s, Usage: api.Usage{TotalTokens: 5}}}
}

type harness struct {
	client    *fakeClient
	factories int
	sleeps    []time.Duration
	orch      *Orchestrator
}

func newHarness(t *testing.T, registry *tools.Registry, replies ...reply) *harness {
	t.Helper()
	h := &harness{client: &fakeClient{replies: replies}}
	factory := func(context.Context, string) (llm.LLMClient, error) {
		h.factories++
		return h.client, nil
	}
	h.orch = New(registry, factory, "test-model", DefaultConfig(),
		WithAPIKey("server-key"),
		WithSleep(func(_ context.Context, d time.Duration) error {
			h.sleeps = append(h.sleeps, d)
			return nil
		}),
	)
	return h
}

func TestAnswerToolResult(t *testing.T) {
	h := newHarness(t, tools.Form4(),
		toolCall("solveQuadraticRoots", `{"a":1,"b":-5,"c":6}`),
		text("```json\n{\"brief\": \"x = 3 or x = 2\", \"detailed\": \"Factorise (x-3)(x-2) = 0.\"}\n```"),
	)
	resp := h.orch.Answer(context.Background(), Question{Text: "solve x^2 - 5x + 6 = 0"})

	if resp.Kind != api.KindToolResult || resp.Tool != "solveQuadraticRoots" {
		t.Fatalf("unexpected response %+v", resp)
	}
	roots := resp.Result.(formula.QuadraticRoots)
	if !reflect.DeepEqual(roots.Roots, []float64{3, 2}) {
		t.Errorf("unexpected roots %v", roots.Roots)
	}
	if resp.ExplanationBrief == nil || *resp.ExplanationBrief != "x = 3 or x = 2" {
		t.Errorf("unexpected brief %v", resp.ExplanationBrief)
	}
	if resp.ExplanationDetailed == nil || !strings.HasPrefix(*resp.ExplanationDetailed, "Factorise") {
		t.Errorf("unexpected detailed %v", resp.ExplanationDetailed)
	}
	if len(h.client.calls) != 2 {
		t.Errorf("expected 2 model calls, got %d", len(h.client.calls))
	}
	if resp.Usage.TotalTokens != 115 {
		t.Errorf("usage should cover both calls, got %+v", resp.Usage)
	}
	if resp.CycleID == "" {
		t.Error("expected a cycle id")
	}
	if !h.client.closed {
		t.Error("client should be closed at the end of the cycle")
	}

	// The explanation request carries the computed result.
	prompt := h.client.calls[1][1].Content
	if !strings.Contains(prompt, `"toolName": "solveQuadraticRoots"`) || !strings.Contains(prompt, `"discriminant": 1`) {
		t.Errorf("explanation prompt is missing the result: %s", prompt)
	}
}

func TestAnswerPlainTextExplanationDegrades(t *testing.T) {
	h := newHarness(t, tools.Form4(),
		toolCall("solveQuadraticRoots", `{"a":1,"b":-5,"c":6}`),
		text("The roots are 3 and 2."),
	)
	resp := h.orch.Answer(context.Background(), Question{Text: "solve"})
	if resp.Kind != api.KindToolResult || resp.Result == nil {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.ExplanationBrief != nil {
		t.Errorf("brief should be nil, got %q", *resp.ExplanationBrief)
	}
	if resp.ExplanationDetailed == nil || *resp.ExplanationDetailed != "The roots are 3 and 2." {
		t.Errorf("raw text should become the detailed explanation, got %v", resp.ExplanationDetailed)
	}
}

func TestAnswerExplanationFailureKeepsResult(t *testing.T) {
	down := reply{err: &llm.RemoteError{Kind: llm.Transient, Provider: "groq", Err: errors.New("connection reset")}}
	h := newHarness(t, tools.Form3(),
		toolCall("calculateLinearY", `{"m":2,"x":3,"c":1}`),
		down, down, down,
	)
	resp := h.orch.Answer(context.Background(), Question{Text: "y = 2x + 1 at x = 3"})
	if resp.Kind != api.KindToolResult {
		t.Fatalf("expected tool_result, got %+v", resp)
	}
	if resp.Result.(formula.LinearPoint).Y != 7 {
		t.Errorf("unexpected result %+v", resp.Result)
	}
	if resp.ExplanationBrief != nil || resp.ExplanationDetailed != nil {
		t.Error("explanation fields should be nil when the model is unreachable")
	}
	if len(h.client.calls) != 4 {
		t.Errorf("expected 1 selection and 3 explanation attempts, got %d calls", len(h.client.calls))
	}
}

func TestAnswerDispatchFailureSkipsExplanation(t *testing.T) {
	h := newHarness(t, tools.Form3(),
		toolCall("calculateLinearY", `{"m":2,"x":4}`),
		text("should never be requested"),
	)
	resp := h.orch.Answer(context.Background(), Question{Text: "y = 2x at x = 4"})
	if resp.Kind != api.KindError || resp.Message != "missing required arguments for calculateLinearY: c" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(h.client.calls) != 1 {
		t.Errorf("expected exactly one model call, got %d", len(h.client.calls))
	}
}

func TestAnswerUnknownToolIsNotRetried(t *testing.T) {
	h := newHarness(t, tools.Form3(), toolCall("doesNotExist", `{}`))
	resp := h.orch.Answer(context.Background(), Question{Text: "?"})
	if resp.Kind != api.KindError || !strings.Contains(resp.Message, "doesNotExist") {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(h.client.calls) != 1 || len(h.sleeps) != 0 {
		t.Errorf("unknown tools must not be retried: %d calls, %d sleeps", len(h.client.calls), len(h.sleeps))
	}
}

func TestAnswerUnparseableArguments(t *testing.T) {
	h := newHarness(t, tools.Form4(), toolCall("solveQuadraticRoots", `{"a":1,`))
	resp := h.orch.Answer(context.Background(), Question{Text: "solve"})
	if resp.Kind != api.KindError || !strings.HasPrefix(resp.Message, "invalid arguments for solveQuadraticRoots") {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(h.client.calls) != 1 {
		t.Errorf("expected one model call, got %d", len(h.client.calls))
	}
}

func TestAnswerMessagePassthrough(t *testing.T) {
	h := newHarness(t, tools.Form4(), text("Hello! Which equation would you like to solve?"))
	resp := h.orch.Answer(context.Background(), Question{Text: "hi"})
	if resp.Kind != api.KindMessage || resp.Text != "Hello! Which equation would you like to solve?" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.ExplanationBrief != nil || resp.ExplanationDetailed != nil || resp.Result != nil {
		t.Errorf("message responses carry only text: %+v", resp)
	}
}

func TestAnswerRetryDelays(t *testing.T) {
	h := newHarness(t, tools.Form4(),
		reply{err: &llm.RemoteError{Kind: llm.RateLimit, StatusCode: 429, Err: errors.New("slow down")}},
		reply{err: &llm.RemoteError{Kind: llm.Transient, StatusCode: 503, Err: errors.New("unavailable")}},
		text("Hello"),
	)
	resp := h.orch.Answer(context.Background(), Question{Text: "hi"})
	if resp.Kind != api.KindMessage {
		t.Fatalf("expected a message after retries, got %+v", resp)
	}
	want := []time.Duration{3 * time.Second, time.Second}
	if !reflect.DeepEqual(h.sleeps, want) {
		t.Errorf("expected delays %v, got %v", want, h.sleeps)
	}
}

func TestAnswerRetryExhaustion(t *testing.T) {
	h := newHarness(t, tools.Form4(), text(""), text("  "), text(""))
	resp := h.orch.Answer(context.Background(), Question{Text: "hi"})
	if resp.Kind != api.KindError || !strings.Contains(resp.Message, "after 3 attempts") {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(h.client.calls) != 3 || len(h.sleeps) != 2 {
		t.Errorf("expected 3 calls and 2 sleeps, got %d and %d", len(h.client.calls), len(h.sleeps))
	}
}

func TestAnswerAuthErrorIsNotRetried(t *testing.T) {
	h := newHarness(t, tools.Form4(),
		reply{err: &llm.RemoteError{Kind: llm.Auth, StatusCode: 401, Err: errors.New("invalid key")}},
	)
	resp := h.orch.Answer(context.Background(), Question{Text: "hi"})
	if resp.Kind != api.KindError || !strings.Contains(resp.Message, "rejected the API key") {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(h.client.calls) != 1 {
		t.Errorf("expected one call, got %d", len(h.client.calls))
	}
}

func TestAnswerWithoutAPIKey(t *testing.T) {
	factories := 0
	o := New(tools.Form4(), func(context.Context, string) (llm.LLMClient, error) {
		factories++
		return &fakeClient{}, nil
	}, "test-model", Config{})
	resp := o.Answer(context.Background(), Question{Text: "hi"})
	if resp.Kind != api.KindError || !strings.Contains(resp.Message, "no API key") {
		t.Fatalf("unexpected response %+v", resp)
	}
	if factories != 0 {
		t.Error("no client should be created without a key")
	}
}

func TestAnswerQuestionKeyOverrides(t *testing.T) {
	var got string
	o := New(tools.Form4(), func(_ context.Context, key string) (llm.LLMClient, error) {
		got = key
		return &fakeClient{replies: []reply{text("ok")}}, nil
	}, "test-model", Config{}, WithAPIKey("server-key"))
	o.Answer(context.Background(), Question{Text: "hi", APIKey: "user-key"})
	if got != "user-key" {
		t.Errorf("expected the question's key, got %q", got)
	}
}

type recorder struct {
	calls      int
	failures   int
	dispatches []string
}

func (r *recorder) RecordModelCall(_ context.Context, _ string, _ time.Duration, _ api.Usage, err error) {
	r.calls++
	if err != nil {
		r.failures++
	}
}

func (r *recorder) RecordDispatch(_ context.Context, form, tool string, ok bool) {
	status := "ok"
	if !ok {
		status = "failed"
	}
	r.dispatches = append(r.dispatches, form+"/"+tool+":"+status)
}

func TestAnswerRecordsUsage(t *testing.T) {
	rec := &recorder{}
	client := &fakeClient{replies: []reply{
		{err: &llm.RemoteError{Kind: llm.Transient, Err: errors.New("blip")}},
		toolCall("calculateMean", `{"values":[1,2,3]}`),
		text(`{"brief":"2","detailed":"(1+2+3)/3 = 2"}`),
	}}
	o := New(tools.Form4(), func(context.Context, string) (llm.LLMClient, error) { return client, nil },
		"test-model", Config{}, WithAPIKey("k"), WithRecorder(rec),
		WithSleep(func(context.Context, time.Duration) error { return nil }))

	resp := o.Answer(context.Background(), Question{Text: "mean of 1 2 3"})
	if resp.Kind != api.KindToolResult {
		t.Fatalf("unexpected response %+v", resp)
	}
	if rec.calls != 3 || rec.failures != 1 {
		t.Errorf("expected 3 calls with 1 failure, got %d and %d", rec.calls, rec.failures)
	}
	if !reflect.DeepEqual(rec.dispatches, []string{"form4/calculateMean:ok"}) {
		t.Errorf("unexpected dispatches %v", rec.dispatches)
	}
}

func TestAnswerCancelledWhileWaiting(t *testing.T) {
	client := &fakeClient{replies: []reply{
		{err: &llm.RemoteError{Kind: llm.Transient, Err: errors.New("blip")}},
	}}
	ctx, cancel := context.WithCancel(context.Background())
	o := New(tools.Form4(), func(context.Context, string) (llm.LLMClient, error) { return client, nil },
		"test-model", Config{}, WithAPIKey("k"),
		WithSleep(func(ctx context.Context, d time.Duration) error {
			cancel()
			return sleepContext(ctx, d)
		}))
	resp := o.Answer(ctx, Question{Text: "hi"})
	if resp.Kind != api.KindError || len(client.calls) != 1 {
		t.Fatalf("expected an error after one call, got %+v with %d calls", resp, len(client.calls))
	}
}

func TestConfigWithDefaults(t *testing.T) {
	c := Config{MaxAttempts: 5}.withDefaults()
	if c.MaxAttempts != 5 || c.RetryDelay != time.Second || c.RateLimitDelay != 3*time.Second {
		t.Errorf("unexpected config %+v", c)
	}
}
