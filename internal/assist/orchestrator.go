// Package assist answers a student's question in two model round-trips: the
// model picks a tool, the tool is computed locally, and the model then
// explains the computed result.
package assist

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dileep-u-k/math-assist/internal/api"
	"github.com/dileep-u-k/math-assist/internal/llm"
	"github.com/dileep-u-k/math-assist/internal/tools"

	"github.com/google/uuid"
)

// Config is the retry and generation policy, read from config.yaml.
type Config struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	RetryDelay     time.Duration `yaml:"retry_delay"`
	RateLimitDelay time.Duration `yaml:"rate_limit_delay"`
	CycleTimeout   time.Duration `yaml:"cycle_timeout"`
	Temperature    float32       `yaml:"temperature"`
	MaxTokens      int           `yaml:"max_tokens"`
}

// DefaultConfig returns the policy used when config.yaml is absent.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    3,
		RetryDelay:     time.Second,
		RateLimitDelay: 3 * time.Second,
		CycleTimeout:   60 * time.Second,
		Temperature:    0.2,
		MaxTokens:      1024,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = d.MaxAttempts
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = d.RetryDelay
	}
	if c.RateLimitDelay <= 0 {
		c.RateLimitDelay = d.RateLimitDelay
	}
	if c.CycleTimeout <= 0 {
		c.CycleTimeout = d.CycleTimeout
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	return c
}

// ClientFactory creates a model client for one cycle.
type ClientFactory func(ctx context.Context, apiKey string) (llm.LLMClient, error)

// Recorder receives usage events. *llm.Profiler implements it.
type Recorder interface {
	RecordModelCall(ctx context.Context, modelID string, latency time.Duration, usage api.Usage, err error)
	RecordDispatch(ctx context.Context, form, tool string, ok bool)
}

// Question is one user question. APIKey, when set, overrides the key the
// orchestrator was built with.
type Question struct {
	Text   string
	APIKey string
}

// Orchestrator runs question cycles against one tool registry. It holds no
// per-question state and is safe for concurrent use.
type Orchestrator struct {
	registry *tools.Registry
	factory  ClientFactory
	model    string
	apiKey   string
	cfg      Config
	recorder Recorder
	sleep    func(ctx context.Context, d time.Duration) error
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithAPIKey sets the key used when a question carries none.
func WithAPIKey(key string) Option { return func(o *Orchestrator) { o.apiKey = key } }

// WithRecorder reports every model call and dispatch to r.
func WithRecorder(r Recorder) Option { return func(o *Orchestrator) { o.recorder = r } }

// WithSleep replaces the wait between attempts.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(o *Orchestrator) { o.sleep = fn }
}

// New creates an orchestrator for registry. model is the model id sent with
// every request.
func New(registry *tools.Registry, factory ClientFactory, model string, cfg Config, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		registry: registry,
		factory:  factory,
		model:    model,
		cfg:      cfg.withDefaults(),
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Registry returns the tool registry the orchestrator dispatches to.
func (o *Orchestrator) Registry() *tools.Registry { return o.registry }

// Answer runs one full cycle. Every failure is reported as a kind "error"
// response; Answer itself never fails.
func (o *Orchestrator) Answer(ctx context.Context, q Question) api.AssistantResponse {
	cycleID := uuid.NewString()[:8]
	resp := o.answer(ctx, cycleID, q)
	resp.CycleID = cycleID
	return resp
}

func (o *Orchestrator) answer(ctx context.Context, cycleID string, q Question) api.AssistantResponse {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return api.Error("question must not be empty")
	}
	key := q.APIKey
	if key == "" {
		key = o.apiKey
	}
	if key == "" {
		log.Printf("[%s] WARNING: no API key configured, not contacting the model", cycleID)
		return api.Error("no API key is configured for the model provider")
	}

	ctx, cancel := context.WithTimeout(ctx, o.cfg.CycleTimeout)
	defer cancel()

	client, err := o.factory(ctx, key)
	if err != nil {
		log.Printf("[%s] ❌ could not create model client: %v", cycleID, err)
		return api.Error(fmt.Sprintf("could not create model client: %v", err))
	}
	defer client.Close()

	var usage api.Usage
	log.Printf("[%s] ➡️ %s: selecting a tool from %d", cycleID, o.registry.Name(), o.registry.ToolCount())
	selection, err := o.generate(ctx, cycleID, client, []llm.Message{
		{Role: llm.RoleSystem, Content: selectionInstruction(o.registry)},
		{Role: llm.RoleUser, Content: text},
	}, o.registry.Definitions(), true)
	if err != nil {
		log.Printf("[%s] ❌ tool selection failed: %v", cycleID, err)
		return api.Error(failureMessage(err, o.cfg.MaxAttempts))
	}
	usage.Add(selection.Usage)

	if len(selection.ToolCalls) == 0 {
		log.Printf("[%s] 💬 model replied with a message", cycleID)
		resp := api.Message(selection.Content)
		resp.Usage = usage
		return resp
	}
	if len(selection.ToolCalls) > 1 {
		log.Printf("[%s] WARNING: model requested %d tool calls, using the first", cycleID, len(selection.ToolCalls))
	}

	call := selection.ToolCalls[0].Function
	args, err := tools.ParseArguments(call.Arguments)
	if err != nil {
		o.recordDispatch(ctx, call.Name, false)
		log.Printf("[%s] ❌ %s: %v", cycleID, call.Name, err)
		resp := api.Error(fmt.Sprintf("invalid arguments for %s: %v", call.Name, err))
		resp.Usage = usage
		return resp
	}

	outcome := o.registry.Dispatch(call.Name, args)
	o.recordDispatch(ctx, call.Name, outcome.OK())
	if !outcome.OK() {
		log.Printf("[%s] ❌ %s: %s: %s", cycleID, call.Name, outcome.Failure.Kind, outcome.Failure.Message)
		resp := api.Error(outcome.Failure.Message)
		resp.Usage = usage
		return resp
	}
	log.Printf("[%s] 🧮 %s computed", cycleID, call.Name)

	brief, detailed := o.explain(ctx, cycleID, client, text, call.Name, args, outcome.Result, &usage)
	resp := api.ToolResult(call.Name, args, outcome.Result, brief, detailed)
	resp.Usage = usage
	return resp
}

// explain asks the model to explain a computed result. Failures only leave
// the explanation empty.
func (o *Orchestrator) explain(ctx context.Context, cycleID string, client llm.LLMClient,
	question, tool string, args tools.Args, result any, usage *api.Usage) (brief, detailed *string) {
	prompt, err := explanationPrompt(question, tool, args, result)
	if err != nil {
		log.Printf("[%s] WARNING: %v", cycleID, err)
		return nil, nil
	}
	reply, err := o.generate(ctx, cycleID, client, []llm.Message{
		{Role: llm.RoleSystem, Content: explanationInstruction},
		{Role: llm.RoleUser, Content: prompt},
	}, nil, false)
	if err != nil {
		log.Printf("[%s] WARNING: explanation unavailable, returning the result alone: %v", cycleID, err)
		return nil, nil
	}
	usage.Add(reply.Usage)
	return normalizeExplanation(reply.Content)
}

// generate calls the model with the retry policy. For tool selection
// (selecting true) a reply with neither a tool call nor text is malformed and
// retried like a transient failure.
func (o *Orchestrator) generate(ctx context.Context, cycleID string, client llm.LLMClient,
	messages []llm.Message, defs []tools.Tool, selecting bool) (*llm.GenerationResult, error) {
	temperature := o.cfg.Temperature
	genCfg := &llm.GenerationConfig{
		Model:       o.model,
		Temperature: &temperature,
		MaxTokens:   o.cfg.MaxTokens,
		JSONMode:    !selecting,
	}

	var lastErr error
	for attempt := 1; attempt <= o.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := o.cfg.RetryDelay
			if llm.IsRateLimit(lastErr) {
				delay = o.cfg.RateLimitDelay
			}
			log.Printf("[%s] 🔁 attempt %d/%d in %s after: %v", cycleID, attempt, o.cfg.MaxAttempts, delay, lastErr)
			if err := o.sleep(ctx, delay); err != nil {
				return nil, fmt.Errorf("%w (gave up waiting to retry: %w)", lastErr, err)
			}
		}

		start := time.Now()
		res, err := client.Generate(ctx, messages, genCfg, defs)
		if err == nil && selecting && len(res.ToolCalls) == 0 && strings.TrimSpace(res.Content) == "" {
			err = llm.NewMalformedError("model", errors.New("reply had neither a tool call nor text"))
		}
		var u api.Usage
		if res != nil {
			u = res.Usage
		}
		o.recordCall(ctx, time.Since(start), u, err)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if !llm.IsRetryable(err) {
			break
		}
	}
	return nil, lastErr
}

func (o *Orchestrator) recordCall(ctx context.Context, latency time.Duration, u api.Usage, err error) {
	if o.recorder != nil {
		o.recorder.RecordModelCall(ctx, o.model, latency, u, err)
	}
}

func (o *Orchestrator) recordDispatch(ctx context.Context, tool string, ok bool) {
	if o.recorder != nil {
		o.recorder.RecordDispatch(ctx, o.registry.Name(), tool, ok)
	}
}

// failureMessage is the user-visible text for a failed tool-selection call.
func failureMessage(err error, attempts int) string {
	switch llm.KindOf(err) {
	case llm.Auth:
		return fmt.Sprintf("the model provider rejected the API key: %v", err)
	case llm.Rejected:
		return fmt.Sprintf("the model provider rejected the request: %v", err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Sprintf("the model request was cancelled: %v", err)
	}
	return fmt.Sprintf("the model request failed after %d attempts: %v", attempts, err)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
