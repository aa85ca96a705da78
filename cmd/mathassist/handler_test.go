package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dileep-u-k/math-assist/internal/api"
	"github.com/dileep-u-k/math-assist/internal/assist"
	"github.com/dileep-u-k/math-assist/internal/llm"
	"github.com/dileep-u-k/math-assist/internal/tools"

	"github.com/gin-gonic/gin"
)

type scriptedClient struct {
	results []*llm.GenerationResult
}

func (s *scriptedClient) Generate(context.Context, []llm.Message, *llm.GenerationConfig, []tools.Tool) (*llm.GenerationResult, error) {
	if len(s.results) == 0 {
		return nil, errors.New("no scripted result")
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r, nil
}

func (s *scriptedClient) Close() error { return nil }

type fakeStats struct{}

func (fakeStats) ToolStats(context.Context, string) ([]llm.ToolStat, error) {
	return []llm.ToolStat{{Tool: "solveQuadraticRoots", Succeeded: 2, Failed: 1}}, nil
}

func (fakeStats) GetProfile(_ context.Context, modelID string) (*llm.ModelProfile, error) {
	return &llm.ModelProfile{ModelID: modelID, Status: "online"}, nil
}

type testServer struct {
	engine *gin.Engine
	keys   []string
}

func newTestServer(t *testing.T, stats statsStore, results ...*llm.GenerationResult) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ts := &testServer{}
	client := &scriptedClient{results: results}
	factory := func(_ context.Context, apiKey string) (llm.LLMClient, error) {
		ts.keys = append(ts.keys, apiKey)
		return client, nil
	}
	orchestrators := map[string]*assist.Orchestrator{
		"form3": assist.New(tools.Form3(), factory, "test-model", assist.DefaultConfig()),
		"form4": assist.New(tools.Form4(), factory, "test-model", assist.DefaultConfig()),
	}
	ts.engine = gin.New()
	NewAssistHandler(orchestrators, stats, "test-model").Register(ts.engine.Group("/api/v1"))
	return ts
}

func (ts *testServer) do(method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func TestUnknownForm(t *testing.T) {
	ts := newTestServer(t, nil)
	for _, path := range []string{"/api/v1/forms/form5/tools", "/api/v1/forms/Form4/tools"} {
		if w := ts.do(http.MethodGet, path, "", nil); w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, w.Code)
		}
	}
}

func TestListTools(t *testing.T) {
	ts := newTestServer(t, nil)
	w := ts.do(http.MethodGet, "/api/v1/forms/form4/tools", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Form  string             `json:"form"`
		Tools []tools.Descriptor `json:"tools"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Form != "form4" || len(body.Tools) != tools.Form4().ToolCount() {
		t.Errorf("unexpected listing: form %q with %d tools", body.Form, len(body.Tools))
	}
	if body.Tools[0].Name != "solveQuadraticRoots" {
		t.Errorf("expected registry order, got %s first", body.Tools[0].Name)
	}
}

func TestDispatchEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(http.MethodPost, "/api/v1/forms/form4/dispatch",
		`{"tool":"solveQuadraticRoots","arguments":{"a":1,"b":-5,"c":6}}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"roots":[3,2]`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	w = ts.do(http.MethodPost, "/api/v1/forms/form3/dispatch",
		`{"tool":"calculateLinearY","arguments":{"m":2,"x":3}}`, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	var outcome tools.Outcome
	if err := json.Unmarshal(w.Body.Bytes(), &outcome); err != nil {
		t.Fatal(err)
	}
	if outcome.Failure == nil || outcome.Failure.Kind != tools.MissingArguments {
		t.Errorf("expected MissingArguments, got %+v", outcome.Failure)
	}

	if w := ts.do(http.MethodPost, "/api/v1/forms/form3/dispatch", `{"arguments":{}}`, nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a tool name, got %d", w.Code)
	}
}

func TestAssistEndpoint(t *testing.T) {
	ts := newTestServer(t, nil,
		&llm.GenerationResult{ToolCalls: []*tools.ToolCall{{ID: "c1", Type: tools.ToolTypeFunction,
			Function: tools.ToolCallFunction{Name: "solveQuadraticRoots", Arguments: `{"a":1,"b":-5,"c":6}`}}}},
		&llm.GenerationResult{Content: `{"brief":"x = 3 or x = 2","detailed":"Factorise."}`},
	)
	w := ts.do(http.MethodPost, "/api/v1/forms/form4/assist",
		`{"question":"Solve x^2 - 5x + 6 = 0"}`, map[string]string{"X-Api-Key": "header-key"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp api.AssistantResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Kind != api.KindToolResult || resp.Tool != "solveQuadraticRoots" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.ExplanationBrief == nil || *resp.ExplanationBrief != "x = 3 or x = 2" {
		t.Errorf("unexpected brief %v", resp.ExplanationBrief)
	}
	if len(ts.keys) != 1 || ts.keys[0] != "header-key" {
		t.Errorf("expected the header key to be used, got %v", ts.keys)
	}
}

func TestAssistEndpointWithoutKey(t *testing.T) {
	ts := newTestServer(t, nil)
	w := ts.do(http.MethodPost, "/api/v1/forms/form3/assist", `{"question":"What is 2+2?"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp api.AssistantResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Kind != api.KindError {
		t.Errorf("expected an error response, got %q", resp.Kind)
	}
	if len(ts.keys) != 0 {
		t.Error("no client should be created without a key")
	}

	if w := ts.do(http.MethodPost, "/api/v1/forms/form3/assist", `{}`, nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a question, got %d", w.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	if w := newTestServer(t, nil).do(http.MethodGet, "/api/v1/forms/form4/stats", "", nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without Redis, got %d", w.Code)
	}

	w := newTestServer(t, fakeStats{}).do(http.MethodGet, "/api/v1/forms/form4/stats", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"succeeded":2`) || !strings.Contains(body, `"model_id":"test-model"`) {
		t.Errorf("unexpected body %s", body)
	}
}

func TestHealthAndVersion(t *testing.T) {
	ts := newTestServer(t, nil)
	if w := ts.do(http.MethodGet, "/api/v1/healthz", "", nil); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"forms":2`) {
		t.Errorf("unexpected health response %d %s", w.Code, w.Body.String())
	}
	w := ts.do(http.MethodGet, "/api/v1/version", "", nil)
	var info BuildInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatal(err)
	}
	if info.Version != version || info.Form4Tools == "" {
		t.Errorf("unexpected build info %+v", info)
	}
}
