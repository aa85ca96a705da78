// In file: cmd/mathassist/handler.go
package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dileep-u-k/math-assist/internal/api"
	"github.com/dileep-u-k/math-assist/internal/assist"
	"github.com/dileep-u-k/math-assist/internal/llm"
	"github.com/dileep-u-k/math-assist/internal/tools"

	"github.com/gin-gonic/gin"
)

// statsStore is the read side of the usage profiler.
type statsStore interface {
	ToolStats(ctx context.Context, form string) ([]llm.ToolStat, error)
	GetProfile(ctx context.Context, modelID string) (*llm.ModelProfile, error)
}

// AssistHandler serves the per-form endpoints. It holds one orchestrator per
// syllabus form.
type AssistHandler struct {
	orchestrators map[string]*assist.Orchestrator
	stats         statsStore
	model         string
}

// NewAssistHandler creates the handler. stats may be nil when Redis is not configured.
func NewAssistHandler(orchestrators map[string]*assist.Orchestrator, stats statsStore, model string) *AssistHandler {
	return &AssistHandler{orchestrators: orchestrators, stats: stats, model: model}
}

// Register mounts the routes on an /api/v1 group.
func (h *AssistHandler) Register(v1 *gin.RouterGroup) {
	forms := v1.Group("/forms/:form", h.resolveForm)
	{
		forms.GET("/tools", h.HandleListTools)
		forms.POST("/dispatch", h.HandleDispatch)
		forms.POST("/assist", h.HandleAssist)
		forms.GET("/stats", h.HandleStats)
	}
	v1.GET("/healthz", h.HandleHealth)
	v1.GET("/version", func(c *gin.Context) { c.JSON(http.StatusOK, GetBuildInfo()) })
}

// resolveForm aborts with 404 for a form that has no orchestrator.
func (h *AssistHandler) resolveForm(c *gin.Context) {
	form := c.Param("form")
	orch, ok := h.orchestrators[form]
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown form: " + form})
		return
	}
	c.Set("orchestrator", orch)
	c.Next()
}

func orchestratorFrom(c *gin.Context) *assist.Orchestrator {
	return c.MustGet("orchestrator").(*assist.Orchestrator)
}

func (h *AssistHandler) HandleListTools(c *gin.Context) {
	registry := orchestratorFrom(c).Registry()
	c.JSON(http.StatusOK, gin.H{
		"form":  registry.Name(),
		"tools": registry.List(),
	})
}

func (h *AssistHandler) HandleDispatch(c *gin.Context) {
	var req api.DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	outcome := orchestratorFrom(c).Registry().Dispatch(req.Tool, tools.Args(req.Arguments))
	if !outcome.OK() {
		log.Printf("WARNING: dispatch %s failed: %s", req.Tool, outcome.Failure.Kind)
		c.JSON(http.StatusUnprocessableEntity, outcome)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *AssistHandler) HandleAssist(c *gin.Context) {
	startTime := time.Now()
	var req api.AssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	key := strings.TrimSpace(req.APIKey)
	if key == "" {
		key = strings.TrimSpace(c.GetHeader("X-Api-Key"))
	}

	orch := orchestratorFrom(c)
	resp := orch.Answer(c.Request.Context(), assist.Question{Text: req.Question, APIKey: key})
	log.Printf("--- [%s] %s cycle finished: kind=%s tokens=%d in %s ---",
		resp.CycleID, orch.Registry().Name(), resp.Kind, resp.Usage.TotalTokens, time.Since(startTime).Round(time.Millisecond))
	c.JSON(http.StatusOK, resp)
}

func (h *AssistHandler) HandleStats(c *gin.Context) {
	if h.stats == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "usage statistics require REDIS_ADDR"})
		return
	}
	form := orchestratorFrom(c).Registry().Name()
	toolStats, err := h.stats.ToolStats(c.Request.Context(), form)
	if err != nil {
		log.Printf("WARNING: could not read tool stats for %s: %v", form, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "usage statistics are unavailable"})
		return
	}
	profile, err := h.stats.GetProfile(c.Request.Context(), h.model)
	if err != nil {
		log.Printf("WARNING: could not read model profile for %s: %v", h.model, err)
	}
	c.JSON(http.StatusOK, gin.H{
		"form":  form,
		"tools": toolStats,
		"model": profile,
	})
}

func (h *AssistHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"forms":  len(h.orchestrators),
		"stats":  h.stats != nil,
	})
}
