// In file: internal/llm/profiler.go
package llm

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dileep-u-k/math-assist/internal/api"
	"github.com/dileep-u-k/math-assist/internal/version"

	"github.com/redis/go-redis/v9"
)

// ModelProfile tracks latency and reliability of one remote model.
type ModelProfile struct {
	ModelID           string    `json:"model_id" redis:"model_id"`
	AvgLatencyMS      int64     `json:"avg_latency_ms" redis:"avg_latency_ms"`
	Status            string    `json:"status" redis:"status"`
	ErrorRate         float64   `json:"error_rate" redis:"error_rate"`
	TotalSuccesses    int64     `json:"total_successes" redis:"total_successes"`
	TotalFailures     int64     `json:"total_failures" redis:"total_failures"`
	TotalRateLimits   int64     `json:"total_rate_limits" redis:"total_rate_limits"`
	TotalInputTokens  int64     `json:"total_input_tokens" redis:"total_input_tokens"`
	TotalOutputTokens int64     `json:"total_output_tokens" redis:"total_output_tokens"`
	LastCall          time.Time `json:"last_call" redis:"last_call"`
}

// ToolStat counts dispatches of one tool.
type ToolStat struct {
	Tool      string `json:"tool"`
	Succeeded int64  `json:"succeeded"`
	Failed    int64  `json:"failed"`
}

// Profiler records model calls and tool dispatches in Redis.
type Profiler struct {
	rdb *redis.Client
}

func NewProfiler(rdb *redis.Client) *Profiler {
	return &Profiler{rdb: rdb}
}

func (p *Profiler) getProfileKey(modelID string) string {
	return fmt.Sprintf("mathassist:profile:%s", modelID)
}

// GetProfile retrieves a model's profile. A model with no calls yet gets an
// empty "unknown" profile; nothing is written.
func (p *Profiler) GetProfile(ctx context.Context, modelID string) (*ModelProfile, error) {
	profileData, err := p.rdb.HGetAll(ctx, p.getProfileKey(modelID)).Result()
	if err != nil {
		return nil, err
	}
	profile := &ModelProfile{ModelID: modelID, Status: "unknown"}
	if len(profileData) == 0 {
		return profile, nil
	}
	profile.AvgLatencyMS, _ = strconv.ParseInt(profileData["avg_latency_ms"], 10, 64)
	profile.Status = profileData["status"]
	profile.ErrorRate, _ = strconv.ParseFloat(profileData["error_rate"], 64)
	profile.TotalSuccesses, _ = strconv.ParseInt(profileData["total_successes"], 10, 64)
	profile.TotalFailures, _ = strconv.ParseInt(profileData["total_failures"], 10, 64)
	profile.TotalRateLimits, _ = strconv.ParseInt(profileData["total_rate_limits"], 10, 64)
	profile.TotalInputTokens, _ = strconv.ParseInt(profileData["total_input_tokens"], 10, 64)
	profile.TotalOutputTokens, _ = strconv.ParseInt(profileData["total_output_tokens"], 10, 64)
	profile.LastCall, _ = time.Parse(time.RFC3339Nano, profileData["last_call"])
	return profile, nil
}

// RecordModelCall updates the profile of modelID after one remote call.
func (p *Profiler) RecordModelCall(ctx context.Context, modelID string, latency time.Duration, usage api.Usage, callErr error) {
	if callErr != nil {
		p.updateOnFailure(ctx, modelID, IsRateLimit(callErr))
		return
	}
	p.updateOnSuccess(ctx, modelID, latency, usage)
}

func (p *Profiler) updateOnSuccess(ctx context.Context, modelID string, latency time.Duration, usage api.Usage) {
	key := p.getProfileKey(modelID)
	const alpha = 0.1

	err := p.rdb.Watch(ctx, func(tx *redis.Tx) error {
		currentLatencyStr, err := tx.HGet(ctx, key, "avg_latency_ms").Result()
		if err != nil && err != redis.Nil {
			return err
		}
		newLatency := latency.Milliseconds()
		if currentLatency, perr := strconv.ParseInt(currentLatencyStr, 10, 64); perr == nil && currentLatency > 0 {
			newLatency = int64(alpha*float64(latency.Milliseconds()) + (1.0-alpha)*float64(currentLatency))
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, "avg_latency_ms", newLatency)
			return nil
		})
		return err
	}, key)
	if err != nil {
		log.Printf("Error updating latency for %s: %v", modelID, err)
	}

	pipe := p.rdb.Pipeline()
	successes := pipe.HIncrBy(ctx, key, "total_successes", 1)
	failures := pipe.HGet(ctx, key, "total_failures")
	pipe.HIncrBy(ctx, key, "total_input_tokens", int64(usage.PromptTokens))
	pipe.HIncrBy(ctx, key, "total_output_tokens", int64(usage.CompletionTokens))
	pipe.HSet(ctx, key, "model_id", modelID, "status", "online", "last_call", time.Now().Format(time.RFC3339Nano))
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		log.Printf("Error in success update pipeline for %s: %v", modelID, err)
		return
	}

	totalFailures, _ := strconv.ParseInt(failures.Val(), 10, 64)
	p.setErrorRate(ctx, key, successes.Val(), totalFailures)
}

func (p *Profiler) updateOnFailure(ctx context.Context, modelID string, rateLimited bool) {
	key := p.getProfileKey(modelID)
	status := "degraded"
	pipe := p.rdb.Pipeline()
	failures := pipe.HIncrBy(ctx, key, "total_failures", 1)
	successes := pipe.HGet(ctx, key, "total_successes")
	if rateLimited {
		pipe.HIncrBy(ctx, key, "total_rate_limits", 1)
		status = "rate_limited"
	}
	pipe.HSet(ctx, key, "model_id", modelID, "status", status, "last_call", time.Now().Format(time.RFC3339Nano))
	// HGet of a missing field reports redis.Nil for the whole pipeline.
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		log.Printf("Error in failure update pipeline for %s: %v", modelID, err)
		return
	}

	totalSuccesses, _ := strconv.ParseInt(successes.Val(), 10, 64)
	p.setErrorRate(ctx, key, totalSuccesses, failures.Val())
}

func (p *Profiler) setErrorRate(ctx context.Context, key string, successes, failures int64) {
	if total := successes + failures; total > 0 {
		p.rdb.HSet(ctx, key, "error_rate", float64(failures)/float64(total))
	}
}

// RecordDispatch counts one dispatch of tool in form's registry.
func (p *Profiler) RecordDispatch(ctx context.Context, form, tool string, ok bool) {
	field := tool + ":failed"
	if ok {
		field = tool + ":ok"
	}
	if err := p.rdb.HIncrBy(ctx, version.StatsKey("tools", form), field, 1).Err(); err != nil {
		log.Printf("Error recording dispatch of %s/%s: %v", form, tool, err)
	}
}

// ToolStats returns the dispatch counts of form's current registry version,
// most used first.
func (p *Profiler) ToolStats(ctx context.Context, form string) ([]ToolStat, error) {
	raw, err := p.rdb.HGetAll(ctx, version.StatsKey("tools", form)).Result()
	if err != nil {
		return nil, err
	}
	byTool := make(map[string]*ToolStat)
	for field, value := range raw {
		i := strings.LastIndex(field, ":")
		if i <= 0 {
			continue
		}
		name, outcome := field[:i], field[i+1:]
		n, _ := strconv.ParseInt(value, 10, 64)
		st, ok := byTool[name]
		if !ok {
			st = &ToolStat{Tool: name}
			byTool[name] = st
		}
		if outcome == "ok" {
			st.Succeeded += n
		} else {
			st.Failed += n
		}
	}
	stats := make([]ToolStat, 0, len(byTool))
	for _, st := range byTool {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool {
		ti, tj := stats[i].Succeeded+stats[i].Failed, stats[j].Succeeded+stats[j].Failed
		if ti != tj {
			return ti > tj
		}
		return stats[i].Tool < stats[j].Tool
	})
	return stats, nil
}
