// In file: cmd/mathassist/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dileep-u-k/math-assist/internal/assist"
	"github.com/dileep-u-k/math-assist/internal/llm"
	"github.com/dileep-u-k/math-assist/internal/tools"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// main is the composition root: it loads configuration, builds one
// orchestrator per form, and starts the server.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	buildInfo := GetBuildInfo()
	log.Printf("🚀 Starting Math Assist | Version: %s | Commit: %s", buildInfo.Version, buildInfo.GitCommit)

	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	if cfg.APIKey == "" {
		log.Printf("WARNING: No API key set for provider %q; questions must carry their own key.", cfg.Provider.Provider)
	}
	log.Println("✅ Configuration loaded.")

	// 2. INITIALIZE SERVICES
	profiler, rdb := initializeProfiler(cfg.RedisAddr)
	if rdb != nil {
		defer rdb.Close()
	}

	modelID := cfg.Provider.ModelID()
	factory := func(ctx context.Context, apiKey string) (llm.LLMClient, error) {
		return llm.NewClient(ctx, cfg.Provider, apiKey)
	}
	opts := []assist.Option{assist.WithAPIKey(cfg.APIKey)}
	var stats statsStore
	if profiler != nil {
		opts = append(opts, assist.WithRecorder(profiler))
		stats = profiler
	}
	orchestrators := map[string]*assist.Orchestrator{
		tools.Form3().Name(): assist.New(tools.Form3(), factory, modelID, cfg.Assist, opts...),
		tools.Form4().Name(): assist.New(tools.Form4(), factory, modelID, cfg.Assist, opts...),
	}
	log.Printf("✅ %d tool registries ready (model %s).", len(orchestrators), modelID)

	handler := NewAssistHandler(orchestrators, stats, modelID)
	log.Println("✅ All services initialized.")

	// 3. SETUP AND RUN THE WEB SERVER
	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := gin.Default()
	handler.Register(engine.Group("/api/v1"))

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: engine}
	runServerWithGracefulShutdown(srv)
}

// initializeProfiler connects to Redis when an address is configured. The
// service runs without usage statistics otherwise.
func initializeProfiler(addr string) (*llm.Profiler, *redis.Client) {
	if addr == "" {
		log.Println("WARNING: REDIS_ADDR not set, usage statistics disabled.")
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: Could not connect to Redis at %s, usage statistics disabled: %v", addr, err)
		rdb.Close()
		return nil, nil
	}
	log.Println("✅ Connected to Redis.")
	return llm.NewProfiler(rdb), rdb
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Printf("👂 Math Assist is listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server shutdown failed:", err)
	}

	log.Println("👋 Server exited gracefully.")
}
