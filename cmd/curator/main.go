package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hearthlib/curator/internal/config"
	"github.com/hearthlib/curator/internal/db"
	dbRedis "github.com/hearthlib/curator/internal/db/redis"
	"github.com/hearthlib/curator/internal/domain"
	logpkg "github.com/hearthlib/curator/internal/logger"
	"github.com/hearthlib/curator/internal/metrics"
	catalogrepo "github.com/hearthlib/curator/internal/repository/catalog"
	"github.com/hearthlib/curator/internal/repository/replycache"
	chiTransport "github.com/hearthlib/curator/internal/transport/chi"
	openaiCompl "github.com/hearthlib/curator/internal/transport/openai"
	assistantuc "github.com/hearthlib/curator/internal/usecase/assistant"
	healthuc "github.com/hearthlib/curator/internal/usecase/health"
	searchuc "github.com/hearthlib/curator/internal/usecase/search"
	"github.com/hearthlib/curator/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting curator API server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_path", cfg.Catalog.Path),
	)

	// Load catalog snapshot
	catRepo, err := catalogrepo.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	logger.Info("Catalog loaded", zap.Int("items", catRepo.Count(context.Background())))

	// Optional reply cache store. The service runs without it; replies
	// are simply not cached.
	var store db.Store
	if cfg.CacheEnabled() {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		ctx := context.Background()
		timeout := time.Duration(cfg.Cache.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, timeout); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		logger.Info("Connected to cache store", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// Register assistant metrics explicitly (no init())
	metrics.RegisterAssistantMetrics()

	completer := buildCompleter(cfg, store, logger)

	// Create use case services
	searchSvc := searchuc.New(catRepo).
		WithPagination(cfg.Search.DefaultLimit, cfg.Search.MaxLimit)
	assistantSvc := assistantuc.New(completer, catRepo, logger).
		WithShortlistSize(cfg.Assistant.ShortlistSize)

	// Health service. Store and provider checks are skipped when not configured.
	var pinger healthuc.StorePinger
	if store != nil {
		pinger = store
	}
	var provChecker healthuc.ProviderChecker
	if hc, ok := completer.(domain.HealthChecker); ok {
		provChecker = hc
	}
	healthSvc := healthuc.New(catRepo, pinger, provChecker)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, assistantSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildCompleter assembles the completer chain: OpenAI -> Cached.
// Returns nil when no API key is configured; the assistant then answers
// every chat with the grounded fallback.
func buildCompleter(cfg config.Config, store db.Store, logger *zap.Logger) domain.Completer {
	if cfg.Assistant.APIKey == "" {
		logger.Warn("No assistant API key configured, running in fallback-only mode")
		return nil
	}

	base := openaiCompl.NewCompleter(&openaiCompl.Config{
		APIKey:      cfg.Assistant.APIKey,
		BaseURL:     cfg.Assistant.BaseURL,
		Model:       cfg.Assistant.Model,
		MaxTokens:   cfg.Assistant.MaxTokens,
		Temperature: cfg.Assistant.Temperature,
		Provider:    cfg.Assistant.Provider,
		Logger:      logger,
	})
	logger.Info("Completer created",
		zap.String("provider", cfg.Assistant.Provider),
		zap.String("model", cfg.Assistant.Model),
	)

	if store == nil {
		return base
	}

	ttl := time.Duration(cfg.Cache.TTLSec) * time.Second
	return replycache.New(base, store, ttl, metrics.AssistantCacheTotal, logger)
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
