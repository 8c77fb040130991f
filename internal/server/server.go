// Package server wires the HTTP API together: provider registry,
// persistence client, generator, and endpoint routes.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/copydrive/copydrive/internal/api"
	"github.com/copydrive/copydrive/internal/config"
	"github.com/copydrive/copydrive/internal/generate"
	"github.com/copydrive/copydrive/internal/providers"
	"github.com/copydrive/copydrive/internal/server/endpoints"
	"github.com/copydrive/copydrive/internal/store"
	"github.com/copydrive/copydrive/internal/svcctx"
)

// Server is the main CopyDrive HTTP server.
type Server struct {
	httpServer *http.Server
	registry   *providers.Registry
	store      *store.Client
	generator  *generate.Generator
	configMgr  *config.Manager
	logger     *slog.Logger

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	// Create provider registry
	registry := providers.NewRegistry()
	registry.SetLogger(cfg.Logger)

	s := &Server{
		registry:  registry,
		configMgr: cfg.ConfigManager,
		logger:    cfg.Logger,
	}

	// If config manager provided, wire providers, storage, and hot reload
	if cfg.ConfigManager != nil {
		appCfg := cfg.ConfigManager.Get()
		registry.Reload(appCfg.ToProviderRegistryConfig())
		s.store = buildStore(appCfg, cfg.Logger)

		cfg.ConfigManager.OnChange(func(c *config.Config) {
			registry.Reload(c.ToProviderRegistryConfig())
			cfg.Logger.Info("provider registry reloaded from config")
		})
	}

	s.generator = generate.NewGenerator(registry, s.store, generationOptions(cfg.ConfigManager), cfg.Logger)

	s.services = &svcctx.Services{
		Registry:  registry,
		Store:     s.store,
		Generator: s.generator,
		Logger:    cfg.Logger,
		APIKeys:   authKeys(cfg.ConfigManager),
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{}) {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireAuth)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute, // LLM synthesis can be slow
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

func buildStore(cfg *config.Config, logger *slog.Logger) *store.Client {
	st, err := store.NewClient(store.Config{
		BaseURL:    cfg.Storage.BaseURL,
		ServiceKey: cfg.ResolveStorageKey(),
		Table:      cfg.Storage.Table,
		Timeout:    time.Duration(cfg.Storage.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotConfigured) {
			logger.Info("persistence disabled: storage not configured")
		} else {
			logger.Warn("persistence disabled", "error", err)
		}
		return nil
	}
	return st
}

func generationOptions(cm *config.Manager) generate.Options {
	if cm == nil {
		return generate.Options{}
	}
	gen := cm.Get().Generation
	return generate.Options{
		MinCompletionChars:   gen.MinCompletionChars,
		FallbackContextChars: gen.FallbackContextChars,
		MaxTokens:            gen.MaxTokens,
		Temperature:          gen.Temperature,
	}
}

func authKeys(cm *config.Manager) []string {
	if cm == nil {
		return nil
	}
	return cm.Get().ResolveAuthKeys()
}

// Start starts the server. It blocks until the context is cancelled or
// an error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Registry returns the provider registry.
func (s *Server) Registry() *providers.Registry {
	return s.registry
}

// Generator returns the prompt generator.
func (s *Server) Generator() *generate.Generator {
	return s.generator
}

// Handler returns the server's root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if s.services != nil {
			ctx = svcctx.WithServices(ctx, s.services)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
