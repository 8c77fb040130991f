// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/copydrive/copydrive/internal/generate"
	"github.com/copydrive/copydrive/internal/home"
	"github.com/copydrive/copydrive/internal/providers"
	"github.com/copydrive/copydrive/internal/store"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Registry  *providers.Registry
	Store     *store.Client
	Generator *generate.Generator
	Logger    *slog.Logger
	Home      *home.Dir
	APIKeys   []string
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// RegistryFrom extracts the provider registry from context.
func RegistryFrom(ctx context.Context) *providers.Registry {
	if s := ServicesFrom(ctx); s != nil {
		return s.Registry
	}
	return nil
}

// StoreFrom extracts the persistence client from context.
func StoreFrom(ctx context.Context) *store.Client {
	if s := ServicesFrom(ctx); s != nil {
		return s.Store
	}
	return nil
}

// GeneratorFrom extracts the prompt generator from context.
func GeneratorFrom(ctx context.Context) *generate.Generator {
	if s := ServicesFrom(ctx); s != nil {
		return s.Generator
	}
	return nil
}

// LoggerFrom extracts the logger from context. Returns the default
// logger if not present.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil && s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// APIKeysFrom extracts the configured API keys from context.
func APIKeysFrom(ctx context.Context) []string {
	if s := ServicesFrom(ctx); s != nil {
		return s.APIKeys
	}
	return nil
}
