package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{
		BaseURL:    srv.URL,
		ServiceKey: "svc-key",
		Table:      "copies",
		Timeout:    5 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func record() GeneratedPrompt {
	return GeneratedPrompt{
		ID:          "copy-1",
		Prompt:      "Você é um copywriter especialista.",
		ContextHash: "abc123def456abcd",
		GeneratedAt: time.Now().UTC(),
		Model:       "anthropic/claude-3.5-sonnet",
	}
}

func TestNewClient(t *testing.T) {
	t.Run("missing_config", func(t *testing.T) {
		if _, err := NewClient(Config{}); !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("error = %v, want ErrNotConfigured", err)
		}
		if _, err := NewClient(Config{BaseURL: "http://x"}); !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("missing key: error = %v, want ErrNotConfigured", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		c, err := NewClient(Config{BaseURL: "http://x/", ServiceKey: "k"})
		if err != nil {
			t.Fatalf("NewClient() error = %v", err)
		}
		if c.Table() != "copies" {
			t.Errorf("default table = %q, want copies", c.Table())
		}
		if c.baseURL != "http://x" {
			t.Errorf("base URL not trimmed: %q", c.baseURL)
		}
	})
}

func TestUpsertGeneratedPrompt(t *testing.T) {
	t.Run("request_shape", func(t *testing.T) {
		var gotAuth, gotPrefer, gotQuery string
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotPrefer = r.Header.Get("Prefer")
			gotQuery = r.URL.RawQuery
			w.WriteHeader(http.StatusCreated)
		})

		if err := c.UpsertGeneratedPrompt(context.Background(), record()); err != nil {
			t.Fatalf("UpsertGeneratedPrompt() error = %v", err)
		}
		if gotAuth != "Bearer svc-key" {
			t.Errorf("Authorization = %q", gotAuth)
		}
		if gotPrefer != "resolution=merge-duplicates" {
			t.Errorf("Prefer = %q", gotPrefer)
		}
		if gotQuery != "on_conflict=id" {
			t.Errorf("query = %q", gotQuery)
		}
	})

	t.Run("missing_id", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("request must not be sent without an id")
		})
		rec := record()
		rec.ID = ""
		if err := c.UpsertGeneratedPrompt(context.Background(), rec); err == nil {
			t.Fatal("expected error for missing id")
		}
	})

	t.Run("retries_transient_errors", func(t *testing.T) {
		var attempts int
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusCreated)
		})

		if err := c.UpsertGeneratedPrompt(context.Background(), record()); err != nil {
			t.Fatalf("UpsertGeneratedPrompt() error = %v", err)
		}
		if attempts != 3 {
			t.Errorf("attempts = %d, want 3", attempts)
		}
	})

	t.Run("fatal_status_not_retried", func(t *testing.T) {
		var attempts int
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"bad column"}`))
		})

		err := c.UpsertGeneratedPrompt(context.Background(), record())
		if err == nil {
			t.Fatal("expected error")
		}
		if attempts != 1 {
			t.Errorf("attempts = %d, want 1", attempts)
		}
		if !strings.Contains(err.Error(), "status 422") {
			t.Errorf("error should surface status, got %v", err)
		}
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("apikey") != "svc-key" {
				t.Errorf("apikey header = %q", r.Header.Get("apikey"))
			}
			w.Write([]byte(`[]`))
		})
		if err := c.HealthCheck(context.Background()); err != nil {
			t.Fatalf("HealthCheck() error = %v", err)
		}
	})

	t.Run("unhealthy", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		if err := c.HealthCheck(context.Background()); !errors.Is(err, ErrUnhealthy) {
			t.Fatalf("error = %v, want ErrUnhealthy", err)
		}
	})
}
