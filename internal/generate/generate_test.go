package generate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/copydrive/copydrive/internal/promptc"
	"github.com/copydrive/copydrive/internal/providers"
	"github.com/copydrive/copydrive/internal/store"
)

// longResponse clears the default completion quality floor.
var longResponse = strings.Repeat("Você é um copywriter especialista. ", 10)

func testRegistry(mock *providers.MockClient) *providers.Registry {
	reg := providers.NewRegistry()
	reg.RegisterLLM(providers.MockClientName, mock)
	reg.SetDefaultLLM(providers.MockClientName)
	return reg
}

func fullRequest() *Request {
	return &Request{
		CopyID:         "copy-123",
		CopyType:       "email",
		Framework:      "aida",
		Objective:      "venda_direta",
		Styles:         []string{"urgente"},
		EmotionalFocus: "desejo",
		ProjectIdentity: &promptc.ProjectIdentity{
			BrandName: "Aurora Fit",
			Sector:    "fitness",
		},
		Offer: &promptc.Offer{Name: "Mentoria Decola"},
	}
}

func TestGenerateSuccess(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseText = longResponse
	gen := NewGenerator(testRegistry(mock), nil, Options{}, nil)

	res, err := gen.Generate(context.Background(), fullRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if res.Fallback {
		t.Error("successful synthesis must not be marked fallback")
	}
	if res.SystemPrompt != strings.TrimSpace(longResponse) {
		t.Error("system prompt must be the trimmed completion")
	}
	if len(res.ContextHash) != 16 {
		t.Errorf("context hash len = %d, want 16", len(res.ContextHash))
	}
	if res.Model != providers.MockClientName {
		t.Errorf("model = %q, want provider name", res.Model)
	}
	if res.GeneratedAt.IsZero() {
		t.Error("generated timestamp not set")
	}

	last := mock.LastRequest()
	if last == nil {
		t.Fatal("provider never called")
	}
	if len(last.Messages) != 2 || last.Messages[0].Role != "system" || last.Messages[1].Role != "user" {
		t.Fatalf("unexpected message shape: %+v", last.Messages)
	}
	if last.Messages[0].Content != promptc.MetaInstruction() {
		t.Error("system message must be the fixed meta instruction")
	}
	if !strings.Contains(last.Messages[1].Content, "## IDENTIDADE") {
		t.Error("user message must carry the compiled context")
	}
}

func TestGenerateFallback(t *testing.T) {
	t.Run("short_completion", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ResponseText = "ok"
		gen := NewGenerator(testRegistry(mock), nil, Options{}, nil)

		res, err := gen.Generate(context.Background(), fullRequest())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if !res.Fallback {
			t.Error("short completion must trigger fallback")
		}
		if res.Model != FallbackModel {
			t.Errorf("model = %q, want %q", res.Model, FallbackModel)
		}
		if !strings.Contains(res.SystemPrompt, "## CONTEXTO") {
			t.Error("fallback prompt must embed compiled context")
		}
	})

	t.Run("empty_completion_yields_usable_prompt", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ResponseText = ""
		gen := NewGenerator(testRegistry(mock), nil, Options{}, nil)

		res, err := gen.Generate(context.Background(), fullRequest())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if !res.Fallback {
			t.Error("empty completion must trigger fallback")
		}
		if n := len([]rune(res.SystemPrompt)); n < 100 {
			t.Errorf("fallback prompt is only %d chars", n)
		}
	})

	t.Run("completion_at_threshold_accepted", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ResponseText = strings.Repeat("a", 100)
		gen := NewGenerator(testRegistry(mock), nil, Options{MinCompletionChars: 100}, nil)

		res, err := gen.Generate(context.Background(), fullRequest())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if res.Fallback {
			t.Error("completion at the threshold must be accepted")
		}
	})

	t.Run("hash_same_as_success_path", func(t *testing.T) {
		ok := providers.NewMockClient()
		ok.ResponseText = longResponse
		short := providers.NewMockClient()
		short.ResponseText = "ok"

		resOK, err := NewGenerator(testRegistry(ok), nil, Options{}, nil).Generate(context.Background(), fullRequest())
		if err != nil {
			t.Fatal(err)
		}
		resFB, err := NewGenerator(testRegistry(short), nil, Options{}, nil).Generate(context.Background(), fullRequest())
		if err != nil {
			t.Fatal(err)
		}
		if !resFB.Fallback {
			t.Fatal("short completion must trigger fallback")
		}
		if resOK.ContextHash != resFB.ContextHash {
			t.Error("context hash must not depend on the synthesis outcome")
		}
	})
}

func TestGenerateFatalErrors(t *testing.T) {
	t.Run("llm_error_is_surfaced", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ShouldFail = true
		gen := NewGenerator(testRegistry(mock), nil, Options{}, nil)

		_, err := gen.Generate(context.Background(), fullRequest())
		if err == nil {
			t.Fatal("Generate() must surface upstream llm failures")
		}
		if !strings.Contains(err.Error(), "llm synthesis failed") {
			t.Errorf("error = %v, want upstream failure wrapped", err)
		}
	})

	t.Run("no_provider_is_fatal", func(t *testing.T) {
		gen := NewGenerator(providers.NewRegistry(), nil, Options{}, nil)

		_, err := gen.Generate(context.Background(), fullRequest())
		if !errors.Is(err, ErrNoProvider) {
			t.Fatalf("Generate() error = %v, want ErrNoProvider", err)
		}
	})
}

func TestGenerateNoContext(t *testing.T) {
	mock := providers.NewMockClient()
	gen := NewGenerator(testRegistry(mock), nil, Options{}, nil)

	_, err := gen.Generate(context.Background(), &Request{CopyID: "copy-1"})
	if !errors.Is(err, ErrNoContext) {
		t.Fatalf("Generate(empty) error = %v, want ErrNoContext", err)
	}
	if mock.RequestCount() != 0 {
		t.Error("provider must not be called without context")
	}
}

func TestGeneratePersistence(t *testing.T) {
	type upsertCall struct {
		path    string
		prefer  string
		apikey  string
		records []store.GeneratedPrompt
	}

	newStoreServer := func(t *testing.T, status int, calls *[]upsertCall) *store.Client {
		t.Helper()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var recs []store.GeneratedPrompt
			if err := json.NewDecoder(r.Body).Decode(&recs); err != nil {
				t.Errorf("bad upsert body: %v", err)
			}
			*calls = append(*calls, upsertCall{
				path:    r.URL.Path + "?" + r.URL.RawQuery,
				prefer:  r.Header.Get("Prefer"),
				apikey:  r.Header.Get("apikey"),
				records: recs,
			})
			w.WriteHeader(status)
		}))
		t.Cleanup(srv.Close)

		st, err := store.NewClient(store.Config{
			BaseURL:    srv.URL,
			ServiceKey: "service-key",
			Table:      "copies",
			Timeout:    5 * time.Second,
		})
		if err != nil {
			t.Fatalf("NewClient() error = %v", err)
		}
		return st
	}

	t.Run("persists_generated_prompt", func(t *testing.T) {
		var calls []upsertCall
		st := newStoreServer(t, http.StatusCreated, &calls)

		mock := providers.NewMockClient()
		mock.ResponseText = longResponse
		gen := NewGenerator(testRegistry(mock), st, Options{}, nil)

		res, err := gen.Generate(context.Background(), fullRequest())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(calls) != 1 {
			t.Fatalf("upsert calls = %d, want 1", len(calls))
		}
		call := calls[0]
		if call.path != "/rest/v1/copies?on_conflict=id" {
			t.Errorf("upsert path = %q", call.path)
		}
		if call.prefer != "resolution=merge-duplicates" {
			t.Errorf("Prefer header = %q", call.prefer)
		}
		if call.apikey != "service-key" {
			t.Errorf("apikey header = %q", call.apikey)
		}
		if len(call.records) != 1 || call.records[0].ID != "copy-123" {
			t.Fatalf("records = %+v", call.records)
		}
		if call.records[0].ContextHash != res.ContextHash {
			t.Error("persisted hash must match result")
		}
	})

	t.Run("persistence_failure_is_swallowed", func(t *testing.T) {
		var calls []upsertCall
		st := newStoreServer(t, http.StatusBadRequest, &calls)

		mock := providers.NewMockClient()
		mock.ResponseText = longResponse
		gen := NewGenerator(testRegistry(mock), st, Options{}, nil)

		res, err := gen.Generate(context.Background(), fullRequest())
		if err != nil {
			t.Fatalf("Generate() error = %v, persistence failures must not surface", err)
		}
		if res.SystemPrompt != strings.TrimSpace(longResponse) {
			t.Error("persistence failure must not alter the result")
		}
	})

	t.Run("no_copy_id_skips_persistence", func(t *testing.T) {
		var calls []upsertCall
		st := newStoreServer(t, http.StatusCreated, &calls)

		mock := providers.NewMockClient()
		mock.ResponseText = longResponse
		gen := NewGenerator(testRegistry(mock), st, Options{}, nil)

		req := fullRequest()
		req.CopyID = ""
		if _, err := gen.Generate(context.Background(), req); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(calls) != 0 {
			t.Errorf("upsert calls = %d, want 0", len(calls))
		}
	})
}

func TestCompiledContextEndToEnd(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseText = longResponse
	gen := NewGenerator(testRegistry(mock), nil, Options{}, nil)

	req := &Request{
		CopyType:        "email",
		Objective:       "venda_direta",
		Styles:          []string{"storytelling"},
		ProjectIdentity: &promptc.ProjectIdentity{BrandName: "Acme"},
	}
	if _, err := gen.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	got := mock.LastRequest().Messages[1].Content
	markers := []string{
		"IDENTIDADE",
		"Acme",
		"EMAIL",        // the email copy-type instruction
		"VENDA DIRETA", // the direct-sale objective instruction
		"STORYTELLING", // the storytelling style instruction
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(got, m)
		if idx == -1 {
			t.Fatalf("compiled context missing %q", m)
		}
		if idx <= last {
			t.Errorf("marker %q out of order", m)
		}
		last = idx
	}
}

func TestParseRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		raw := []byte(`{"copyType":"email","styles":["urgente"],"projectIdentity":{"brand_name":"Aurora"}}`)
		req, err := ParseRequest(raw)
		if err != nil {
			t.Fatalf("ParseRequest() error = %v", err)
		}
		if req.CopyType != "email" || req.ProjectIdentity.BrandName != "Aurora" {
			t.Errorf("decoded request = %+v", req)
		}
	})

	t.Run("invalid_json", func(t *testing.T) {
		_, err := ParseRequest([]byte(`{"copyType":`))
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("wrong_types", func(t *testing.T) {
		_, err := ParseRequest([]byte(`{"styles":"urgente"}`))
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("empty_object", func(t *testing.T) {
		if _, err := ParseRequest([]byte(`{}`)); err != nil {
			t.Fatalf("empty object must validate, got %v", err)
		}
	})
}
