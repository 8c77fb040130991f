// Package generate orchestrates system prompt synthesis: it compiles
// project and copy context into deterministic prompts, asks an LLM to
// synthesize the final system prompt, falls back to a deterministic
// prompt when synthesis is unusable, and persists the result.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/copydrive/copydrive/internal/config"
	"github.com/copydrive/copydrive/internal/promptc"
	"github.com/copydrive/copydrive/internal/providers"
	"github.com/copydrive/copydrive/internal/store"
)

// Sentinel errors for the generate package.
var (
	// ErrInvalidRequest is returned for malformed or mistyped request bodies.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoContext is returned when the request produces no compiled context.
	ErrNoContext = errors.New("no context available to generate the system prompt")

	// ErrNoProvider is returned when no LLM provider is registered.
	ErrNoProvider = errors.New("no llm provider available")
)

// Options tunes generation behavior.
type Options struct {
	// MinCompletionChars is the minimum usable completion length. Shorter
	// completions trigger the deterministic fallback.
	MinCompletionChars int

	// FallbackContextChars bounds how much compiled context the
	// deterministic fallback embeds.
	FallbackContextChars int

	MaxTokens   int
	Temperature float64
}

func (o Options) withDefaults() Options {
	if o.MinCompletionChars <= 0 {
		o.MinCompletionChars = config.DefaultMinCompletionChars
	}
	if o.FallbackContextChars <= 0 {
		o.FallbackContextChars = config.DefaultFallbackContextChars
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = 1024
	}
	if o.Temperature <= 0 {
		o.Temperature = 0.7
	}
	return o
}

// Result is the outcome of one generation.
type Result struct {
	SystemPrompt string    `json:"systemPrompt"`
	ContextHash  string    `json:"contextHash"`
	Model        string    `json:"model"`
	GeneratedAt  time.Time `json:"generatedAt"`
	Fallback     bool      `json:"fallback"`
}

// FallbackModel is recorded when the deterministic fallback produced
// the system prompt.
const FallbackModel = "deterministic-fallback"

// Generator runs the generation pipeline.
type Generator struct {
	registry *providers.Registry
	store    *store.Client
	opts     Options
	logger   *slog.Logger
}

// NewGenerator creates a generator. store may be nil when persistence
// is not configured.
func NewGenerator(registry *providers.Registry, st *store.Client, opts Options, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		registry: registry,
		store:    st,
		opts:     opts.withDefaults(),
		logger:   logger,
	}
}

// Generate runs the full pipeline for one request. A degenerate LLM
// completion (empty or too short) degrades to the deterministic
// fallback; a missing provider or a failed LLM call is fatal and
// surfaced to the caller.
func (g *Generator) Generate(ctx context.Context, req *Request) (*Result, error) {
	projectPrompt := promptc.BuildProjectPrompt(req.ProjectIdentity, req.Methodology)
	copyPrompt := promptc.BuildCopyPrompt(req.CopyContext())

	combined := joinContext(projectPrompt, copyPrompt)
	if combined == "" {
		return nil, ErrNoContext
	}

	hash := promptc.ContextHash(projectPrompt, copyPrompt)

	prompt, model, fallback, err := g.synthesize(ctx, combined, req.CopyID)
	if err != nil {
		return nil, err
	}

	result := &Result{
		SystemPrompt: prompt,
		ContextHash:  hash,
		Model:        model,
		GeneratedAt:  time.Now().UTC(),
		Fallback:     fallback,
	}

	g.persist(ctx, req.CopyID, result)
	return result, nil
}

// synthesize asks the default LLM provider for a system prompt. It
// degrades to the deterministic fallback only when the completion comes
// back empty or too short; provider and transport failures are fatal.
func (g *Generator) synthesize(ctx context.Context, combined, copyID string) (prompt, model string, fallback bool, err error) {
	client, err := g.llmClient()
	if err != nil {
		return "", "", false, err
	}

	chatReq := &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: "system", Content: promptc.MetaInstruction()},
			{Role: "user", Content: combined},
		},
		Temperature: g.opts.Temperature,
		MaxTokens:   g.opts.MaxTokens,
	}

	res, err := client.Chat(ctx, chatReq)
	if err != nil {
		return "", "", false, fmt.Errorf("llm synthesis failed: %w", err)
	}

	content := strings.TrimSpace(res.Content)
	if len([]rune(content)) < g.opts.MinCompletionChars {
		g.logger.Warn("llm completion too short, using fallback prompt",
			"copy_id", copyID,
			"provider", client.Name(),
			"completion_chars", len([]rune(content)),
			"min_chars", g.opts.MinCompletionChars)
		return promptc.BuildFallbackPrompt(combined, g.opts.FallbackContextChars), FallbackModel, true, nil
	}

	model = res.ModelUsed
	if model == "" {
		model = client.Name()
	}
	return content, model, false, nil
}

func (g *Generator) llmClient() (providers.LLMClient, error) {
	if g.registry == nil {
		return nil, ErrNoProvider
	}
	client, err := g.registry.DefaultLLM()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoProvider, err)
	}
	return client, nil
}

// persist writes the result when a store and copy id are present.
// Persistence failures are logged and swallowed: the caller already has
// a usable system prompt.
func (g *Generator) persist(ctx context.Context, copyID string, res *Result) {
	if g.store == nil || copyID == "" {
		return
	}

	err := g.store.UpsertGeneratedPrompt(ctx, store.GeneratedPrompt{
		ID:          copyID,
		Prompt:      res.SystemPrompt,
		ContextHash: res.ContextHash,
		GeneratedAt: res.GeneratedAt,
		Model:       res.Model,
	})
	if err != nil {
		g.logger.Warn("failed to persist generated prompt",
			"copy_id", copyID,
			"error", err)
		return
	}
	g.logger.Debug("persisted generated prompt",
		"copy_id", copyID,
		"context_hash", res.ContextHash)
}

func joinContext(projectPrompt, copyPrompt string) string {
	switch {
	case projectPrompt == "" && copyPrompt == "":
		return ""
	case projectPrompt == "":
		return copyPrompt
	case copyPrompt == "":
		return projectPrompt
	default:
		return projectPrompt + "\n\n" + copyPrompt
	}
}
