package promptc

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildFallbackPrompt(t *testing.T) {
	t.Run("embeds_context", func(t *testing.T) {
		got := BuildFallbackPrompt("## IDENTIDADE\nMarca: Aurora Fit", 4000)
		if !strings.Contains(got, "## CONTEXTO") {
			t.Error("missing context header")
		}
		if !strings.Contains(got, "Marca: Aurora Fit") {
			t.Error("missing embedded context")
		}
	})

	t.Run("truncates_long_context", func(t *testing.T) {
		long := strings.Repeat("x", 5000)
		got := BuildFallbackPrompt(long, 4000)
		if strings.Contains(got, strings.Repeat("x", 4001)) {
			t.Error("context not truncated to limit")
		}
		if !strings.Contains(got, strings.Repeat("x", 4000)) {
			t.Error("truncation cut below the limit")
		}
	})

	t.Run("rune_safe_truncation", func(t *testing.T) {
		long := strings.Repeat("ção", 3000)
		got := BuildFallbackPrompt(long, 4000)
		if !utf8.ValidString(got) {
			t.Error("truncation split a multibyte rune")
		}
	})

	t.Run("empty_context_still_usable", func(t *testing.T) {
		got := BuildFallbackPrompt("", 4000)
		if len([]rune(got)) < 100 {
			t.Errorf("fallback with no context is only %d chars", len([]rune(got)))
		}
		if strings.Contains(got, "## CONTEXTO") {
			t.Error("empty context must not emit a context header")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		if BuildFallbackPrompt("ctx", 4000) != BuildFallbackPrompt("ctx", 4000) {
			t.Error("fallback must be deterministic")
		}
	})
}
