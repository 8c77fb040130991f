package promptc

import (
	"fmt"
	"strings"
)

const (
	fallbackHeader = "Você é um copywriter especialista. Use o contexto abaixo para escrever copies persuasivas e alinhadas à marca."
	fallbackFooter = "Siga fielmente as diretrizes de identidade, público e oferta descritas acima. Escreva sempre em português, com foco em conversão, e nunca contradiga as informações do contexto."
)

// BuildFallbackPrompt assembles a deterministic system prompt from the
// compiled context, used when LLM synthesis is unavailable or returns an
// unusable completion. maxContextChars bounds how much of the compiled
// context is embedded; truncation is rune-safe.
func BuildFallbackPrompt(compiledContext string, maxContextChars int) string {
	ctx := strings.TrimSpace(compiledContext)
	if maxContextChars > 0 {
		runes := []rune(ctx)
		if len(runes) > maxContextChars {
			ctx = string(runes[:maxContextChars])
		}
	}

	if ctx == "" {
		return fmt.Sprintf("%s\n\n%s", fallbackHeader, fallbackFooter)
	}
	return fmt.Sprintf("%s\n\n## CONTEXTO\n\n%s\n\n%s", fallbackHeader, ctx, fallbackFooter)
}
