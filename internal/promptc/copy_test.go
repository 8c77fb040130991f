package promptc

import (
	"strings"
	"testing"
)

func TestBuildCopyPrompt(t *testing.T) {
	ctx := CopyContext{
		CopyType:       "email",
		Framework:      "pas",
		Objective:      "venda_direta",
		Styles:         []string{"urgente", "dados"},
		EmotionalFocus: "dor",
		Audience: &Audience{
			Name:        "Empreendedoras iniciantes",
			Description: "mulheres abrindo o primeiro negócio digital",
			Demographics: &Demographics{
				AgeRange: "25-40",
				Location: "Brasil",
			},
			PainPoints: []string{"falta de tempo", "medo de investir errado"},
			Desires:    []string{"renda previsível"},
		},
		Offer: &Offer{
			Name:              "Mentoria Decola",
			ValueProposition:  "do zero à primeira venda em 60 dias",
			SecondaryBenefits: []string{"comunidade", "templates prontos"},
		},
	}

	got := BuildCopyPrompt(ctx)

	t.Run("section_order", func(t *testing.T) {
		headers := []string{
			"## TIPO DE COPY",
			"## ESTRUTURA",
			"## PÚBLICO-ALVO",
			"## OFERTA",
			"## OBJETIVO",
			"## ESTILOS",
			"## FOCO EMOCIONAL",
		}
		last := -1
		for _, h := range headers {
			idx := strings.Index(got, h)
			if idx == -1 {
				t.Fatalf("missing header %q", h)
			}
			if idx <= last {
				t.Errorf("header %q out of order", h)
			}
			last = idx
		}
	})

	t.Run("audience_lines", func(t *testing.T) {
		if !strings.Contains(got, "Segmento: Empreendedoras iniciantes") {
			t.Error("missing audience segment line")
		}
		if !strings.Contains(got, "Demografia: idade 25-40, localização Brasil") {
			t.Error("missing demographics line")
		}
		if !strings.Contains(got, "Dores:\n- falta de tempo\n- medo de investir errado") {
			t.Error("missing pain point bullets")
		}
	})

	t.Run("offer_lines", func(t *testing.T) {
		if !strings.Contains(got, "Nome: Mentoria Decola") {
			t.Error("missing offer name")
		}
		if !strings.Contains(got, "Benefícios secundários:\n- comunidade\n- templates prontos") {
			t.Error("missing secondary benefit bullets")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		if BuildCopyPrompt(ctx) != got {
			t.Error("compiler must be deterministic")
		}
	})

	t.Run("styles_separator", func(t *testing.T) {
		stylesStart := strings.Index(got, "## ESTILOS")
		emotionalStart := strings.Index(got, "## FOCO EMOCIONAL")
		section := got[stylesStart:emotionalStart]
		if !strings.Contains(section, "\n\n---\n\n") {
			t.Error("style entries must be joined by a horizontal rule")
		}
	})
}

func TestBuildCopyPromptOmissions(t *testing.T) {
	t.Run("empty_context", func(t *testing.T) {
		if got := BuildCopyPrompt(CopyContext{}); got != "" {
			t.Errorf("BuildCopyPrompt(empty) = %q, want empty", got)
		}
	})

	t.Run("absent_sections_leave_no_headers", func(t *testing.T) {
		got := BuildCopyPrompt(CopyContext{CopyType: "anuncio"})
		for _, h := range []string{"## ESTRUTURA", "## PÚBLICO-ALVO", "## OFERTA", "## OBJETIVO", "## ESTILOS", "## FOCO EMOCIONAL"} {
			if strings.Contains(got, h) {
				t.Errorf("unexpected header %q for absent field", h)
			}
		}
	})

	t.Run("audience_without_content", func(t *testing.T) {
		got := BuildCopyPrompt(CopyContext{Audience: &Audience{}})
		if got != "" {
			t.Errorf("empty audience = %q, want no output", got)
		}
	})
}

func TestBuildCopyPromptFreeTextPassthrough(t *testing.T) {
	free := "prova social agressiva com prints de resultados"
	got := BuildCopyPrompt(CopyContext{Styles: []string{free}})
	if !strings.Contains(got, free) {
		t.Errorf("free-text style must pass through unchanged, got %q", got)
	}
}
