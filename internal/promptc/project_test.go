package promptc

import (
	"strings"
	"testing"
)

func TestBuildProjectPrompt(t *testing.T) {
	identity := &ProjectIdentity{
		BrandName:      "Aurora Fit",
		CentralPurpose: "democratizar treino de força para mulheres",
		Sector:         "fitness",
		VoiceTones:     []string{"direto", "encorajador"},
		Keywords:       []string{"força", "constância"},
	}
	methodology := &Methodology{
		Name:              "Método Base Forte",
		TeseCentral:       "força antes de estética",
		MecanismoPrimario: "progressão de cargas em ciclos de 4 semanas",
	}

	t.Run("both_sections", func(t *testing.T) {
		got := BuildProjectPrompt(identity, methodology)

		if !strings.Contains(got, "## IDENTIDADE") {
			t.Error("missing identity header")
		}
		if !strings.Contains(got, "## METODOLOGIA E MECANISMO ÚNICO") {
			t.Error("missing methodology header")
		}
		if !strings.Contains(got, "Marca: Aurora Fit") {
			t.Error("missing brand line")
		}
		if !strings.Contains(got, "Tons de voz: direto, encorajador") {
			t.Error("missing joined voice tones")
		}
		if !strings.Contains(got, "Tese central: força antes de estética") {
			t.Error("missing methodology field")
		}
		if idx := strings.Index(got, "## IDENTIDADE"); idx != 0 {
			t.Errorf("identity section must come first, found at %d", idx)
		}
	})

	t.Run("identity_only", func(t *testing.T) {
		got := BuildProjectPrompt(identity, nil)
		if strings.Contains(got, "## METODOLOGIA") {
			t.Error("empty methodology must not emit a header")
		}
		if strings.HasSuffix(got, "\n\n") {
			t.Error("trailing separator after omitted section")
		}
	})

	t.Run("methodology_only", func(t *testing.T) {
		got := BuildProjectPrompt(nil, methodology)
		if strings.Contains(got, "## IDENTIDADE") {
			t.Error("empty identity must not emit a header")
		}
		if !strings.HasPrefix(got, "## METODOLOGIA") {
			t.Errorf("prompt should start with methodology header, got %q", got[:40])
		}
	})

	t.Run("all_empty", func(t *testing.T) {
		if got := BuildProjectPrompt(nil, nil); got != "" {
			t.Errorf("BuildProjectPrompt(nil, nil) = %q, want empty", got)
		}
		if got := BuildProjectPrompt(&ProjectIdentity{}, &Methodology{}); got != "" {
			t.Errorf("zero-value inputs = %q, want empty", got)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := BuildProjectPrompt(identity, methodology)
		b := BuildProjectPrompt(identity, methodology)
		if a != b {
			t.Error("compiler must be deterministic")
		}
	})
}

func TestMethodologyParagraphOrder(t *testing.T) {
	m := &Methodology{
		Name:               "Método X",
		ErroInvisivel:      "treinar sem medir",
		ProvaFuncionamento: "300 alunas avaliadas",
	}
	got := BuildProjectPrompt(nil, m)

	nameIdx := strings.Index(got, "Nome do método:")
	errIdx := strings.Index(got, "Erro invisível:")
	provaIdx := strings.Index(got, "Prova de funcionamento:")
	if nameIdx == -1 || errIdx == -1 || provaIdx == -1 {
		t.Fatalf("missing labels in %q", got)
	}
	if !(nameIdx < errIdx && errIdx < provaIdx) {
		t.Error("methodology paragraphs out of order")
	}
}
