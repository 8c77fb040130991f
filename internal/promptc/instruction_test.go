package promptc

import (
	"strings"
	"testing"
)

func TestMetaInstruction(t *testing.T) {
	got := MetaInstruction()

	if got == "" {
		t.Fatal("MetaInstruction() is empty")
	}
	if strings.HasPrefix(got, "\n") || strings.HasSuffix(got, "\n") {
		t.Error("instruction must be trimmed")
	}

	// The instruction references every section the compilers can emit, so
	// the synthesis model knows what to look for.
	for _, section := range []string{
		"IDENTIDADE",
		"METODOLOGIA",
		"TIPO DE COPY",
		"ESTRUTURA",
		"PÚBLICO-ALVO",
		"OFERTA",
		"OBJETIVO",
		"ESTILOS",
		"FOCO EMOCIONAL",
	} {
		if !strings.Contains(got, section) {
			t.Errorf("instruction does not mention section %q", section)
		}
	}

	if !strings.Contains(got, "FALLBACK") {
		t.Error("instruction must carry fallback rules for absent sections")
	}
}
