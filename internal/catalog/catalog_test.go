package catalog

import (
	"strings"
	"testing"
)

func TestLookupNormalization(t *testing.T) {
	want := CopyType("landing_page")
	if want == "landing_page" {
		t.Fatal("expected landing_page to be a known code")
	}

	t.Run("case_insensitive", func(t *testing.T) {
		if got := CopyType("Landing_Page"); got != want {
			t.Errorf("CopyType(Landing_Page) = %q, want catalog text", got)
		}
	})

	t.Run("trims_whitespace", func(t *testing.T) {
		if got := CopyType("  landing_page \n"); got != want {
			t.Errorf("CopyType with whitespace = %q, want catalog text", got)
		}
	})
}

func TestLookupMissReturnsRawCode(t *testing.T) {
	raw := "Mensagem curta para WhatsApp com tom informal"
	if got := Style(raw); got != raw {
		t.Errorf("Style(free text) = %q, want input unchanged", got)
	}
	if got := Framework("xyz"); got != "xyz" {
		t.Errorf("Framework(xyz) = %q, want raw code", got)
	}
}

func TestCatalogCompleteness(t *testing.T) {
	cases := []struct {
		name   string
		lookup func(string) string
		codes  []string
	}{
		{"copy_types", CopyType, []string{"landing_page", "anuncio", "vsl", "email", "webinar", "conteudo", "mensagem_direta", "outro"}},
		{"frameworks", Framework, []string{"aida", "pas", "fab", "4ps", "quest", "bab", "pastor"}},
		{"objectives", Objective, []string{"venda_direta", "geracao_leads", "engajamento", "educacao", "retencao", "upsell_cross_sell", "reativacao"}},
		{"styles", Style, []string{"storytelling", "polemico", "aspiracional", "urgente", "dados", "conversacional", "mistico"}},
		{"emotional_focuses", EmotionalFocus, []string{"dor", "desejo", "transformacao", "prevencao"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, code := range tc.codes {
				text := tc.lookup(code)
				if text == code {
					t.Errorf("code %q has no catalog entry", code)
					continue
				}
				if strings.TrimSpace(text) == "" {
					t.Errorf("code %q maps to empty text", code)
				}
			}
		})
	}
}

func TestKeysSorted(t *testing.T) {
	keys := FrameworkKeys()
	if len(keys) != 7 {
		t.Fatalf("FrameworkKeys() len = %d, want 7", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}

func TestByName(t *testing.T) {
	t.Run("known_catalogs", func(t *testing.T) {
		for _, name := range Names() {
			if ByName(name) == nil {
				t.Errorf("ByName(%q) = nil, want catalog", name)
			}
		}
	})

	t.Run("unknown_catalog", func(t *testing.T) {
		if got := ByName("nope"); got != nil {
			t.Errorf("ByName(nope) = %v, want nil", got)
		}
	})

	t.Run("returns_copy", func(t *testing.T) {
		m := ByName("styles")
		m["storytelling"] = "mutated"
		if Style("storytelling") == "mutated" {
			t.Error("ByName must return a copy, not the backing map")
		}
	})
}
