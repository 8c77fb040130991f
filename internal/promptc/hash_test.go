package promptc

import "testing"

func TestContextHash(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := ContextHash("projeto", "copy")
		b := ContextHash("projeto", "copy")
		if a != b {
			t.Errorf("ContextHash not deterministic: %q != %q", a, b)
		}
	})

	t.Run("length", func(t *testing.T) {
		if got := ContextHash("projeto", "copy"); len(got) != 16 {
			t.Errorf("len(ContextHash) = %d, want 16", len(got))
		}
	})

	t.Run("sensitive_to_either_input", func(t *testing.T) {
		base := ContextHash("a", "b")
		if ContextHash("a2", "b") == base {
			t.Error("hash must change with project prompt")
		}
		if ContextHash("a", "b2") == base {
			t.Error("hash must change with copy prompt")
		}
	})

	t.Run("boundary_not_ambiguous", func(t *testing.T) {
		if ContextHash("ab", "c") == ContextHash("a", "bc") {
			t.Error("concatenation boundary must be separated")
		}
	})

	t.Run("empty_inputs", func(t *testing.T) {
		if got := ContextHash("", ""); len(got) != 16 {
			t.Errorf("empty inputs must still hash, got %q", got)
		}
	})
}
