package bs8110

import (
	"math"
	"testing"
)

func TestGoverningGravity(t *testing.T) {
	// Dead + live only: 1.4Gk + 1.6Qk governs.
	max, combo := Governing(LoadEffects{Dead: 100, Live: 50}, Combinations)
	if combo.ID != "1" {
		t.Fatalf("governing combination %s, want 1", combo.ID)
	}
	if math.Abs(max-220) > 1e-12 {
		t.Fatalf("governing effect %.2f, want 220", max)
	}
}

func TestGoverningWithWind(t *testing.T) {
	// Dead + wind: 1.4Gk + 1.4Wk governs over the gravity combination.
	max, combo := Governing(LoadEffects{Dead: 100, Wind: 80}, Combinations)
	if combo.ID != "3" {
		t.Fatalf("governing combination %s, want 3", combo.ID)
	}
	if math.Abs(max-252) > 1e-12 {
		t.Fatalf("governing effect %.2f, want 252", max)
	}
}

func TestFactored(t *testing.T) {
	combo := Combinations[3] // 1.2(Gk + Qk + Wk)
	got := combo.Factored(LoadEffects{Dead: 10, Live: 20, Wind: 30})
	if math.Abs(got-72) > 1e-12 {
		t.Fatalf("factored effect %.2f, want 72", got)
	}
}
