package bs8110

import "testing"

func TestSelectColumnBars(t *testing.T) {
	cases := []struct {
		required float64
		want     string
	}{
		{360.4, "6T10"},
		{2000, "10T16"},
		{100, "4T10"}, // minimum arrangement
	}
	for _, c := range cases {
		got := SelectColumnBars(c.required)
		if got.String() != c.want {
			t.Fatalf("SelectColumnBars(%.1f) = %s, want %s", c.required, got, c.want)
		}
		if got.Area < c.required {
			t.Fatalf("SelectColumnBars(%.1f) area %.1f below requirement", c.required, got.Area)
		}
		if got.Count%2 != 0 {
			t.Fatalf("SelectColumnBars(%.1f) odd bar count %d", c.required, got.Count)
		}
	}
}

func TestSelectColumnBarsFallback(t *testing.T) {
	// Beyond 12 bars of the largest stock size: fall back to however
	// many T40 it takes, kept even.
	got := SelectColumnBars(20000)
	if got.Diameter != 40 {
		t.Fatalf("fallback diameter %d, want 40", got.Diameter)
	}
	if got.Area < 20000 || got.Count%2 != 0 {
		t.Fatalf("fallback selection %s (%.0f mm²) invalid", got, got.Area)
	}
}

func TestSuggestBeamBars(t *testing.T) {
	out := SuggestBeamBars(724)
	if len(out) == 0 {
		t.Fatal("no suggestions")
	}
	if out[0].String() != "4T16" {
		t.Fatalf("first suggestion %s, want 4T16", out[0])
	}
	for _, s := range out {
		if s.Diameter < 16 {
			t.Fatalf("beam bar below stock minimum: %s", s)
		}
		if s.Area < 724 {
			t.Fatalf("suggestion %s (%.0f mm²) below requirement", s, s.Area)
		}
		if s.Count < 2 || s.Count > 8 {
			t.Fatalf("suggestion %s outside the workable count range", s)
		}
	}
}

func TestLinkSpec(t *testing.T) {
	dia, spacing := LinkSpec(10, 300)
	if dia != 6 || spacing != 120 {
		t.Fatalf("LinkSpec(10, 300) = T%d @ %.0f, want T6 @ 120", dia, spacing)
	}
	dia, spacing = LinkSpec(32, 400)
	if dia != 8 || spacing != 300 {
		t.Fatalf("LinkSpec(32, 400) = T%d @ %.0f, want T8 @ 300", dia, spacing)
	}
	dia, spacing = LinkSpec(25, 250)
	if dia != 8 || spacing != 250 {
		t.Fatalf("LinkSpec(25, 250) = T%d @ %.0f, want T8 @ 250", dia, spacing)
	}
}
