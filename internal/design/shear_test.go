package design

import (
	"testing"

	"github.com/alexiusacademia/goframe/internal/bs8110"
)

// shearSection is a 250x450 C30 web with 982 mm² of tension steel
// (2T25): vc ≈ 0.642 N/mm², ceiling 0.8√30 ≈ 4.38 N/mm².
func shearSection(samples ...ShearSample) ShearInput {
	return ShearInput{
		Samples: samples,
		B:       250,
		D:       450,
		AsProv:  982,
		Fcu:     30,
		Fyv:     250,
		Asv:     100.5, // two T8 legs
	}
}

func TestShearZonesMergeByStatus(t *testing.T) {
	zones, err := Shear(shearSection(
		ShearSample{X: 0, V: 50},
		ShearSample{X: 0.5, V: 60},
		ShearSample{X: 1, V: 150},
		ShearSample{X: 1.5, V: -200},
		ShearSample{X: 2, V: 40},
	))
	if err != nil {
		t.Fatalf("shear: %v", err)
	}
	if len(zones) != 3 {
		t.Fatalf("got %d zones, want 3: %+v", len(zones), zones)
	}

	checks := []struct {
		status       ShearStatus
		startX, endX float64
	}{
		{ShearOK, 0, 0.75},
		{ShearWarning, 0.75, 1.75},
		{ShearOK, 1.75, 2},
	}
	for i, c := range checks {
		z := zones[i]
		if z.Status != c.status {
			t.Fatalf("zone %d status %v, want %v", i, z.Status, c.status)
		}
		if z.StartX != c.startX || z.EndX != c.endX {
			t.Fatalf("zone %d extent [%.2f, %.2f], want [%.2f, %.2f]",
				i, z.StartX, z.EndX, c.startX, c.endX)
		}
	}

	// The zones tile the envelope: each boundary is shared.
	for i := 1; i < len(zones); i++ {
		if zones[i].StartX != zones[i-1].EndX {
			t.Fatalf("gap between zones %d and %d: %.2f to %.2f",
				i-1, i, zones[i-1].EndX, zones[i].StartX)
		}
	}

	// The designed spacing follows the worst sample of the zone,
	// here |V| = 200 kN: v = 1.778, s = 0.87·fyv·Asv/((v-vc)·b).
	within(t, zones[1].Spacing, 76.97, 0.2, "designed link spacing")
	if zones[0].Spacing != 0 || zones[2].Spacing != 0 {
		t.Fatal("nominal-link zones must not carry a designed spacing")
	}
}

func TestShearFailAboveCeiling(t *testing.T) {
	zones, err := Shear(shearSection(ShearSample{X: 0, V: 600}))
	if err != nil {
		t.Fatalf("shear: %v", err)
	}
	if len(zones) != 1 || zones[0].Status != ShearFail {
		t.Fatalf("v = 5.33 N/mm² above the 4.38 ceiling must fail: %+v", zones)
	}
	if zones[0].Spacing != 0 {
		t.Fatal("failed zone must not recommend a spacing")
	}
}

func TestShearSpacingClampedToMaximum(t *testing.T) {
	// Barely above vc: the raw spacing formula exceeds the code cap.
	zones, err := Shear(shearSection(ShearSample{X: 0, V: 75}))
	if err != nil {
		t.Fatalf("shear: %v", err)
	}
	if zones[0].Status != ShearWarning {
		t.Fatalf("expected designed-link zone, got %v", zones[0].Status)
	}
	if max := bs8110.MaxSpacing(450); zones[0].Spacing != max {
		t.Fatalf("spacing %.1f, want clamp to %.1f", zones[0].Spacing, max)
	}
}

func TestShearEmptyEnvelope(t *testing.T) {
	if _, err := Shear(shearSection()); err == nil {
		t.Fatal("empty envelope must be rejected")
	}
}
