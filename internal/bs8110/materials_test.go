package bs8110

import (
	"math"
	"testing"
)

func TestVc(t *testing.T) {
	// 250x450 with 982 mm² tension steel in C30.
	got := Vc(982, 250, 450, 30)
	if math.Abs(got-0.6418) > 0.001 {
		t.Fatalf("vc = %.4f, want 0.6418", got)
	}
}

func TestVcSteelRatioCap(t *testing.T) {
	// 100As/bd caps at 3: more steel buys nothing.
	atCap := Vc(3375, 250, 450, 30) // rho exactly 3
	over := Vc(50000, 250, 450, 30)
	if atCap != over {
		t.Fatalf("vc beyond the steel ratio cap changed: %.4f vs %.4f", atCap, over)
	}
}

func TestVcGradeCap(t *testing.T) {
	// fcu caps at 40 in the grade adjustment.
	if Vc(982, 250, 450, 40) != Vc(982, 250, 450, 50) {
		t.Fatal("vc must not increase past grade 40")
	}
}

func TestVcDepthFloor(t *testing.T) {
	// (400/d)^0.25 floors at 1 for deep sections: with the steel ratio
	// held fixed, depth beyond 400 mm changes nothing.
	shallow := Vc(1000, 250, 400, 30) // rho = 1.0
	deep := Vc(2000, 250, 800, 30)    // rho = 1.0
	if math.Abs(shallow-deep) > 1e-12 {
		t.Fatalf("depth factor below the floor: %.6f vs %.6f", shallow, deep)
	}
}

func TestShearCeiling(t *testing.T) {
	if got := ShearCeiling(30); math.Abs(got-0.8*math.Sqrt(30)) > 1e-12 {
		t.Fatalf("ceiling(30) = %.4f", got)
	}
	if got := ShearCeiling(50); got != 5 {
		t.Fatalf("ceiling must cap at 5 N/mm², got %.4f", got)
	}
}

func TestMaxSpacing(t *testing.T) {
	if got := MaxSpacing(360); got != 270 {
		t.Fatalf("0.75d spacing = %.1f, want 270", got)
	}
	if got := MaxSpacing(450); got != 300 {
		t.Fatalf("spacing must cap at 300, got %.1f", got)
	}
}
