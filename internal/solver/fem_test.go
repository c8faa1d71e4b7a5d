package solver

import (
	"math"
	"testing"

	"github.com/alexiusacademia/goframe/internal/structural"
)

func testMember(t *testing.T, length float64, loads ...structural.Load) *structural.Member {
	t.Helper()
	start := &structural.Node{ID: "a", X: 0, Y: 0}
	end := &structural.Node{ID: "b", X: length, Y: 0}
	m, err := structural.NewMember("m1", structural.MemberBeam, start, end)
	if err != nil {
		t.Fatalf("building member: %v", err)
	}
	m.Loads = loads
	return m
}

func within(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s: got %.6f, want %.6f", what, got, want)
	}
}

func TestFixedEndUDL(t *testing.T) {
	// Fixed-fixed span under full UDL: wL²/12 at both ends.
	m := testMember(t, 6, structural.Load{
		Kind: structural.LoadUDL, Start: 0, Span: 6, Intensity: 10,
	})
	fem := FixedEnd(m, 0)
	within(t, fem.Start, -30, 1e-9, "FEM start")
	within(t, fem.End, 30, 1e-9, "FEM end")
}

func TestFixedEndMidspanPoint(t *testing.T) {
	// Midspan point load: PL/8 at both ends.
	m := testMember(t, 8, structural.Load{
		Kind: structural.LoadPoint, Position: 4, Magnitude: 40,
	})
	fem := FixedEnd(m, 0)
	within(t, fem.Start, -40, 1e-9, "FEM start")
	within(t, fem.End, 40, 1e-9, "FEM end")
}

func TestFixedEndOffCenterPoint(t *testing.T) {
	// P·a·b²/L² and P·a²·b/L².
	m := testMember(t, 5, structural.Load{
		Kind: structural.LoadPoint, Position: 2, Magnitude: 25,
	})
	fem := FixedEnd(m, 0)
	within(t, fem.Start, -25*2*9/25.0, 1e-9, "FEM start")
	within(t, fem.End, 25*4*3/25.0, 1e-9, "FEM end")
}

func TestFixedEndTriangular(t *testing.T) {
	// Load rising from 0 at the start to w at the end:
	// wL²/30 start, wL²/20 end.
	const w, l = 9.0, 4.0
	m := testMember(t, l, structural.Load{
		Kind:      structural.LoadVDL,
		HighValue: w, HighPosition: l,
		LowValue: 0, LowPosition: 0,
	})
	fem := FixedEnd(m, 0)
	within(t, fem.Start, -w*l*l/30, 1e-9, "FEM start")
	within(t, fem.End, w*l*l/20, 1e-9, "FEM end")
}

func TestFixedEndPartialUDLSumsToFull(t *testing.T) {
	full := testMember(t, 6, structural.Load{
		Kind: structural.LoadUDL, Start: 0, Span: 6, Intensity: 15,
	})
	halves := testMember(t, 6,
		structural.Load{Kind: structural.LoadUDL, Start: 0, Span: 3, Intensity: 15},
		structural.Load{Kind: structural.LoadUDL, Start: 3, Span: 3, Intensity: 15},
	)
	a, b := FixedEnd(full, 0), FixedEnd(halves, 0)
	within(t, b.Start, a.Start, 1e-9, "split start")
	within(t, b.End, a.End, 1e-9, "split end")
}

func TestFixedEndSettlement(t *testing.T) {
	m := testMember(t, 4)
	m.E, m.I = 2, 3
	const delta = 0.01
	fem := FixedEnd(m, delta)
	want := 6 * 2 * 3 * delta / 16
	within(t, fem.Start, want, 1e-12, "settlement start")
	within(t, fem.End, want, 1e-12, "settlement end")
}

func TestFixedEndUnloaded(t *testing.T) {
	fem := FixedEnd(testMember(t, 5), 0)
	if fem.Start != 0 || fem.End != 0 {
		t.Fatalf("unloaded member FEM = (%v, %v), want (0, 0)", fem.Start, fem.End)
	}
}
