package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/goframe/internal/structural"
)

func decodeFrame(t *testing.T, model string) *structural.Model {
	t.Helper()
	m, err := structural.DecodeModel([]byte(model), structural.ModeFrame)
	if err != nil {
		t.Fatalf("decoding model: %v", err)
	}
	return m
}

const portalFrame = `{
	"nodes": [
		{"id": "A", "x": 0, "y": 0, "support": {"kind": "fixed"}},
		{"id": "B", "x": 0, "y": 3},
		{"id": "C", "x": 6, "y": 3},
		{"id": "D", "x": 6, "y": 0, "support": {"kind": "fixed"}}
	],
	"members": [
		{"id": "AB", "kind": "column", "start": "A", "end": "B"},
		{"id": "BC", "kind": "beam", "start": "B", "end": "C",
		 "loads": [{"kind": "udl", "start": 0, "span": 6, "intensity": 12}]},
		{"id": "CD", "kind": "column", "start": "C", "end": "D"}
	]
}`

func TestSolveFrameSymmetricPortalIsBraced(t *testing.T) {
	res, err := SolveFrame(decodeFrame(t, portalFrame), Options{})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Sway == nil {
		t.Fatal("frame solve must classify sidesway")
	}
	if *res.Sway {
		t.Fatal("symmetric gravity portal classified as swaying")
	}

	moments := endMomentMap(res)
	// Hand solution: θB = -θC = 21.6/EI with these proportions.
	within(t, moments["AB"].Left, 14.4, 1e-6, "column base moment at A")
	within(t, moments["AB"].Right, 28.8, 1e-6, "column top moment at B")
	within(t, moments["BC"].Left, -28.8, 1e-6, "beam end moment at B")
	within(t, moments["BC"].Right, 28.8, 1e-6, "beam end moment at C")

	// Joint equilibrium at B: column and beam moments cancel.
	within(t, moments["AB"].Right+moments["BC"].Left, 0, 1e-9, "joint B equilibrium")

	reactions := reactionMap(res)
	within(t, reactions["A"].Y, 36, 1e-6, "vertical reaction at A")
	within(t, reactions["D"].Y, 36, 1e-6, "vertical reaction at D")

	// Gravity on a portal produces equal and opposite base thrusts.
	within(t, reactions["A"].X+reactions["D"].X, 0, 1e-9, "horizontal equilibrium")
	within(t, math.Abs(reactions["A"].X), 14.4, 1e-6, "base thrust magnitude")

	// Columns carry the beam end shears in compression.
	within(t, diagramFor(res, "AB").Points[0].Axial, -36, 1e-6, "column axial force")
}

func TestSolveFrameLateralLoadSways(t *testing.T) {
	model := decodeFrame(t, `{
		"nodes": [
			{"id": "A", "x": 0, "y": 0, "support": {"kind": "fixed"}},
			{"id": "B", "x": 0, "y": 3},
			{"id": "C", "x": 6, "y": 3},
			{"id": "D", "x": 6, "y": 0, "support": {"kind": "fixed"}}
		],
		"members": [
			{"id": "AB", "kind": "column", "start": "A", "end": "B"},
			{"id": "BC", "kind": "beam", "start": "B", "end": "C"},
			{"id": "CD", "kind": "column", "start": "C", "end": "D"}
		],
		"actions": [{"node": "B", "fx": 20}]
	}`)
	res, err := SolveFrame(model, Options{})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Sway == nil || !*res.Sway {
		t.Fatal("laterally loaded portal not classified as swaying")
	}

	// Story equilibrium: column shears carry the applied 20 kN.
	moments := endMomentMap(res)
	var storyShear float64
	for _, id := range []string{"AB", "CD"} {
		storyShear += -(moments[id].Left + moments[id].Right) / 3
	}
	within(t, storyShear, 20, 1e-6, "story shear")

	// Reactions oppose the applied horizontal load.
	reactions := reactionMap(res)
	within(t, reactions["A"].X+reactions["D"].X, -20, 1e-6, "horizontal reactions")

	// Antisymmetric response: no net vertical load, couple only.
	var vertical float64
	for _, r := range res.Reactions {
		vertical += r.Y
	}
	within(t, vertical, 0, 1e-6, "vertical equilibrium")
}

func TestSolveFrameEquilibrium(t *testing.T) {
	// Unsymmetric two-bay frame: equilibrium must hold regardless of
	// the classification outcome.
	model := decodeFrame(t, `{
		"nodes": [
			{"id": "A", "x": 0, "y": 0, "support": {"kind": "fixed"}},
			{"id": "B", "x": 0, "y": 3},
			{"id": "C", "x": 5, "y": 3},
			{"id": "D", "x": 5, "y": 0, "support": {"kind": "pinned"}},
			{"id": "E", "x": 9, "y": 3},
			{"id": "F", "x": 9, "y": 0, "support": {"kind": "fixed"}}
		],
		"members": [
			{"id": "AB", "kind": "column", "start": "A", "end": "B"},
			{"id": "BC", "kind": "beam", "start": "B", "end": "C",
			 "loads": [{"kind": "udl", "start": 0, "span": 5, "intensity": 18}]},
			{"id": "CD", "kind": "column", "start": "C", "end": "D"},
			{"id": "CE", "kind": "beam", "start": "C", "end": "E",
			 "loads": [{"kind": "point", "position": 1.5, "magnitude": 50}]},
			{"id": "EF", "kind": "column", "start": "E", "end": "F"}
		],
		"actions": [{"node": "B", "fx": 12}]
	}`)
	res, err := SolveFrame(model, Options{})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	var sumX, sumY float64
	for _, r := range res.Reactions {
		sumX += r.X
		sumY += r.Y
	}
	appliedVertical := 18*5 + 50.0
	if rel := math.Abs(sumY-appliedVertical) / appliedVertical; rel > 1e-6 {
		t.Fatalf("vertical equilibrium violated: reactions %.9f, applied %.2f", sumY, appliedVertical)
	}
	within(t, sumX, -12, 1e-6, "horizontal equilibrium")
}

func TestSolveFrameNodalVerticalAtColumnJoint(t *testing.T) {
	// A vertical nodal load at a column-top joint travels down the
	// column into its base reaction.
	model := decodeFrame(t, `{
		"nodes": [
			{"id": "A", "x": 0, "y": 0, "support": {"kind": "fixed"}},
			{"id": "B", "x": 0, "y": 3},
			{"id": "C", "x": 6, "y": 3},
			{"id": "D", "x": 6, "y": 0, "support": {"kind": "fixed"}}
		],
		"members": [
			{"id": "AB", "kind": "column", "start": "A", "end": "B"},
			{"id": "BC", "kind": "beam", "start": "B", "end": "C"},
			{"id": "CD", "kind": "column", "start": "C", "end": "D"}
		],
		"actions": [{"node": "B", "fy": -50}]
	}`)
	res, err := SolveFrame(model, Options{})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	reactions := reactionMap(res)
	within(t, reactions["A"].Y, 50, 1e-9, "reaction below the loaded joint")
	within(t, reactions["D"].Y, 0, 1e-9, "reaction at D")

	// The loaded column carries the full load in compression.
	within(t, diagramFor(res, "AB").Points[0].Axial, -50, 1e-9, "column axial force")

	var sum float64
	for _, r := range res.Reactions {
		sum += r.Y
	}
	within(t, sum, 50, 1e-9, "vertical equilibrium")
}

func TestSolveFrameRejectsInclined(t *testing.T) {
	_, err := structural.DecodeModel([]byte(`{
		"nodes": [
			{"id": "A", "x": 0, "y": 0, "support": {"kind": "fixed"}},
			{"id": "B", "x": 3, "y": 3}
		],
		"members": [
			{"id": "AB", "kind": "inclined", "start": "A", "end": "B"}
		]
	}`), structural.ModeFrame)
	var valErr *structural.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError for inclined member, got %v", err)
	}
}

func TestSolveFrameRejectsDisconnected(t *testing.T) {
	_, err := structural.DecodeModel([]byte(`{
		"nodes": [
			{"id": "A", "x": 0, "y": 0, "support": {"kind": "fixed"}},
			{"id": "B", "x": 0, "y": 3},
			{"id": "C", "x": 10, "y": 0, "support": {"kind": "fixed"}},
			{"id": "D", "x": 10, "y": 3}
		],
		"members": [
			{"id": "AB", "kind": "column", "start": "A", "end": "B"},
			{"id": "CD", "kind": "column", "start": "C", "end": "D"}
		]
	}`), structural.ModeFrame)
	var valErr *structural.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError for disconnected frame, got %v", err)
	}
}

func endMomentMap(res *Result) map[string]MemberEndMoments {
	out := make(map[string]MemberEndMoments, len(res.EndMoments))
	for _, em := range res.EndMoments {
		out[em.MemberID] = em
	}
	return out
}

func diagramFor(res *Result, memberID string) MemberDiagram {
	for _, d := range res.Diagrams {
		if d.MemberID == memberID {
			return d
		}
	}
	return MemberDiagram{}
}
