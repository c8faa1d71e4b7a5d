package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/goframe/internal/structural"
)

// SolveBeam runs the slope-deflection method on an ordered chain of
// collinear beam spans. Unknowns are the rotations of every non-fixed
// support; each row enforces moment equilibrium at that joint against
// the applied nodal moment. Support settlement differentials between
// adjacent supports enter through the fixed-end moments.
func SolveBeam(line *structural.BeamLine, opts Options) (*Result, error) {
	// FEMs, including the pairwise settlement differential between the
	// span's two boundary supports (left-to-right order).
	fems := make([]FEMPair, len(line.Spans))
	for i, sp := range line.Spans {
		delta := sp.End.Settlement() - sp.Start.Settlement()
		fems[i] = FixedEnd(sp, delta)
	}

	// One rotational unknown per non-fixed joint.
	index := make(map[*structural.Node]int)
	for _, n := range line.Supports {
		if n.SupportKind() != structural.SupportFixed {
			index[n] = len(index)
		}
	}

	theta, err := solveBeamRotations(line, fems, index)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	endMoments := make([]FEMPair, len(line.Spans))
	for i, sp := range line.Spans {
		k := 2 * sp.Stiffness()
		ta, tb := rotationOf(theta, index, sp.Start), rotationOf(theta, index, sp.End)
		endMoments[i] = FEMPair{
			Start: fems[i].Start + k*(2*ta+tb),
			End:   fems[i].End + k*(2*tb+ta),
		}
		res.FEMs = append(res.FEMs, MemberFEM{MemberID: sp.ID, Start: fems[i].Start, End: fems[i].End})
		res.EndMoments = append(res.EndMoments, MemberEndMoments{
			MemberID: sp.ID, Left: endMoments[i].Start, Right: endMoments[i].End,
		})
	}

	res.Reactions = beamReactions(line, endMoments)
	for i, sp := range line.Spans {
		res.Diagrams = append(res.Diagrams,
			sampleMember(sp, endMoments[i].Start, endMoments[i].End, 0, opts.resolution()))
	}
	return res, nil
}

func solveBeamRotations(line *structural.BeamLine, fems []FEMPair, index map[*structural.Node]int) ([]float64, error) {
	n := len(index)
	if n == 0 {
		return nil, nil
	}
	a := mat.NewDense(n, n, nil)
	b := make([]float64, n)
	for _, node := range line.Supports {
		row, free := index[node]
		if !free {
			continue
		}
		b[row] = node.MZ
	}
	for i, sp := range line.Spans {
		k := 2 * sp.Stiffness()
		addEndEquation(a, b, index, sp.Start, sp.End, k, fems[i].Start)
		addEndEquation(a, b, index, sp.End, sp.Start, k, fems[i].End)
	}
	return solveDense(a, b)
}

// addEndEquation folds one member end moment
// M = FEM + k(2θ_near + θ_far) into the equilibrium row of its near
// joint, when that joint is free.
func addEndEquation(a *mat.Dense, b []float64, index map[*structural.Node]int, near, far *structural.Node, k, fem float64) {
	row, free := index[near]
	if !free {
		return
	}
	a.Set(row, row, a.At(row, row)+2*k)
	if col, farFree := index[far]; farFree {
		a.Set(row, col, a.At(row, col)+k)
	}
	b[row] -= fem
}

func rotationOf(theta []float64, index map[*structural.Node]int, n *structural.Node) float64 {
	if i, ok := index[n]; ok {
		return theta[i]
	}
	return 0
}

// beamReactions accumulates per-span static end shears onto the shared
// support nodes, subtracting any applied nodal vertical force, and
// reports fixity moments at fixed supports.
func beamReactions(line *structural.BeamLine, endMoments []FEMPair) []Reaction {
	ry := make(map[*structural.Node]float64)
	rm := make(map[*structural.Node]float64)
	for i, sp := range line.Spans {
		v0 := startShear(sp, endMoments[i].Start, endMoments[i].End)
		total, _ := spanTotals(sp)
		ry[sp.Start] += v0
		ry[sp.End] += total - v0
		rm[sp.Start] += endMoments[i].Start
		rm[sp.End] += endMoments[i].End
	}
	var reactions []Reaction
	for _, n := range line.Supports {
		if n.SupportKind() == structural.SupportNone {
			continue
		}
		r := Reaction{NodeID: n.ID, Y: ry[n] - n.FY}
		if n.SupportKind() == structural.SupportFixed {
			r.M = rm[n] - n.MZ
		}
		reactions = append(reactions, r)
	}
	return reactions
}
