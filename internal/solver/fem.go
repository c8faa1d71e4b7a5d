package solver

import "github.com/alexiusacademia/goframe/internal/structural"

// FEMPair holds the fixed-end moments of a member in kN·m,
// anticlockwise positive. For a downward load the start moment is
// negative and the end moment positive.
type FEMPair struct {
	Start float64
	End   float64
}

// Add returns the element-wise sum.
func (p FEMPair) Add(q FEMPair) FEMPair {
	return FEMPair{Start: p.Start + q.Start, End: p.End + q.End}
}

// FixedEnd computes a member's fixed-end moments by superposition of
// the closed-form contribution of each load, plus the differential
// settlement term when settlementDelta (settlement at end minus
// settlement at start, metres downward positive) is non-zero.
// An unloaded member with no settlement yields (0, 0).
func FixedEnd(m *structural.Member, settlementDelta float64) FEMPair {
	var fem FEMPair
	length := m.Length()
	for _, l := range m.Loads {
		fem = fem.Add(loadFEM(l, length))
	}
	if settlementDelta != 0 {
		// Chord rotation from the sinking of the far support adds
		// 6*E*I*delta/L² at both ends.
		s := 6 * m.E * m.I * settlementDelta / (length * length)
		fem.Start += s
		fem.End += s
	}
	return fem
}

// loadFEM evaluates the classic fixed-end moment pair of a single
// load. Point loads use P·a·b²/L² and P·a²·b/L² directly; distributed
// loads integrate the same influence kernels x(L−x)²/L² and
// x²(L−x)/L² against the linear intensity, exactly, term by term.
func loadFEM(l structural.Load, length float64) FEMPair {
	switch l.Kind {
	case structural.LoadPoint:
		a := l.Position
		b := length - a
		return FEMPair{
			Start: -l.Magnitude * a * b * b / (length * length),
			End:   l.Magnitude * a * a * b / (length * length),
		}
	case structural.LoadUDL, structural.LoadVDL:
		a, b, alpha, beta := l.Segment()
		if b <= a {
			return FEMPair{}
		}
		b = clamp(b, 0, length)
		a = clamp(a, 0, length)
		start := alpha*startKernel(b, length) + beta*startKernelX(b, length) -
			alpha*startKernel(a, length) - beta*startKernelX(a, length)
		end := alpha*endKernel(b, length) + beta*endKernelX(b, length) -
			alpha*endKernel(a, length) - beta*endKernelX(a, length)
		l2 := length * length
		return FEMPair{Start: -start / l2, End: end / l2}
	}
	return FEMPair{}
}

// Antiderivatives of the fixed-end influence kernels.

// ∫ x(L−x)² dx
func startKernel(x, l float64) float64 {
	return l*l*x*x/2 - 2*l*x*x*x/3 + x*x*x*x/4
}

// ∫ x·x(L−x)² dx
func startKernelX(x, l float64) float64 {
	return l*l*x*x*x/3 - l*x*x*x*x/2 + x*x*x*x*x/5
}

// ∫ x²(L−x) dx
func endKernel(x, l float64) float64 {
	return l*x*x*x/3 - x*x*x*x/4
}

// ∫ x·x²(L−x) dx
func endKernelX(x, l float64) float64 {
	return l*x*x*x*x/4 - x*x*x*x*x/5
}
