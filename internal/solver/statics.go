package solver

import "github.com/alexiusacademia/goframe/internal/structural"

// Static load effects along a single member, shared by the reaction
// and diagram computations. All formulas integrate the linear
// intensity w(t) = alpha + beta*t over the loaded interval clipped at
// the evaluation position.

// loadTotal returns the resultant transverse force of a load (kN,
// downward positive).
func loadTotal(l structural.Load) float64 {
	if l.Kind == structural.LoadPoint {
		return l.Magnitude
	}
	a, b, alpha, beta := l.Segment()
	return alpha*(b-a) + beta*(b*b-a*a)/2
}

// loadShearAt returns the portion of the load acting left of x.
func loadShearAt(l structural.Load, x float64) float64 {
	if l.Kind == structural.LoadPoint {
		if x >= l.Position {
			return l.Magnitude
		}
		return 0
	}
	a, b, alpha, beta := l.Segment()
	c := clamp(x, a, b)
	return alpha*(c-a) + beta*(c*c-a*a)/2
}

// loadMomentAt returns the moment about x of the load portion left of
// x (kN·m, hogging of the left free body).
func loadMomentAt(l structural.Load, x float64) float64 {
	if l.Kind == structural.LoadPoint {
		if x >= l.Position {
			return l.Magnitude * (x - l.Position)
		}
		return 0
	}
	a, b, alpha, beta := l.Segment()
	c := clamp(x, a, b)
	// x*W - first moment of w about the origin over [a, c]
	w := alpha*(c-a) + beta*(c*c-a*a)/2
	first := alpha*(c*c-a*a)/2 + beta*(c*c*c-a*a*a)/3
	return x*w - first
}

// loadFirstMoment returns the first moment of the full load about the
// member start.
func loadFirstMoment(l structural.Load) float64 {
	if l.Kind == structural.LoadPoint {
		return l.Magnitude * l.Position
	}
	a, b, alpha, beta := l.Segment()
	return alpha*(b*b-a*a)/2 + beta*(b*b*b-a*a*a)/3
}

// spanTotals sums the resultant and its first moment about the start
// for all loads on a member.
func spanTotals(m *structural.Member) (total, firstMoment float64) {
	for _, l := range m.Loads {
		total += loadTotal(l)
		firstMoment += loadFirstMoment(l)
	}
	return total, firstMoment
}

// startShear returns the transverse end force at the member start
// required to hold the span in equilibrium under its loads and the
// solved end moments (both anticlockwise positive). It is the span's
// left support reaction in a beam, and the end shear of a frame
// member in local axes.
func startShear(m *structural.Member, mStart, mEnd float64) float64 {
	length := m.Length()
	total, firstMoment := spanTotals(m)
	// Moments about the end node: V0*L - sum(P*(L-x)) + Mab + Mba = 0
	return (total*length - firstMoment - mStart - mEnd) / length
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
