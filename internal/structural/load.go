package structural

import "fmt"

// LoadKind discriminates the load variants.
type LoadKind int

const (
	// LoadPoint is a concentrated force at Position from the member start.
	LoadPoint LoadKind = iota
	// LoadUDL is a uniformly distributed load of Intensity over
	// [Start, Start+Span].
	LoadUDL
	// LoadVDL is a linearly varying load between (HighPosition, HighValue)
	// and (LowPosition, LowValue).
	LoadVDL
)

func (k LoadKind) String() string {
	switch k {
	case LoadPoint:
		return "point"
	case LoadUDL:
		return "udl"
	case LoadVDL:
		return "vdl"
	}
	return fmt.Sprintf("LoadKind(%d)", int(k))
}

// ParseLoadKind maps the JSON model vocabulary onto a LoadKind.
func ParseLoadKind(s string) (LoadKind, error) {
	switch s {
	case "point":
		return LoadPoint, nil
	case "udl":
		return LoadUDL, nil
	case "vdl":
		return LoadVDL, nil
	}
	return LoadPoint, fmt.Errorf("unknown load kind %q", s)
}

// Load is a member load in local coordinates. Positions are measured in
// metres from the member start node along its local axis; transverse
// magnitudes and intensities are positive downward in local terms
// (kN and kN/m).
//
// Only the fields of the active variant are meaningful:
//
//	point: Position, Magnitude
//	udl:   Start, Span, Intensity
//	vdl:   HighValue, HighPosition, LowValue, LowPosition
type Load struct {
	Kind LoadKind

	Position  float64
	Magnitude float64

	Start     float64
	Span      float64
	Intensity float64

	HighValue    float64
	HighPosition float64
	LowValue     float64
	LowPosition  float64
}

// Segment returns the loaded interval [a, b] along the member together
// with the linear intensity w(x) = alpha + beta*x over it. Point loads
// return a zero-length interval with alpha = Magnitude.
func (l Load) Segment() (a, b, alpha, beta float64) {
	switch l.Kind {
	case LoadPoint:
		return l.Position, l.Position, l.Magnitude, 0
	case LoadUDL:
		return l.Start, l.Start + l.Span, l.Intensity, 0
	case LoadVDL:
		x1, w1 := l.HighPosition, l.HighValue
		x2, w2 := l.LowPosition, l.LowValue
		if x1 > x2 {
			x1, x2 = x2, x1
			w1, w2 = w2, w1
		}
		if x2 == x1 {
			return x1, x1, 0, 0
		}
		beta = (w2 - w1) / (x2 - x1)
		return x1, x2, w1 - beta*x1, beta
	}
	return 0, 0, 0, 0
}
