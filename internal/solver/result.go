package solver

import "github.com/alexiusacademia/goframe/internal/structural"

// DefaultResolution is the number of sampling stations per member used
// for the internal-force diagrams when the caller does not choose one.
const DefaultResolution = 21

// Options tunes a solve.
type Options struct {
	// Resolution is the number of diagram sample points per member,
	// minimum 2. Zero selects DefaultResolution.
	Resolution int
}

func (o Options) resolution() int {
	if o.Resolution < 2 {
		return DefaultResolution
	}
	return o.Resolution
}

// MemberFEM is the fixed-end moment pair of one member.
type MemberFEM struct {
	MemberID   string
	Start, End float64
}

// MemberEndMoments is the final solved end-moment pair of one member
// (kN·m, anticlockwise positive).
type MemberEndMoments struct {
	MemberID    string
	Left, Right float64
}

// Reaction is the support reaction at a node in global axes: X and Y
// in kN (positive right/up), M in kN·m anticlockwise. X and M are only
// populated where the support restrains them.
type Reaction struct {
	NodeID  string
	X, Y, M float64
}

// DiagramPoint is one internal-force sample along a member's local
// axis: X in metres from the start, Shear and Axial in kN, Moment in
// kN·m sagging positive.
type DiagramPoint struct {
	X      float64
	Shear  float64
	Moment float64
	Axial  float64
}

// MemberDiagram is the sampled internal-force diagram of one member.
type MemberDiagram struct {
	MemberID string
	Points   []DiagramPoint
}

// Result is the common output of both solvers. Sway is nil for beam
// mode and reports the sidesway classification for frames.
type Result struct {
	FEMs       []MemberFEM
	EndMoments []MemberEndMoments
	Reactions  []Reaction
	Diagrams   []MemberDiagram
	Sway       *bool
}

// sampleMember derives a member's diagram by superposing the solved
// end moments with the direct static effect of the raw loads at each
// station. No re-solving happens here.
func sampleMember(m *structural.Member, mStart, mEnd, axial float64, resolution int) MemberDiagram {
	length := m.Length()
	v0 := startShear(m, mStart, mEnd)
	points := make([]DiagramPoint, resolution)
	for i := 0; i < resolution; i++ {
		x := length * float64(i) / float64(resolution-1)
		var shear, moment float64
		shear = v0
		moment = mStart + v0*x
		for _, l := range m.Loads {
			shear -= loadShearAt(l, x)
			moment -= loadMomentAt(l, x)
		}
		points[i] = DiagramPoint{X: x, Shear: shear, Moment: moment, Axial: axial}
	}
	return MemberDiagram{MemberID: m.ID, Points: points}
}
