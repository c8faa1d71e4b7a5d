package structural

import (
	"fmt"
	"math"
)

// MemberKind discriminates the member variants.
type MemberKind int

const (
	MemberBeam MemberKind = iota
	MemberColumn
	MemberInclined
)

func (k MemberKind) String() string {
	switch k {
	case MemberBeam:
		return "beam"
	case MemberColumn:
		return "column"
	case MemberInclined:
		return "inclined"
	}
	return fmt.Sprintf("MemberKind(%d)", int(k))
}

// ParseMemberKind maps the JSON model vocabulary onto a MemberKind.
func ParseMemberKind(s string) (MemberKind, error) {
	switch s {
	case "beam":
		return MemberBeam, nil
	case "column":
		return MemberColumn, nil
	case "inclined":
		return MemberInclined, nil
	}
	return MemberBeam, fmt.Errorf("unknown member kind %q", s)
}

// Node is a joint of the structure. Coordinates are in metres, global
// axes +x right and +y up. FX/FY/MZ are the accumulated nodal actions
// (kN, kN, kN·m anticlockwise positive) produced by AccumulateActions;
// nodes are immutable once the model is built.
type Node struct {
	ID      string
	X, Y    float64
	Support *Support

	FX, FY, MZ float64
}

// SupportKind returns the node's support kind, SupportNone when the
// node is unsupported.
func (n *Node) SupportKind() SupportKind {
	if n.Support == nil {
		return SupportNone
	}
	return n.Support.Kind
}

// Settlement returns the node's support settlement, 0 for unsupported
// nodes.
func (n *Node) Settlement() float64 {
	if n.Support == nil {
		return 0
	}
	return n.Support.Settlement
}

// Member spans two nodes. E and I are relative stiffness values
// (default 1); B, H and SlabThickness are section dimensions in mm
// (0 in analysis-only mode). Members live for a single solve.
type Member struct {
	ID   string
	Kind MemberKind

	Start, End *Node

	E, I float64

	B, H          float64
	SlabThickness float64

	Loads []Load
}

// NewMember builds a member between two existing nodes, rejecting
// coincident ends.
func NewMember(id string, kind MemberKind, start, end *Node) (*Member, error) {
	m := &Member{ID: id, Kind: kind, Start: start, End: end, E: 1, I: 1}
	if m.Length() <= 0 {
		return nil, &ValidationError{
			Entity: "member " + id,
			Msg:    fmt.Sprintf("zero length between nodes %s and %s", start.ID, end.ID),
		}
	}
	return m, nil
}

// Length returns the member length in metres, derived from the node
// coordinates.
func (m *Member) Length() float64 {
	return math.Hypot(m.End.X-m.Start.X, m.End.Y-m.Start.Y)
}

// Angle returns the member inclination from the global x axis in
// radians.
func (m *Member) Angle() float64 {
	return math.Atan2(m.End.Y-m.Start.Y, m.End.X-m.Start.X)
}

// Axis returns the local unit axis (start toward end) and the local
// "down" transverse direction in global coordinates. For a horizontal
// beam the down direction is (0, -1).
func (m *Member) Axis() (ux, uy, dx, dy float64) {
	length := m.Length()
	ux = (m.End.X - m.Start.X) / length
	uy = (m.End.Y - m.Start.Y) / length
	return ux, uy, uy, -ux
}

// Stiffness returns the relative flexural stiffness E*I/L.
func (m *Member) Stiffness() float64 {
	return m.E * m.I / m.Length()
}
