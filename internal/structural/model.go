package structural

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

// AnalysisMode selects how a model is solved.
type AnalysisMode int

const (
	ModeBeam AnalysisMode = iota
	ModeFrame
)

func (m AnalysisMode) String() string {
	if m == ModeFrame {
		return "frame"
	}
	return "beam"
}

// Model is the assembled structure handed to the solvers. It is built
// once per solve and discarded afterward; solvers never mutate it.
type Model struct {
	Nodes   []*Node
	Members []*Member

	nodeByID map[string]*Node
}

// Node returns a node by id, nil when absent.
func (m *Model) Node(id string) *Node {
	return m.nodeByID[id]
}

// NodalAction is one external action applied at a node. Multiple
// actions targeting the same node are additive.
type NodalAction struct {
	Node string  `json:"node"`
	FX   float64 `json:"fx"`
	FY   float64 `json:"fy"`
	MZ   float64 `json:"mz"`
}

type jsonSupport struct {
	Kind       string  `json:"kind"`
	Settlement float64 `json:"settlement"`
}

type jsonNode struct {
	ID      string       `json:"id"`
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
	Support *jsonSupport `json:"support,omitempty"`
}

type jsonLoad struct {
	Kind         string  `json:"kind"`
	Position     float64 `json:"position"`
	Magnitude    float64 `json:"magnitude"`
	Start        float64 `json:"start"`
	Span         float64 `json:"span"`
	Intensity    float64 `json:"intensity"`
	HighValue    float64 `json:"highValue"`
	HighPosition float64 `json:"highPosition"`
	LowValue     float64 `json:"lowValue"`
	LowPosition  float64 `json:"lowPosition"`
}

type jsonMember struct {
	ID    string     `json:"id"`
	Kind  string     `json:"kind"`
	Start string     `json:"start"`
	End   string     `json:"end"`
	E     float64    `json:"e"`
	I     float64    `json:"i"`
	B     float64    `json:"b"`
	H     float64    `json:"h"`
	Slab  float64    `json:"slab"`
	Loads []jsonLoad `json:"loads"`
}

type jsonModel struct {
	Nodes   []jsonNode    `json:"nodes"`
	Members []jsonMember  `json:"members"`
	Actions []NodalAction `json:"actions"`
}

// DecodeModel builds a Model from its JSON representation, applying
// the nodal-action reduction and structural validation for the given
// analysis mode.
func DecodeModel(data []byte, mode AnalysisMode) (*Model, error) {
	var jm jsonModel
	if err := json.Unmarshal(data, &jm); err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}

	m := &Model{nodeByID: make(map[string]*Node, len(jm.Nodes))}
	for _, jn := range jm.Nodes {
		if jn.ID == "" {
			return nil, &ValidationError{Entity: "node", Msg: "missing id"}
		}
		if m.nodeByID[jn.ID] != nil {
			return nil, &ValidationError{Entity: "node " + jn.ID, Msg: "duplicate id"}
		}
		n := &Node{ID: jn.ID, X: jn.X, Y: jn.Y}
		if jn.Support != nil {
			kind, err := ParseSupportKind(jn.Support.Kind)
			if err != nil {
				return nil, &ValidationError{Entity: "node " + jn.ID, Msg: err.Error()}
			}
			if kind != SupportNone {
				settlement := jn.Support.Settlement
				if mode == ModeFrame {
					// Settlement is a beam-mode concept only.
					settlement = 0
				}
				n.Support = &Support{Kind: kind, Settlement: settlement}
			}
		}
		m.Nodes = append(m.Nodes, n)
		m.nodeByID[jn.ID] = n
	}

	for i, jmem := range jm.Members {
		id := jmem.ID
		if id == "" {
			id = fmt.Sprintf("m%d", i+1)
		}
		kind, err := ParseMemberKind(jmem.Kind)
		if err != nil {
			return nil, &ValidationError{Entity: "member " + id, Msg: err.Error()}
		}
		start := m.nodeByID[jmem.Start]
		end := m.nodeByID[jmem.End]
		if start == nil || end == nil {
			return nil, &ValidationError{
				Entity: "member " + id,
				Msg:    fmt.Sprintf("references unknown node %q or %q", jmem.Start, jmem.End),
			}
		}
		mem, err := NewMember(id, kind, start, end)
		if err != nil {
			return nil, err
		}
		if jmem.E > 0 {
			mem.E = jmem.E
		}
		if jmem.I > 0 {
			mem.I = jmem.I
		}
		mem.B, mem.H, mem.SlabThickness = jmem.B, jmem.H, jmem.Slab
		for j, jl := range jmem.Loads {
			lk, err := ParseLoadKind(jl.Kind)
			if err != nil {
				return nil, &ValidationError{
					Entity: fmt.Sprintf("member %s load %d", id, j+1),
					Msg:    err.Error(),
				}
			}
			mem.Loads = append(mem.Loads, Load{
				Kind:         lk,
				Position:     jl.Position,
				Magnitude:    jl.Magnitude,
				Start:        jl.Start,
				Span:         jl.Span,
				Intensity:    jl.Intensity,
				HighValue:    jl.HighValue,
				HighPosition: jl.HighPosition,
				LowValue:     jl.LowValue,
				LowPosition:  jl.LowPosition,
			})
		}
		m.Members = append(m.Members, mem)
	}

	if err := m.AccumulateActions(jm.Actions); err != nil {
		return nil, err
	}

	if err := m.Validate(mode); err != nil {
		return nil, err
	}
	return m, nil
}

// AccumulateActions reduces a list of nodal actions onto the nodes as
// a single additive pass. An action naming an unknown node is a
// *ValidationError.
func (m *Model) AccumulateActions(actions []NodalAction) error {
	for _, a := range actions {
		n := m.nodeByID[a.Node]
		if n == nil {
			return &ValidationError{
				Entity: "action on node " + a.Node,
				Msg:    "unknown node",
			}
		}
		n.FX += a.FX
		n.FY += a.FY
		n.MZ += a.MZ
	}
	return nil
}

// Validate rejects models that cannot be solved in the given mode
// before any assembly begins.
func (m *Model) Validate(mode AnalysisMode) error {
	if len(m.Members) == 0 {
		return &ValidationError{Entity: "model", Msg: "no members"}
	}
	for _, mem := range m.Members {
		if mem.Length() <= 0 {
			return &ValidationError{Entity: "member " + mem.ID, Msg: "zero length"}
		}
		if mem.E <= 0 || mem.I <= 0 {
			return &ValidationError{Entity: "member " + mem.ID, Msg: "non-positive stiffness"}
		}
		if mode == ModeFrame && mem.Kind == MemberInclined {
			return &ValidationError{
				Entity: "member " + mem.ID,
				Msg:    "inclined members are not supported in frame analysis",
			}
		}
	}
	// Vertical nodal loads need a vertical load path. The solvers carry
	// no vertical translation unknowns, so a FY at a node that neither a
	// support nor a column axial can carry would silently unbalance the
	// reactions.
	for _, n := range m.Nodes {
		if n.FY == 0 || n.SupportKind() != SupportNone {
			continue
		}
		if mode == ModeBeam {
			return &ValidationError{
				Entity: "node " + n.ID,
				Msg:    "vertical load on an unsupported node",
			}
		}
		if !m.hasColumnAt(n) {
			return &ValidationError{
				Entity: "node " + n.ID,
				Msg:    "vertical load at a joint with no column or support to carry it",
			}
		}
	}
	if mode == ModeFrame {
		if err := m.checkConnected(); err != nil {
			return err
		}
		supported := false
		for _, n := range m.Nodes {
			if n.SupportKind() != SupportNone {
				supported = true
				break
			}
		}
		if !supported {
			return &ValidationError{Entity: "model", Msg: "no supports"}
		}
	}
	return nil
}

func (m *Model) hasColumnAt(n *Node) bool {
	for _, mem := range m.Members {
		if mem.Kind != MemberColumn {
			continue
		}
		if mem.Start == n || mem.End == n {
			return true
		}
	}
	return false
}

func (m *Model) checkConnected() error {
	if len(m.Members) == 0 {
		return nil
	}
	adj := make(map[*Node][]*Node)
	for _, mem := range m.Members {
		adj[mem.Start] = append(adj[mem.Start], mem.End)
		adj[mem.End] = append(adj[mem.End], mem.Start)
	}
	seen := map[*Node]bool{m.Members[0].Start: true}
	queue := []*Node{m.Members[0].Start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, next := range adj[n] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	for _, mem := range m.Members {
		if !seen[mem.Start] || !seen[mem.End] {
			return &ValidationError{Entity: "member " + mem.ID, Msg: "disconnected from the structure"}
		}
	}
	return nil
}

// BeamLine is an ordered chain of collinear beam spans, the input to
// the continuous-beam solver. Supports holds the span boundary nodes
// in left-to-right spatial order; settlement differentials are taken
// pairwise between adjacent entries of this list.
type BeamLine struct {
	Spans    []*Member
	Supports []*Node
}

// BeamLineOf extracts the continuous beam from a model: all members
// must be beams and must chain end-to-start left to right.
func BeamLineOf(m *Model) (*BeamLine, error) {
	spans := make([]*Member, 0, len(m.Members))
	for _, mem := range m.Members {
		if mem.Kind != MemberBeam {
			return nil, &ValidationError{
				Entity: "member " + mem.ID,
				Msg:    fmt.Sprintf("%s member in a continuous-beam model", mem.Kind),
			}
		}
		spans = append(spans, mem)
	}
	if len(spans) == 0 {
		return nil, &ValidationError{Entity: "model", Msg: "no beam spans"}
	}
	// Left-to-right spatial order, regardless of input build order.
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start.X < spans[j].Start.X
	})
	line := &BeamLine{Spans: spans, Supports: []*Node{spans[0].Start}}
	for i, sp := range spans {
		if sp.End.X < sp.Start.X {
			return nil, &ValidationError{Entity: "member " + sp.ID, Msg: "span runs right to left"}
		}
		if i > 0 && sp.Start != spans[i-1].End {
			return nil, &ValidationError{
				Entity: "member " + sp.ID,
				Msg:    fmt.Sprintf("does not chain from member %s", spans[i-1].ID),
			}
		}
		line.Supports = append(line.Supports, sp.End)
	}
	return line, nil
}
