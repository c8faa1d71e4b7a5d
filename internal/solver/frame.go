package solver

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/goframe/internal/structural"
)

// swayTolerance is the story shear residual (kN) above which a
// zero-sway trial solve is judged unable to satisfy horizontal
// equilibrium, classifying the frame as unbraced.
const swayTolerance = 1e-6

// frameSystem carries the indexing of a frame's unknowns: one rotation
// per free joint, plus one story translation per story level when the
// frame sways. Story levels are the distinct column-top elevations,
// ordered bottom-up; the ground level carries no unknown.
type frameSystem struct {
	model     *structural.Model
	fems      []FEMPair
	rotations map[*structural.Node]int
	levels    []float64 // story elevations with a translation unknown
	levelOf   map[float64]int
	withSway  bool
}

// SolveFrame runs the slope-deflection method on a 2D frame of beams
// and columns meeting at shared nodes. The frame is first solved with
// sway suppressed; if the implied story shears cannot balance the
// applied horizontal loads the frame is classified swaying and
// re-solved with story translation unknowns included.
func SolveFrame(model *structural.Model, opts Options) (*Result, error) {
	if err := model.Validate(structural.ModeFrame); err != nil {
		return nil, err
	}

	sys := newFrameSystem(model)

	theta, err := sys.solve(false)
	if err != nil {
		return nil, err
	}
	sway := sys.maxStoryResidual(theta) > swayTolerance
	if sway {
		theta, err = sys.solve(true)
		if err != nil {
			return nil, err
		}
	}

	res := &Result{Sway: &sway}
	endMoments := make([]FEMPair, len(model.Members))
	for i, m := range model.Members {
		endMoments[i] = sys.endMoments(m, i, theta)
		res.FEMs = append(res.FEMs, MemberFEM{MemberID: m.ID, Start: sys.fems[i].Start, End: sys.fems[i].End})
		res.EndMoments = append(res.EndMoments, MemberEndMoments{
			MemberID: m.ID, Left: endMoments[i].Start, Right: endMoments[i].End,
		})
	}

	axials, err := sys.recoverAxials(endMoments)
	if err != nil {
		return nil, err
	}
	res.Reactions = sys.reactions(endMoments, axials)
	for i, m := range model.Members {
		res.Diagrams = append(res.Diagrams,
			sampleMember(m, endMoments[i].Start, endMoments[i].End, axials[i], opts.resolution()))
	}
	return res, nil
}

func newFrameSystem(model *structural.Model) *frameSystem {
	sys := &frameSystem{
		model:     model,
		rotations: make(map[*structural.Node]int),
		levelOf:   make(map[float64]int),
	}
	for _, m := range model.Members {
		// Frame mode ignores settlement by construction.
		sys.fems = append(sys.fems, FixedEnd(m, 0))
	}
	for _, n := range model.Nodes {
		if n.SupportKind() != structural.SupportFixed {
			sys.rotations[n] = len(sys.rotations)
		}
	}
	// Story levels: distinct top-node elevations of columns. The
	// lowest column bottom is the ground and does not translate.
	seen := map[float64]bool{}
	for _, m := range model.Members {
		if m.Kind != structural.MemberColumn {
			continue
		}
		_, top := columnEnds(m)
		if !seen[top.Y] {
			seen[top.Y] = true
			sys.levels = append(sys.levels, top.Y)
		}
	}
	sort.Float64s(sys.levels)
	for i, y := range sys.levels {
		sys.levelOf[y] = i
	}
	return sys
}

// columnEnds normalizes a column to (bottom, top) regardless of how
// the member was entered.
func columnEnds(m *structural.Member) (bottom, top *structural.Node) {
	if m.Start.Y <= m.End.Y {
		return m.Start, m.End
	}
	return m.End, m.Start
}

// translationIndex returns the unknown index of the story translation
// at elevation y, or -1 when that elevation does not translate (ground
// or sway suppressed).
func (s *frameSystem) translationIndex(y float64) int {
	if !s.withSway {
		return -1
	}
	i, ok := s.levelOf[y]
	if !ok {
		return -1
	}
	return len(s.rotations) + i
}

func (s *frameSystem) size() int {
	n := len(s.rotations)
	if s.withSway {
		n += len(s.levels)
	}
	return n
}

func (s *frameSystem) solve(withSway bool) ([]float64, error) {
	s.withSway = withSway
	n := s.size()
	if n == 0 {
		return nil, nil
	}
	a := mat.NewDense(n, n, nil)
	b := make([]float64, n)

	// Joint moment equilibrium rows.
	for _, node := range s.model.Nodes {
		if row, free := s.rotations[node]; free {
			b[row] = node.MZ
		}
	}
	for i, m := range s.model.Members {
		s.addMemberRows(a, b, m, s.fems[i])
	}

	// Story shear equilibrium rows, one per translating level.
	if withSway {
		for li, y := range s.levels {
			row := len(s.rotations) + li
			b[row] = s.storyLoad(y)
			for i, m := range s.model.Members {
				if m.Kind != structural.MemberColumn {
					continue
				}
				bottom, top := columnEnds(m)
				if top.Y < y || bottom.Y >= y {
					continue // column does not cross this story
				}
				s.addColumnShear(a, b, m, s.fems[i], row)
			}
		}
	}
	return solveDense(a, b)
}

// addMemberRows folds both end moments of a member into the rotation
// equilibrium rows, including the sway coupling for columns.
func (s *frameSystem) addMemberRows(a *mat.Dense, b []float64, m *structural.Member, fem FEMPair) {
	k := 2 * m.Stiffness()
	ends := [2]struct {
		near, far *structural.Node
		fem       float64
	}{
		{m.Start, m.End, fem.Start},
		{m.End, m.Start, fem.End},
	}
	for _, e := range ends {
		row, free := s.rotations[e.near]
		if !free {
			continue
		}
		a.Set(row, row, a.At(row, row)+2*k)
		if col, farFree := s.rotations[e.far]; farFree {
			a.Set(row, col, a.At(row, col)+k)
		}
		b[row] -= e.fem
		if m.Kind == structural.MemberColumn {
			s.addSwayCoupling(a, row, m, 1)
		}
	}
}

// addSwayCoupling adds the −6EIΔ/h² sway term of a column's end
// moment into row, scaled by factor.
func (s *frameSystem) addSwayCoupling(a *mat.Dense, row int, m *structural.Member, factor float64) {
	h := m.Length()
	c := 6 * m.E * m.I / (h * h) * factor
	bottom, top := columnEnds(m)
	if col := s.translationIndex(top.Y); col >= 0 {
		a.Set(row, col, a.At(row, col)-c)
	}
	if col := s.translationIndex(bottom.Y); col >= 0 {
		a.Set(row, col, a.At(row, col)+c)
	}
}

// addColumnShear folds a column's shear −(M_bottom + M_top)/h into a
// story equilibrium row.
func (s *frameSystem) addColumnShear(a *mat.Dense, b []float64, m *structural.Member, fem FEMPair, row int) {
	h := m.Length()
	k := 2 * m.Stiffness()
	bottom, top := columnEnds(m)
	// -(M_bottom + M_top)/h expanded over the unknowns.
	for _, node := range []*structural.Node{bottom, top} {
		if col, free := s.rotations[node]; free {
			a.Set(row, col, a.At(row, col)-3*k/h)
		}
	}
	c := 12 * m.E * m.I / (h * h * h)
	if col := s.translationIndex(top.Y); col >= 0 {
		a.Set(row, col, a.At(row, col)+c)
	}
	if col := s.translationIndex(bottom.Y); col >= 0 {
		a.Set(row, col, a.At(row, col)-c)
	}
	b[row] += (fem.Start + fem.End) / h
}

// storyLoad sums the applied horizontal nodal loads at or above the
// story elevation y.
func (s *frameSystem) storyLoad(y float64) float64 {
	var sum float64
	for _, n := range s.model.Nodes {
		if n.Y >= y-1e-9 {
			sum += n.FX
		}
	}
	return sum
}

// endMoments back-substitutes the solved unknowns into a member's
// slope-deflection equations.
func (s *frameSystem) endMoments(m *structural.Member, i int, theta []float64) FEMPair {
	k := 2 * m.Stiffness()
	ta := s.rotation(theta, m.Start)
	tb := s.rotation(theta, m.End)
	out := FEMPair{
		Start: s.fems[i].Start + k*(2*ta+tb),
		End:   s.fems[i].End + k*(2*tb+ta),
	}
	if m.Kind == structural.MemberColumn && s.withSway {
		h := m.Length()
		bottom, top := columnEnds(m)
		delta := s.translation(theta, top.Y) - s.translation(theta, bottom.Y)
		sway := -6 * m.E * m.I * delta / (h * h)
		out.Start += sway
		out.End += sway
	}
	return out
}

func (s *frameSystem) rotation(theta []float64, n *structural.Node) float64 {
	if i, ok := s.rotations[n]; ok && theta != nil {
		return theta[i]
	}
	return 0
}

func (s *frameSystem) translation(theta []float64, y float64) float64 {
	if i := s.translationIndex(y); i >= 0 && theta != nil {
		return theta[i]
	}
	return 0
}

// maxStoryResidual evaluates, for a zero-sway solution, how far each
// story is from horizontal equilibrium. A non-negligible residual
// means rotations alone cannot balance the applied horizontal loads.
func (s *frameSystem) maxStoryResidual(theta []float64) float64 {
	s.withSway = false
	var worst float64
	for _, y := range s.levels {
		residual := -s.storyLoad(y)
		for i, m := range s.model.Members {
			if m.Kind != structural.MemberColumn {
				continue
			}
			bottom, top := columnEnds(m)
			if top.Y < y || bottom.Y >= y {
				continue
			}
			em := s.endMoments(m, i, theta)
			residual -= (em.Start + em.End) / m.Length()
		}
		if r := math.Abs(residual); r > worst {
			worst = r
		}
	}
	return worst
}

// recoverAxials solves the free-joint force balance for the constant
// axial force in each member, least squares over both global
// directions at every unsupported node.
func (s *frameSystem) recoverAxials(endMoments []FEMPair) ([]float64, error) {
	axials := make([]float64, len(s.model.Members))
	var freeNodes []*structural.Node
	for _, n := range s.model.Nodes {
		if n.SupportKind() == structural.SupportNone {
			freeNodes = append(freeNodes, n)
		}
	}
	if len(freeNodes) == 0 {
		return axials, nil
	}
	rows := 2 * len(freeNodes)
	a := mat.NewDense(rows, len(s.model.Members), nil)
	b := make([]float64, rows)
	for ni, n := range freeNodes {
		rx, ry := 2*ni, 2*ni+1
		b[rx] -= n.FX
		b[ry] -= n.FY
		for mi, m := range s.model.Members {
			var atStart bool
			switch n {
			case m.Start:
				atStart = true
			case m.End:
				atStart = false
			default:
				continue
			}
			ux, uy, dx, dy := m.Axis()
			v0 := startShear(m, endMoments[mi].Start, endMoments[mi].End)
			var transverse float64
			if atStart {
				transverse = v0
			} else {
				total, _ := spanTotals(m)
				transverse = total - v0
			}
			// The member presses on the joint along local "down" with
			// its end shear; tension pulls the joint toward the far end.
			b[rx] -= transverse * dx
			b[ry] -= transverse * dy
			if atStart {
				a.Set(rx, mi, ux)
				a.Set(ry, mi, uy)
			} else {
				a.Set(rx, mi, -ux)
				a.Set(ry, mi, -uy)
			}
		}
	}
	solved, err := solveLeastSquares(a, b)
	if err != nil {
		return nil, err
	}
	copy(axials, solved)
	return axials, nil
}

// reactions balances each supported joint: the reaction opposes the
// member end forces arriving at the node plus any applied action.
func (s *frameSystem) reactions(endMoments []FEMPair, axials []float64) []Reaction {
	var out []Reaction
	for _, n := range s.model.Nodes {
		if n.SupportKind() == structural.SupportNone {
			continue
		}
		var fx, fy, mz float64
		for mi, m := range s.model.Members {
			var atStart bool
			switch n {
			case m.Start:
				atStart = true
			case m.End:
				atStart = false
			default:
				continue
			}
			ux, uy, dx, dy := m.Axis()
			v0 := startShear(m, endMoments[mi].Start, endMoments[mi].End)
			var transverse, moment float64
			if atStart {
				transverse = v0
				moment = endMoments[mi].Start
			} else {
				total, _ := spanTotals(m)
				transverse = total - v0
				moment = endMoments[mi].End
			}
			axialSign := -1.0
			if !atStart {
				axialSign = 1
			}
			// Reaction components supplied to hold the member end.
			fx += -dx*transverse + axialSign*ux*axials[mi]
			fy += -dy*transverse + axialSign*uy*axials[mi]
			mz += moment
		}
		r := Reaction{NodeID: n.ID, X: fx - n.FX, Y: fy - n.FY}
		if n.SupportKind() == structural.SupportFixed {
			r.M = mz - n.MZ
		}
		out = append(out, r)
	}
	return out
}
