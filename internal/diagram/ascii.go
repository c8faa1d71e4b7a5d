package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/goframe/internal/solver"
)

// Quantity selects which internal force a diagram shows.
type Quantity int

const (
	ShearForce Quantity = iota
	BendingMoment
	AxialForce
)

func (q Quantity) String() string {
	switch q {
	case ShearForce:
		return "Shear Force (kN)"
	case BendingMoment:
		return "Bending Moment (kN·m)"
	case AxialForce:
		return "Axial Force (kN)"
	}
	return fmt.Sprintf("Quantity(%d)", int(q))
}

func (q Quantity) value(p solver.DiagramPoint) float64 {
	switch q {
	case BendingMoment:
		return p.Moment
	case AxialForce:
		return p.Axial
	}
	return p.Shear
}

// Draw renders a member's internal-force diagram as a terminal plot.
func Draw(d solver.MemberDiagram, q Quantity) string {
	series := make([]float64, len(d.Points))
	for i, p := range d.Points {
		series[i] = q.value(p)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s - member %s\n", q, d.MemberID))
	sb.WriteString("  ────────────────────────────────────────────────────────────\n")
	sb.WriteString(asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	))
	sb.WriteString("\n")
	lo, hi, loX, hiX := extrema(d, q)
	if n := len(d.Points); n > 0 {
		sb.WriteString(fmt.Sprintf("  x: 0 .. %.2f m\n", d.Points[n-1].X))
	}
	sb.WriteString(fmt.Sprintf("  max %.2f at x=%.2f m, min %.2f at x=%.2f m\n", hi, hiX, lo, loX))
	return sb.String()
}

func extrema(d solver.MemberDiagram, q Quantity) (lo, hi, loX, hiX float64) {
	for i, p := range d.Points {
		v := q.value(p)
		if i == 0 || v < lo {
			lo, loX = v, p.X
		}
		if i == 0 || v > hi {
			hi, hiX = v, p.X
		}
	}
	return lo, hi, loX, hiX
}
