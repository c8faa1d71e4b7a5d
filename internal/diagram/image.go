package diagram

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/goframe/internal/solver"
)

// Export writes a member's internal-force diagram to an image file
// (png, svg or pdf, by extension).
func Export(d solver.MemberDiagram, q Quantity, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - member %s", q, d.MemberID)
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = q.String()

	curve := make(plotter.XYs, len(d.Points))
	for i, pt := range d.Points {
		curve[i] = plotter.XY{X: pt.X, Y: q.value(pt)}
	}

	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	// Zero axis for reading sign changes.
	if n := len(d.Points); n > 0 {
		zero, err := plotter.NewLine(plotter.XYs{
			{X: d.Points[0].X, Y: 0},
			{X: d.Points[n-1].X, Y: 0},
		})
		if err != nil {
			return err
		}
		zero.LineStyle.Width = vg.Points(1)
		zero.LineStyle.Color = color.Black
		zero.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(zero)
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
