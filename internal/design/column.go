package design

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goframe/internal/bs8110"
)

// ColumnStatus is the outcome class of a column design.
type ColumnStatus int

const (
	ColumnSuccess ColumnStatus = iota
	// ColumnTerminated: an out-of-scope design path (slender column,
	// undersized section) was reached. Not an error.
	ColumnTerminated
)

func (s ColumnStatus) String() string {
	if s == ColumnTerminated {
		return "TERMINATED"
	}
	return "SUCCESS"
}

// ColumnInput describes a short braced column design task: axial load
// in kN, section and clear height in mm, strengths in N/mm².
type ColumnInput struct {
	Load        float64
	B, H        float64
	ClearHeight float64
	Fcu, Fy     float64
}

// ColumnResult is the sizing outcome.
type ColumnResult struct {
	Status  ColumnStatus
	Message string

	Slenderness float64

	SteelRequired float64 // mm²
	ProvidedSteel string  // e.g. "4T16"
	ProvidedArea  float64 // mm²
	Links         string  // e.g. "T8 @ 192 mm"
	Utilization   float64 // required/provided
}

// Column sizes a short braced rectangular column under pure axial
// load, N = 0.4·fcu·Ac + 0.75·fy·Asc. Slender columns and undersized
// sections terminate with a message instead of a computed design.
func Column(in ColumnInput) (*ColumnResult, error) {
	if in.B <= 0 || in.H <= 0 || in.ClearHeight <= 0 {
		return nil, fmt.Errorf("invalid column geometry: b=%.2f, h=%.2f, height=%.2f",
			in.B, in.H, in.ClearHeight)
	}
	if in.Fcu <= 0 || in.Fy <= 0 {
		return nil, fmt.Errorf("invalid materials: fcu=%.2f, fy=%.2f", in.Fcu, in.Fy)
	}
	if !isFinite(in.Load) {
		return nil, fmt.Errorf("non-finite axial load: %v", in.Load)
	}

	minDim := math.Min(in.B, in.H)
	res := &ColumnResult{Slenderness: in.ClearHeight / minDim}
	if res.Slenderness > bs8110.ShortColumnLimit {
		res.Status = ColumnTerminated
		res.Message = fmt.Sprintf(
			"slenderness ratio %.2f exceeds the short column limit %.0f: slender column design is not supported",
			res.Slenderness, bs8110.ShortColumnLimit)
		return res, nil
	}

	ag := in.B * in.H
	// N = 0.4·fcu·(Ag − Asc) + 0.75·fy·Asc, solved for Asc.
	required := (in.Load*1e3 - bs8110.ColumnConcreteFactor*in.Fcu*ag) /
		(bs8110.ColumnSteelFactor*in.Fy - bs8110.ColumnConcreteFactor*in.Fcu)

	if min := bs8110.ColumnMinSteelRatio * ag; required < min {
		required = min
	}
	if max := bs8110.ColumnMaxSteelRatio * ag; required > max {
		res.Status = ColumnTerminated
		res.SteelRequired = required
		res.Message = fmt.Sprintf(
			"required steel %.0f mm² exceeds %.1f%% of the section: column is undersized",
			required, 100*bs8110.ColumnMaxSteelRatio)
		return res, nil
	}

	bars := bs8110.SelectColumnBars(required)
	linkDia, linkSpacing := bs8110.LinkSpec(bars.Diameter, minDim)

	res.Status = ColumnSuccess
	res.SteelRequired = required
	res.ProvidedSteel = bars.String()
	res.ProvidedArea = bars.Area
	res.Links = fmt.Sprintf("T%d @ %.0f mm", linkDia, linkSpacing)
	res.Utilization = required / bars.Area
	res.Message = fmt.Sprintf("short braced column: provide %s (%.0f mm²) with links %s",
		res.ProvidedSteel, res.ProvidedArea, res.Links)
	return res, nil
}
