package bs8110

import (
	"fmt"
	"math"
)

// StandardBars lists the stock bar diameters (mm) in increasing order.
var StandardBars = []int{10, 12, 16, 20, 25, 32, 40}

// BarArea returns the cross-sectional area (mm²) of one bar of the
// given diameter.
func BarArea(dia int) float64 {
	r := float64(dia) / 2
	return math.Pi * r * r
}

// BarSelection is a concrete choice of main bars.
type BarSelection struct {
	Count    int
	Diameter int
	Area     float64 // total provided (mm²)
}

func (s BarSelection) String() string {
	return fmt.Sprintf("%dT%d", s.Count, s.Diameter)
}

// SelectColumnBars greedily scans increasing standard diameters for
// the smallest even bar count (at least 4, the rectangular column
// minimum) whose total area covers the requirement, falling back to
// the largest standard diameter when none qualifies within a sensible
// count.
func SelectColumnBars(required float64) BarSelection {
	const maxCount = 12
	for _, dia := range StandardBars {
		area := BarArea(dia)
		for count := 4; count <= maxCount; count += 2 {
			if float64(count)*area >= required {
				return BarSelection{Count: count, Diameter: dia, Area: float64(count) * area}
			}
		}
	}
	dia := StandardBars[len(StandardBars)-1]
	area := BarArea(dia)
	count := int(math.Ceil(required/area)) + 1
	if count%2 != 0 {
		count++
	}
	if count < 4 {
		count = 4
	}
	return BarSelection{Count: count, Diameter: dia, Area: float64(count) * area}
}

// SuggestBeamBars lists workable bar combinations (2 to 8 bars) for a
// required tension steel area, smallest diameter first.
func SuggestBeamBars(required float64) []BarSelection {
	var out []BarSelection
	for _, dia := range StandardBars {
		if dia < 16 {
			continue // below beam main bar stock
		}
		area := BarArea(dia)
		count := int(required/area) + 1
		if count < 2 {
			count = 2
		}
		if count > 8 {
			continue
		}
		out = append(out, BarSelection{Count: count, Diameter: dia, Area: float64(count) * area})
	}
	return out
}

// LinkSpec sizes the links of a column for a chosen main bar: diameter
// at least a quarter of the main bar and never below 6 mm, rounded up
// to stock link sizes; spacing capped by 12 bar diameters, the least
// column dimension and the absolute code cap.
func LinkSpec(mainBarDia int, minDimension float64) (dia int, spacing float64) {
	d := float64(mainBarDia) / 4
	if d < 6 {
		d = 6
	}
	for _, stock := range []int{6, 8, 10, 12} {
		if float64(stock) >= d {
			dia = stock
			break
		}
	}
	if dia == 0 {
		dia = 12
	}
	spacing = math.Min(12*float64(mainBarDia), math.Min(minDimension, MaxLinkSpacing))
	return dia, spacing
}
