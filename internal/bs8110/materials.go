package bs8110

import "math"

// BS 8110-1:1997 Design Constants

const (
	// Kbal is the moment-capacity ratio limit of a singly reinforced
	// section (Clause 3.4.4.4). Beyond it compression reinforcement
	// would be required.
	Kbal = 0.156

	// LeverArmCap limits the lever arm to 0.95d (Clause 3.4.4.4)
	LeverArmCap = 0.95

	// SteelStressFactor is the design steel stress fraction fy/γm
	// expressed as 0.87fy (Clause 3.4.4.4)
	SteelStressFactor = 0.87

	// Minimum and maximum tension steel as fractions of gross section
	// (Table 3.25 / Clause 3.12.6.1)
	MinSteelRatio = 0.0013
	MaxSteelRatio = 0.04

	// Effective flange width divisors (Clause 3.4.1.5):
	// bf = bw + span/5 for T sections, bw + span/10 for L sections
	FlangeDivisorT = 5.0
	FlangeDivisorL = 10.0

	// Maximum design shear stress 0.8√fcu capped at 5 N/mm²
	// (Clause 3.4.5.2)
	ShearCeilingFactor = 0.8
	ShearCeilingCap    = 5.0

	// Link spacing limits (Clause 3.4.5.5)
	MaxLinkSpacingFactor = 0.75  // of effective depth
	MaxLinkSpacing       = 300.0 // mm absolute cap

	// Short column slenderness limit lex/h (Clause 3.8.1.3)
	ShortColumnLimit = 10.0

	// Column steel ratio limits (Clauses 3.12.5.3 and 3.12.6.2)
	ColumnMinSteelRatio = 0.004
	ColumnMaxSteelRatio = 0.06

	// Short braced column axial capacity factors (Clause 3.8.4.3):
	// N = 0.4·fcu·Ac + 0.75·fy·Asc
	ColumnConcreteFactor = 0.4
	ColumnSteelFactor    = 0.75

	// Modulus of elasticity for steel (N/mm²)
	Es = 200000.0
)

// ShearCeiling returns the absolute maximum design shear stress for a
// concrete grade, min(0.8√fcu, 5) N/mm².
func ShearCeiling(fcu float64) float64 {
	return math.Min(ShearCeilingFactor*math.Sqrt(fcu), ShearCeilingCap)
}

// Vc returns the design concrete shear stress (N/mm²) per Table 3.8
// for tension steel area asProv (mm²), section width b and effective
// depth d (mm), and concrete grade fcu. The table's caps apply:
// 100As/bd ≤ 3, 400/d ≥ 1, fcu ≤ 40 with the (fcu/25)^⅓ grade
// adjustment.
func Vc(asProv, b, d, fcu float64) float64 {
	rho := 100 * asProv / (b * d)
	if rho > 3 {
		rho = 3
	}
	if rho < 0.15 {
		rho = 0.15
	}
	depth := 400 / d
	if depth < 1 {
		depth = 1
	}
	grade := fcu
	if grade > 40 {
		grade = 40
	}
	vc := 0.79 * math.Cbrt(rho) * math.Pow(depth, 0.25) / 1.25
	return vc * math.Cbrt(grade/25)
}

// MaxSpacing returns the designed link spacing ceiling for an
// effective depth, min(0.75d, 300) mm.
func MaxSpacing(d float64) float64 {
	return math.Min(MaxLinkSpacingFactor*d, MaxLinkSpacing)
}
