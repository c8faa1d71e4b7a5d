package design

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goframe/internal/bs8110"
)

// SpanSupport classifies the span condition for the basic
// span-to-depth ratio (BS 8110 Table 3.9).
type SpanSupport int

const (
	Cantilever SpanSupport = iota
	SimplySupported
	Continuous
)

func (s SpanSupport) String() string {
	switch s {
	case Cantilever:
		return "cantilever"
	case Continuous:
		return "continuous"
	}
	return "simply supported"
}

func (s SpanSupport) basicRatio() float64 {
	switch s {
	case Cantilever:
		return 7
	case Continuous:
		return 26
	}
	return 20
}

// ServiceabilityInput screens a designed section for deflection and
// crack control. Span in m; dimensions in mm; M is the span design
// moment (kN·m).
type ServiceabilityInput struct {
	Span    SpanSupport
	SpanLen float64

	B, D float64
	M    float64

	Fy     float64
	AsReq  float64
	AsProv float64

	BarDia   float64
	BarCount int
	Cover    float64
	LinkDia  float64
}

// CheckResult is one serviceability verdict.
type CheckResult struct {
	OK      bool
	Actual  float64
	Limit   float64
	Message string
}

// ServiceabilityResult aggregates the screening checks.
type ServiceabilityResult struct {
	Deflection CheckResult
	CrackWidth CheckResult
	OK         bool
}

// Serviceability runs the BS 8110 deflection (span/depth with tension
// steel modification, Table 3.9/3.10) and crack control (bar spacing,
// Clause 3.12.11.2) screenings. Failing a screen is a CHECK outcome
// with a message, not an error.
func Serviceability(in ServiceabilityInput) (*ServiceabilityResult, error) {
	if in.B <= 0 || in.D <= 0 || in.SpanLen <= 0 {
		return nil, fmt.Errorf("invalid geometry: b=%.2f, d=%.2f, span=%.2f", in.B, in.D, in.SpanLen)
	}
	if in.AsProv <= 0 {
		return nil, fmt.Errorf("no provided steel (AsProv=%.2f)", in.AsProv)
	}

	fs := 2 * in.Fy * in.AsReq / (3 * in.AsProv)
	res := &ServiceabilityResult{
		Deflection: deflectionCheck(in, fs),
		CrackWidth: crackCheck(in, fs),
	}
	res.OK = res.Deflection.OK && res.CrackWidth.OK
	return res, nil
}

func deflectionCheck(in ServiceabilityInput, fs float64) CheckResult {
	basic := in.Span.basicRatio()
	mOverBd2 := in.M * 1e6 / (in.B * in.D * in.D)
	factor := 0.55 + (477-fs)/(120*(0.9+mOverBd2))
	if factor > 2 {
		factor = 2
	}
	limit := basic * factor
	actual := in.SpanLen * 1000 / in.D
	check := CheckResult{Actual: actual, Limit: limit, OK: actual <= limit}
	if check.OK {
		check.Message = fmt.Sprintf("span/d %.1f ≤ allowable %.1f", actual, limit)
	} else {
		check.Message = fmt.Sprintf("span/d %.1f > allowable %.1f, CHECK deflection", actual, limit)
	}
	return check
}

func crackCheck(in ServiceabilityInput, fs float64) CheckResult {
	limit := math.Min(47000/math.Max(fs, 1), bs8110.MaxLinkSpacing)
	if in.BarCount < 2 {
		// A single bar has no spacing to screen.
		return CheckResult{OK: true, Limit: limit, Message: "single bar: spacing rule not applicable"}
	}
	web := in.B - 2*in.Cover - 2*in.LinkDia - in.BarDia
	spacing := web/float64(in.BarCount-1) - in.BarDia
	check := CheckResult{Actual: spacing, Limit: limit, OK: spacing <= limit}
	if check.OK {
		check.Message = fmt.Sprintf("clear bar spacing %.0f mm ≤ %.0f mm", spacing, limit)
	} else {
		check.Message = fmt.Sprintf("clear bar spacing %.0f mm > %.0f mm, CHECK crack control", spacing, limit)
	}
	return check
}
