package design

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goframe/internal/bs8110"
)

// SectionShape is the span-zone section type. The support zone of a
// continuous beam is always rectangular.
type SectionShape int

const (
	Rectangular SectionShape = iota
	TSection
	LSection
)

func (s SectionShape) String() string {
	switch s {
	case TSection:
		return "T"
	case LSection:
		return "L"
	}
	return "rectangular"
}

// FlexureInput collects everything the zoned flexural design needs.
// Moments are factored magnitudes in kN·m (hogging for the support
// zone, sagging for the span zone); dimensions are mm, strengths
// N/mm².
type FlexureInput struct {
	SupportMoment float64
	SpanMoment    float64

	B, H    float64
	Cover   float64
	LinkDia float64
	BarDia  float64

	Fcu, Fy float64

	SpanShape     SectionShape
	SpanLength    float64 // continuous span in m, sizes the flange width
	SlabThickness float64 // flange depth in mm
}

// ZoneResult is the design outcome of one moment zone.
type ZoneResult struct {
	K  float64
	Z  float64 // lever arm (mm)
	X  float64 // neutral axis depth (mm)
	As float64 // required steel (mm²), 0 when the zone is not ok

	OK      bool
	Message string

	Width float64 // compression width used (mm)
	Bf    float64 // effective flange width (mm), 0 for rectangular
}

// BeamResult aggregates the zoned design of a beam cross section.
type BeamResult struct {
	D            float64 // effective depth (mm)
	AsMin, AsMax float64

	Support ZoneResult // hogging, top steel
	Span    ZoneResult // sagging, bottom steel

	TopSteel       float64 // governing required top steel (mm²)
	BottomSteel    float64 // governing required bottom steel (mm²)
	GoverningSteel float64

	OK bool
}

// Flexure designs the support and span zones of a beam section. Zones
// whose K exceeds the singly reinforced limit come back not-ok with a
// compression-reinforcement message rather than an error; only
// non-finite input is a hard failure.
func Flexure(in FlexureInput) (*BeamResult, error) {
	if in.B <= 0 || in.H <= 0 {
		return nil, fmt.Errorf("invalid section: b=%.2f, h=%.2f", in.B, in.H)
	}
	if in.Fcu <= 0 || in.Fy <= 0 {
		return nil, fmt.Errorf("invalid materials: fcu=%.2f, fy=%.2f", in.Fcu, in.Fy)
	}
	if !isFinite(in.SupportMoment) || !isFinite(in.SpanMoment) {
		return nil, fmt.Errorf("non-finite design moment: support=%v, span=%v",
			in.SupportMoment, in.SpanMoment)
	}

	d := in.H - in.Cover - in.LinkDia - in.BarDia/2
	if d <= 0 {
		return nil, fmt.Errorf("invalid section: effective depth %.2f mm", d)
	}

	res := &BeamResult{
		D:     d,
		AsMin: bs8110.MinSteelRatio * in.B * in.H,
		AsMax: bs8110.MaxSteelRatio * in.B * in.H,
	}

	// Support zone: always rectangular, width b.
	res.Support = designZone(in.SupportMoment, in.B, d, in.Fcu, in.Fy)

	// Span zone: flanged when requested, reverting to the web width
	// once the neutral axis leaves the flange.
	res.Span = designSpanZone(in, d)

	if res.Support.OK {
		res.TopSteel = math.Max(res.Support.As, res.AsMin)
	}
	if res.Span.OK {
		res.BottomSteel = math.Max(res.Span.As, res.AsMin)
	}
	res.GoverningSteel = math.Max(res.TopSteel, res.BottomSteel)
	res.OK = res.Support.OK && res.Span.OK
	return res, nil
}

func designSpanZone(in FlexureInput, d float64) ZoneResult {
	if in.SpanShape == Rectangular || in.SlabThickness <= 0 {
		return designZone(in.SpanMoment, in.B, d, in.Fcu, in.Fy)
	}

	divisor := bs8110.FlangeDivisorT
	if in.SpanShape == LSection {
		divisor = bs8110.FlangeDivisorL
	}
	bf := in.B + in.SpanLength*1000/divisor

	zone := designZone(in.SpanMoment, bf, d, in.Fcu, in.Fy)
	zone.Bf = bf
	if zone.OK && zone.X > in.SlabThickness {
		// Neutral axis below the flange: the flange width no longer
		// bounds the compression block.
		zone = designZone(in.SpanMoment, in.B, d, in.Fcu, in.Fy)
		zone.Bf = bf
		if zone.OK {
			zone.Message = fmt.Sprintf(
				"neutral axis below flange (x=%.1f mm > hf=%.1f mm); designed as rectangular with bw",
				zone.X, in.SlabThickness)
		}
	}
	return zone
}

// designZone runs the BS 8110 singly reinforced design for one moment
// zone: K, lever arm z capped at 0.95d, neutral axis x and required
// steel As.
func designZone(moment, width, d, fcu, fy float64) ZoneResult {
	zone := ZoneResult{Width: width}
	if moment <= 0 {
		zone.OK = true
		zone.Message = "no design moment"
		return zone
	}

	zone.K = moment * 1e6 / (width * d * d * fcu)
	if zone.K > bs8110.Kbal {
		zone.Message = fmt.Sprintf(
			"K=%.4f > %.3f: compression reinforcement required, CHECK section size",
			zone.K, bs8110.Kbal)
		return zone
	}

	z := d * (0.5 + math.Sqrt(0.25-zone.K/0.9))
	if cap := bs8110.LeverArmCap * d; z > cap {
		z = cap
	}
	zone.Z = z
	zone.X = (d - z) / 0.45
	zone.As = moment * 1e6 / (bs8110.SteelStressFactor * fy * z)
	zone.OK = true
	zone.Message = "singly reinforced"
	return zone
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
