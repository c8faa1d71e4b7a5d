package design

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goframe/internal/bs8110"
)

// ShearStatus classifies one point of the shear envelope.
type ShearStatus int

const (
	// ShearOK: v ≤ vc, nominal links are enough.
	ShearOK ShearStatus = iota
	// ShearWarning: vc < v ≤ vmax, designed links required.
	ShearWarning
	// ShearFail: v > vmax, the section must be resized.
	ShearFail
)

func (s ShearStatus) String() string {
	switch s {
	case ShearOK:
		return "OK"
	case ShearWarning:
		return "WARNING"
	case ShearFail:
		return "FAIL"
	}
	return fmt.Sprintf("ShearStatus(%d)", int(s))
}

// ShearSample is one point of the shear-force envelope: position in m,
// shear in kN.
type ShearSample struct {
	X float64
	V float64
}

// ShearInput collects the shear design parameters.
type ShearInput struct {
	Samples []ShearSample

	B, D   float64 // section width and effective depth (mm)
	AsProv float64 // tension steel in use (mm²)

	Fcu float64
	Fyv float64

	Asv float64 // provided stirrup leg area (mm², both legs)
}

// ShearZone is a contiguous run of envelope samples sharing one
// classification.
type ShearZone struct {
	StartX, EndX float64
	Status       ShearStatus
	Condition    string
	Spacing      float64 // recommended link spacing (mm), 0 when n/a
}

// Shear classifies every envelope sample against the concrete shear
// capacity and the absolute code ceiling, then merges adjacent samples
// of equal classification into zones with a spacing recommendation.
// The zones tile the envelope without gaps: each transition boundary
// sits midway between the two samples it separates.
func Shear(in ShearInput) ([]ShearZone, error) {
	if len(in.Samples) == 0 {
		return nil, fmt.Errorf("empty shear envelope")
	}
	if in.B <= 0 || in.D <= 0 {
		return nil, fmt.Errorf("invalid section: b=%.2f, d=%.2f", in.B, in.D)
	}
	if in.Asv <= 0 || in.Fyv <= 0 {
		return nil, fmt.Errorf("invalid links: Asv=%.2f, fyv=%.2f", in.Asv, in.Fyv)
	}

	vc := bs8110.Vc(in.AsProv, in.B, in.D, in.Fcu)
	ceiling := bs8110.ShearCeiling(in.Fcu)

	var zones []ShearZone
	var prevX float64
	for i, sample := range in.Samples {
		v := math.Abs(sample.V) * 1e3 / (in.B * in.D)
		status := classify(v, vc, ceiling)

		if n := len(zones); n > 0 && zones[n-1].Status == status {
			zone := &zones[n-1]
			zone.EndX = sample.X
			if status == ShearWarning {
				if s := designedSpacing(in, v, vc); s < zone.Spacing {
					zone.Spacing = s
				}
			}
			prevX = sample.X
			continue
		}

		// Zones tile the envelope: a classification change puts the
		// shared boundary midway between the two samples.
		startX := sample.X
		if i > 0 {
			startX = (prevX + sample.X) / 2
			zones[len(zones)-1].EndX = startX
		}
		prevX = sample.X

		zone := ShearZone{StartX: startX, EndX: sample.X, Status: status}
		switch status {
		case ShearOK:
			zone.Condition = fmt.Sprintf("v ≤ vc=%.2f N/mm²: nominal links", vc)
		case ShearWarning:
			zone.Spacing = designedSpacing(in, v, vc)
			zone.Condition = fmt.Sprintf("vc=%.2f < v ≤ %.2f N/mm²: designed links required", vc, ceiling)
		case ShearFail:
			zone.Condition = fmt.Sprintf("v > %.2f N/mm²: resize section", ceiling)
		}
		zones = append(zones, zone)
	}
	return zones, nil
}

func classify(v, vc, ceiling float64) ShearStatus {
	switch {
	case v <= vc:
		return ShearOK
	case v <= ceiling:
		return ShearWarning
	default:
		return ShearFail
	}
}

// designedSpacing computes the required link spacing
// s = 0.87·fyv·Asv/((v−vc)·b), clamped to the code's maximum.
func designedSpacing(in ShearInput, v, vc float64) float64 {
	s := bs8110.SteelStressFactor * in.Fyv * in.Asv / ((v - vc) * in.B)
	if max := bs8110.MaxSpacing(in.D); s > max {
		s = max
	}
	return s
}
