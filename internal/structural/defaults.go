package structural

// DesignDefaults carries the material and detailing assumptions the
// design engines fall back on when a section has no overrides. It is
// threaded explicitly into every engine call; there are no module
// level defaults.
type DesignDefaults struct {
	Fcu float64 // concrete characteristic strength (N/mm²)
	Fy  float64 // main steel characteristic strength (N/mm²)
	Fyv float64 // link steel characteristic strength (N/mm²)

	Cover   float64 // nominal cover (mm)
	LinkDia float64 // link diameter (mm)
	BarDia  float64 // main bar diameter (mm)
}

// StandardDefaults are the values the CLI seeds its flags with.
func StandardDefaults() DesignDefaults {
	return DesignDefaults{
		Fcu:     30,
		Fy:      460,
		Fyv:     250,
		Cover:   25,
		LinkDia: 10,
		BarDia:  16,
	}
}
