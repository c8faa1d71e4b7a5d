package bs8110

// LoadCombination represents a BS 8110 ultimate limit state load
// combination (Table 2.1).
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead float64 // Gk - dead load
	Live float64 // Qk - imposed load
	Wind float64 // Wk - wind load
}

// Combinations are the BS 8110 Table 2.1 ULS combinations.
var Combinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4Gk + 1.6Qk",
		Dead:        1.4,
		Live:        1.6,
	},
	{
		ID:          "2",
		Description: "1.0Gk + 1.4Wk",
		Dead:        1.0,
		Wind:        1.4,
	},
	{
		ID:          "3",
		Description: "1.4Gk + 1.4Wk",
		Dead:        1.4,
		Wind:        1.4,
	},
	{
		ID:          "4",
		Description: "1.2Gk + 1.2Qk + 1.2Wk",
		Dead:        1.2,
		Live:        1.2,
		Wind:        1.2,
	},
}

// LoadEffects holds unfactored effects (moments or forces) from each
// load type.
type LoadEffects struct {
	Dead float64
	Live float64
	Wind float64
}

// Factored applies the combination's factors to a set of effects.
func (lc LoadCombination) Factored(e LoadEffects) float64 {
	return lc.Dead*e.Dead + lc.Live*e.Live + lc.Wind*e.Wind
}

// Governing finds the maximum factored effect across the combinations.
func Governing(e LoadEffects, combinations []LoadCombination) (float64, LoadCombination) {
	var max float64
	var governing LoadCombination
	for _, combo := range combinations {
		if f := combo.Factored(e); f > max {
			max = f
			governing = combo
		}
	}
	return max, governing
}
