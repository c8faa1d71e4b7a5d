package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goframe/internal/bs8110"
)

var (
	factorDead float64
	factorLive float64
	factorWind float64

	factorShowAll bool
)

var factorCmd = &cobra.Command{
	Use:   "factor",
	Short: "Calculate the governing factored effect using BS 8110 combinations",
	Long: `Calculate the governing factored design effect (moment or force)
from unfactored effects using the BS 8110 Table 2.1 ultimate limit
state load combinations.

Load Types:
  Gk - Dead load
  Qk - Imposed (live) load
  Wk - Wind load

Examples:
  # Gravity loads only
  goframe factor --dead 50 --live 30

  # With wind, listing every combination
  goframe factor --dead 50 --live 30 --wind 20 --all`,
	Run: runFactor,
}

func init() {
	rootCmd.AddCommand(factorCmd)

	factorCmd.Flags().Float64VarP(&factorDead, "dead", "d", 0, "Effect due to dead load Gk")
	factorCmd.Flags().Float64VarP(&factorLive, "live", "l", 0, "Effect due to imposed load Qk")
	factorCmd.Flags().Float64VarP(&factorWind, "wind", "w", 0, "Effect due to wind load Wk")
	factorCmd.Flags().BoolVarP(&factorShowAll, "all", "a", false, "Show all load combination results")
}

func runFactor(cmd *cobra.Command, args []string) {
	effects := bs8110.LoadEffects{
		Dead: factorDead,
		Live: factorLive,
		Wind: factorWind,
	}

	if effects.Dead == 0 && effects.Live == 0 && effects.Wind == 0 {
		fmt.Println("Error: Please provide at least one unfactored effect.")
		fmt.Println("Use 'goframe factor --help' for usage information.")
		return
	}

	governing, combo := bs8110.Governing(effects, bs8110.Combinations)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BS 8110 FACTORED DESIGN EFFECT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED EFFECTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if effects.Dead != 0 {
		fmt.Fprintf(w, "  Dead Load (Gk):\t%.2f\n", effects.Dead)
	}
	if effects.Live != 0 {
		fmt.Fprintf(w, "  Imposed Load (Qk):\t%.2f\n", effects.Live)
	}
	if effects.Wind != 0 {
		fmt.Fprintf(w, "  Wind Load (Wk):\t%.2f\n", effects.Wind)
	}
	w.Flush()
	fmt.Println()

	if factorShowAll {
		fmt.Println("LOAD COMBINATIONS (BS 8110 Table 2.1):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tFactored\n")
		fmt.Fprintf(w, "  ─\t───────────\t────────\n")
		for _, c := range bs8110.Combinations {
			marker := ""
			if c.ID == combo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", c.ID, c.Description, c.Factored(effects), marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", combo.ID, combo.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED EFFECT = %.2f  \n", governing)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}
