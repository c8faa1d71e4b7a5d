package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goframe/internal/design"
	"github.com/alexiusacademia/goframe/internal/structural"
)

var (
	colLoad   float64
	colWidth  float64
	colHeight float64
	colClear  float64
	colFcu    float64
	colFy     float64
)

var designColumnCmd = &cobra.Command{
	Use:   "column",
	Short: "Short braced column sizing",
	Long: `Size the main steel and links of a short braced rectangular column
under axial design load, N = 0.4·fcu·Ac + 0.75·fy·Asc.

Columns whose slenderness exceeds the short column limit terminate
with a message; slender column design is not supported.

Examples:
  goframe design column --load 1200 --width 300 --height 300 --clear-height 2800`,
	Run: runDesignColumn,
}

func init() {
	designCmd.AddCommand(designColumnCmd)

	defaults := structural.StandardDefaults()

	designColumnCmd.Flags().Float64VarP(&colLoad, "load", "n", 0, "Axial design load N (kN) [required]")
	designColumnCmd.Flags().Float64VarP(&colWidth, "width", "b", 0, "Section width b (mm) [required]")
	designColumnCmd.Flags().Float64Var(&colHeight, "height", 0, "Section depth h (mm) [required]")
	designColumnCmd.Flags().Float64Var(&colClear, "clear-height", 0, "Clear height (mm) [required]")
	designColumnCmd.Flags().Float64Var(&colFcu, "fcu", defaults.Fcu, "Concrete strength fcu (N/mm²)")
	designColumnCmd.Flags().Float64Var(&colFy, "fy", defaults.Fy, "Steel strength fy (N/mm²)")

	designColumnCmd.MarkFlagRequired("load")
	designColumnCmd.MarkFlagRequired("width")
	designColumnCmd.MarkFlagRequired("height")
	designColumnCmd.MarkFlagRequired("clear-height")
}

func runDesignColumn(cmd *cobra.Command, args []string) {
	result, err := design.Column(design.ColumnInput{
		Load:        colLoad,
		B:           colWidth,
		H:           colHeight,
		ClearHeight: colClear,
		Fcu:         colFcu,
		Fy:          colFy,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHORT BRACED COLUMN DESIGN - BS 8110")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Axial Load (N):\t%.2f kN\n", colLoad)
	fmt.Fprintf(w, "  Section:\t%.0f x %.0f mm\n", colWidth, colHeight)
	fmt.Fprintf(w, "  Clear Height:\t%.0f mm\n", colClear)
	fmt.Fprintf(w, "  Slenderness Ratio:\t%.2f\n", result.Slenderness)
	fmt.Fprintf(w, "  fcu:\t%.1f N/mm²\n", colFcu)
	fmt.Fprintf(w, "  fy:\t%.1f N/mm²\n", colFy)
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if result.Status == design.ColumnSuccess {
		fmt.Printf("  ╔═════════════════════════════════════════╗\n")
		fmt.Printf("  ║  PROVIDE %s (%.0f mm²)            \n", result.ProvidedSteel, result.ProvidedArea)
		fmt.Printf("  ║  LINKS   %s                      \n", result.Links)
		fmt.Printf("  ╚═════════════════════════════════════════╝\n")
		fmt.Println()
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Required Steel:\t%.2f mm²\n", result.SteelRequired)
		fmt.Fprintf(w, "  Provided Area:\t%.2f mm²\n", result.ProvidedArea)
		fmt.Fprintf(w, "  Utilization:\t%.2f\n", result.Utilization)
		w.Flush()
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  DESIGN TERMINATED                      ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	}
	fmt.Println()
	fmt.Printf("  Status: %s - %s\n", result.Status, result.Message)
	fmt.Println()
}
