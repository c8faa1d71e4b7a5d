package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goframe/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "goframe",
	Short: "2D Frame Analysis and Reinforced Concrete Design Tool",
	Long: `goframe - Go Frame Analyzer & Concrete Designer

A CLI tool for the linear-elastic analysis of 2D beams and frames by
the slope-deflection method, and the design of reinforced concrete
members to BS 8110-1:1997.

This tool helps structural engineers perform:
  - Continuous beam analysis with support settlement
  - 2D frame analysis with automatic sidesway classification
  - Shear force, bending moment and axial force diagrams
  - Flexural design by moment zone (rectangular, T and L sections)
  - Shear design and stirrup spacing by zone
  - Short braced column sizing
  - Deflection and crack-width screening

All design calculations follow BS 8110-1:1997 provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goframe v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Frame Analyzer & Concrete Designer                   ║")
		fmt.Printf("  ║   %s ©  %s                                 ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for 2D beam/frame analysis and reinforced")
		fmt.Println("  concrete design to BS 8110-1:1997.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Slope-deflection analysis of continuous beams and frames")
		fmt.Println("    • Sidesway classification and sway-frame solution")
		fmt.Println("    • Internal force diagrams (terminal and image export)")
		fmt.Println("    • Zoned flexural design, shear zones, column sizing")
		fmt.Println()
		fmt.Println("  Use 'goframe --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
