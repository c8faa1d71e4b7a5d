package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goframe/internal/bs8110"
	"github.com/alexiusacademia/goframe/internal/design"
	"github.com/alexiusacademia/goframe/internal/structural"
)

var (
	shearWidth    float64
	shearDepth    float64
	shearAs       float64
	shearAsv      float64
	shearFcu      float64
	shearFyv      float64
	shearEnvelope string
)

var designShearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Shear zone classification and stirrup spacing",
	Long: `Classify a sampled shear-force envelope into zones and size the
links.

The envelope is an ordered list of x:V pairs (x in m, V in kN) along
the member, typically taken from an analysis diagram. Each zone comes
back as OK (nominal links), WARNING (designed links with a required
spacing) or FAIL (resize the section).

Examples:
  goframe design shear --width 250 --depth 457 --as 982 \
    --envelope "0:150,0.5:120,1:90,1.5:60,2:30,2.5:0"`,
	Run: runDesignShear,
}

func init() {
	designCmd.AddCommand(designShearCmd)

	defaults := structural.StandardDefaults()

	designShearCmd.Flags().Float64VarP(&shearWidth, "width", "b", 0, "Section width b (mm) [required]")
	designShearCmd.Flags().Float64VarP(&shearDepth, "depth", "d", 0, "Effective depth d (mm) [required]")
	designShearCmd.Flags().Float64Var(&shearAs, "as", 0, "Tension steel in use As (mm²) [required]")
	designShearCmd.Flags().Float64Var(&shearAsv, "asv", 2*bs8110.BarArea(8), "Provided stirrup leg area Asv (mm²)")
	designShearCmd.Flags().Float64Var(&shearFcu, "fcu", defaults.Fcu, "Concrete strength fcu (N/mm²)")
	designShearCmd.Flags().Float64Var(&shearFyv, "fyv", defaults.Fyv, "Link steel strength fyv (N/mm²)")
	designShearCmd.Flags().StringVar(&shearEnvelope, "envelope", "", "Shear envelope as x:V pairs, comma separated [required]")

	designShearCmd.MarkFlagRequired("width")
	designShearCmd.MarkFlagRequired("depth")
	designShearCmd.MarkFlagRequired("as")
	designShearCmd.MarkFlagRequired("envelope")
}

func parseEnvelope(s string) ([]design.ShearSample, error) {
	var samples []design.ShearSample
	for _, pair := range strings.Split(s, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad envelope entry %q, want x:V", pair)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad envelope position %q: %w", parts[0], err)
		}
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad envelope shear %q: %w", parts[1], err)
		}
		samples = append(samples, design.ShearSample{X: x, V: v})
	}
	return samples, nil
}

func runDesignShear(cmd *cobra.Command, args []string) {
	samples, err := parseEnvelope(shearEnvelope)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	zones, err := design.Shear(design.ShearInput{
		Samples: samples,
		B:       shearWidth,
		D:       shearDepth,
		AsProv:  shearAs,
		Fcu:     shearFcu,
		Fyv:     shearFyv,
		Asv:     shearAsv,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHEAR DESIGN BY ZONE - BS 8110")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	vc := bs8110.Vc(shearAs, shearWidth, shearDepth, shearFcu)
	fmt.Printf("  Concrete shear capacity vc = %.2f N/mm², ceiling = %.2f N/mm²\n",
		vc, bs8110.ShearCeiling(shearFcu))
	fmt.Println()

	fmt.Println("ZONES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  From (m)\tTo (m)\tStatus\tSpacing\tCondition\n")
	for _, z := range zones {
		spacing := "-"
		if z.Spacing > 0 {
			spacing = fmt.Sprintf("%.0f mm", z.Spacing)
		}
		fmt.Fprintf(w, "  %.2f\t%.2f\t%s\t%s\t%s\n", z.StartX, z.EndX, z.Status, spacing, z.Condition)
	}
	w.Flush()
	fmt.Println()
}
