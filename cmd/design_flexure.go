package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goframe/internal/bs8110"
	"github.com/alexiusacademia/goframe/internal/design"
	"github.com/alexiusacademia/goframe/internal/structural"
)

var (
	flexWidth   float64
	flexHeight  float64
	flexCover   float64
	flexLinkDia float64
	flexBarDia  float64
	flexFcu     float64
	flexFy      float64

	flexSupportMoment float64
	flexSpanMoment    float64

	flexSection string
	flexSpanLen float64
	flexSlab    float64
)

var designFlexureCmd = &cobra.Command{
	Use:   "flexure",
	Short: "Zoned flexural design of a beam section",
	Long: `Design the tension reinforcement of a beam section for its hogging
(support) and sagging (span) design moments.

The support zone is always rectangular. The span zone may be a T or L
section, in which case the effective flange width is sized from the
continuous span length and used while the neutral axis stays inside
the flange.

Examples:
  # Rectangular section
  goframe design flexure --width 250 --height 500 --support-moment 120 --span-moment 90

  # T-beam span zone, 150 mm slab, 6 m continuous span
  goframe design flexure --width 250 --height 500 --section t --span 6 --slab 150 \
    --support-moment 120 --span-moment 90`,
	Run: runDesignFlexure,
}

func init() {
	designCmd.AddCommand(designFlexureCmd)

	defaults := structural.StandardDefaults()

	designFlexureCmd.Flags().Float64VarP(&flexWidth, "width", "b", 0, "Section width b (mm) [required]")
	designFlexureCmd.Flags().Float64Var(&flexHeight, "height", 0, "Overall depth h (mm) [required]")
	designFlexureCmd.Flags().Float64VarP(&flexCover, "cover", "c", defaults.Cover, "Nominal cover (mm)")
	designFlexureCmd.Flags().Float64Var(&flexLinkDia, "link", defaults.LinkDia, "Link diameter (mm)")
	designFlexureCmd.Flags().Float64Var(&flexBarDia, "bar", defaults.BarDia, "Main bar diameter (mm)")
	designFlexureCmd.Flags().Float64Var(&flexFcu, "fcu", defaults.Fcu, "Concrete strength fcu (N/mm²)")
	designFlexureCmd.Flags().Float64Var(&flexFy, "fy", defaults.Fy, "Steel strength fy (N/mm²)")

	designFlexureCmd.Flags().Float64Var(&flexSupportMoment, "support-moment", 0, "Hogging design moment |M| (kN·m)")
	designFlexureCmd.Flags().Float64Var(&flexSpanMoment, "span-moment", 0, "Sagging design moment |M| (kN·m)")

	designFlexureCmd.Flags().StringVar(&flexSection, "section", "rect", "Span zone section type: rect, t, l")
	designFlexureCmd.Flags().Float64Var(&flexSpanLen, "span", 0, "Continuous span length (m), sizes the flange width")
	designFlexureCmd.Flags().Float64Var(&flexSlab, "slab", 0, "Slab (flange) thickness (mm)")

	designFlexureCmd.MarkFlagRequired("width")
	designFlexureCmd.MarkFlagRequired("height")
}

func runDesignFlexure(cmd *cobra.Command, args []string) {
	var shape design.SectionShape
	switch flexSection {
	case "rect", "rectangular":
		shape = design.Rectangular
	case "t":
		shape = design.TSection
	case "l":
		shape = design.LSection
	default:
		fmt.Printf("Error: unknown section type %q (use rect, t or l)\n", flexSection)
		return
	}

	result, err := design.Flexure(design.FlexureInput{
		SupportMoment: flexSupportMoment,
		SpanMoment:    flexSpanMoment,
		B:             flexWidth,
		H:             flexHeight,
		Cover:         flexCover,
		LinkDia:       flexLinkDia,
		BarDia:        flexBarDia,
		Fcu:           flexFcu,
		Fy:            flexFy,
		SpanShape:     shape,
		SpanLength:    flexSpanLen,
		SlabThickness: flexSlab,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ZONED FLEXURAL DESIGN - BS 8110")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section Width (b):\t%.0f mm\n", flexWidth)
	fmt.Fprintf(w, "  Overall Depth (h):\t%.0f mm\n", flexHeight)
	fmt.Fprintf(w, "  Effective Depth (d):\t%.1f mm\n", result.D)
	fmt.Fprintf(w, "  fcu:\t%.1f N/mm²\n", flexFcu)
	fmt.Fprintf(w, "  fy:\t%.1f N/mm²\n", flexFy)
	fmt.Fprintf(w, "  Support Moment:\t%.2f kN·m\n", flexSupportMoment)
	fmt.Fprintf(w, "  Span Moment:\t%.2f kN·m\n", flexSpanMoment)
	fmt.Fprintf(w, "  Span Section:\t%s\n", shape)
	w.Flush()
	fmt.Println()

	fmt.Println("STEEL AREA LIMITS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  As,min:\t%.2f mm²\n", result.AsMin)
	fmt.Fprintf(w, "  As,max:\t%.2f mm²\n", result.AsMax)
	w.Flush()
	fmt.Println()

	printZone("SUPPORT ZONE (top steel)", result.Support)
	printZone("SPAN ZONE (bottom steel)", result.Span)

	fmt.Println("DESIGN RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if result.OK {
		fmt.Printf("  ╔═════════════════════════════════════════╗\n")
		fmt.Printf("  ║  TOP STEEL      As = %.2f mm²       \n", result.TopSteel)
		fmt.Printf("  ║  BOTTOM STEEL   As = %.2f mm²       \n", result.BottomSteel)
		fmt.Printf("  ╚═════════════════════════════════════════╝\n")
		fmt.Println()
		printBarSuggestions(result.GoverningSteel)
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  DESIGN NOT COMPLETE - CHECK SECTION    ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		if !result.Support.OK {
			fmt.Printf("  Support zone: %s\n", result.Support.Message)
		}
		if !result.Span.OK {
			fmt.Printf("  Span zone: %s\n", result.Span.Message)
		}
	}
	fmt.Println()
}

func printZone(title string, z design.ZoneResult) {
	fmt.Printf("%s:\n", title)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  K:\t%.4f\n", z.K)
	if z.Bf > 0 {
		fmt.Fprintf(w, "  Effective flange bf:\t%.0f mm\n", z.Bf)
	}
	fmt.Fprintf(w, "  Compression width:\t%.0f mm\n", z.Width)
	if z.OK {
		fmt.Fprintf(w, "  Lever arm (z):\t%.1f mm\n", z.Z)
		fmt.Fprintf(w, "  Neutral axis (x):\t%.1f mm\n", z.X)
		fmt.Fprintf(w, "  Required As:\t%.2f mm²\n", z.As)
	}
	fmt.Fprintf(w, "  Status:\t%s\n", z.Message)
	w.Flush()
	fmt.Println()
}

func printBarSuggestions(asRequired float64) {
	if asRequired <= 0 {
		return
	}
	fmt.Println("SUGGESTED BAR COMBINATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bars\tAs Provided\tRatio\n")
	fmt.Fprintf(w, "  ────\t───────────\t─────\n")
	for _, s := range bs8110.SuggestBeamBars(asRequired) {
		fmt.Fprintf(w, "  %s\t%.2f mm²\t%.2f\n", s, s.Area, s.Area/asRequired)
	}
	w.Flush()
	fmt.Println()
}
