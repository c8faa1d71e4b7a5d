package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/diagram"
	"github.com/alexiusacademia/goframe/internal/solver"
)

// printAnalysisReport prints the solver output the way every analyze
// subcommand reports it.
func printAnalysisReport(title string, res *solver.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("FIXED-END MOMENTS (kN·m, anticlockwise +):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Member\tFEM start\tFEM end\n")
	for _, fem := range res.FEMs {
		fmt.Fprintf(w, "  %s\t%.3f\t%.3f\n", fem.MemberID, fem.Start, fem.End)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("FINAL END MOMENTS (kN·m, anticlockwise +):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Member\tLeft\tRight\n")
	for _, em := range res.EndMoments {
		fmt.Fprintf(w, "  %s\t%.3f\t%.3f\n", em.MemberID, em.Left, em.Right)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SUPPORT REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Node\tX (kN)\tY (kN)\tM (kN·m)\n")
	for _, r := range res.Reactions {
		fmt.Fprintf(w, "  %s\t%.3f\t%.3f\t%.3f\n", r.NodeID, r.X, r.Y, r.M)
	}
	w.Flush()
	fmt.Println()

	if res.Sway != nil {
		verdict := "braced (no sidesway)"
		if *res.Sway {
			verdict = "unbraced (sidesway solved)"
		}
		fmt.Printf("  Sidesway classification: %s\n", verdict)
		fmt.Println()
	}
}

func printDiagrams(res *solver.Result) {
	for _, d := range res.Diagrams {
		fmt.Println(diagram.Draw(d, diagram.ShearForce))
		fmt.Println(diagram.Draw(d, diagram.BendingMoment))
	}
}

// exportDiagrams writes one image per member and quantity, deriving
// file names from the requested base path.
func exportDiagrams(res *solver.Result, base string) error {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".png"
	}
	for _, d := range res.Diagrams {
		for q, tag := range map[diagram.Quantity]string{
			diagram.ShearForce:    "sfd",
			diagram.BendingMoment: "bmd",
		} {
			name := fmt.Sprintf("%s_%s_%s%s", stem, d.MemberID, tag, ext)
			if err := diagram.Export(d, q, name); err != nil {
				return err
			}
			fmt.Printf("  Diagram exported to: %s\n", name)
		}
	}
	return nil
}
