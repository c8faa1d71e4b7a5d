package cmd

import (
	"github.com/spf13/cobra"
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Reinforced concrete design to BS 8110-1:1997",
	Long: `Design reinforced concrete members from factored analysis results.

Subcommands:
  flexure  - Zoned moment design of a beam section (support + span)
  shear    - Shear zone classification and stirrup spacing
  column   - Short braced column sizing

Design paths the code hands to a specialist (doubly reinforced
sections, slender columns, sections above the shear ceiling) come back
as CHECK/TERMINATED outcomes with a message, not as computed designs.`,
}

func init() {
	rootCmd.AddCommand(designCmd)
}
