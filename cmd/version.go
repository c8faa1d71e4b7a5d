package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goframe/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goframe",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goframe v%s\n", version.Version)
		fmt.Println("2D Frame Analysis and Reinforced Concrete Design Tool")
		fmt.Println("Design provisions: BS 8110-1:1997")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
