package cmd

import (
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Linear-elastic analysis of 2D beams and frames",
	Long: `Analyze a structural model by the slope-deflection method.

The model is defined in a JSON file with nodes, members, supports and
loads.

Subcommands:
  beam   - Continuous beam analysis (supports settlement)
  frame  - 2D frame analysis with sidesway classification

Example JSON model structure:
{
  "nodes": [
    {"id": "A", "x": 0, "y": 0, "support": {"kind": "fixed"}},
    {"id": "B", "x": 6, "y": 0, "support": {"kind": "roller"}},
    {"id": "C", "x": 10, "y": 0, "support": {"kind": "pinned"}}
  ],
  "members": [
    {"id": "AB", "kind": "beam", "start": "A", "end": "B",
     "loads": [{"kind": "udl", "start": 0, "span": 6, "intensity": 12}]},
    {"id": "BC", "kind": "beam", "start": "B", "end": "C",
     "loads": [{"kind": "point", "position": 2, "magnitude": 40}]}
  ],
  "actions": [{"node": "B", "mz": -5}]
}`,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
