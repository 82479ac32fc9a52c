// Standards command shows the configured standard units.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitwand/pkg/standards"
)

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "Show the configured standard units",
	Long: `Standards lists the standard units loaded from the configuration file
(one unit per dimension). An empty list means standardization is unavailable.`,
	Args: cobra.NoArgs,
	RunE: runStandards,
}

func runStandards(cmd *cobra.Command, args []string) error {
	units := standards.Default().Units()

	if flagJSON {
		return printJSON(map[string]any{
			"configured":     standards.Default().IsConfigured(),
			"standard_units": units,
		})
	}

	if len(units) == 0 {
		fmt.Println("No standard units configured (set standard_units in config.yaml)")
		return nil
	}
	fmt.Println("Standard units:")
	for _, u := range units {
		fmt.Printf("  %s\n", u)
	}
	return nil
}
