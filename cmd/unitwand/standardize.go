// Standardize command re-expresses a quantity in the configured standard units.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitwand/pkg/unitwand"
)

var flagStandardizeTo string

var standardizeCmd = &cobra.Command{
	Use:   "standardize <text>",
	Short: "Re-express a quantity in the configured standard units",
	Long: `Standardize parses a quantity string and converts it to the standard
unit configured for its dimensions (config key standard_units).

Example:
  unitwand standardize "10 angstrom"
  unitwand standardize "2 cal" --to k8s.resource`,
	Args: cobra.ExactArgs(1),
	RunE: runStandardize,
}

func init() {
	standardizeCmd.Flags().StringVar(&flagStandardizeTo, "to", "", "output form (default: the parsed form)")
}

func runStandardize(cmd *cobra.Command, args []string) error {
	q, err := unitwand.Parse(args[0], "", flagStandardizeTo)
	if err != nil {
		return fmt.Errorf("parse quantity: %w", err)
	}

	std, err := unitwand.Standardize(q)
	if err != nil {
		return fmt.Errorf("standardize quantity: %w", err)
	}
	return printPayload(std)
}
