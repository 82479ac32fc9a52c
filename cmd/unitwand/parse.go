// Parse command turns a quantity string into a payload of the requested form.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitwand/pkg/unitwand"
)

var (
	flagParser string
	flagTo     string
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse a textual quantity",
	Long: `Parse reads a quantity string, scalar or sequence-valued, and returns
it in the requested form.

Example:
  unitwand parse "10 nm"
  unitwand parse "[1, 2, 3] kJ" --to k8s.resource
  unitwand parse "2.5e-3 J" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&flagParser, "parser", "", "library grammar to parse with (default from config)")
	parseCmd.Flags().StringVar(&flagTo, "to", "", "output form (default from config)")
}

func runParse(cmd *cobra.Command, args []string) error {
	q, err := unitwand.Parse(args[0], flagParser, flagTo)
	if err != nil {
		return fmt.Errorf("parse quantity: %w", err)
	}
	return printPayload(q)
}
