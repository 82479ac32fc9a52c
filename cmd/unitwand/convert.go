// Convert command re-expresses a quantity in another unit and form.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitwand/pkg/unitwand"
)

var (
	flagConvertTo   string
	flagConvertUnit string
)

var convertCmd = &cobra.Command{
	Use:   "convert <text>",
	Short: "Convert a quantity to another unit or form",
	Long: `Convert parses a quantity string and re-expresses it in another unit,
another form, or both.

Example:
  unitwand convert "10 angstrom" --unit nm
  unitwand convert "1 cal" --unit J --to k8s.resource`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&flagConvertUnit, "unit", "", "target unit expression (default: keep the parsed unit)")
	convertCmd.Flags().StringVar(&flagConvertTo, "to", "", "target form (default: the parsed form)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	q, err := unitwand.Parse(args[0], "", "")
	if err != nil {
		return fmt.Errorf("parse quantity: %w", err)
	}

	if flagConvertUnit != "" {
		q, err = unitwand.Convert(q, flagConvertUnit, flagConvertTo)
	} else if flagConvertTo != "" {
		form, ferr := unitwand.GetForm(q)
		if ferr != nil {
			return ferr
		}
		q, err = unitwand.Translate(q, string(form), flagConvertTo)
	}
	if err != nil {
		return fmt.Errorf("convert quantity: %w", err)
	}
	return printPayload(q)
}
