// Forms command lists the supported forms and registered translation pairs.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitwand/pkg/forms"
	"github.com/mesh-intelligence/unitwand/pkg/types"
)

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "List supported quantity forms",
	Long: `Forms lists the canonical form identifiers, whether each one can parse
quantity strings, and the translation pairs registered in the matrix.`,
	Args: cobra.NoArgs,
	RunE: runForms,
}

type formReport struct {
	Form      string     `json:"form"`
	HasParser bool       `json:"has_parser"`
	Pairs     [][]string `json:"pairs"`
}

func runForms(cmd *cobra.Command, args []string) error {
	matrix := forms.Default()

	if flagJSON {
		reports := make([]formReport, 0, len(types.Forms()))
		for _, f := range types.Forms() {
			r := formReport{Form: string(f), HasParser: types.HasParser(f), Pairs: [][]string{}}
			for _, pair := range matrix.Pairs() {
				if pair[0] == f {
					r.Pairs = append(r.Pairs, []string{string(pair[0]), string(pair[1])})
				}
			}
			reports = append(reports, r)
		}
		return printJSON(reports)
	}

	fmt.Println("Supported forms:")
	for _, f := range types.Forms() {
		parser := ""
		if types.HasParser(f) {
			parser = " (string parser)"
		}
		fmt.Printf("  %s%s\n", f, parser)
	}
	fmt.Println("\nRegistered translation pairs:")
	for _, pair := range matrix.Pairs() {
		fmt.Printf("  %s -> %s\n", pair[0], pair[1])
	}
	return nil
}
