// Shared output helpers for unitwand CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/unitwand/pkg/unitwand"
)

// payloadReport is the JSON shape emitted for any quantity payload.
type payloadReport struct {
	Form  string `json:"form"`
	Value any    `json:"value"`
	Unit  string `json:"unit"`
	Text  string `json:"text"`
}

// printPayload renders a quantity payload in human or JSON mode. The textual
// rendering goes through the translation matrix, so it works for every form.
func printPayload(q any) error {
	form, err := unitwand.GetForm(q)
	if err != nil {
		return err
	}

	text, err := unitwand.Translate(q, string(form), "string")
	if err != nil {
		return fmt.Errorf("render quantity: %w", err)
	}

	if !flagJSON {
		fmt.Println(text)
		return nil
	}

	value, err := unitwand.GetValue(q)
	if err != nil {
		return err
	}
	unitExpr, err := unitwand.GetUnit(q)
	if err != nil {
		return err
	}
	return printJSON(payloadReport{
		Form:  string(form),
		Value: value,
		Unit:  unitExpr,
		Text:  text.(string),
	})
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
