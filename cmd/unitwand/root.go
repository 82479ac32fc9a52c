// Root command for the unitwand CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitwand/pkg/forms"
	"github.com/mesh-intelligence/unitwand/pkg/standards"
	"github.com/mesh-intelligence/unitwand/pkg/unitwand"
)

// Global flag values.
var (
	flagConfigDir string
	flagJSON      bool
)

var rootCmd = &cobra.Command{
	Use:     "unitwand",
	Short:   "Unitwand converts physical quantities between forms",
	Version: unitwand.Version,
	Long: `Unitwand parses textual physical quantities ("10 nm", "[1, 2, 3] kJ")
and converts them between interchangeable forms: text, the native gonum
form, the decimal k8s.resource form and the martinlindhe form.`,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage:      true,
	PersistentPreRunE: applyConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(formsCmd)
	rootCmd.AddCommand(standardizeCmd)
	rootCmd.AddCommand(standardsCmd)
	rootCmd.AddCommand(versionCmd)
}

// applyConfig loads config.yaml and pushes its values into the library
// defaults: the default parser and target form, and the standard units.
func applyConfig(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig(flagConfigDir)
	if err != nil {
		return err
	}

	if p := cfg.GetString(cfgKeyDefaultParser); p != "" {
		f, err := forms.DigestParser(p)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errConfig, cfgKeyDefaultParser, err)
		}
		forms.DefaultParser = f
	}
	if p := cfg.GetString(cfgKeyDefaultForm); p != "" {
		f, err := forms.DigestToForm(p)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errConfig, cfgKeyDefaultForm, err)
		}
		forms.DefaultToForm = f
	}
	if units := cfg.GetStringSlice(cfgKeyStandardUnits); len(units) > 0 {
		if err := standards.Default().Set(units); err != nil {
			return fmt.Errorf("%w: %s: %w", errConfig, cfgKeyStandardUnits, err)
		}
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("unitwand v%s\n", unitwand.Version)
	},
}
