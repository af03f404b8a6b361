package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/neuronkit/ygodeck/internal/validator"
	"github.com/spf13/cobra"
)

var errValidationFailed = errors.New("validation failed")

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <deck-id|path>",
	Short: "Validate the cards of a saved deck",
	Long: `Validate checks every card of a saved deck against the card vocabulary:
card types, attributes, races, monster types, spell and trap types, and the
numeric fields each card shape carries.

The deck is looked up by id in the output directory or used as a path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, path, err := loadDeck(args[0])
		if err != nil {
			return err
		}

		report := validator.ValidateDeck(d)
		printReport(path, report)
		if !report.OK() {
			return errValidationFailed
		}
		return nil
	},
}

func printReport(name string, r validator.Report) {
	fmt.Println("Validation Results:")
	fmt.Println("-------------------")

	if r.OK() {
		fmt.Printf("✅ Deck '%s' is valid: all %d cards passed.\n", name, r.TotalCards)
		return
	}

	fmt.Printf("❌ Deck '%s' has %d invalid cards (%d of %d valid):\n",
		name, r.InvalidCards, r.ValidCards, r.TotalCards)
	for i, res := range r.Invalid {
		fmt.Printf("%d. %s %s\n", i+1, color.HiWhiteString("%s", res.Name), color.CyanString("[%s]", res.Zone))
		for _, e := range res.Errors {
			fmt.Printf("   %s %s\n", color.RedString("-"), e)
		}
	}
}
