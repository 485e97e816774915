package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kopigraph/kopigraph/internal/classifier"
	"github.com/kopigraph/kopigraph/internal/cli"
	"github.com/kopigraph/kopigraph/internal/model"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Identify a coffee from its attributes",
		Long: `Identify a coffee drink by describing it along six attributes.

Attributes are matched against an ordered rule list; unspecified flags act
as wildcards, and a drink nothing matches is reported as unknown.

Examples:
  kopi classify --base espresso --milk none --additive none --preparation pressure
  kopi classify --base espresso --milk steamed_milk --serving tall_glass
  kopi classify --base brewed_coffee --preparation boiled --origin greece`,
		RunE: runClassify,
	}

	// Flags
	cmd.Flags().String("base", "", "base (espresso, brewed_coffee)")
	cmd.Flags().String("milk", "", "milk type (none, steamed_milk, foamed_milk, steamed_and_foamed, microfoam, cold_milk)")
	cmd.Flags().String("additive", "", "additive (none, hot_water, sugar, chocolate)")
	cmd.Flags().String("preparation", "", "preparation method (pressure, boiled, diluted, combined)")
	cmd.Flags().String("serving", "", "serving style (small_cup, tall_glass, large_cup, demitasse, unfiltered, cup)")
	cmd.Flags().String("origin", "", "origin (italy, portugal, indonesia, greece, australia_new_zealand)")

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	base, _ := cmd.Flags().GetString("base")
	milk, _ := cmd.Flags().GetString("milk")
	additive, _ := cmd.Flags().GetString("additive")
	preparation, _ := cmd.Flags().GetString("preparation")
	serving, _ := cmd.Flags().GetString("serving")
	origin, _ := cmd.Flags().GetString("origin")

	attrs := model.Attributes{
		Base:        model.Base(base),
		Milk:        model.MilkType(milk),
		Additive:    model.Additive(additive),
		Preparation: model.Preparation(preparation),
		Serving:     model.Serving(serving),
		Origin:      model.Origin(origin),
	}

	c := classifier.NewDefault()
	label := c.Classify(attrs)

	out := cmd.OutOrStdout()

	if label == classifier.LabelUnknown {
		fmt.Fprintln(out, cli.FormatWarning("No coffee matches those attributes."))
		fmt.Fprintln(out, cli.StyleSubtle("Try fewer constraints; unspecified flags match anything."))
		return nil
	}

	fmt.Fprintln(out, cli.FormatTitle(displayCoffeeName(label)))
	if record, ok := c.Lookup(label); ok {
		fmt.Fprintln(out, cli.RenderBox(displayCoffeeName(label), describeRecord(record)))
	}

	return nil
}

// describeRecord renders the catalog details of one coffee.
func describeRecord(record model.CoffeeRecord) string {
	lines := []string{
		record.Description,
		"",
		fmt.Sprintf("Base:        %s", record.Attributes.Base),
		fmt.Sprintf("Milk:        %s", record.Attributes.Milk),
		fmt.Sprintf("Additive:    %s", record.Attributes.Additive),
		fmt.Sprintf("Preparation: %s", record.Attributes.Preparation),
		fmt.Sprintf("Serving:     %s", record.Attributes.Serving),
		fmt.Sprintf("Origin:      %s", record.Attributes.Origin),
		"",
		fmt.Sprintf("Volume:      %d ml", record.VolumeML),
		fmt.Sprintf("Caffeine:    %s", record.CaffeineLevel),
	}
	return strings.Join(lines, "\n")
}

// displayCoffeeName turns a catalog code into a readable name.
func displayCoffeeName(code string) string {
	words := strings.Split(code, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
