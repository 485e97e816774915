package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kopigraph/kopigraph/internal/cli"
	"github.com/kopigraph/kopigraph/internal/common"
	"github.com/kopigraph/kopigraph/internal/model"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog [name]",
		Short: "List the coffee catalog or show one drink",
		Long: `List every coffee in the catalog, or show the full attribute
tuple for a single drink.

Examples:
  kopi catalog              # List all drinks
  kopi catalog flat_white   # Show one drink in detail`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCatalog,
	}

	return cmd
}

func runCatalog(cmd *cobra.Command, args []string) error {
	catalog := model.DefaultCatalog()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		record, ok := catalog.Lookup(args[0])
		if !ok {
			return fmt.Errorf("%w: unknown coffee %q", common.ErrNotFound, args[0])
		}
		fmt.Fprintln(out, cli.RenderBox(displayCoffeeName(record.Name), describeRecord(record)))
		return nil
	}

	fmt.Fprintln(out, cli.FormatTitle("Coffee Catalog"))

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		cli.TableHeaderStyle.Width(18).Render("Name"),
		cli.TableHeaderStyle.Width(14).Render("Base"),
		cli.TableHeaderStyle.Width(20).Render("Milk"),
		cli.TableHeaderStyle.Width(10).Render("Volume"),
		cli.TableHeaderStyle.Width(10).Render("Caffeine"),
	)
	fmt.Fprintln(out, header)

	for _, record := range catalog.Records() {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			cli.TableCellStyle.Width(18).Render(record.Name),
			cli.TableCellStyle.Width(14).Render(string(record.Attributes.Base)),
			cli.TableCellStyle.Width(20).Render(string(record.Attributes.Milk)),
			cli.TableCellStyle.Width(10).Render(fmt.Sprintf("%d ml", record.VolumeML)),
			cli.TableCellStyle.Width(10).Render(string(record.CaffeineLevel)),
		)
		fmt.Fprintln(out, row)
	}

	fmt.Fprintln(out, cli.StyleSubtle(fmt.Sprintf("\n%d drinks. Use 'kopi catalog <name>' for details.", catalog.Len())))

	return nil
}
