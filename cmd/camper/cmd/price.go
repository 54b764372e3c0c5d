package cmd

import (
	"fmt"
	"strings"

	"camper-renderer/internal/pricing"

	"github.com/spf13/cobra"
)

var priceBuild buildFlags

var priceCmd = &cobra.Command{
	Use:   "price [build.json]",
	Short: "Print an itemized quote for a build",
	Long: `Print the line items and total for a camper build.

Examples:
  camper price
  camper price build.json
  camper price --frame heavy --wheels extreme --options solarPanel,batterySystem`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrice,
}

func init() {
	rootCmd.AddCommand(priceCmd)
	priceBuild.register(priceCmd)
}

func runPrice(cmd *cobra.Command, args []string) error {
	build, err := priceBuild.resolve(args)
	if err != nil {
		return err
	}
	printQuote(pricing.QuoteFor(build))
	return nil
}

func printQuote(q pricing.Quote) {
	fmt.Println(q.Build.Summary())
	fmt.Println(strings.Repeat("-", 36))
	for _, li := range q.Items {
		fmt.Printf("%-24s %11s\n", li.Label, pricing.FormatUSD(li.Price))
	}
	fmt.Println(strings.Repeat("-", 36))
	fmt.Printf("%-24s %11s\n", "Total", pricing.FormatUSD(q.Total))
}
