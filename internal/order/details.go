package order

import (
	"fmt"
	"strings"

	"camper-renderer/internal/camper"
	"camper-renderer/internal/pricing"

	"github.com/samber/lo"
)

// Details formats the items as the plain-text block the shop receives,
// one paragraph per camper separated by a blank line.
func Details(items []Item) string {
	blocks := lo.Map(items, func(it Item, i int) string {
		return detailBlock(i+1, it)
	})
	return strings.Join(blocks, "\n")
}

func detailBlock(n int, it Item) string {
	accessories := "None"
	if opts := it.Build.Options(); len(opts) > 0 {
		accessories = strings.Join(lo.Map(opts, func(o camper.Option, _ int) string {
			return o.Label()
		}), ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CAMPER #%d:\n", n)
	fmt.Fprintf(&b, "Frame Type: %s \n", it.Build.Frame.Title())
	fmt.Fprintf(&b, "Wheel Package: %s\n", it.Build.Wheels.Title())
	fmt.Fprintf(&b, "Accessories: %s\n", accessories)
	fmt.Fprintf(&b, "Price: %s\n", pricing.FormatUSD(it.Price))
	return b.String()
}
