// Package pricing turns a build into a dollar quote.
package pricing

import (
	"camper-renderer/internal/camper"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Whole US dollars.
var (
	framePrices = map[camper.Frame]int{
		camper.FrameMinimalist: 3999,
		camper.FrameStandard:   5999,
		camper.FrameHeavy:      7999,
	}
	wheelPrices = map[camper.Wheels]int{
		camper.WheelsStandard: 800,
		camper.WheelsOffroad:  1400,
		camper.WheelsExtreme:  2200,
	}
	optionPrices = map[camper.Option]int{
		camper.SidePanels:      1200,
		camper.FrontPanel:      400,
		camper.RearPanel:       400,
		camper.DiamondPlate:    600,
		camper.RoofPlatform:    500,
		camper.RoofRack:        400,
		camper.RoofTent:        2500,
		camper.RoofLadder:      300,
		camper.RearKitchen:     1800,
		camper.PropaneTank:     200,
		camper.KitchenCounter:  400,
		camper.SideAccessDoors: 600,
		camper.StorageBoxes:    400,
		camper.JerryCanMounts:  150,
		camper.ToolBox:         300,
		camper.Fenders:         300,
		camper.RunningBoards:   250,
		camper.LightingKit:     450,
		camper.SolarPanel:      1200,
		camper.WaterTank:       800,
		camper.BatterySystem:   900,
	}
)

// FramePrice returns the frame's price; unknown frames cost as much as standard.
func FramePrice(f camper.Frame) int {
	if p, ok := framePrices[f]; ok {
		return p
	}
	return framePrices[camper.FrameStandard]
}

// WheelPrice returns the wheel package's price, falling back to standard.
func WheelPrice(w camper.Wheels) int {
	if p, ok := wheelPrices[w]; ok {
		return p
	}
	return wheelPrices[camper.WheelsStandard]
}

func OptionPrice(o camper.Option) int { return optionPrices[o] }

// LineItem is one priced entry of a quote.
type LineItem struct {
	Label string `json:"label"`
	Price int    `json:"price"`
}

// Quote itemizes a build: frame, wheels, then each enabled option in
// declaration order.
type Quote struct {
	Build camper.Config `json:"build"`
	Items []LineItem    `json:"items"`
	Total int           `json:"total"`
}

// Price returns the total for cfg.
func Price(cfg camper.Config) int {
	return QuoteFor(cfg).Total
}

// QuoteFor builds the itemized quote for cfg.
func QuoteFor(cfg camper.Config) Quote {
	items := []LineItem{
		{Label: cfg.Frame.Title() + " Frame", Price: FramePrice(cfg.Frame)},
		{Label: cfg.Wheels.Title() + " Wheels", Price: WheelPrice(cfg.Wheels)},
	}
	items = append(items, lo.Map(cfg.Options(), func(o camper.Option, _ int) LineItem {
		return LineItem{Label: o.Label(), Price: OptionPrice(o)}
	})...)

	return Quote{
		Build: cfg,
		Items: items,
		Total: lo.SumBy(items, func(li LineItem) int { return li.Price }),
	}
}

// FormatUSD renders whole dollars with thousands separators, e.g. "$16,649".
func FormatUSD(dollars int) string {
	return message.NewPrinter(language.AmericanEnglish).Sprintf("$%d", dollars)
}
