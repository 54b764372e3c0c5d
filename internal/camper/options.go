package camper

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// flag returns a pointer to the field backing o, or nil for an unknown option.
func (c *Config) flag(o Option) *bool {
	switch o {
	case SidePanels:
		return &c.SidePanels
	case FrontPanel:
		return &c.FrontPanel
	case RearPanel:
		return &c.RearPanel
	case DiamondPlate:
		return &c.DiamondPlate
	case RoofPlatform:
		return &c.RoofPlatform
	case RoofRack:
		return &c.RoofRack
	case RoofTent:
		return &c.RoofTent
	case RoofLadder:
		return &c.RoofLadder
	case RearKitchen:
		return &c.RearKitchen
	case PropaneTank:
		return &c.PropaneTank
	case KitchenCounter:
		return &c.KitchenCounter
	case SideAccessDoors:
		return &c.SideAccessDoors
	case StorageBoxes:
		return &c.StorageBoxes
	case JerryCanMounts:
		return &c.JerryCanMounts
	case ToolBox:
		return &c.ToolBox
	case Fenders:
		return &c.Fenders
	case RunningBoards:
		return &c.RunningBoards
	case LightingKit:
		return &c.LightingKit
	case SolarPanel:
		return &c.SolarPanel
	case WaterTank:
		return &c.WaterTank
	case BatterySystem:
		return &c.BatterySystem
	}
	return nil
}

// Enabled reports whether o is switched on. Unknown options are never enabled.
func (c Config) Enabled(o Option) bool {
	if p := c.flag(o); p != nil {
		return *p
	}
	return false
}

// With returns a copy of c with o set to v. Unknown options are ignored.
func (c Config) With(o Option, v bool) Config {
	if p := c.flag(o); p != nil {
		*p = v
	}
	return c
}

// Options returns the enabled options in declaration order.
func (c Config) Options() []Option {
	return lo.Filter(AllOptions, func(o Option, _ int) bool {
		return c.Enabled(o)
	})
}

// WithOptions returns a copy of c with exactly the given options enabled.
func (c Config) WithOptions(opts ...Option) Config {
	for _, o := range AllOptions {
		c = c.With(o, false)
	}
	for _, o := range opts {
		c = c.With(o, true)
	}
	return c
}

// ParseOption resolves a flag name. Matching ignores case, hyphens and
// underscores, so "side-panels" and "SIDE_PANELS" both name SidePanels.
func ParseOption(name string) (Option, error) {
	key := normalizeName(name)
	for _, o := range AllOptions {
		if normalizeName(string(o)) == key {
			return o, nil
		}
	}
	return "", fmt.Errorf("camper: unknown option %q", name)
}

// ParseOptions parses a comma-separated option list. Empty entries are skipped.
func ParseOptions(list string) ([]Option, error) {
	var opts []Option
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		o, err := ParseOption(part)
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return lo.Uniq(opts), nil
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}
