package camper

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default returns the storefront's opening build.
func Default() Config {
	return Config{Frame: FrameStandard, Wheels: WheelsStandard}.WithOptions(
		SidePanels, FrontPanel, DiamondPlate,
		RoofPlatform, RoofRack, RoofTent, RoofLadder,
		RearKitchen, PropaneTank, KitchenCounter, SideAccessDoors,
		StorageBoxes, Fenders, RunningBoards,
	)
}

// Load reads a build from a JSON file. Missing fields keep their zero values;
// an empty frame or wheel package is filled with standard.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("camper: read %s: %w", path, err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("camper: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a JSON build.
func Decode(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Frame == "" {
		cfg.Frame = FrameStandard
	}
	if cfg.Wheels == "" {
		cfg.Wheels = WheelsStandard
	}
	return cfg, nil
}

// Save writes cfg as indented JSON.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Key returns a canonical string for cfg, stable across calls.
func (c Config) Key() string {
	var b strings.Builder
	b.WriteString(string(c.Frame))
	b.WriteByte('/')
	b.WriteString(string(c.Wheels))
	for _, o := range c.Options() {
		b.WriteByte('/')
		b.WriteString(string(o))
	}
	return b.String()
}

// A Caser holds state, so each call builds its own.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Label turns a flag name into display words: "sideAccessDoors" → "Side Access Doors".
func (o Option) Label() string {
	var b strings.Builder
	for i, r := range string(o) {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return titleCase(b.String())
}

// Title returns the capitalized frame name, e.g. "Heavy".
func (f Frame) Title() string { return titleCase(string(f)) }

// Title returns the capitalized wheel package name, e.g. "Offroad".
func (w Wheels) Title() string { return titleCase(string(w)) }

// Summary is the short one-line description shown in the cart.
func (c Config) Summary() string {
	parts := []string{c.Frame.Title() + " Frame", c.Wheels.Title() + " Wheels"}
	if c.SidePanels {
		parts = append(parts, "Side Panels")
	}
	if c.RoofTent {
		parts = append(parts, "Roof Tent")
	}
	if c.RearKitchen {
		parts = append(parts, "Kitchen")
	}
	if c.SolarPanel {
		parts = append(parts, "Solar")
	}
	return strings.Join(parts, ", ")
}
