package pricing

import (
	"testing"

	"camper-renderer/internal/camper"
)

func TestPriceDefaultBuild(t *testing.T) {
	if got := Price(camper.Default()); got != 16649 {
		t.Fatalf("got %d, want 16649", got)
	}
}

func TestPrice(t *testing.T) {
	base := camper.Config{Frame: camper.FrameMinimalist, Wheels: camper.WheelsStandard}
	tests := []struct {
		name string
		cfg  camper.Config
		want int
	}{
		{"bare minimalist", base, 4799},
		{"heavy extreme", camper.Config{Frame: camper.FrameHeavy, Wheels: camper.WheelsExtreme}, 10199},
		{"price-only options", base.WithOptions(camper.SolarPanel, camper.BatterySystem), 4799 + 1200 + 900},
		{"unknown frame and wheels", camper.Config{Frame: "titanium", Wheels: "monster"}, 6799},
		{"everything", camper.Config{Frame: camper.FrameHeavy, Wheels: camper.WheelsExtreme}.WithOptions(camper.AllOptions...), 10199 + 14050},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Price(tt.cfg); got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQuoteItems(t *testing.T) {
	cfg := camper.Config{Frame: camper.FrameStandard, Wheels: camper.WheelsOffroad}.
		WithOptions(camper.RoofTent, camper.SidePanels)
	q := QuoteFor(cfg)

	want := []LineItem{
		{"Standard Frame", 5999},
		{"Offroad Wheels", 1400},
		{"Side Panels", 1200},
		{"Roof Tent", 2500},
	}
	if len(q.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(q.Items), len(want))
	}
	for i := range want {
		if q.Items[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, q.Items[i], want[i])
		}
	}
	if q.Total != 11099 {
		t.Fatalf("total = %d, want 11099", q.Total)
	}
}

func TestEveryOptionPriced(t *testing.T) {
	for _, o := range camper.AllOptions {
		if OptionPrice(o) <= 0 {
			t.Errorf("%s has no price", o)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{16649, "$16,649"},
		{1234567, "$1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.in); got != tt.want {
			t.Errorf("FormatUSD(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
