package config

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"camper-renderer/internal/export"
)

func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	def := Default()
	if cfg.Render != def.Render || cfg.Server != def.Server || cfg.Order != def.Order {
		t.Fatalf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[Render]
Width = 1600
Format = "png"

[Order]
RelayURL = "https://relay.example.com/f/abc"
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Render.Width != 1600 || cfg.Render.Format != "png" || cfg.Order.RelayURL != "https://relay.example.com/f/abc" {
		t.Fatalf("got %+v", cfg)
	}

	cfg.Resolve(Flags{})
	if cfg.Render.Supersample != 2 || cfg.Server.Address != ":8080" {
		t.Fatalf("defaults not filled: %+v", cfg)
	}
}

func TestResolveFlagsWin(t *testing.T) {
	cfg := Default()
	cfg.Resolve(Flags{Width: 400, Format: "webp", Workers: 3, OutputDir: "out", Trim: true, LogLevel: "debug"})

	if cfg.Render.Width != 400 || cfg.Render.Format != "webp" || !cfg.Render.Trim {
		t.Fatalf("render = %+v", cfg.Render)
	}
	if cfg.Batch.Workers != 3 || cfg.Batch.OutputDir != "out" {
		t.Fatalf("batch = %+v", cfg.Batch)
	}
	if cfg.Server.LogLevel != "debug" {
		t.Fatalf("log level = %q", cfg.Server.LogLevel)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		err  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		err  bool
	}{
		{"", color.NRGBA{}, false},
		{"#fff", color.NRGBA{255, 255, 255, 255}, false},
		{"#1a2b3c", color.NRGBA{0x1a, 0x2b, 0x3c, 0xff}, false},
		{"#1a2b3c80", color.NRGBA{0x1a, 0x2b, 0x3c, 0x80}, false},
		{"#12345", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestRenderExport(t *testing.T) {
	r := Default().Render
	r.Format = "png"
	r.Background = "#ffffff"
	opts, err := r.Export()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Format != export.PNG || opts.Raster.Width != 800 || opts.Raster.Background.A != 255 {
		t.Fatalf("got %+v", opts)
	}

	r.Format = "bmp"
	if _, err := r.Export(); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestOrderRelay(t *testing.T) {
	rc := Default().Order.Relay()
	if rc.Timeout != 15*time.Second || rc.OrderPrefix != "BC" || rc.URL != "" {
		t.Fatalf("got %+v", rc)
	}
}
