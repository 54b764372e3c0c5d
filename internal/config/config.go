// Package config loads the TOML settings shared by every camper command.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"camper-renderer/internal/export"
	"camper-renderer/internal/order"
	"camper-renderer/internal/raster"

	"github.com/restartfu/gophig"
)

// Config holds render, server, order relay and batch settings.
type Config struct {
	Render Render
	Server Server
	Order  Order
	Batch  Batch
}

type Render struct {
	Width       int
	Supersample int
	Format      string
	Background  string // "#rrggbb", "#rrggbbaa" or empty for transparent
	Trim        bool
	Margin      int
}

type Server struct {
	Address      string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	LogLevel     string
	SentryDSN    string
	CacheEntries int
}

type Order struct {
	RelayURL    string
	CompanyName string
	CC          string
	OrderPrefix string
	Timeout     int // seconds
}

type Batch struct {
	OutputDir string
	Workers   int
}

// Default returns a config with prefilled default values.
func Default() Config {
	var c Config

	c.Render.Width = 800
	c.Render.Supersample = 2
	c.Render.Format = string(export.SVG)
	c.Render.Margin = 16

	c.Server.Address = ":8080"
	c.Server.ReadTimeout = 10
	c.Server.WriteTimeout = 30
	c.Server.LogLevel = "info"
	c.Server.CacheEntries = 256

	c.Order.CompanyName = "Badland Campers"
	c.Order.OrderPrefix = "BC"
	c.Order.Timeout = 15

	c.Batch.OutputDir = "renders"
	c.Batch.Workers = runtime.NumCPU()

	return c
}

// Load reads the TOML config at path. A missing file is created with
// Default values first.
func Load(path string) (Config, error) {
	g := gophig.NewGophig[Config](path, gophig.TOMLMarshaler{}, os.ModePerm)
	_, err := g.LoadConf()
	if errors.Is(err, fs.ErrNotExist) {
		if err := g.SaveConf(Default()); err != nil {
			return Config{}, fmt.Errorf("config: write %s: %w", path, err)
		}
	}
	c, err := g.LoadConf()
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return c, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width       int
	Supersample int
	Format      string
	Background  string
	Trim        bool
	OutputDir   string
	Workers     int
	Address     string
	LogLevel    string
	RelayURL    string
}

// Resolve applies non-zero flags over the file values, then fills any
// remaining zero fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Render.Width = flags.Width
	}
	if flags.Supersample > 0 {
		c.Render.Supersample = flags.Supersample
	}
	if flags.Format != "" {
		c.Render.Format = flags.Format
	}
	if flags.Background != "" {
		c.Render.Background = flags.Background
	}
	if flags.Trim {
		c.Render.Trim = true
	}
	if flags.OutputDir != "" {
		c.Batch.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Batch.Workers = flags.Workers
	}
	if flags.Address != "" {
		c.Server.Address = flags.Address
	}
	if flags.LogLevel != "" {
		c.Server.LogLevel = flags.LogLevel
	}
	if flags.RelayURL != "" {
		c.Order.RelayURL = flags.RelayURL
	}

	def := Default()
	if c.Render.Width <= 0 {
		c.Render.Width = def.Render.Width
	}
	if c.Render.Supersample <= 0 {
		c.Render.Supersample = def.Render.Supersample
	}
	if c.Render.Format == "" {
		c.Render.Format = def.Render.Format
	}
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = def.Server.LogLevel
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = def.Server.ReadTimeout
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = def.Server.WriteTimeout
	}
	if c.Order.Timeout <= 0 {
		c.Order.Timeout = def.Order.Timeout
	}
	if c.Batch.OutputDir == "" {
		c.Batch.OutputDir = def.Batch.OutputDir
	}
	if c.Batch.Workers <= 0 {
		c.Batch.Workers = def.Batch.Workers
	}
}

// ParseLogLevel returns the slog.Level named by level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: unrecognized log level %q", level)
	}
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". Empty is transparent.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 0:
		return color.NRGBA{}, nil
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]}) + "ff"
	case 6:
		s += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("config: bad colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("config: bad colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Export converts the render section into export options.
func (r Render) Export() (export.Options, error) {
	f, err := export.ParseFormat(r.Format)
	if err != nil {
		return export.Options{}, err
	}
	bg, err := ParseColor(r.Background)
	if err != nil {
		return export.Options{}, err
	}
	return export.Options{
		Format: f,
		Raster: raster.Options{Width: r.Width, Supersample: r.Supersample, Background: bg},
		Trim:   r.Trim,
		Margin: r.Margin,
	}, nil
}

// Relay converts the order section into relay settings.
func (o Order) Relay() order.RelayConfig {
	return order.RelayConfig{
		URL:         o.RelayURL,
		CompanyName: o.CompanyName,
		CC:          o.CC,
		OrderPrefix: o.OrderPrefix,
		Timeout:     time.Duration(o.Timeout) * time.Second,
	}
}
