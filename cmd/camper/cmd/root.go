package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"camper-renderer/internal/camper"
	"camper-renderer/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	logLevel   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "camper",
	Short: "Isometric camper trailer renderer and configurator",
	Long: `Render isometric schematics of camper trailer builds, price them,
and serve the renderer and order relay over HTTP.

Examples:
  camper render --frame heavy --wheels extreme --options sidePanels,roofTent
  camper render build.json --format png --width 1600 --out build.png
  camper price build.json
  camper batch --format webp --out renders/
  camper build
  camper serve --config camper.toml`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file (created with defaults if missing)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setupLogging() error {
	level := logLevel
	if verbose {
		level = "debug"
	}
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// loadConfig reads --config when given, applies flag overrides and fills defaults.
func loadConfig(flags config.Flags) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return config.Config{}, err
		}
		slog.Debug("config loaded", "path", configPath)
	}
	flags.LogLevel = logLevel
	cfg.Resolve(flags)
	return cfg, nil
}

// Build selection flags shared by render and price.
type buildFlags struct {
	frame   string
	wheels  string
	options string
}

func (b *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&b.frame, "frame", "", "frame: minimalist, standard or heavy")
	cmd.Flags().StringVar(&b.wheels, "wheels", "", "wheel package: standard, offroad or extreme")
	cmd.Flags().StringVar(&b.options, "options", "", "comma-separated accessories, e.g. sidePanels,roofTent")
}

// resolve loads the build file in args, if any, then applies the flags.
// With neither, the storefront default build is used.
func (b *buildFlags) resolve(args []string) (camper.Config, error) {
	cfg := camper.Default()
	if len(args) > 0 {
		var err error
		if cfg, err = camper.Load(args[0]); err != nil {
			return camper.Config{}, err
		}
	}
	if b.frame != "" {
		cfg.Frame = camper.Frame(b.frame)
	}
	if b.wheels != "" {
		cfg.Wheels = camper.Wheels(b.wheels)
	}
	if b.options != "" {
		opts, err := camper.ParseOptions(b.options)
		if err != nil {
			return camper.Config{}, err
		}
		cfg = cfg.WithOptions(opts...)
	}
	if !cfg.Frame.Known() {
		slog.Warn("unknown frame, drawing and pricing as standard", "frame", cfg.Frame)
	}
	if !cfg.Wheels.Known() {
		slog.Warn("unknown wheel package, drawing and pricing as standard", "wheels", cfg.Wheels)
	}
	return cfg, nil
}
