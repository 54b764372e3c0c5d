package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"camper-renderer/internal/batch"
	"camper-renderer/internal/camper"
	"camper-renderer/internal/catalog"
	"camper-renderer/internal/config"

	"github.com/spf13/cobra"
)

var (
	batchFlags   config.Flags
	batchCatalog string
	batchBase    string
	batchTest    int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Render a catalog of builds",
	Long: `Render every build in a JSON catalog, or every frame and wheel package
combination of a base build, and write a manifest.json next to the images.

Examples:
  camper batch --catalog catalog.json --format webp --out renders/
  camper batch --base build.json --workers 4
  camper batch --test 2`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchCatalog, "catalog", "", "JSON catalog of named builds")
	batchCmd.Flags().StringVar(&batchBase, "base", "", "build JSON expanded over every frame and wheel package (default: storefront build)")
	batchCmd.Flags().IntVar(&batchTest, "test", 0, "render only the first N entries")
	batchCmd.Flags().StringVarP(&batchFlags.OutputDir, "out", "o", "", "output directory")
	batchCmd.Flags().IntVar(&batchFlags.Workers, "workers", 0, "worker goroutines (default: NumCPU)")
	batchCmd.Flags().StringVarP(&batchFlags.Format, "format", "f", "", "svg, png, webp or tga")
	batchCmd.Flags().IntVarP(&batchFlags.Width, "width", "w", 0, "bitmap width in pixels")
	batchCmd.Flags().BoolVar(&batchFlags.Trim, "trim", false, "crop bitmaps to the drawing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(batchFlags)
	if err != nil {
		return err
	}
	opts, err := cfg.Render.Export()
	if err != nil {
		return err
	}

	entries, err := batchEntries()
	if err != nil {
		return err
	}
	if batchTest > 0 && batchTest < len(entries) {
		entries = entries[:batchTest]
	}
	if len(entries) == 0 {
		fmt.Println("No builds to render.")
		return nil
	}

	fmt.Printf("Camper renderer -> %s\n", opts.Format)
	fmt.Printf("Builds: %d, Workers: %d\n", len(entries), cfg.Batch.Workers)
	fmt.Printf("Output: %s\n", cfg.Batch.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batch.Config{
		OutputDir: cfg.Batch.OutputDir,
		Export:    opts,
		Workers:   cfg.Batch.Workers,
		Log:       slog.Default(),
	}, entries)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(entries))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, r := range failed[:min(len(failed), 20)] {
			fmt.Printf("  %s: %s\n", r.Name, r.Error)
		}
	}

	manifestPath := filepath.Join(cfg.Batch.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.Batch.OutputDir, 0755); err != nil {
		return err
	}
	if err := batch.WriteManifest(manifestPath, entries, results); err != nil {
		slog.Warn("manifest write failed", "path", manifestPath, "error", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d builds failed", len(failed), len(entries))
	}
	return nil
}

func batchEntries() ([]catalog.Entry, error) {
	if batchCatalog != "" {
		return catalog.Load(batchCatalog)
	}
	base := camper.Default()
	if batchBase != "" {
		var err error
		if base, err = camper.Load(batchBase); err != nil {
			return nil, err
		}
	}
	return catalog.Matrix(base), nil
}
