package cmd

import (
	"fmt"
	"io"
	"os"

	"camper-renderer/internal/config"
	"camper-renderer/internal/export"
	"camper-renderer/internal/preview"

	"github.com/spf13/cobra"
)

var (
	renderBuild  buildFlags
	renderFlags  config.Flags
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render [build.json]",
	Short: "Render one build to SVG, PNG, WebP or TGA",
	Long: `Render a camper build as an isometric schematic.

The build comes from an optional JSON file, then --frame, --wheels and
--options override it. Without either, the storefront default build is drawn.

Examples:
  camper render --options sidePanels,sideAccessDoors,roofTent
  camper render build.json --format png --width 1600 --trim --out build.png
  camper render --format svg --out -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderBuild.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderFlags.Format, "format", "f", "", "svg, png, webp or tga")
	renderCmd.Flags().IntVarP(&renderFlags.Width, "width", "w", 0, "bitmap width in pixels")
	renderCmd.Flags().IntVar(&renderFlags.Supersample, "supersample", 0, "bitmap supersampling factor")
	renderCmd.Flags().StringVar(&renderFlags.Background, "background", "", "bitmap background colour, e.g. #ffffff")
	renderCmd.Flags().BoolVar(&renderFlags.Trim, "trim", false, "crop bitmaps to the drawing")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "output file, - for stdout (default camper.<format>)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(renderFlags)
	if err != nil {
		return err
	}
	build, err := renderBuild.resolve(args)
	if err != nil {
		return err
	}
	opts, err := cfg.Render.Export()
	if err != nil {
		return err
	}

	out := renderOutput
	if out == "" {
		out = "camper" + opts.Format.Extension()
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	sc := preview.Render(build)
	if err := export.Encode(w, sc, opts); err != nil {
		return err
	}

	if out != "-" {
		fmt.Printf("%s: %d primitives -> %s\n", build.Summary(), sc.Len(), out)
	}
	return nil
}
