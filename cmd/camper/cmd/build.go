package cmd

import (
	"fmt"

	"camper-renderer/internal/camper"
	"camper-renderer/internal/pricing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Configure a build interactively",
	Long: `Walk through frame, wheel package and accessory choices, print the
quote and optionally save the build as JSON for render and price.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	def := camper.Default()

	var frame, wheels string
	if err := survey.AskOne(&survey.Select{
		Message: "Frame:",
		Options: lo.Map(camper.Frames, func(f camper.Frame, _ int) string { return frameChoice(f) }),
		Default: frameChoice(def.Frame),
	}, &frame); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	if err := survey.AskOne(&survey.Select{
		Message: "Wheel package:",
		Options: lo.Map(camper.WheelPackages, func(w camper.Wheels, _ int) string { return wheelChoice(w) }),
		Default: wheelChoice(def.Wheels),
	}, &wheels); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	var picked []string
	if err := survey.AskOne(&survey.MultiSelect{
		Message:  "Accessories:",
		Options:  lo.Map(camper.AllOptions, func(o camper.Option, _ int) string { return optionChoice(o) }),
		Default:  lo.Map(def.Options(), func(o camper.Option, _ int) string { return optionChoice(o) }),
		PageSize: len(camper.AllOptions),
	}, &picked); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	build := camper.Config{
		Frame:  lo.FindOrElse(camper.Frames, def.Frame, func(f camper.Frame) bool { return frameChoice(f) == frame }),
		Wheels: lo.FindOrElse(camper.WheelPackages, def.Wheels, func(w camper.Wheels) bool { return wheelChoice(w) == wheels }),
	}.WithOptions(lo.Filter(camper.AllOptions, func(o camper.Option, _ int) bool {
		return lo.Contains(picked, optionChoice(o))
	})...)

	fmt.Println()
	printQuote(pricing.QuoteFor(build))
	fmt.Println()

	save := false
	if err := survey.AskOne(&survey.Confirm{Message: "Save this build?", Default: true}, &save); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	if !save {
		return nil
	}

	path := ""
	if err := survey.AskOne(&survey.Input{Message: "File:", Default: "build.json"}, &path, survey.WithValidator(survey.Required)); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	if err := camper.Save(path, build); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", path)
	return nil
}

func frameChoice(f camper.Frame) string {
	return fmt.Sprintf("%s (%s)", f.Title(), pricing.FormatUSD(pricing.FramePrice(f)))
}

func wheelChoice(w camper.Wheels) string {
	return fmt.Sprintf("%s (+%s)", w.Title(), pricing.FormatUSD(pricing.WheelPrice(w)))
}

func optionChoice(o camper.Option) string {
	return fmt.Sprintf("%s (+%s)", o.Label(), pricing.FormatUSD(pricing.OptionPrice(o)))
}
