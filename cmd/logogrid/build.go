package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/VantageDataChat/logogrid"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the logo deck from a source directory",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringP("source", "s", "", "Directory of logo images")
	buildCmd.Flags().StringP("output", "o", "", "Output .pptx file")
	buildCmd.Flags().Int("columns", 0, "Grid columns")
	buildCmd.Flags().Int("rows", 0, "Grid rows")
	buildCmd.Flags().Float64("width", 0, "Slide width in inches")
	buildCmd.Flags().Float64("height", 0, "Slide height in inches")
	buildCmd.Flags().Int("threshold", 0, "White threshold (0-255)")
	buildCmd.Flags().String("policy", "", "Layout policy (balanced, legacy)")
	buildCmd.Flags().String("order", "", "Source order (name, discovery)")
	buildCmd.Flags().String("normalized-dir", "", "Write normalized PNGs to this directory")
	buildCmd.Flags().Bool("in-place", false, "Overwrite source images with their normalized PNG")
	buildCmd.Flags().String("preview", "", "Also render the slide to this PNG or JPEG file")
	buildCmd.Flags().String("title", "", "Deck title")
	buildCmd.Flags().BoolP("watch", "w", false, "Rebuild whenever the source directory changes")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyBuildFlags(cmd, &cfg)

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	p, err := logogrid.NewPipeline(cfg, logger)
	if err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	if watch {
		w, err := logogrid.NewWatcher(p, logger)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return w.Run(ctx)
	}

	res, err := p.Run()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Placed %d of %d logos in %s", res.Placed, res.Sources, res.Output)
	if res.Dropped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " (%d did not fit)", res.Dropped)
	}
	if len(res.Skipped) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " (%d unreadable)", len(res.Skipped))
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

// applyBuildFlags overrides cfg with every flag set on the command line.
func applyBuildFlags(cmd *cobra.Command, cfg *logogrid.Config) {
	f := cmd.Flags()
	if f.Changed("source") {
		cfg.SourceDir, _ = f.GetString("source")
	}
	if f.Changed("output") {
		cfg.Output, _ = f.GetString("output")
	}
	if f.Changed("columns") {
		cfg.Grid.Columns, _ = f.GetInt("columns")
	}
	if f.Changed("rows") {
		cfg.Grid.Rows, _ = f.GetInt("rows")
	}
	if f.Changed("width") {
		cfg.Canvas.Width, _ = f.GetFloat64("width")
	}
	if f.Changed("height") {
		cfg.Canvas.Height, _ = f.GetFloat64("height")
	}
	if f.Changed("threshold") {
		cfg.Threshold, _ = f.GetInt("threshold")
	}
	if f.Changed("policy") {
		cfg.Layout.Kind, _ = f.GetString("policy")
	}
	if f.Changed("order") {
		cfg.Order, _ = f.GetString("order")
	}
	if f.Changed("normalized-dir") {
		cfg.Normalized.Dir, _ = f.GetString("normalized-dir")
	}
	if f.Changed("in-place") {
		cfg.Normalized.InPlace, _ = f.GetBool("in-place")
	}
	if f.Changed("preview") {
		cfg.Preview, _ = f.GetString("preview")
	}
	if f.Changed("title") {
		cfg.Deck.Title, _ = f.GetString("title")
	}
}
