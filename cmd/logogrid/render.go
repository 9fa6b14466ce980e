package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/VantageDataChat/logogrid/pptx"
)

var renderCmd = &cobra.Command{
	Use:   "render <deck.pptx>",
	Short: "Render every slide of a deck to images",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", ".", "Output directory")
	renderCmd.Flags().Int("width", 960, "Image width in pixels")
	renderCmd.Flags().String("format", "png", "Image format (png, jpeg)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	dst, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	format, _ := cmd.Flags().GetString("format")

	opts := pptx.DefaultRenderOptions()
	opts.Width = width
	ext := ".png"
	switch format {
	case "png":
	case "jpeg", "jpg":
		opts.Format = pptx.ImageFormatJPEG
		ext = ".jpg"
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	pres, err := pptx.Open(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	if err := os.MkdirAll(dst, 0750); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	pattern := filepath.Join(dst, "slide%02d"+ext)
	if err := pres.SaveSlidesAsImages(pattern, opts); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d slides to %s\n", pres.GetSlideCount(), dst)
	return nil
}
