package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/VantageDataChat/logogrid/pptx"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <deck.pptx>",
	Short: "List the pictures in a deck and their positions in inches",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().Int("slide", 0, "Only list this slide (1-based)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	pres, err := pptx.Open(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	out := cmd.OutOrStdout()
	layout := pres.GetLayout()
	fmt.Fprintf(out, "%s: %d slide(s), %.2f x %.2f in\n", args[0], pres.GetSlideCount(),
		pptx.EMUToInch(layout.CX), pptx.EMUToInch(layout.CY))

	first, last := 1, pres.GetSlideCount()
	if n, _ := cmd.Flags().GetInt("slide"); cmd.Flags().Changed("slide") {
		first, last = n, n
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLIDE\tNAME\tX\tY\tWIDTH\tHEIGHT")
	for n := first; n <= last; n++ {
		slide, err := pres.GetSlide(n - 1)
		if err != nil {
			return fmt.Errorf("slide %d: %w", n, err)
		}
		for _, s := range slide.GetShapes() {
			fmt.Fprintf(tw, "%d\t%s\t%.3f\t%.3f\t%.3f\t%.3f\n", n, s.GetName(),
				pptx.EMUToInch(s.GetOffsetX()), pptx.EMUToInch(s.GetOffsetY()),
				pptx.EMUToInch(s.GetWidth()), pptx.EMUToInch(s.GetHeight()))
		}
	}
	return tw.Flush()
}
