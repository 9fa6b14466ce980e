// Package logogrid builds a single PowerPoint slide that shows a folder of
// company logos on a fixed column/row grid.
//
// Every source image goes through the same three stages: near-white pixels
// become transparent (RemoveBackground), the transparent margin is trimmed
// (AutoCrop), and the result is scaled to the cell budget with its aspect
// ratio kept (Resize). PlanGrid turns the grid and slide size into column and
// row centres once per run, and a Composer places each logo centred on its
// cell, dropping whatever does not fit.
//
// A Pipeline wires these stages to a source directory and an output deck:
//
//	cfg := logogrid.DefaultConfig()
//	cfg.SourceDir = "logos"
//	p, err := logogrid.NewPipeline(cfg, logger)
//	if err != nil {
//		return err
//	}
//	res, err := p.Run()
package logogrid
