package logogrid

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/VantageDataChat/logogrid/pptx"
)

// Result summarises one run.
type Result struct {
	Output     string
	Sources    int
	Placed     int
	Dropped    int
	Skipped    []string // sources that could not be decoded
	Placements []Placement
}

// Pipeline turns a directory of images into a logo grid deck.
type Pipeline struct {
	cfg    Config
	plan   *GridPlan
	logger zerolog.Logger
}

// NewPipeline validates cfg and plans the grid.
func NewPipeline(cfg Config, logger zerolog.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	plan, err := PlanGrid(cfg.Grid, cfg.Canvas, cfg.Layout)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:    cfg,
		plan:   plan,
		logger: logger.With().Str("component", "pipeline").Logger(),
	}, nil
}

// Plan returns the grid plan used by every run.
func (p *Pipeline) Plan() *GridPlan { return p.plan }

// Config returns the validated configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// Run scans the source directory, normalizes every image and writes the
// deck. Undecodable files are skipped; failures to write normalized images,
// the deck or the preview are returned.
func (p *Pipeline) Run() (*Result, error) {
	srcs, err := ScanSources(p.cfg.SourceDir, p.cfg.Extensions, p.cfg.Order, p.cfg.Language)
	if err != nil {
		return nil, err
	}
	if len(srcs) == 0 {
		p.logger.Warn().Str("dir", p.cfg.SourceDir).Msg("no source images found")
	}

	res := &Result{Output: p.cfg.Output, Sources: len(srcs)}
	normalizer := NewNormalizer(p.cfg, p.plan, p.logger)
	logos := make([]*ProcessedLogo, 0, len(srcs))
	for _, src := range srcs {
		logo, err := normalizer.NormalizeFile(src)
		if errors.Is(err, ErrDecode) {
			p.logger.Warn().Err(err).Str("file", src.Path).Msg("skipping unreadable image")
			res.Skipped = append(res.Skipped, src.Path)
			continue
		}
		if err != nil {
			return nil, err
		}
		logos = append(logos, logo)
	}

	comp, err := NewComposer(p.cfg, p.plan, p.logger).Compose(logos)
	if err != nil {
		return nil, err
	}
	if err := comp.Save(p.cfg.Output); err != nil {
		return nil, err
	}
	res.Placements = comp.Placements
	res.Placed = len(comp.Placements)
	res.Dropped = comp.Dropped

	if p.cfg.Preview != "" {
		opts := pptx.DefaultRenderOptions()
		opts.Format = pptx.FormatFromPath(p.cfg.Preview)
		if err := comp.Presentation.SaveSlideAsImage(0, p.cfg.Preview, opts); err != nil {
			return nil, fmt.Errorf("write preview: %w", err)
		}
	}

	p.logger.Info().
		Str("output", res.Output).
		Int("sources", res.Sources).
		Int("placed", res.Placed).
		Int("dropped", res.Dropped).
		Int("skipped", len(res.Skipped)).
		Msg("deck written")
	return res, nil
}
