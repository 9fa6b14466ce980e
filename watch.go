package logogrid

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is how long the watcher waits after the last change
// before rebuilding.
const DefaultDebounce = 500 * time.Millisecond

// Watcher rebuilds the deck whenever a source image changes.
type Watcher struct {
	pipeline *Pipeline
	logger   zerolog.Logger

	// Debounce collapses bursts of events into one rebuild.
	Debounce time.Duration
	// OnBuild, when set, is called after every rebuild.
	OnBuild func(*Result, error)
}

// NewWatcher returns a Watcher for p. It refuses configurations that would
// write into the watched directory.
func NewWatcher(p *Pipeline, logger zerolog.Logger) (*Watcher, error) {
	if err := p.cfg.ValidateWatch(); err != nil {
		return nil, err
	}
	return &Watcher{
		pipeline: p,
		logger:   logger.With().Str("component", "watcher").Logger(),
		Debounce: DefaultDebounce,
	}, nil
}

// Run builds once, then rebuilds after source changes until ctx is done.
// Build errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := w.pipeline.cfg.SourceDir
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info().Str("dir", dir).Msg("watching for changes")

	w.build()

	timer := time.NewTimer(w.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("change")
			timer.Reset(w.Debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("watch error")
		case <-timer.C:
			w.build()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Base(ev.Name)
	return !isHidden(name) && hasExtension(name, w.pipeline.cfg.Extensions)
}

func (w *Watcher) build() {
	res, err := w.pipeline.Run()
	if err != nil {
		w.logger.Error().Err(err).Msg("rebuild failed")
	}
	if w.OnBuild != nil {
		w.OnBuild(res, err)
	}
}
