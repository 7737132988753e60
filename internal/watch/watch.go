// Package watch regenerates a theme whenever its config file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/shadeforge/internal/config"
	"github.com/alexisbeaulieu97/shadeforge/internal/logger"
	"github.com/alexisbeaulieu97/shadeforge/internal/theme"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 150 * time.Millisecond

// Update is delivered to the sink after every successful reload.
type Update struct {
	Config *config.Config
	Theme  theme.Theme
}

// Sink consumes regenerated themes. An error is logged and watching
// continues.
type Sink func(Update) error

// Options configures a Watcher.
type Options struct {
	Debounce time.Duration
	Logger   *logger.Logger
	// OnError is called for every rejected reload.
	OnError func(error)
}

// Watcher follows one theme file.
type Watcher struct {
	path     string
	sink     Sink
	debounce time.Duration
	log      *logger.Logger
	onError  func(error)

	mu   sync.RWMutex
	live *theme.Live
}

// New returns a watcher for the config file at path.
func New(path string, sink Sink, opts Options) *Watcher {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Watcher{
		path:     filepath.Clean(path),
		sink:     sink,
		debounce: debounce,
		log:      log.With("path", path),
		onError:  opts.OnError,
	}
}

// Current returns the last theme that loaded cleanly.
func (w *Watcher) Current() (theme.Theme, bool) {
	live := w.loaded()
	if live == nil {
		return theme.Theme{}, false
	}
	return live.Current(), true
}

func (w *Watcher) loaded() *theme.Live {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.live
}

// Run loads the file once, hands the result to the sink and then reloads on
// every change until ctx is done. The initial load must succeed; later
// failures keep the previous theme.
func (w *Watcher) Run(ctx context.Context) error {
	if w.sink == nil {
		return errors.New("watch: nil sink")
	}

	cfg, settings, err := load(w.path)
	if err != nil {
		return err
	}
	live, err := theme.NewLive(settings)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.live = live
	w.mu.Unlock()
	w.deliver(cfg, live.Current())

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsw.Close()

	// Editors often replace the file rather than write it, so the directory
	// is watched and events are filtered by name.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.log.Info("watching theme file")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("watch stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("file watcher error", map[string]any{"error": err.Error()})

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, settings, err := load(w.path)
	if err != nil {
		w.reject(err)
		return
	}

	t, err := w.loaded().Apply(settings)
	if err != nil {
		w.reject(err)
		return
	}
	w.log.Debug("theme reloaded", map[string]any{
		"primary": t.Settings.Primary().String(),
		"neutral": t.Settings.Neutral().String(),
	})
	w.deliver(cfg, t)
}

func (w *Watcher) deliver(cfg *config.Config, t theme.Theme) {
	if err := w.sink(Update{Config: cfg, Theme: t}); err != nil {
		w.log.Error(err, "theme sink failed")
	}
}

func (w *Watcher) reject(err error) {
	w.log.Warn("theme file rejected, keeping previous output", map[string]any{"error": err.Error()})
	if w.onError != nil {
		w.onError(err)
	}
}

func load(path string) (*config.Config, theme.Settings, error) {
	cfg, err := config.ParseConfig(path)
	if err != nil {
		return nil, theme.Settings{}, err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return nil, theme.Settings{}, err
	}
	return cfg, settings, nil
}
