// ============================================================================
// clite - Token Stream Interpreter
// ============================================================================
//
// Package:     source
// Description: Reloads a token file whenever it changes on disk
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package source

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/msto63/clite/foundation/clite/token"
	mdwerror "github.com/msto63/clite/foundation/core/error"
	mdwlog "github.com/msto63/clite/foundation/core/log"
)

// DefaultDebounce is the quiet period after a change before reloading
const DefaultDebounce = 200 * time.Millisecond

// ChangeFunc receives the reloaded stream or the load error
type ChangeFunc func(stream *token.Stream, err error)

// Watcher reloads a single token file on change
type Watcher struct {
	path     string
	format   Format
	debounce time.Duration
	logger   *mdwlog.Logger
}

// WatchOptions configures a Watcher
type WatchOptions struct {
	Format   Format
	Debounce time.Duration
	Logger   *mdwlog.Logger
}

// NewWatcher creates a watcher for path
func NewWatcher(path string, opts WatchOptions) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		format:   opts.Format,
		debounce: opts.Debounce,
		logger:   opts.Logger.WithField("component", "source-watch"),
	}
}

// Run blocks until ctx is done and calls fn after every change of the
// file. The directory is watched rather than the file so that editors
// replacing the file on save are noticed.
func (w *Watcher) Run(ctx context.Context, fn ChangeFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create watcher").WithCode(mdwerror.CodeInternal)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return mdwerror.Wrap(err, "failed to watch directory").
			WithCode(mdwerror.CodeNotFound).
			WithDetail("dir", dir)
	}
	w.logger.Info("watching token file", mdwlog.Fields{"path": w.path})

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("stopping watcher (context cancelled)")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}

			// Restart the quiet period on every event
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			trigger = timer.C

		case <-trigger:
			trigger = nil
			w.logger.Debug("token file changed, reloading", mdwlog.Fields{"path": w.path})
			stream, err := LoadFormat(w.path, w.format)
			fn(stream, err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.ErrorWithErr("watcher error", err)
		}
	}
}
