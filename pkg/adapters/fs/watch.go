package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/adr/pkg/core"
)

const eventBuffer = 64

// Watch reports changes to record files until ctx is done. The returned
// channel is closed when watching stops.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(r.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", r.Path, err)
	}

	events := make(chan core.Event, eventBuffer)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				e, ok := toEvent(ev)
				if !ok {
					continue
				}
				r.config.Logger.Debug("record changed", "type", e.Type, "file", e.File)
				select {
				case events <- e:
				case <-ctx.Done():
					return nil
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				r.config.Logger.Error("fsnotify error", "error", err)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watcher stopped", "error", err)
	}))

	return events, nil
}

// toEvent maps a filesystem event on a record file to a core.Event.
func toEvent(ev fsnotify.Event) (core.Event, bool) {
	name := filepath.Base(ev.Name)
	if isTempFile(name) {
		return core.Event{}, false
	}
	id, ok := ParseFileName(name)
	if !ok {
		return core.Event{}, false
	}

	var typ core.EventType
	switch {
	case ev.Has(fsnotify.Create):
		typ = core.EventCreate
	case ev.Has(fsnotify.Write):
		typ = core.EventModify
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		typ = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{
		Type:      typ,
		ID:        id,
		File:      name,
		Timestamp: time.Now().Unix(),
	}, true
}
