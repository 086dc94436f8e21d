package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventHistoryChanged indicates the history file was written, replaced
	// or removed.
	EventHistoryChanged EventType = iota

	// EventWatchError signals the watcher hit an error; callers should
	// reload to stay in sync.
	EventWatchError
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Err  error
}

// watchDelay coalesces the burst of events a single truncate+write makes.
const watchDelay = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. The channel is closed
// once ctx is done or the watcher shuts down. Events are dropped rather than
// block when the consumer is slow.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	// Watch the directory, not the file: diskv may recreate the file and
	// the file may not exist yet.
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	target := filepath.Clean(p.Path())
	events := make(chan Event, 16)

	go func() {
		var mu sync.Mutex
		closed := false
		defer func() {
			mu.Lock()
			closed = true
			close(events)
			mu.Unlock()
		}()
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		send := func(ev Event) {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
			}
		}
		d := newDebouncer(watchDelay)
		defer d.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				send(Event{Type: EventWatchError, Err: err})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				d.Trigger(func() { send(Event{Type: EventHistoryChanged}) })
			}
		}
	}()

	return events, nil
}

// debouncer runs the most recent callback once no trigger arrived for delay.
type debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
