package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher signals on Changes whenever the watched file is written,
// created, renamed over or removed.
//
// The parent directory is watched rather than the file, so editors that
// save by replacing the file keep being followed.
type Watcher struct {
	path      string
	fs        *fsnotify.Watcher
	debouncer *Debouncer
	changes   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New starts watching path. A zero debounce uses DefaultDebounce.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:      abs,
		fs:        fsw,
		debouncer: NewDebouncer(debounce),
		changes:   make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Changes delivers one value per settled burst of changes. Pending
// signals are merged, so a slow reader sees at most one.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching. Changes is not closed.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.debouncer.Cancel()
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op == fsnotify.Chmod {
				continue
			}
			w.debouncer.Trigger(w.notify)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("watcher %s: %v", w.path, err)
		}
	}
}

func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
