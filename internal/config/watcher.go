package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Handler is called with the re-loaded configuration, or with a non-nil
// error when the changed file no longer parses.
type Handler func(cfg *Config, err error)

// Watcher monitors one configuration file and re-loads it on change.
//
// The parent directory is watched rather than the file itself, so editors
// that save by rename-and-replace still trigger a reload.
type Watcher struct {
	mu sync.Mutex

	fw      *fsnotify.Watcher
	path    string
	handler Handler

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// Watch starts watching path and delivers re-loaded configurations to the
// handler. The handler runs on the watcher's goroutine.
func Watch(path string, handler Handler) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:      fw,
		path:    abs,
		handler: handler,
		closeCh: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := Load(w.path)
			w.handler(cfg, err)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.handler(nil, err)
		}
	}
}
