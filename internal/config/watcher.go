package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// debounceDelay coalesces the bursts of events editors emit when they
// replace a file on save.
const debounceDelay = 250 * time.Millisecond

// Watcher watches the configuration file and fires a callback after it
// changes, debounced. The callback runs on the watcher goroutine; the
// caller is responsible for handing the reload over to the event loop.
type Watcher struct {
	path     string
	onChange func()
	fsw      *fsnotify.Watcher
	done     chan struct{}
	log      logrus.FieldLogger
}

// NewWatcher watches the directory containing path, so the watch
// survives rename-and-replace saves.
func NewWatcher(path string, onChange func(), log logrus.FieldLogger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		onChange: onChange,
		fsw:      fsw,
		done:     make(chan struct{}),
		log:      log,
	}
	go w.loop()
	return w, nil
}

// Stop ends the watch. Safe to call once.
func (w *Watcher) Stop() {
	close(w.done)
	w.fsw.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				fire = timer.C
			} else {
				timer.Reset(debounceDelay)
			}

		case <-fire:
			timer = nil
			fire = nil
			w.log.Info("configuration changed, reloading")
			w.onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warnf("config watch: %v", err)

		case <-w.done:
			return
		}
	}
}
