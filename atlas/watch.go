package atlas

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefinitionKind tells a reload consumer which kind of definition file
// changed, so it can re-read only the matching source.
type DefinitionKind int

const (
	DefinitionSpec DefinitionKind = iota
	DefinitionScript
)

func (k DefinitionKind) String() string {
	switch k {
	case DefinitionSpec:
		return "spec"
	case DefinitionScript:
		return "script"
	}
	return "unknown"
}

// ReloadEvent is a single debounced change to a definition file.
type ReloadEvent struct {
	Path string
	Kind DefinitionKind
}

// WatchConfig configures a Watcher. A zero Debounce uses a 100ms window,
// enough to collapse the several writes editors fire per save.
type WatchConfig struct {
	Dirs     []string
	Debounce time.Duration
}

// Watcher reports changes to atlas definition files so callers can
// hot-reload sequences while authoring.
type Watcher struct {
	fs       *fsnotify.Watcher
	events   chan ReloadEvent
	errors   chan error
	debounce time.Duration
	closeCh  chan struct{}
	once     sync.Once
}

// Watch starts watching the configured directories for definition-file
// changes.
func Watch(cfg WatchConfig) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range cfg.Dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	w := &Watcher{
		fs:       fs,
		events:   make(chan ReloadEvent, 16),
		errors:   make(chan error, 1),
		debounce: debounce,
		closeCh:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events delivers debounced definition changes. Closed after Close.
func (w *Watcher) Events() <-chan ReloadEvent { return w.events }

// Errors delivers watch failures. Closed after Close.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Close stops the watcher. Safe to call twice. The Events and Errors
// channels are closed by the watch goroutine once it drains out.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.events)
	defer close(w.errors)

	seen := make(map[string]time.Time)
	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			kind, ok := classifyDefinition(ev.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, hit := seen[ev.Name]; hit && now.Sub(t) < w.debounce {
				continue
			}
			seen[ev.Name] = now
			select {
			case w.events <- ReloadEvent{Path: ev.Name, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-w.closeCh:
				return
			}
		}
	}
}

func classifyDefinition(path string) (DefinitionKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DefinitionSpec, true
	case ".tengo":
		return DefinitionScript, true
	}
	return 0, false
}
