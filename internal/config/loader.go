package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Loader reads a scenario YAML file and watches it for changes.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *Scenario
	onChange []func(*Scenario)
	watcher  *fsnotify.Watcher
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path}
	sc, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = sc
	return l, nil
}

// Scenario returns the current (latest) scenario.
func (l *Loader) Scenario() *Scenario {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked whenever the scenario reloads.
func (l *Loader) OnChange(fn func(*Scenario)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Watch starts a background goroutine that hot-reloads the scenario on
// file changes. Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher add %s: %w", l.path, err)
	}
	l.watcher = w

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					sc, err := l.load()
					if err != nil {
						// Keep serving the old scenario.
						continue
					}
					l.publish(sc)
				}
			case <-w.Errors:
				// Ignore watcher errors.
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}

// Reload forces an immediate re-read of the scenario file.
func (l *Loader) Reload() (*Scenario, error) {
	sc, err := l.load()
	if err != nil {
		return nil, err
	}
	l.publish(sc)
	return sc, nil
}

func (l *Loader) publish(sc *Scenario) {
	l.mu.Lock()
	l.current = sc
	callbacks := make([]func(*Scenario), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(sc)
	}
}

func (l *Loader) load() (*Scenario, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", l.path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", l.path, err)
	}
	// Apply defaults.
	if sc.Name == "" {
		sc.Name = "scenario"
	}
	if sc.Analysis.MinOccurrences == 0 {
		sc.Analysis.MinOccurrences = 1
	}
	if err := Validate(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
