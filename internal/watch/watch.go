// Package watch monitors a manifest file on disk and invokes a callback
// when its content changes. Events are debounced so editors that write in
// bursts (truncate, write, rename) trigger a single callback.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/domainkit/pkg/log"
)

var (
	// ErrNoPath is returned when New is called with an empty path.
	ErrNoPath = errors.New("watch: path is required")

	// ErrNoCallback is returned when New is called without a callback.
	ErrNoCallback = errors.New("watch: callback is required")
)

// DefaultDebounce is the delay between the last file event and the callback.
const DefaultDebounce = 100 * time.Millisecond

// Watcher monitors a single file through its parent directory via fsnotify.
// Watching the directory instead of the file keeps the watch alive across
// atomic saves, which replace the inode of the watched file.
type Watcher struct {
	path     string
	onChange func()
	debounce time.Duration
	logger   log.Logger
}

// Option configures optional behavior of a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period required after the last event before
// the callback fires. Values <= 0 are ignored.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a Watcher for the file at path. onChange runs on the Run
// goroutine after each debounced change; invocations never overlap.
func New(path string, onChange func(), opts ...Option) (*Watcher, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	if onChange == nil {
		return nil, ErrNoCallback
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run blocks watching the file until ctx is cancelled. It returns ctx.Err()
// on cancellation and a descriptive error if the watch cannot be set up.
// The callback runs on this goroutine, so invocations never overlap and Run
// does not return while one is in flight.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch: watch %s: %w", dir, err)
	}

	w.logger.Debug("manifest watch started",
		log.String("path", w.path),
		log.Duration("debounce", w.debounce))

	// The debounce timer starts disarmed; manifest events re-arm it, and
	// bursts of events inside one window collapse into a single fire.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("manifest changed", log.String("op", event.Op.String()))
			// Stop and drain before Reset so a fired-but-unread timer
			// cannot double-fire.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			w.onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("manifest watch error", log.Err(err))
		}
	}
}
