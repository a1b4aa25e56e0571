package source

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Op describes a change to the watched file.
type Op uint8

const (
	OpWrite Op = 1 << iota
	OpCreate
	OpRemove
	OpRename
)

// String returns a readable representation of the operation set.
func (o Op) String() string {
	if o == 0 {
		return "none"
	}
	var s string
	for _, n := range []struct {
		op   Op
		name string
	}{{OpWrite, "write"}, {OpCreate, "create"}, {OpRemove, "remove"}, {OpRename, "rename"}} {
		if o&n.op != 0 {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	return s
}

// DefaultDebounce coalesces bursts of events, such as an editor writing a
// temp file and renaming it over the original.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a single file. The parent directory is watched
// so that atomic saves, which replace the file, are still observed.
type Watcher struct {
	mu sync.Mutex

	watcher  *fsnotify.Watcher
	path     string
	onChange func(Op)
	onError  func(error)
	debounce time.Duration

	pending Op
	timer   *time.Timer

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long events are collected after the first one
// before onChange fires. A steady stream of writes still produces one
// notification per window. Zero disables coalescing.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithErrorHandler sets a callback for errors from the underlying watcher.
func WithErrorHandler(fn func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// NewWatcher starts watching path. onChange is called from a background
// goroutine with the accumulated operations.
func NewWatcher(path string, onChange func(Op), opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	w := &Watcher{
		watcher:  fsw,
		path:     abs,
		onChange: onChange,
		debounce: DefaultDebounce,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Pending notifications are discarded.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	name, err := filepath.Abs(ev.Name)
	if err != nil || name != w.path {
		return
	}
	op := convertOp(ev.Op)
	if op == 0 {
		return
	}

	if w.debounce <= 0 {
		w.notify(op)
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending |= op
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.flush)
	}
}

func (w *Watcher) flush() {
	w.mu.Lock()
	op := w.pending
	w.pending = 0
	w.timer = nil
	closed := w.closed
	w.mu.Unlock()

	if op != 0 && !closed {
		w.notify(op)
	}
}

func (w *Watcher) notify(op Op) {
	if w.onChange != nil {
		w.onChange(op)
	}
}

// convertOp keeps the operations that change file content.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}
