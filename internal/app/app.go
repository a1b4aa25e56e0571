// Package app wires greg's components together and runs the event loop.
//
// The loop is single-threaded: render, wait for one event, apply it, repeat.
// Other goroutines (the file watcher, signal handlers) never touch editor
// state; they post interrupt events into the backend queue instead.
package app

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/greg/internal/config"
	"github.com/dshills/greg/internal/editor"
	"github.com/dshills/greg/internal/input"
	"github.com/dshills/greg/internal/matrix"
	"github.com/dshills/greg/internal/renderer"
	"github.com/dshills/greg/internal/renderer/backend"
	"github.com/dshills/greg/internal/script"
	"github.com/dshills/greg/internal/source"
)

// Application owns the session state and the components around it.
type Application struct {
	mu sync.RWMutex

	config  *config.Config
	state   *editor.State
	machine *input.Machine
	scripts *script.Host
	watcher *source.Watcher

	renderer *renderer.Renderer
	backend  backend.Backend

	logger  *Logger
	session string

	running  atomic.Bool
	done     chan struct{}
	shutdown sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// Config supplies settings. Nil uses config.Default().
	Config *config.Config

	// Path is the file being viewed. "-" or empty means standard input.
	Path string

	// Data, when set, is used instead of reading Path.
	Data *matrix.Matrix[string]

	// Watch reports external changes to Path in the status line.
	Watch bool

	// Logger receives log output. Nil discards.
	Logger *Logger
}

// New creates an Application, loading the data and any user script.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		config:  opts.Config,
		logger:  opts.Logger,
		session: uuid.NewString(),
		done:    make(chan struct{}),
	}
	if app.config == nil {
		app.config = config.Default()
	}
	if app.logger == nil {
		app.logger = NullLogger
	}
	app.logger = app.logger.WithField("session", app.session)

	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	data := app.opts.Data
	if data == nil {
		opts, err := app.config.SourceOptions()
		if err != nil {
			return &InitError{Component: "config", Err: err}
		}
		rows, err := source.ReadFile(app.sourcePath(), opts)
		if err != nil {
			return &InitError{Component: "source", Err: err}
		}
		data = matrix.FromRows(rows)
	}

	st, err := editor.New(data, app.config.Settings())
	if err != nil {
		return &InitError{Component: "editor", Err: err}
	}
	app.state = st

	var runner input.CommandRunner
	if path := app.config.Script; path != "" {
		host := script.NewHost()
		if err := host.LoadFile(path); err != nil {
			app.logger.WithComponent("script").Warn("loading %s: %v", path, err)
			st.Status = fmt.Sprintf("script: %v", err)
		}
		app.scripts = host
		runner = host
	}
	app.machine = input.NewMachine(runner)

	app.logger.Info("opened %s (%dx%d, %d header rows)",
		app.displayPath(), st.Rows(), st.Cols(), st.Settings.HeaderRows)
	return nil
}

func (app *Application) sourcePath() string {
	if app.opts.Path == "" {
		return "-"
	}
	return app.opts.Path
}

func (app *Application) displayPath() string {
	if p := app.sourcePath(); p != "-" {
		return p
	}
	return source.StdinPath
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run initializes the backend and runs the event loop until a quit
// command, RequestQuit or Shutdown. A normal exit returns ErrQuit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return &InitError{Component: "backend", Err: ErrNoBackend}
	}

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	app.mu.Lock()
	app.renderer = renderer.New(b)
	app.mu.Unlock()

	app.startWatcher()

	return app.eventLoop()
}

// startWatcher begins reporting external changes to the source file.
// Failure is logged and otherwise ignored.
func (app *Application) startWatcher() {
	if !app.opts.Watch || app.sourcePath() == "-" {
		return
	}
	log := app.logger.WithComponent("watcher")

	w, err := source.NewWatcher(app.opts.Path, func(op source.Op) {
		if err := app.backend.PostInterrupt(fileChanged{op: op}); err != nil {
			log.Warn("posting change: %v", err)
		}
	}, source.WithErrorHandler(func(err error) {
		log.Warn("%v", err)
	}))
	if err != nil {
		log.Warn("watching %s: %v", app.opts.Path, err)
		return
	}
	log.Debug("watching %s", w.Path())

	app.mu.Lock()
	app.watcher = w
	app.mu.Unlock()
}

// RequestQuit asks a running loop to exit. Safe to call from any goroutine.
func (app *Application) RequestQuit() error {
	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()

	if b == nil || !app.running.Load() {
		return nil
	}
	return b.PostInterrupt(quitRequest{})
}

// Shutdown releases the watcher and script host and stops the loop.
// It is safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdown.Do(func() {
		close(app.done)

		app.mu.Lock()
		w, h, b := app.watcher, app.scripts, app.backend
		app.watcher = nil
		app.mu.Unlock()

		if w != nil {
			if err := w.Close(); err != nil {
				app.logger.WithComponent("watcher").Warn("close: %v", err)
			}
		}
		if h != nil {
			h.Close()
		}
		if b != nil && app.running.Load() {
			_ = b.PostInterrupt(quitRequest{})
		}
	})
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// State returns the editor state. Only the loop goroutine may modify it
// while the application is running.
func (app *Application) State() *editor.State {
	return app.state
}

// Renderer returns the renderer, or nil before Run.
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.renderer
}

// Config returns the configuration in use.
func (app *Application) Config() *config.Config {
	return app.config
}

// Session returns the session id attached to every log line.
func (app *Application) Session() string {
	return app.session
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}
