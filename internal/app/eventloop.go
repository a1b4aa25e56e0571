package app

import (
	"errors"

	"github.com/dshills/greg/internal/input"
	"github.com/dshills/greg/internal/renderer/backend"
	"github.com/dshills/greg/internal/source"
)

// StatusFileChanged is shown when the source file changes on disk.
const StatusFileChanged = "file changed on disk"

// fileChanged is the interrupt payload posted by the watcher.
type fileChanged struct {
	op source.Op
}

// quitRequest is the interrupt payload posted by RequestQuit.
type quitRequest struct{}

// eventLoop renders, waits for one event and applies it, until quit.
func (app *Application) eventLoop() error {
	log := app.logger.WithComponent("loop")
	for {
		select {
		case <-app.done:
			log.Info("shutdown")
			return ErrQuit
		default:
		}

		app.renderer.Render(app.state)

		if err := app.handleBackendEvent(app.backend.PollEvent()); err != nil {
			if errors.Is(err, ErrQuit) {
				log.Info("quit")
			}
			return err
		}
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
		app.renderer.Resize()
		return app.dispatch(input.Key(input.KindResize))
	case backend.EventMouse:
		return app.dispatch(input.Key(input.KindMouse))
	case backend.EventKey:
		return app.dispatch(convertKey(ev))
	case backend.EventInterrupt:
		return app.handleInterrupt(ev.Data)
	default:
		return nil
	}
}

func (app *Application) handleInterrupt(data any) error {
	switch d := data.(type) {
	case quitRequest:
		return ErrQuit
	case fileChanged:
		app.logger.WithComponent("watcher").Info("%s: %v", app.opts.Path, d.op)
		app.state.Status = StatusFileChanged
	}
	return nil
}

// dispatch feeds one input event to the mode machine and acts on the
// resulting effects.
func (app *Application) dispatch(ev input.Event) error {
	for _, eff := range app.machine.Dispatch(app.state, ev) {
		switch e := eff.(type) {
		case input.Quit:
			return ErrQuit
		case input.ModeChanged:
			app.logger.Debug("mode %s -> %s", e.From, e.To)
		case input.CommandRun:
			app.logger.Debug("command %q", e.Line)
		case input.Edited:
			app.logger.Debug("edited, %dx%d", app.state.Rows(), app.state.Cols())
		case input.SearchCommitted:
			app.logger.Debug("search %q", e.Term)
		}
	}
	return nil
}

// convertKey maps a backend key event to an input event.
func convertKey(ev backend.Event) input.Event {
	switch ev.Key {
	case backend.KeyRune:
		return input.Rune(ev.Rune)
	case backend.KeyEscape:
		return input.Key(input.KindEscape)
	case backend.KeyEnter:
		return input.Key(input.KindEnter)
	case backend.KeyBackspace:
		return input.Key(input.KindBackspace)
	default:
		return input.Named(ev.Key.String())
	}
}
