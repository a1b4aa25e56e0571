package script

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/greg/internal/editor"
)

// DefaultTimeout bounds a single command call.
const DefaultTimeout = 2 * time.Second

// Host owns a Lua state and the commands registered in it.
//
// gopher-lua states are not goroutine-safe; the mutex serializes callers.
type Host struct {
	mu sync.Mutex

	L        *lua.LState
	commands map[string]*lua.LFunction
	timeout  time.Duration

	// st is the editor state of the command currently running.
	st *editor.State

	closed bool
}

// Option configures a Host.
type Option func(*Host)

// WithTimeout sets the per-call timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(h *Host) {
		h.timeout = d
	}
}

// NewHost creates a sandboxed Lua state with the greg API installed.
func NewHost(opts ...Option) *Host {
	h := &Host{
		commands: make(map[string]*lua.LFunction),
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	h.L = L
	h.installAPI()
	return h
}

// LoadFile runs the Lua file at path.
func (h *Host) LoadFile(path string) error {
	return h.run(func() error {
		return h.L.DoFile(path)
	})
}

// LoadString runs a chunk of Lua source.
func (h *Host) LoadString(code string) error {
	return h.run(func() error {
		return h.L.DoString(code)
	})
}

// Commands returns the registered command names in sorted order.
func (h *Host) Commands() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunCommand calls the Lua function registered as name with args as a
// Lua array. It reports false when no such command exists.
func (h *Host) RunCommand(st *editor.State, name string, args []string) (bool, error) {
	h.mu.Lock()
	fn, ok := h.commands[name]
	h.mu.Unlock()
	if !ok {
		return false, nil
	}

	err := h.run(func() error {
		argv := h.L.NewTable()
		for _, a := range args {
			argv.Append(lua.LString(a))
		}
		h.st = st
		defer func() { h.st = nil }()
		return h.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, argv)
	})
	return true, err
}

// Close releases the Lua state.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	h.L.Close()
}

// run executes fn under the call timeout with panic recovery.
func (h *Host) run(fn func() error) (err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}

	if h.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()
		h.L.SetContext(ctx)
		defer h.L.RemoveContext()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return cleanError(fn())
}

// cleanError strips the Lua traceback from API errors.
func cleanError(err error) error {
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		return errors.New(apiErr.Object.String())
	}
	return err
}
