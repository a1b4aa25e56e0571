package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/greg/internal/editor"
)

func (h *Host) installAPI() {
	mod := h.L.SetFuncs(h.L.NewTable(), map[string]lua.LGFunction{
		"command": h.luaCommand,
		"cell":    h.luaCell,
		"rows":    h.luaRows,
		"cols":    h.luaCols,
		"cursor":  h.luaCursor,
		"status":  h.luaStatus,
	})
	h.L.SetGlobal("greg", mod)
}

// greg.command(name, fn)
func (h *Host) luaCommand(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)
	if name == "" {
		L.ArgError(1, "command name must not be empty")
		return 0
	}
	h.commands[name] = fn
	return 0
}

// greg.cell(row, col) -> string|nil
func (h *Host) luaCell(L *lua.LState) int {
	st := h.state(L)
	row, col := L.CheckInt(1), L.CheckInt(2)
	text, err := st.Cell(row, col)
	if err != nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(text))
	return 1
}

func (h *Host) luaRows(L *lua.LState) int {
	L.Push(lua.LNumber(h.state(L).Rows()))
	return 1
}

func (h *Host) luaCols(L *lua.LState) int {
	L.Push(lua.LNumber(h.state(L).Cols()))
	return 1
}

// greg.cursor() -> row, col
func (h *Host) luaCursor(L *lua.LState) int {
	c := h.state(L).Cursors.Primary()
	L.Push(lua.LNumber(c.Row))
	L.Push(lua.LNumber(c.Column))
	return 2
}

func (h *Host) luaStatus(L *lua.LState) int {
	h.state(L).Status = L.CheckString(1)
	return 0
}

// state returns the editor state of the running command or raises a Lua
// error when called at load time.
func (h *Host) state(L *lua.LState) *editor.State {
	if h.st == nil {
		L.RaiseError("%s", ErrNoState.Error())
	}
	return h.st
}
