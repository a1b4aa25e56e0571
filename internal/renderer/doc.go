// Package renderer draws the grid editor onto a terminal backend.
//
// Rendering is split in two layers. The layout package turns the session
// state into a list of draw instructions without touching the terminal;
// the Renderer applies those instructions to a backend and flushes them:
//
//	┌───────────────────────────────┐
//	│  Renderer (erase, draw, show) │
//	├───────────────────────────────┤
//	│  layout.Compute (pure)        │
//	├───────────────────────────────┤
//	│  backend.Backend              │
//	│  Terminal (tcell) │ Null      │
//	└───────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term)
//	r.Render(state)
package renderer
