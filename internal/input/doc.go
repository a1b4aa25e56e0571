// Package input implements the modal state machine that turns input events
// into edits of an editor.State.
//
// Each mode has one transition function taking the session state and a
// single Event. Transitions mutate the state in place and return the side
// effects the surrounding loop must act on (quitting, logging a mode change,
// rendering a status message). Nothing in this package touches a terminal,
// so every transition can be tested directly.
//
// # Transitions
//
//	Normal   i → Insert   : → Command   / → Search   v → View
//	         h j k l move the cursors; anything else sets "received <input>"
//	View     h j k l move the viewport; : / as in Normal; Escape → Normal
//	Insert   graphic characters are written at the primary cursor; Escape → Normal
//	Command  graphic characters and Backspace edit the buffer;
//	Search   Escape clears it and returns to Normal; Enter commits
//
// Resize and mouse events never change the state.
package input
