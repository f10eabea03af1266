// Package viz draws ribbons in the terminal.
//
// [Surface] rasterizes ribbon paths onto a braille [Canvas] and [Model] is
// a Bubble Tea program that drives the simulation at the configured frame
// rate, with the terminal size standing in for the viewport.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	1-9   - Shake one ribbon
//	S     - Shake every ribbon
//	R     - Rebuild ribbons
//	T     - Cycle panel themes
//	?     - Toggle help
//
// Clicking a ribbon, or moving the pointer onto one, shakes it.
package viz
