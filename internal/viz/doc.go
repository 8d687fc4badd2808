// Package viz draws the animated mosaic in a terminal.
//
// The view is a Bubble Tea program:
//
//   - [Model]: steps an animation cycle on every tick and outlines each
//     shape on a [Canvas] in its stroke colour
//   - [Picker]: a preset menu that starts a Model
//   - [Canvas]: Braille canvas with 2x4 dots per cell
//
// # Key Bindings
//
//	Space - Pause/Resume
//	.     - Step one frame while paused
//	R     - Restart from frame zero
//	T     - Cycle themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
package viz
