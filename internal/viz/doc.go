// Package viz is the terminal frontend.
//
// [Model] is a Bubble Tea program that steps the world on every tick,
// using the wall time between ticks as the frame time, and draws it on a
// braille [Canvas] with one color per cell.
//
// # Key Bindings
//
//	Mouse  - Hold left button to attract (or repel) toward the pointer
//	Up/Down    - Timescale knob
//	Left/Right - Force knob
//	Space  - Pause/Resume simulation
//	R      - Reset to the spawned world
//	T      - Cycle color themes
//	?      - Show help
package viz
