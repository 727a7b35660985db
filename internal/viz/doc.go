// Package viz renders the solar scene to the terminal.
//
// Rendering builds on a Braille pixel canvas with a colored glyph
// overlay:
//
//   - [Canvas]: Braille dot grid with styled sprites on top
//   - [Camera]: rotatable perspective projection with zoom
//   - [SolarView]: draws a scene frame (orbit traces, rings, bodies)
//   - Theme selection with 5 built-in color schemes
//
// # Rendering order
//
// Orbit traces and rings are drawn first as sub-pixel Braille lines
// through the painter's algorithm in [Render3D]. Body sprites are
// placed afterwards, so a glyph is never overdrawn by a trace behind
// it. A live-tracked body renders underlined; the focused body gets a
// glow ring and a bold glyph.
//
// # Recording
//
// Sessions can be captured frame by frame with [CaptureFrame] and
// written as a looping GIF with [SaveGIF]. Only the dot grid is
// rasterized.
package viz
