// Package pie is the geometry and hit-testing engine behind an interactive
// donut chart.
//
// Items are turned into consecutive angular segments starting at 12 o'clock
// and sweeping clockwise in screen coordinates. A Chart maps pointer
// positions to the segment under the cursor and keeps a single focused
// segment, which drives the redraw, the tooltip text and the highlight of
// external rows (for example the matching line of a form).
//
// The package never touches a concrete platform: drawing, pointer events,
// size changes, rows and the tooltip are all capability interfaces supplied
// by the caller.
package pie
