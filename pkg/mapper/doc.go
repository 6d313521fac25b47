// Package mapper translates ring/step coordinates on the tracker face into
// LED strip indices.
package mapper

// The face is an annulus of 5 rings with 16 steps each. The strip is laid
// outermost ring first; the three outer rings carry one LED per step, the
// next ring one LED per two steps and the innermost ring a single LED at the
// tip, 57 LEDs in total.
//
// Coordinates are first linearized into a virtual index over the full
// 5x16 grid, counting down so (0, 0) is the highest address, then folded
// ("devirtualized") onto the physical strip.
