// Package masks renders category masks for a classified image.
//
// A Layer names an output mask and lists the categories it paints, in
// priority order. For every pixel the compositor classifies the source color
// once, then writes each layer exactly once: the color of the first listed
// category the pixel belongs to, or fully transparent (0,0,0,0) when it
// belongs to none. Transparent is a sentinel for "not in this layer" and never
// collides with a category color, since every category color is opaque.
//
// # Default Layers
//
// DefaultLayers returns the six masks produced by the command:
//
//	red-only        red
//	green-only      green
//	black-only      near-black
//	white-only      near-white
//	red-green       red > green
//	all-categories  near-black > near-white > red > green
//
// # Counts
//
// Counts are per category, not per layer. A pixel that is both red and
// near-black increments both counts even though the all-categories layer only
// shows black.
//
// # Concurrency
//
// Composite scans sequentially by default. WithParallel splits the rows into
// bands processed concurrently; each band writes a disjoint set of rows and
// keeps its own counts, merged once the band is done. Results are identical
// either way.
package masks
