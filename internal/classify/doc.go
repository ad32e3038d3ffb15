// Package classify assigns pixels to fixed color categories.
//
// A pixel belongs to zero or more of the categories Red, Green, NearBlack and
// NearWhite. Membership is decided from the 8-bit red, green and blue channels
// only; alpha is never consulted. Every predicate is a pure function of those
// three values, so classifying a pixel never depends on any other pixel.
//
// # Thresholds
//
// Red and Green use relative dominance: the dominant channel must exceed each
// other channel by more than a quarter of that channel's value, and must itself
// be above a floor of 30. Differences saturate at zero and the quarter is taken
// with truncating integer division:
//
//	red:   r > 30 && sat(r-g) > g/4 && sat(r-b) > b/4
//	green: g > 30 && sat(g-r) > r/4 && sat(g-b) > b/4
//
// NearBlack and NearWhite are absolute:
//
//	near-black: max(r,g,b) < 50
//	near-white: min(r,g,b) > 100 && max(r,g,b)-min(r,g,b) <= 70
//
// The thresholds are not configurable.
//
// # Overlap
//
// Red and Green are disjoint (each requires its channel to be strictly larger
// than the other). The remaining pairs can overlap, for example (40,5,5) is
// both Red and NearBlack. Callers that need a single answer pick one with
// Set.First and an explicit priority order.
package classify
