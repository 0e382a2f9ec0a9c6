// Package geom provides 2D geometry value types and helpers for GUI layout:
// point distance, rectangle edge and center queries, fixed-factor scaling,
// policy-driven scale-to-fit, and nine-anchor rectangle alignment.
//
// All types are plain values with value-semantics methods; every operation
// is a pure function of its arguments, so the package is safe for
// unsynchronized concurrent use. The coordinate convention is a lower-left
// origin with y increasing upward.
package geom
