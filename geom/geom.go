// Package geom provides the 2D affine geometry used by the stitch
// document pipeline: points, rectangles, and 2×3 affine matrices in SVG
// coefficient order.
//
// All operations are pure and deterministic. Angles are expressed in
// radians unless a function name says otherwise; degree-valued results
// follow atan2 conventions, in (-180, 180].
package geom

// Point is a location or direction vector in document units.
type Point struct {
	X, Y float64
}
