package stitch

import (
	"math"

	"github.com/gostitch/stitch/geom"
)

// Fill angles are counter-clockwise positive while document rotation
// is clockwise positive (y grows downward), so angles are negated on
// the way into matrix space and again on the way out.

// angleTransform isolates the net rotation/scale change the clone
// introduces: the copy's composed transform with the source's composed
// transform undone. Ancestor transforms shared by both cancel out.
// Translation is irrelevant to angles and stripped.
func angleTransform(copyComposed, sourceComposed geom.Matrix) geom.Matrix {
	return copyComposed.StripTranslation().
		Mul(sourceComposed.StripTranslation().Invert())
}

// deriveAngle rotates an element's locally-declared fill angle by the
// clone's net transform: the local angle is turned into a direction
// vector, mapped through the transform, and read back as a polar
// angle in degrees. Non-uniform scaling is followed the way it alters
// the stitching slope, not just pure rotation.
func deriveAngle(angleTransform geom.Matrix, localAngle float64) float64 {
	m := angleTransform.Mul(geom.RotateDegrees(-localAngle))
	v := m.ApplyVector(geom.Point{X: 1})
	return -math.Atan2(v.Y, v.X) * 180 / math.Pi
}
