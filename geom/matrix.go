package geom

import "math"

// Matrix is a 2D affine transformation in SVG coefficient order,
// matching the transform="matrix(a,b,c,d,e,f)" attribute:
//
//	| a  c  e |
//	| b  d  f |
//
// This represents the transformation:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Rotate creates a rotation matrix (angle in radians,
// counter-clockwise positive in matrix terms).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// RotateDegrees creates a rotation matrix from an angle in degrees.
func RotateDegrees(deg float64) Matrix {
	return Rotate(deg * math.Pi / 180)
}

// Skew creates a skew matrix from x and y skew angles in radians.
func Skew(x, y float64) Matrix {
	return Matrix{A: 1, B: math.Tan(y), C: math.Tan(x), D: 1}
}

// Mul composes two transforms: the result applies o first, then m.
// This is the matrix product m·o and matches the composition order of
// SVG transform lists read left to right.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.C*o.B,
		B: m.B*o.A + m.D*o.B,
		C: m.A*o.C + m.C*o.D,
		D: m.B*o.C + m.D*o.D,
		E: m.A*o.E + m.C*o.F + m.E,
		F: m.B*o.E + m.D*o.F + m.F,
	}
}

// Apply maps a point through the transform.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ApplyVector maps a direction vector through the transform,
// ignoring translation.
func (m Matrix) ApplyVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// StripTranslation returns the transform with its translation zeroed,
// leaving only the rotation/scale/skew block.
func (m Matrix) StripTranslation() Matrix {
	m.E, m.F = 0, 0
	return m
}

// Det returns the determinant of the linear block. Its absolute value
// is the area scale factor; its sign is the orientation.
func (m Matrix) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// IsReflected reports whether the transform flips orientation
// (mirrors), i.e. whether its determinant is negative.
func (m Matrix) IsReflected() bool {
	return m.Det() < 0
}

// Invert returns the inverse transform. A singular matrix inverts to
// the identity rather than producing non-finite coefficients.
func (m Matrix) Invert() Matrix {
	det := m.Det()
	if math.Abs(det) < 1e-12 {
		return Identity()
	}
	invDet := 1.0 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	return Matrix{
		A: a, B: b, C: c, D: d,
		E: -(a*m.E + c*m.F),
		F: -(b*m.E + d*m.F),
	}
}

// Angle returns the rotation the transform induces, in degrees: the
// polar angle of the image of the unit vector (1,0), translation
// ignored. For mirrored transforms the handedness flip is undone first
// so the result reports rotation independent of the mirror.
// The result is in (-180, 180].
func (m Matrix) Angle() float64 {
	v := m.ApplyVector(Point{X: 1})
	if m.IsReflected() {
		v.Y = -v.Y
	}
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// IsIdentity reports whether the matrix is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// ApproxEqual reports whether every coefficient of m and o is within
// eps of its counterpart.
func (m Matrix) ApproxEqual(o Matrix, eps float64) bool {
	return math.Abs(m.A-o.A) <= eps &&
		math.Abs(m.B-o.B) <= eps &&
		math.Abs(m.C-o.C) <= eps &&
		math.Abs(m.D-o.D) <= eps &&
		math.Abs(m.E-o.E) <= eps &&
		math.Abs(m.F-o.F) <= eps
}
