package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestMulAssociative(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Matrix
	}{
		{"rotations", Rotate(math.Pi / 6), Rotate(math.Pi / 3), Rotate(-math.Pi / 4)},
		{"mixed", Translate(5, -3), Rotate(math.Pi / 5), Scale(2, 0.5)},
		{"with reflection", Scale(-1, 1), RotateDegrees(20), Translate(1, 2)},
		{"with skew", Skew(0.3, 0), Translate(-7, 7), Rotate(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := tt.a.Mul(tt.b).Mul(tt.c)
			right := tt.a.Mul(tt.b.Mul(tt.c))
			if !left.ApproxEqual(right, epsilon) {
				t.Errorf("(a*b)*c = %+v, a*(b*c) = %+v", left, right)
			}
		})
	}
}

func TestMulAppliesRightFirst(t *testing.T) {
	// Translate then rotate 90deg about the origin: (1,0) -> (2,0) -> (0,2).
	m := Rotate(math.Pi / 2).Mul(Translate(1, 0))
	got := m.Apply(Point{X: 1})
	if math.Abs(got.X) > epsilon || math.Abs(got.Y-2) > epsilon {
		t.Errorf("Apply = %+v, want (0, 2)", got)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 0},
		{"rotate 30", RotateDegrees(30), 30},
		{"rotate -45", RotateDegrees(-45), -45},
		{"rotate 90", RotateDegrees(90), 90},
		{"rotate 135", RotateDegrees(135), 135},
		{"rotate 180", RotateDegrees(180), 180},
		{"uniform scale", Scale(3, 3), 0},
		{"scaled rotation", Scale(2, 2).Mul(RotateDegrees(60)), 60},
		{"rotation with translation", Translate(10, 20).Mul(RotateDegrees(-30)), -30},
		{"mirror then rotate", RotateDegrees(20).Mul(Scale(-1, 1)), 160},
		{"rotate then mirror", Scale(-1, 1).Mul(RotateDegrees(20)), -160},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Angle()
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Angle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsReflected(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), false},
		{"plain scale", Scale(2, 3), false},
		{"horizontal flip", Matrix{A: -1, D: 1}, true},
		{"vertical flip", Scale(1, -1), true},
		{"double flip", Scale(-1, -1), false},
		{"rotation", RotateDegrees(77), false},
		{"flip composed with rotation", RotateDegrees(45).Mul(Scale(-1, 1)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsReflected(); got != tt.want {
				t.Errorf("IsReflected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translation", Translate(4, -9)},
		{"rotation", RotateDegrees(33)},
		{"scale", Scale(2, 5)},
		{"reflection", Scale(-1, 1)},
		{"composite", Translate(1, 2).Mul(RotateDegrees(10)).Mul(Scale(0.5, 3))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round := tt.m.Mul(tt.m.Invert())
			if !round.ApproxEqual(Identity(), epsilon) {
				t.Errorf("m * m^-1 = %+v, want identity", round)
			}
		})
	}
}

func TestInvertSingular(t *testing.T) {
	if got := (Matrix{}).Invert(); !got.IsIdentity() {
		t.Errorf("singular Invert() = %+v, want identity", got)
	}
}

func TestStripTranslation(t *testing.T) {
	m := Translate(7, 8).Mul(RotateDegrees(15))
	s := m.StripTranslation()
	if s.E != 0 || s.F != 0 {
		t.Errorf("StripTranslation left e=%v f=%v", s.E, s.F)
	}
	if s.A != m.A || s.B != m.B || s.C != m.C || s.D != m.D {
		t.Errorf("StripTranslation changed the linear block: %+v vs %+v", s, m)
	}
}

func TestApplyVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Mul(RotateDegrees(90))
	got := m.ApplyVector(Point{X: 1})
	if math.Abs(got.X) > epsilon || math.Abs(got.Y-1) > epsilon {
		t.Errorf("ApplyVector = %+v, want (0, 1)", got)
	}
}

func TestRectTransform(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 4}
	got := r.Transform(Translate(5, 5).Mul(RotateDegrees(90)))
	want := Rect{MinX: 1, MinY: 5, MaxX: 5, MaxY: 15}
	if math.Abs(got.MinX-want.MinX) > epsilon || math.Abs(got.MinY-want.MinY) > epsilon ||
		math.Abs(got.MaxX-want.MaxX) > epsilon || math.Abs(got.MaxY-want.MaxY) > epsilon {
		t.Errorf("Transform = %+v, want %+v", got, want)
	}
	c := got.Center()
	if math.Abs(c.X-3) > epsilon || math.Abs(c.Y-10) > epsilon {
		t.Errorf("Center = %+v, want (3, 10)", c)
	}
}
