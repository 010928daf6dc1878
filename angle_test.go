package stitch

import (
	"math"
	"testing"

	"github.com/gostitch/stitch/geom"
)

// angleDiff compares fill angles, which are equivalent modulo 180.
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 180)
	if d < -90 {
		d += 180
	}
	if d > 90 {
		d -= 180
	}
	return math.Abs(d)
}

func TestDeriveAngle(t *testing.T) {
	tests := []struct {
		name  string
		at    geom.Matrix
		local float64
		want  float64
	}{
		{"identity keeps local angle", geom.Identity(), 30, 30},
		{"identity zero", geom.Identity(), 0, 0},
		{"rotation subtracts", geom.RotateDegrees(20), 30, 10},
		{"rotation of zero angle", geom.RotateDegrees(20), 0, -20},
		{"horizontal flip negates", geom.Scale(-1, 1), 30, -30},
		{"flip then rotate", geom.RotateDegrees(20).Mul(geom.Scale(-1, 1)), 30, -50},
		{"non-uniform scale follows the slope",
			geom.RotateDegrees(10).Mul(geom.Scale(1, -math.Sqrt(3))), 30, -55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveAngle(tt.at, tt.local)
			if angleDiff(got, tt.want) > 1e-4 {
				t.Errorf("deriveAngle = %v, want %v (mod 180)", got, tt.want)
			}
		})
	}
}

func TestAngleTransformCancelsSharedAncestors(t *testing.T) {
	shared := geom.Translate(3, 7).Mul(geom.RotateDegrees(5))
	copyComposed := shared.Mul(geom.RotateDegrees(20))
	sourceComposed := shared

	at := angleTransform(copyComposed, sourceComposed)
	if !at.ApproxEqual(geom.RotateDegrees(20), 1e-9) {
		t.Errorf("angleTransform = %+v, want pure 20deg rotation", at)
	}
	if at.E != 0 || at.F != 0 {
		t.Errorf("angleTransform kept translation: e=%v f=%v", at.E, at.F)
	}
}
