package svgdoc

import (
	"math"
	"testing"

	"github.com/beevik/etree"
	"github.com/gostitch/stitch/geom"
)

const epsilon = 1e-9

func TestParseTransform(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want geom.Matrix
	}{
		{"empty", "", geom.Identity()},
		{"matrix", "matrix(1 2 3 4 5 6)", geom.Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}},
		{"matrix with commas", "matrix(1,2,3,4,5,6)", geom.Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}},
		{"translate", "translate(10 20)", geom.Translate(10, 20)},
		{"translate single", "translate(10)", geom.Translate(10, 0)},
		{"scale", "scale(2 3)", geom.Scale(2, 3)},
		{"scale uniform", "scale(2)", geom.Scale(2, 2)},
		{"rotate", "rotate(30)", geom.RotateDegrees(30)},
		{"rotate about center", "rotate(90 10 10)",
			geom.Translate(10, 10).Mul(geom.RotateDegrees(90)).Mul(geom.Translate(-10, -10))},
		{"skewX", "skewX(45)", geom.Skew(math.Pi/4, 0)},
		{"skewY", "skewY(30)", geom.Skew(0, math.Pi/6)},
		{"list composes left to right", "translate(5 10) rotate(20)",
			geom.Translate(5, 10).Mul(geom.RotateDegrees(20))},
		{"list with comma", "translate(1,2), scale(3)",
			geom.Translate(1, 2).Mul(geom.Scale(3, 3))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTransform(tt.in)
			if err != nil {
				t.Fatalf("ParseTransform(%q) error: %v", tt.in, err)
			}
			if !got.ApproxEqual(tt.want, epsilon) {
				t.Errorf("ParseTransform(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTransformErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unbalanced", "rotate(30"},
		{"unknown op", "spin(30)"},
		{"bad arity", "matrix(1 2 3)"},
		{"bad number", "translate(abc)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTransform(tt.in); err == nil {
				t.Errorf("ParseTransform(%q) succeeded, want error", tt.in)
			}
		})
	}
}

func TestFormatMatrixRoundTrip(t *testing.T) {
	want := geom.Translate(5, 10).Mul(geom.RotateDegrees(20)).Mul(geom.Scale(1.5, -2))
	got, err := ParseTransform(FormatMatrix(want))
	if err != nil {
		t.Fatalf("ParseTransform error: %v", err)
	}
	if !got.ApproxEqual(want, epsilon) {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestComposedTransform(t *testing.T) {
	doc := etree.NewDocument()
	root := doc.CreateElement("svg")
	g := root.CreateElement("g")
	g.CreateAttr("transform", "translate(0 5) rotate(5)")
	rect := g.CreateElement("rect")
	rect.CreateAttr("transform", "scale(2 2)")

	want := geom.Translate(0, 5).Mul(geom.RotateDegrees(5)).Mul(geom.Scale(2, 2))
	got := ComposedTransform(rect)
	if !got.ApproxEqual(want, epsilon) {
		t.Errorf("ComposedTransform = %+v, want %+v", got, want)
	}
}

func TestSetTransform(t *testing.T) {
	doc := etree.NewDocument()
	root := doc.CreateElement("svg")
	g := root.CreateElement("g")
	want := geom.RotateDegrees(42).Mul(geom.Translate(-3, 8))
	SetTransform(g, want)
	if got := Transform(g); !got.ApproxEqual(want, epsilon) {
		t.Errorf("Transform after SetTransform = %+v, want %+v", got, want)
	}
}
