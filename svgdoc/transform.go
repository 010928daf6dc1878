package svgdoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/gostitch/stitch/geom"
)

// Transform returns the element's own transform attribute as a matrix.
// An absent or malformed attribute is the identity.
func Transform(el *etree.Element) geom.Matrix {
	m, err := ParseTransform(el.SelectAttrValue("transform", ""))
	if err != nil {
		return geom.Identity()
	}
	return m
}

// SetTransform writes the element's transform attribute.
func SetTransform(el *etree.Element, m geom.Matrix) {
	el.CreateAttr("transform", FormatMatrix(m))
}

// ComposedTransform returns the cumulative transform of el relative to
// the document root: the product of every ancestor's transform down to
// and including el's own.
func ComposedTransform(el *etree.Element) geom.Matrix {
	var chain []*etree.Element
	for e := el; e != nil; e = e.Parent() {
		chain = append(chain, e)
	}
	m := geom.Identity()
	for i := len(chain) - 1; i >= 0; i-- {
		m = m.Mul(Transform(chain[i]))
	}
	return m
}

// FormatMatrix renders m as a matrix(a b c d e f) transform attribute
// value.
func FormatMatrix(m geom.Matrix) string {
	coef := [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
	parts := make([]string, len(coef))
	for i, v := range coef {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "matrix(" + strings.Join(parts, " ") + ")"
}

// ParseTransform parses an SVG transform attribute value: a
// left-to-right list of matrix, translate, scale, rotate, skewX and
// skewY operations, composed in that order.
func ParseTransform(s string) (geom.Matrix, error) {
	m := geom.Identity()
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		closing := strings.IndexByte(rest, ')')
		if open < 0 || closing < open {
			return geom.Identity(), fmt.Errorf("svgdoc: malformed transform %q", s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := parseNumberList(rest[open+1 : closing])
		if err != nil {
			return geom.Identity(), fmt.Errorf("svgdoc: transform %s: %w", name, err)
		}
		op, err := transformOp(name, args)
		if err != nil {
			return geom.Identity(), err
		}
		m = m.Mul(op)
		rest = strings.TrimLeft(strings.TrimSpace(rest[closing+1:]), ",")
		rest = strings.TrimSpace(rest)
	}
	return m, nil
}

func transformOp(name string, args []float64) (geom.Matrix, error) {
	switch name {
	case "matrix":
		if len(args) != 6 {
			return geom.Identity(), fmt.Errorf("svgdoc: matrix wants 6 arguments, got %d", len(args))
		}
		return geom.Matrix{A: args[0], B: args[1], C: args[2], D: args[3], E: args[4], F: args[5]}, nil
	case "translate":
		switch len(args) {
		case 1:
			return geom.Translate(args[0], 0), nil
		case 2:
			return geom.Translate(args[0], args[1]), nil
		}
	case "scale":
		switch len(args) {
		case 1:
			return geom.Scale(args[0], args[0]), nil
		case 2:
			return geom.Scale(args[0], args[1]), nil
		}
	case "rotate":
		switch len(args) {
		case 1:
			return geom.RotateDegrees(args[0]), nil
		case 3:
			// Rotation about a center point.
			return geom.Translate(args[1], args[2]).
				Mul(geom.RotateDegrees(args[0])).
				Mul(geom.Translate(-args[1], -args[2])), nil
		}
	case "skewX":
		if len(args) == 1 {
			return geom.Skew(args[0]*degToRad, 0), nil
		}
	case "skewY":
		if len(args) == 1 {
			return geom.Skew(0, args[0]*degToRad), nil
		}
	default:
		return geom.Identity(), fmt.Errorf("svgdoc: unknown transform %q", name)
	}
	return geom.Identity(), fmt.Errorf("svgdoc: transform %s: wrong argument count %d", name, len(args))
}

const degToRad = math.Pi / 180

// parseNumberList splits a comma/whitespace separated list of numbers.
func parseNumberList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}
