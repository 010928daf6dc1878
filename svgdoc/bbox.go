package svgdoc

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/gostitch/stitch/geom"
)

// BoundingBox returns the bounds of el in its own local coordinate
// space (el's own transform is not applied; descendants' are).
//
// Shapes are measured from their geometry attributes. Path bounds are
// coarse: the hull of every coordinate in the path data, control
// points included. Groups are the union of their children's bounds.
// A use element takes the bounds of its target offset by the use x/y.
// Returns false for elements with no measurable geometry.
func BoundingBox(el *etree.Element) (geom.Rect, bool) {
	switch el.Tag {
	case TagRect:
		x := FloatAttr(el, "x", 0)
		y := FloatAttr(el, "y", 0)
		w := FloatAttr(el, "width", 0)
		h := FloatAttr(el, "height", 0)
		return geom.Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}, true

	case TagCircle:
		cx := FloatAttr(el, "cx", 0)
		cy := FloatAttr(el, "cy", 0)
		r := FloatAttr(el, "r", 0)
		return geom.Rect{MinX: cx - r, MinY: cy - r, MaxX: cx + r, MaxY: cy + r}, true

	case TagEllipse:
		cx := FloatAttr(el, "cx", 0)
		cy := FloatAttr(el, "cy", 0)
		rx := FloatAttr(el, "rx", 0)
		ry := FloatAttr(el, "ry", 0)
		return geom.Rect{MinX: cx - rx, MinY: cy - ry, MaxX: cx + rx, MaxY: cy + ry}, true

	case TagLine:
		a := geom.Point{X: FloatAttr(el, "x1", 0), Y: FloatAttr(el, "y1", 0)}
		b := geom.Point{X: FloatAttr(el, "x2", 0), Y: FloatAttr(el, "y2", 0)}
		return geom.RectFromPoints(a, b), true

	case TagPolygon, TagPolyline:
		return boundsOfCoords(el.SelectAttrValue("points", ""))

	case TagPath:
		return boundsOfCoords(el.SelectAttrValue("d", ""))

	case TagGroup, TagSVG:
		var out geom.Rect
		found := false
		for _, child := range el.ChildElements() {
			b, ok := BoundingBox(child)
			if !ok {
				continue
			}
			b = b.Transform(Transform(child))
			if !found {
				out = b
				found = true
			} else {
				out = out.Union(b)
			}
		}
		return out, found

	case TagUse:
		target := ResolveHref(el)
		if target == nil {
			return geom.Rect{}, false
		}
		b, ok := BoundingBox(target)
		if !ok {
			return geom.Rect{}, false
		}
		offset := geom.Translate(FloatAttr(el, "x", 0), FloatAttr(el, "y", 0)).
			Mul(Transform(target))
		return b.Transform(offset), true
	}
	return geom.Rect{}, false
}

// boundsOfCoords extracts every numeric coordinate from a points list
// or path data string, pairs them up, and returns their hull.
func boundsOfCoords(data string) (geom.Rect, bool) {
	nums := scanNumbers(data)
	if len(nums) < 4 {
		return geom.Rect{}, false
	}
	out := geom.Rect{MinX: nums[0], MinY: nums[1], MaxX: nums[0], MaxY: nums[1]}
	for i := 2; i+1 < len(nums); i += 2 {
		out = out.ExpandToPoint(geom.Point{X: nums[i], Y: nums[i+1]})
	}
	return out, true
}

// scanNumbers pulls all decimal numbers out of path/points data,
// skipping command letters and separators.
func scanNumbers(data string) []float64 {
	var nums []float64
	var cur strings.Builder
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		if v, err := strconv.ParseFloat(cur.String(), 64); err == nil {
			nums = append(nums, v)
		}
		cur.Reset()
	}
	for _, r := range data {
		switch {
		case r >= '0' && r <= '9' || r == '.':
			cur.WriteRune(r)
		case r == '-' || r == '+':
			// A sign starts a new number unless it follows an exponent.
			s := cur.String()
			if len(s) > 0 && (s[len(s)-1] == 'e' || s[len(s)-1] == 'E') {
				cur.WriteRune(r)
			} else {
				flush()
				cur.WriteRune(r)
			}
		case r == 'e' || r == 'E':
			if cur.Len() > 0 {
				cur.WriteRune(r)
			}
		default:
			flush()
		}
	}
	flush()
	return nums
}
