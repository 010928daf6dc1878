// Package svgdoc provides the SVG document access layer for the stitch
// pipeline: tag classification, reference resolution, typed attribute
// access, transform parsing, and composed transforms.
//
// The element tree itself is an etree document; svgdoc only adds the
// embroidery-specific view of it. Elements are identified by pointer,
// never by value, so a resolved reference stays valid across tree
// mutations as long as the element itself is not removed.
package svgdoc

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// SVG tag names the pipeline distinguishes.
const (
	TagSVG      = "svg"
	TagGroup    = "g"
	TagUse      = "use"
	TagPath     = "path"
	TagRect     = "rect"
	TagCircle   = "circle"
	TagEllipse  = "ellipse"
	TagLine     = "line"
	TagPolygon  = "polygon"
	TagPolyline = "polyline"
)

// Embroidery attributes, namespaced to keep clear of standard SVG.
const (
	// AttrAngle is the fill-direction angle of a shape in degrees,
	// counter-clockwise positive. On a use element it is the clone's
	// fill-angle override instead.
	AttrAngle = "stitch:angle"
	// AttrFlipAngle asks for the derived clone angle to be negated.
	AttrFlipAngle = "stitch:flip-angle"
	// AttrClone enables or disables a clone element (default enabled).
	AttrClone = "stitch:clone"
)

// embroiderable is the set of leaf shape tags that can produce
// stitches.
var embroiderable = map[string]bool{
	TagPath:     true,
	TagRect:     true,
	TagCircle:   true,
	TagEllipse:  true,
	TagLine:     true,
	TagPolygon:  true,
	TagPolyline: true,
}

// IsEmbroiderable reports whether el is a leaf shape that can produce
// stitches.
func IsEmbroiderable(el *etree.Element) bool {
	return el != nil && embroiderable[el.Tag]
}

// IsGroup reports whether el is a container whose descendants are
// scanned for embroiderable shapes.
func IsGroup(el *etree.Element) bool {
	return el != nil && (el.Tag == TagGroup || el.Tag == TagSVG)
}

// IsClone reports whether el is a use element referencing another node.
func IsClone(el *etree.Element) bool {
	return el != nil && el.Tag == TagUse && Href(el) != ""
}

// Href returns the target id of el's xlink:href (or SVG 2 plain href)
// attribute, without the leading '#'. Empty if absent.
func Href(el *etree.Element) string {
	ref := el.SelectAttrValue("xlink:href", "")
	if ref == "" {
		ref = el.SelectAttrValue("href", "")
	}
	return strings.TrimPrefix(ref, "#")
}

// Root returns the topmost element reachable from el.
func Root(el *etree.Element) *etree.Element {
	e := el
	for p := e.Parent(); p != nil; p = p.Parent() {
		e = p
	}
	return e
}

// FindByID returns the element with the given id attribute in the tree
// rooted at root, or nil.
func FindByID(root *etree.Element, id string) *etree.Element {
	if root == nil || id == "" {
		return nil
	}
	if root.SelectAttrValue("id", "") == id {
		return root
	}
	for _, child := range root.ChildElements() {
		if found := FindByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// ResolveHref returns the element el's href points at, searching from
// the document root, or nil if the reference is dangling.
func ResolveHref(el *etree.Element) *etree.Element {
	id := Href(el)
	if id == "" {
		return nil
	}
	return FindByID(Root(el), id)
}

// Descendants returns all elements below el in document order,
// excluding el itself.
func Descendants(el *etree.Element) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		out = append(out, child)
		out = append(out, Descendants(child)...)
	}
	return out
}

// CountElements returns the number of elements in the tree rooted at
// el, including el.
func CountElements(el *etree.Element) int {
	return 1 + len(Descendants(el))
}

// LookupFloatAttr returns the attribute parsed as a float and whether
// it was present and parseable.
func LookupFloatAttr(el *etree.Element, key string) (float64, bool) {
	raw := el.SelectAttrValue(key, "")
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FloatAttr returns the attribute parsed as a float, or dflt if absent
// or malformed.
func FloatAttr(el *etree.Element, key string, dflt float64) float64 {
	if v, ok := LookupFloatAttr(el, key); ok {
		return v
	}
	return dflt
}

// SetFloatAttr writes a float attribute.
func SetFloatAttr(el *etree.Element, key string, v float64) {
	el.CreateAttr(key, strconv.FormatFloat(v, 'g', -1, 64))
}

// BoolAttr returns the attribute parsed as a boolean, or dflt if
// absent or malformed. Accepts true/false, 1/0, yes/no.
func BoolAttr(el *etree.Element, key string, dflt bool) bool {
	switch strings.ToLower(strings.TrimSpace(el.SelectAttrValue(key, ""))) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return dflt
	}
}
