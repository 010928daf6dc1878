package stitch

import "github.com/beevik/etree"

// Element is a drawable shape bound to a document node: anything that
// can turn itself into stitch groups. Concrete stitch generation
// (fills, strokes, satin) lives outside this module; the clone engine
// only sequences calls to it.
type Element interface {
	// Node returns the underlying document element. The clone engine
	// writes the derived fill angle to its attributes before asking
	// for stitch groups.
	Node() *etree.Element

	// ToStitchGroups generates the element's stitch groups. last is
	// the final group produced by the previous element, or nil at the
	// start of a sequence; generators use its endpoint to keep
	// stitching continuous.
	ToStitchGroups(last *StitchGroup) ([]*StitchGroup, error)

	// CacheKey returns a stable fingerprint of everything that
	// influences the element's stitch output, given the previous
	// stitch position.
	CacheKey(prev *Stitch) (string, error)
}

// Flattener converts one embroiderable document node into its drawable
// elements. It is the seam to the element construction layer: the
// clone engine calls it for every eligible node, in document order,
// and concatenates the results. A node the Flattener considers
// non-embroiderable yields an empty slice.
type Flattener func(el *etree.Element) []Element
