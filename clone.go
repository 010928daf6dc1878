package stitch

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/gostitch/stitch/geom"
	"github.com/gostitch/stitch/svgdoc"
)

// Params are a clone's host-facing parameters, read once from its
// document attributes.
type Params struct {
	// Enabled turns the clone on or off (stitch:clone, default true).
	// A disabled clone produces nothing.
	Enabled bool

	// FillAngle, when set, overrides the fill angle of every cloned
	// element verbatim (stitch:angle on the use element, degrees).
	FillAngle *float64

	// FlipAngle negates the final angle, set or derived
	// (stitch:flip-angle, default false).
	FlipAngle bool
}

// ReadParams extracts clone parameters from a use element, applying
// defaults for absent or malformed attributes.
func ReadParams(el *etree.Element) Params {
	p := Params{
		Enabled:   svgdoc.BoolAttr(el, svgdoc.AttrClone, true),
		FlipAngle: svgdoc.BoolAttr(el, svgdoc.AttrFlipAngle, false),
	}
	if v, ok := svgdoc.LookupFloatAttr(el, svgdoc.AttrAngle); ok {
		p.FillAngle = &v
	}
	return p
}

// SourceKind classifies what a clone's reference points at.
type SourceKind int

const (
	// SourceIneligible is a reference to content that cannot be
	// embroidered (text, markers, decoration). Not an error: the
	// clone simply produces nothing.
	SourceIneligible SourceKind = iota
	// SourceSingle is a reference to one embroiderable shape.
	SourceSingle
	// SourceGroup is a reference to a container whose embroiderable
	// descendants are cloned.
	SourceGroup
)

func (k SourceKind) String() string {
	switch k {
	case SourceSingle:
		return "single"
	case SourceGroup:
		return "group"
	default:
		return "ineligible"
	}
}

// Clone resolves a use element into a transformed copy of its
// referenced content and derives the fill angle of every shape in it.
//
// The copy is transient: it exists only for the duration of one
// WithMaterialized scope and is removed from the document when the
// scope ends, whether or not the caller's processing succeeded. Stitch
// groups are the only output that outlives the scope.
//
// A Clone is not safe for concurrent use, and no two materializations
// may overlap on the same document: the copy is inserted into the
// shared tree.
type Clone struct {
	node    *etree.Element
	params  Params
	flatten Flattener
	angles  *AngleCache
}

// CloneOption configures a Clone.
type CloneOption func(*Clone)

// WithAngleCache lets the clone memoize derived angles in c, typically
// shared by all clones of a document.
func WithAngleCache(cache *AngleCache) CloneOption {
	return func(c *Clone) { c.angles = cache }
}

// NewClone wraps a use element. flatten builds drawable elements from
// the embroiderable nodes of the materialized copy.
func NewClone(node *etree.Element, flatten Flattener, opts ...CloneOption) *Clone {
	c := &Clone{
		node:    node,
		params:  ReadParams(node),
		flatten: flatten,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Node returns the underlying use element.
func (c *Clone) Node() *etree.Element { return c.node }

// Params returns the parameters read at construction.
func (c *Clone) Params() Params { return c.params }

// resolvedSource is the outcome of following a clone's reference:
// the terminal node, its classification, and the accumulated local
// transforms of any intermediate use elements in the chain.
type resolvedSource struct {
	kind  SourceKind
	node  *etree.Element
	chain geom.Matrix
}

// resolveSource follows the clone's href to its terminal node. Chains
// of use elements are resolved through, composing each intermediate
// transform; a revisited node fails with ErrCyclicReference and a
// dangling href with ErrBrokenReference.
func (c *Clone) resolveSource() (resolvedSource, error) {
	visited := map[*etree.Element]bool{c.node: true}
	node := c.node
	chain := geom.Identity()
	for {
		target := svgdoc.ResolveHref(node)
		if target == nil {
			return resolvedSource{}, fmt.Errorf("%w: %q", ErrBrokenReference, svgdoc.Href(node))
		}
		if visited[target] {
			return resolvedSource{}, fmt.Errorf("%w: %q", ErrCyclicReference, svgdoc.Href(node))
		}
		visited[target] = true
		if !svgdoc.IsClone(target) {
			node = target
			break
		}
		chain = chain.Mul(svgdoc.Transform(target))
		node = target
	}

	kind := SourceIneligible
	switch {
	case svgdoc.IsEmbroiderable(node):
		kind = SourceSingle
	case svgdoc.IsGroup(node):
		kind = SourceGroup
	}
	return resolvedSource{kind: kind, node: node, chain: chain}, nil
}

// WithMaterialized resolves the clone's source, inserts a transformed
// deep copy of it next to the clone, assigns fill angles to its
// embroiderable nodes, and invokes fn with the resulting elements.
//
// The copy is removed before WithMaterialized returns, on every path:
// fn succeeding, fn failing (its error is returned unchanged), or fn
// panicking. An ineligible source short-circuits: fn receives no
// elements and the document is not touched at all.
func (c *Clone) WithMaterialized(fn func(elements []Element) error) error {
	src, err := c.resolveSource()
	if err != nil {
		return err
	}
	if src.kind == SourceIneligible {
		Logger().Warn("clone source is not embroiderable",
			"clone", svgdoc.Href(c.node), "tag", src.node.Tag)
		return fn(nil)
	}

	parent := c.node.Parent()
	dup := src.node.Copy()
	// The copy must not be addressable by id while it is in the tree.
	dup.RemoveAttr("id")
	parent.InsertChildAt(c.node.Index()+1, dup)
	defer parent.RemoveChild(dup)

	svgdoc.SetTransform(dup,
		svgdoc.Transform(c.node).Mul(src.chain).Mul(svgdoc.Transform(src.node)))

	elements := c.assignAngles(dup, src)
	Logger().Debug("materialized clone",
		"clone", svgdoc.Href(c.node), "kind", src.kind.String(),
		"elements", len(elements))
	return fn(elements)
}

// assignAngles writes the final fill angle onto every embroiderable
// node of the copy and flattens the nodes into drawable elements, in
// document order. The angle is written straight to the attribute: the
// copy is transient and bypasses any cached parameter layer.
func (c *Clone) assignAngles(dup *etree.Element, src resolvedSource) []Element {
	nodes := embroiderableNodes(dup)
	if len(nodes) == 0 {
		return nil
	}

	var at geom.Matrix
	if c.params.FillAngle == nil {
		at = angleTransform(
			svgdoc.ComposedTransform(dup),
			svgdoc.ComposedTransform(src.node))
	}

	var elements []Element
	for _, node := range nodes {
		var angle float64
		if c.params.FillAngle != nil {
			angle = *c.params.FillAngle
		} else {
			angle = c.derivedAngle(at, svgdoc.FloatAttr(node, svgdoc.AttrAngle, 0))
		}
		if c.params.FlipAngle {
			angle = -angle
		}
		svgdoc.SetFloatAttr(node, svgdoc.AttrAngle, angle)
		elements = append(elements, c.flatten(node)...)
	}
	return elements
}

// derivedAngle computes (or recalls) the derived fill angle for one
// element of the copy.
func (c *Clone) derivedAngle(at geom.Matrix, localAngle float64) float64 {
	if c.angles == nil {
		return deriveAngle(at, localAngle)
	}
	key := angleFingerprint(at, localAngle)
	if v, ok := c.angles.lookup(key); ok {
		return v
	}
	v := deriveAngle(at, localAngle)
	c.angles.store(key, v)
	return v
}

// ToStitchGroups materializes the clone and generates stitch groups
// from its elements in document order. last seeds stitch continuity,
// as in GenerateStitchGroups. A disabled clone yields nothing.
func (c *Clone) ToStitchGroups(last *StitchGroup) ([]*StitchGroup, error) {
	if !c.params.Enabled {
		return nil, nil
	}
	var out []*StitchGroup
	err := c.WithMaterialized(func(elements []Element) error {
		groups, err := GenerateStitchGroups(elements, last)
		if err != nil {
			return err
		}
		out = groups
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CacheKeyData collects the cache keys of the clone's source elements
// for the given previous stitch. The source is inspected in place; no
// copy is materialized.
func (c *Clone) CacheKeyData(prev *Stitch) ([]string, error) {
	src, err := c.resolveSource()
	if err != nil {
		return nil, err
	}
	if src.kind == SourceIneligible {
		return nil, nil
	}
	var keys []string
	for _, node := range embroiderableNodes(src.node) {
		for _, el := range c.flatten(node) {
			k, err := el.CacheKey(prev)
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// embroiderableNodes returns the embroiderable leaves reachable from
// el: el itself if it is a shape, or its shape descendants in document
// order if it is a group. Non-embroiderable descendants, nested use
// elements included, are skipped.
func embroiderableNodes(el *etree.Element) []*etree.Element {
	if svgdoc.IsEmbroiderable(el) {
		return []*etree.Element{el}
	}
	if !svgdoc.IsGroup(el) {
		return nil
	}
	var nodes []*etree.Element
	for _, d := range svgdoc.Descendants(el) {
		if svgdoc.IsEmbroiderable(d) {
			nodes = append(nodes, d)
		}
	}
	return nodes
}
