package stitch

import "errors"

// Sentinel errors reported by clone resolution. Wrapped values carry
// the offending reference; test with errors.Is.
var (
	// ErrBrokenReference indicates a clone whose href does not resolve
	// to any element in the document. A dangling reference means the
	// document is malformed, so it is reported rather than skipped.
	ErrBrokenReference = errors.New("stitch: clone reference does not resolve")

	// ErrCyclicReference indicates a chain of clone references that
	// revisits a node. Resolution fails fast instead of recursing.
	ErrCyclicReference = errors.New("stitch: cyclic clone reference")
)
