package stitch

// A Stitch is a single needle penetration point in document units.
// Jump marks a movement without stitching.
type Stitch struct {
	X, Y float64
	Jump bool
}

// A StitchGroup is an ordered batch of stitches of a single color,
// produced by one element. Its final stitch is the continuity point
// for whatever is generated next.
type StitchGroup struct {
	// Color is the thread color, as written in the document.
	Color string

	// Tags carry free-form markers (underlay, fill, satin column...)
	// attached by the generator.
	Tags []string

	// Stitches in execution order.
	Stitches []Stitch

	// TrimAfter requests a thread trim once the group is stitched.
	TrimAfter bool

	// StopAfter requests a machine stop once the group is stitched.
	StopAfter bool
}

// Last returns the group's final stitch and whether the group has any
// stitches at all.
func (g *StitchGroup) Last() (Stitch, bool) {
	if g == nil || len(g.Stitches) == 0 {
		return Stitch{}, false
	}
	return g.Stitches[len(g.Stitches)-1], true
}
