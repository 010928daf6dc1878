package stitch

// GenerateStitchGroups runs elements through stitch generation in
// order and returns the concatenated groups.
//
// last seeds the continuity context: each element is generated with
// the final group produced so far, so its first stitches can pick up
// where the previous element ended. Elements that yield no groups do
// not advance the context. The first generation error aborts the run
// and is returned as-is.
func GenerateStitchGroups(elements []Element, last *StitchGroup) ([]*StitchGroup, error) {
	var out []*StitchGroup
	for _, el := range elements {
		groups, err := el.ToStitchGroups(last)
		if err != nil {
			return nil, err
		}
		out = append(out, groups...)
		if len(groups) > 0 {
			last = groups[len(groups)-1]
		}
	}
	return out, nil
}
