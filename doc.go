// Package stitch resolves clone references in embroidery documents.
//
// # Overview
//
// A clone is a use element that reproduces another part of the
// document by reference. Before stitches can be generated for it, the
// referenced content has to be materialized: copied, placed where the
// clone lives, transformed by the clone's transform, and given a fill
// angle that is consistent with the accumulated geometry, even under
// scaling, reflection, and nested transforms.
//
// # Quick start
//
//	doc := etree.NewDocument()
//	if err := doc.ReadFromFile("design.svg"); err != nil { ... }
//
//	use := svgdoc.FindByID(doc.Root(), "my-clone")
//	clone := stitch.NewClone(use, myFlattener)
//	groups, err := clone.ToStitchGroups(nil)
//
// Or, for direct access to the transformed elements:
//
//	err := clone.WithMaterialized(func(elements []stitch.Element) error {
//		... // elements are valid only inside this scope
//		return nil
//	})
//
// # Materialization scope
//
// The transformed copy is inserted into the document for the duration
// of one WithMaterialized call and removed when it returns — on
// success, on error, and on panic alike. Elements handed to the
// callback reference the copy and must not escape the scope; the
// stitch groups they produce are the only durable output.
//
// Materializations must not overlap on the same document. The copy
// lives in the shared tree, and the tree is not safe for concurrent
// structural mutation.
//
// # Fill angles
//
// With no override, each cloned shape's angle is its locally declared
// angle rotated by the net transform the clone introduces — ancestor
// transforms shared with the source cancel out. Setting stitch:angle
// on the use element overrides every shape's angle verbatim, and
// stitch:flip-angle negates the result either way.
//
// # Collaborators
//
// The document tree is an etree document viewed through the svgdoc
// package. Stitch generation is external: the engine sequences calls
// to Element implementations supplied by a Flattener and never
// computes stitch geometry itself.
package stitch
