package stitch

import (
	"github.com/gostitch/stitch/geom"
	"github.com/gostitch/stitch/svgdoc"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValidationWarning is an informational diagnostic for the operator,
// anchored at a point in document coordinates. Warnings never affect
// control flow.
type ValidationWarning struct {
	Name        string
	Description string
	Steps       []string
	Position    geom.Point
}

// warnPrinter renders user-facing warning text. Hosts that ship
// translations swap the catalog via SetWarningLanguage.
var warnPrinter = message.NewPrinter(language.English)

// SetWarningLanguage selects the language warnings are rendered in.
// Text falls back to English for languages without a catalog entry.
func SetWarningLanguage(tag language.Tag) {
	warnPrinter = message.NewPrinter(tag)
}

// ValidationWarnings reports the diagnostics for this clone: a single
// notice that clone objects support a limited parameter set, anchored
// at the center of the clone's bounds under its parent's transform.
func (c *Clone) ValidationWarnings() []ValidationWarning {
	w := ValidationWarning{
		Name: warnPrinter.Sprintf("Clone Object"),
		Description: warnPrinter.Sprintf(
			"There are one or more clone objects in this document. " +
				"Clones can be stitched, but only a few parameters apply to them."),
		Steps: []string{
			warnPrinter.Sprintf("To use the full parameter set, convert the clone into a real element:"),
			warnPrinter.Sprintf("* Select the clone"),
			warnPrinter.Sprintf("* Unlink it in the editor (Edit > Clone > Unlink Clone)"),
		},
	}
	if b, ok := svgdoc.BoundingBox(c.node); ok {
		w.Position = b.Transform(svgdoc.ComposedTransform(c.node)).Center()
	}
	return []ValidationWarning{w}
}
