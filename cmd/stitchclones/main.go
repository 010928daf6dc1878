// Command stitchclones inspects the clone objects of an SVG embroidery
// document: where each clone's reference resolves, the fill angle every
// cloned shape ends up with, and the validation warnings the document
// would show.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/beevik/etree"
	"github.com/gostitch/stitch"
	"github.com/gostitch/stitch/svgdoc"
)

func main() {
	var (
		input   = flag.String("input", "", "SVG document to inspect")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()
	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		stitch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(*input); err != nil {
		log.Fatalf("Failed to read %s: %v", *input, err)
	}
	root := doc.Root()
	if root == nil {
		log.Fatalf("%s has no root element", *input)
	}

	cache := stitch.NewAngleCache(0)
	found := 0
	for _, el := range svgdoc.Descendants(root) {
		if !svgdoc.IsClone(el) {
			continue
		}
		found++
		inspect(stitch.NewClone(el, inspectFlatten, stitch.WithAngleCache(cache)))
	}
	if found == 0 {
		fmt.Println("no clone objects in this document")
	}
}

func inspect(clone *stitch.Clone) {
	fmt.Printf("clone -> #%s\n", svgdoc.Href(clone.Node()))
	p := clone.Params()
	if !p.Enabled {
		fmt.Println("  disabled")
		return
	}
	if p.FillAngle != nil {
		fmt.Printf("  fill angle override: %g\n", *p.FillAngle)
	}

	err := clone.WithMaterialized(func(elements []stitch.Element) error {
		if len(elements) == 0 {
			fmt.Println("  no embroiderable content")
			return nil
		}
		for _, el := range elements {
			fmt.Printf("  <%s> angle %s\n", el.Node().Tag,
				el.Node().SelectAttrValue(svgdoc.AttrAngle, "0"))
		}
		return nil
	})
	if err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}

	for _, w := range clone.ValidationWarnings() {
		fmt.Printf("  warning: %s at (%.1f, %.1f)\n", w.Name, w.Position.X, w.Position.Y)
	}
}

// inspectElement is a drawable that produces no stitches; the command
// only reports the angles the clone engine assigned.
type inspectElement struct {
	node *etree.Element
}

func (e *inspectElement) Node() *etree.Element { return e.node }

func (e *inspectElement) ToStitchGroups(last *stitch.StitchGroup) ([]*stitch.StitchGroup, error) {
	return nil, nil
}

func (e *inspectElement) CacheKey(prev *stitch.Stitch) (string, error) {
	return e.node.GetPath(), nil
}

func inspectFlatten(el *etree.Element) []stitch.Element {
	return []stitch.Element{&inspectElement{node: el}}
}
