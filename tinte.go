/*
Package tinte renders HTML markup plus CSS rules into a pixel grid.

tinte is a minimal rendering pipeline with three stages, executed as a
single synchronous pass:

 1. Style resolution: the CSS cascade produces a styled tree, a parallel
    tree where every DOM node carries its resolved property map
    (engine/dom/styledtree).
 2. Layout: the styled tree is turned into a tree of boxes following the
    CSS box model, and block layout positions and sizes every box
    (engine/frame/boxtree, engine/frame/layout).
 3. Paint: a depth-first walk emits a display list, which is rasterized
    onto a canvas of opaque pixels (backend/gfx).

This package wires the stages together for convenience; all of them can
be driven individually.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tinte

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tinte/backend/gfx"
	"github.com/npillmayer/tinte/core"
	"github.com/npillmayer/tinte/engine/dom/cssom"
	"github.com/npillmayer/tinte/engine/dom/cssom/douceuradapter"
	"github.com/npillmayer/tinte/engine/dom/style"
	"github.com/npillmayer/tinte/engine/dom/styledtree"
	"github.com/npillmayer/tinte/engine/frame"
	"github.com/npillmayer/tinte/engine/frame/boxtree"
	"github.com/npillmayer/tinte/engine/frame/framedebug"
	"github.com/npillmayer/tinte/engine/frame/layout"
	htmlin "github.com/npillmayer/tinte/input/html"
	"golang.org/x/net/html"
)

// tracer traces with key 'tinte.engine'.
func tracer() tracing.Trace {
	return tracing.Select("tinte.engine")
}

// Render runs the full pipeline: parse HTML and CSS, resolve styles,
// lay out boxes within the viewport, and paint onto a canvas of the
// viewport's size. Stylesheets embedded in <style> elements of the
// document apply before the rules of cssSrc.
//
// The render root is the document's body element.
func Render(htmlSrc, cssSrc string, viewport frame.Rect) (*gfx.Canvas, error) {
	doc, err := htmlin.ParseString(htmlSrc)
	if err != nil {
		return nil, err
	}
	sheet, err := douceuradapter.ExtractStyleElements(doc)
	if err != nil {
		return nil, err
	}
	if cssSrc != "" {
		styles, err := douceuradapter.ParseCSS(cssSrc)
		if err != nil {
			return nil, err
		}
		sheet.AppendRules(styles)
	}
	body := htmlin.Body(doc)
	if body == nil {
		return nil, core.Error(core.EINVALID, "document has no body element")
	}
	return RenderDOM(body, sheet, viewport)
}

// RenderDOM renders a DOM subtree with a readily parsed stylesheet.
func RenderDOM(root *html.Node, sheet *cssom.Stylesheet, viewport frame.Rect) (*gfx.Canvas, error) {
	styledRoot := styledtree.BuildTree(root, sheet)
	boxes, err := boxtree.BuildBoxTree(styledRoot)
	if err != nil {
		return nil, err
	}
	layout.LayoutTree(boxes, viewport)
	tracer().Debugf("render: layout done, painting %v", viewport)
	tracer().Debugf("render: layout tree:\n%s", framedebug.BoxTreeString(boxes))
	return gfx.Paint(boxes, viewport), nil
}

// RenderRect paints a single colored rectangle. Useful for testing a
// pixel sink without going through markup input.
func RenderRect(w, h float64, col style.Value) *gfx.Canvas {
	canvas := gfx.NewCanvas(int(w), int(h))
	if rgba, ok := col.Color(); ok {
		list := gfx.DisplayList{gfx.SolidColor{Color: rgba, Rect: frame.Rect{W: w, H: h}}}
		for _, cmd := range list {
			cmd.Paint(canvas)
		}
	}
	return canvas
}
