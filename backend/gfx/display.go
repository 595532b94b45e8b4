package gfx

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/tinte/engine/frame"
	"github.com/npillmayer/tinte/engine/frame/boxtree"
)

// DisplayCommand is a primitive drawing instruction.
type DisplayCommand interface {
	Paint(c *Canvas)
	fmt.Stringer
}

// DisplayList is an ordered sequence of drawing commands. List order is
// paint order: in overlapping areas, later commands win.
type DisplayList []DisplayCommand

// SolidColor fills a rectangle, in device pixels, with an opaque color.
type SolidColor struct {
	Color color.RGBA
	Rect  frame.Rect
}

// Paint executes the command on a canvas.
func (sc SolidColor) Paint(c *Canvas) {
	c.fillRect(sc.Color, sc.Rect)
}

func (sc SolidColor) String() string {
	return fmt.Sprintf("solid #%02x%02x%02x %v", sc.Color.R, sc.Color.G, sc.Color.B, sc.Rect)
}

var _ DisplayCommand = SolidColor{}

// BuildDisplayList walks a layout tree depth-first, pre-order, emitting
// the drawing commands for every box: background first, border strips
// second, then the children. Parents therefore always paint before
// (i.e., under) their children.
func BuildDisplayList(root *boxtree.LayoutBox) DisplayList {
	var list DisplayList
	renderLayoutBox(&list, root)
	tracer().Debugf("gfx: display list with %d command(s)", len(list))
	return list
}

func renderLayoutBox(list *DisplayList, box *boxtree.LayoutBox) {
	renderBackground(list, box)
	renderBorders(list, box)
	for _, ch := range box.Children() {
		renderLayoutBox(list, ch)
	}
}

// renderBackground paints the background under border, padding and
// content, but not under the margin.
func renderBackground(list *DisplayList, box *boxtree.LayoutBox) {
	if col, ok := boxColor(box, "background"); ok {
		*list = append(*list, SolidColor{Color: col, Rect: box.Dimensions.BorderBox()})
	}
}

// renderBorders paints the four border strips of the border box. Strips
// of zero width are emitted as zero-area rectangles, which are harmless
// no-ops on raster.
func renderBorders(list *DisplayList, box *boxtree.LayoutBox) {
	col, ok := boxColor(box, "border-color")
	if !ok {
		return
	}
	d := &box.Dimensions
	bbox := d.BorderBox()
	*list = append(*list,
		SolidColor{Color: col, Rect: frame.Rect{ // left
			X: bbox.X, Y: bbox.Y, W: d.Border.Left, H: bbox.H,
		}},
		SolidColor{Color: col, Rect: frame.Rect{ // right
			X: bbox.X + bbox.W - d.Border.Right, Y: bbox.Y, W: d.Border.Right, H: bbox.H,
		}},
		SolidColor{Color: col, Rect: frame.Rect{ // top
			X: bbox.X, Y: bbox.Y, W: bbox.W, H: d.Border.Top,
		}},
		SolidColor{Color: col, Rect: frame.Rect{ // bottom
			X: bbox.X, Y: bbox.Y + bbox.H - d.Border.Bottom, W: bbox.W, H: d.Border.Bottom,
		}},
	)
}

// boxColor resolves a color-valued property of a box. Anonymous boxes
// have no styles and paint nothing.
func boxColor(box *boxtree.LayoutBox, key string) (color.RGBA, bool) {
	sn, err := box.StyleNode()
	if err != nil {
		return color.RGBA{}, false
	}
	return sn.Styles().Color(key)
}

// Paint rasterizes a layout tree onto a fresh canvas of the given bounds.
func Paint(root *boxtree.LayoutBox, bounds frame.Rect) *Canvas {
	list := BuildDisplayList(root)
	canvas := NewCanvas(int(bounds.W), int(bounds.H))
	for _, cmd := range list {
		cmd.Paint(canvas)
	}
	return canvas
}
