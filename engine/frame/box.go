package frame

import "fmt"

// Rect is a rectangle in device pixels.
type Rect struct {
	X, Y float64 // top-left corner
	W, H float64
}

// ExpandedBy grows a rectangle outwards by a set of edge sizes.
func (r Rect) ExpandedBy(edge EdgeSizes) Rect {
	return Rect{
		X: r.X - edge.Left,
		Y: r.Y - edge.Top,
		W: r.W + edge.Left + edge.Right,
		H: r.H + edge.Top + edge.Bottom,
	}
}

// Contains checks if a rectangle fully contains another one.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.W <= r.X+r.W && other.Y+other.H <= r.Y+r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("%gx%g@(%g,%g)", r.W, r.H, r.X, r.Y)
}

// EdgeSizes are 4-way offsets around a rectangle. Values start at the
// top and travel clockwise.
type EdgeSizes struct {
	Top, Right, Bottom, Left float64
}

// IsZero is true iff all four edges are zero.
func (e EdgeSizes) IsZero() bool {
	return e == EdgeSizes{}
}

// Dimensions describe the full box geometry of a laid-out element,
// following the CSS box model.
type Dimensions struct {
	Content Rect // position and size of the content area
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// ContentBox returns the content area of a box.
func (d *Dimensions) ContentBox() Rect {
	return d.Content
}

// PaddingBox returns the area covered by content plus padding.
func (d *Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox returns the area covered by content, padding and border.
func (d *Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox returns the total area of a box, including its margin.
func (d *Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (d *Dimensions) DebugString() string {
	s := fmt.Sprintf("box{\n   content=%v\n", d.Content)
	s += fmt.Sprintf("   p.top=%g, p.right=%g, p.bottom=%g, p.left=%g\n",
		d.Padding.Top, d.Padding.Right, d.Padding.Bottom, d.Padding.Left)
	s += fmt.Sprintf("   b.top=%g, b.right=%g, b.bottom=%g, b.left=%g\n",
		d.Border.Top, d.Border.Right, d.Border.Bottom, d.Border.Left)
	s += fmt.Sprintf("   m.top=%g, m.right=%g, m.bottom=%g, m.left=%g\n",
		d.Margin.Top, d.Margin.Right, d.Margin.Bottom, d.Margin.Left)
	s += "}"
	return s
}
