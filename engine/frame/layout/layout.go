package layout

import (
	"github.com/npillmayer/tinte/engine/dom/style"
	"github.com/npillmayer/tinte/engine/frame"
	"github.com/npillmayer/tinte/engine/frame/boxtree"
)

// LayoutTree lays out a complete box tree within a viewport. The
// viewport's height is reset to zero before layout: the containing
// block's height acts as a stacking accumulator for child boxes and
// must start empty.
func LayoutTree(root *boxtree.LayoutBox, viewport frame.Rect) {
	cntblock := frame.Dimensions{Content: viewport}
	cntblock.Content.H = 0
	Layout(root, &cntblock)
}

// Layout performs the layout pass for a box and its subtree, given the
// dimensions of its containing block. Block and anonymous boxes do
// block layout; inline boxes are placeholders occupying no space.
func Layout(box *boxtree.LayoutBox, cntblock *frame.Dimensions) {
	switch box.Type() {
	case boxtree.BlockBox, boxtree.AnonymousBox:
		layoutBlock(box, cntblock)
	case boxtree.InlineBox:
		// inline layout is not implemented
	}
}

// layoutBlock performs the four steps of block layout. The order is
// load-bearing: child widths depend on the parent width, the parent's
// auto height depends on the children's heights.
func layoutBlock(box *boxtree.LayoutBox, cntblock *frame.Dimensions) {
	calculateBlockWidth(box, cntblock)
	calculateBlockPosition(box, cntblock)
	layoutBlockChildren(box)
	calculateBlockHeight(box)
}

// stylesOf returns the property map driving the layout of a box.
// Anonymous boxes have no styles and lay out with all-default values
// (a nil map reads as empty).
func stylesOf(box *boxtree.LayoutBox) style.PropertyMap {
	if box.Type() == boxtree.AnonymousBox {
		return nil
	}
	sn, err := box.StyleNode()
	if err != nil {
		panic(err) // cannot happen for non-anonymous boxes
	}
	return sn.Styles()
}

// calculateBlockWidth resolves the horizontal dimensions of a block box,
// implementing the constraint algorithm of CSS 2.1 §10.3.3.
//
// Exactly one of the lengths {width, margin-left, margin-right} absorbs
// the underflow; which one is decided by a case analysis over their
// "auto" states. The case order and tie-breaks below are the contract.
func calculateBlockWidth(box *boxtree.LayoutBox, cntblock *frame.Dimensions) {
	pmap := stylesOf(box)

	width, ok := pmap.Value("width")
	if !ok {
		width = style.Auto
	}
	marginLeft := pmap.Lookup("margin-left", "margin", style.Zero)
	marginRight := pmap.Lookup("margin-right", "margin", style.Zero)
	borderLeft := pmap.Lookup("border-left-width", "border-width", style.Zero)
	borderRight := pmap.Lookup("border-right-width", "border-width", style.Zero)
	paddingLeft := pmap.Lookup("padding-left", "padding", style.Zero)
	paddingRight := pmap.Lookup("padding-right", "padding", style.Zero)

	// "auto" values convert to 0 px here
	total := marginLeft.Px() + marginRight.Px() +
		borderLeft.Px() + borderRight.Px() +
		paddingLeft.Px() + paddingRight.Px() + width.Px()
	underflow := cntblock.Content.W - total

	wAuto, mlAuto, mrAuto := width.IsAuto(), marginLeft.IsAuto(), marginRight.IsAuto()
	switch {
	case !wAuto && !mlAuto && !mrAuto:
		// over-constrained: the right margin absorbs the underflow,
		// possibly going negative
		marginRight = style.Px(marginRight.Px() + underflow)
	case !wAuto && !mlAuto && mrAuto:
		marginRight = style.Px(underflow)
	case !wAuto && mlAuto && !mrAuto:
		marginLeft = style.Px(underflow)
	case wAuto:
		// auto margins of an auto-width box are treated as 0
		if mlAuto {
			marginLeft = style.Zero
		}
		if mrAuto {
			marginRight = style.Zero
		}
		if underflow >= 0 {
			width = style.Px(underflow)
		} else {
			// width can't be negative; the right margin absorbs instead
			width = style.Zero
			marginRight = style.Px(marginRight.Px() + underflow)
		}
	case !wAuto && mlAuto && mrAuto:
		// both margins auto: center the box
		marginLeft = style.Px(underflow / 2)
		marginRight = style.Px(underflow / 2)
	}

	d := &box.Dimensions
	d.Content.W = width.Px()
	d.Margin.Left = marginLeft.Px()
	d.Margin.Right = marginRight.Px()
	d.Border.Left = borderLeft.Px()
	d.Border.Right = borderRight.Px()
	d.Padding.Left = paddingLeft.Px()
	d.Padding.Right = paddingRight.Px()
}

// calculateBlockPosition resolves the vertical edge sizes and positions
// the content rectangle: directly below all previously laid-out siblings
// in the containing block. The containing block's content height is the
// stacking accumulator maintained by layoutBlockChildren, not the final
// box height.
func calculateBlockPosition(box *boxtree.LayoutBox, cntblock *frame.Dimensions) {
	pmap := stylesOf(box)
	d := &box.Dimensions

	d.Margin.Top = pmap.Lookup("margin-top", "margin", style.Zero).Px()
	d.Margin.Bottom = pmap.Lookup("margin-bottom", "margin", style.Zero).Px()
	d.Border.Top = pmap.Lookup("border-top-width", "border-width", style.Zero).Px()
	d.Border.Bottom = pmap.Lookup("border-bottom-width", "border-width", style.Zero).Px()
	d.Padding.Top = pmap.Lookup("padding-top", "padding", style.Zero).Px()
	d.Padding.Bottom = pmap.Lookup("padding-bottom", "padding", style.Zero).Px()

	d.Content.X = cntblock.Content.X + d.Margin.Left + d.Border.Left + d.Padding.Left
	d.Content.Y = cntblock.Content.Y + cntblock.Content.H +
		d.Margin.Top + d.Border.Top + d.Padding.Top
}

// layoutBlockChildren lays out the children in order, growing this box's
// content height with every child's margin box. The accumulation is an
// order-dependent fold: each child's vertical position depends on the
// cumulative height of all earlier siblings.
func layoutBlockChildren(box *boxtree.LayoutBox) {
	d := &box.Dimensions
	for _, child := range box.Children() {
		Layout(child, d)
		d.Content.H += child.Dimensions.MarginBox().H
	}
}

// calculateBlockHeight overrides the accumulated auto height if the
// "height" property holds an explicit length.
func calculateBlockHeight(box *boxtree.LayoutBox) {
	pmap := stylesOf(box)
	if h, ok := pmap.Value("height"); ok && h.Type() == style.LengthValue {
		box.Dimensions.Content.H = h.Px()
	}
}
