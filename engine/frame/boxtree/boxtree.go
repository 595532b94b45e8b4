package boxtree

import (
	"github.com/npillmayer/tinte/core"
	"github.com/npillmayer/tinte/engine/dom"
	"github.com/npillmayer/tinte/engine/dom/styledtree"
	"github.com/npillmayer/tinte/engine/frame"
)

// BoxType is a type for the variants of a layout box.
type BoxType uint8

// Block and inline boxes are generated for styled nodes; anonymous
// boxes are synthesized by the box tree generator and carry no style.
const (
	BlockBox BoxType = iota
	InlineBox
	AnonymousBox
)

func (t BoxType) String() string {
	switch t {
	case BlockBox:
		return "block"
	case InlineBox:
		return "inline"
	case AnonymousBox:
		return "anonymous"
	}
	return "<box>"
}

// ErrAnonymousBoxHasNoStyles flags a style query on an anonymous box.
// This is a violated programming contract, not a runtime condition: it
// aborts the render pass.
var ErrAnonymousBoxHasNoStyles = core.Error(core.ESTRUCTURE, "anonymous box has no style node")

// LayoutBox is a node of the layout tree. It is created with zeroed
// dimensions; the layout pass fills them in, after which the box is
// never mutated again.
type LayoutBox struct {
	Dimensions frame.Dimensions
	boxType    BoxType
	styles     *styledtree.StyNode // nil iff boxType == AnonymousBox
	children   []*LayoutBox
}

func newLayoutBox(t BoxType, sn *styledtree.StyNode) *LayoutBox {
	return &LayoutBox{boxType: t, styles: sn}
}

// NewAnonymousBox creates a style-less anonymous block container.
func NewAnonymousBox() *LayoutBox {
	return newLayoutBox(AnonymousBox, nil)
}

// Type returns the variant of a layout box.
func (box *LayoutBox) Type() BoxType {
	return box.boxType
}

// StyleNode returns the styled node a block or inline box was generated
// for. Anonymous boxes have no style node; querying one returns
// ErrAnonymousBoxHasNoStyles.
func (box *LayoutBox) StyleNode() (*styledtree.StyNode, error) {
	if box.boxType == AnonymousBox {
		return nil, ErrAnonymousBoxHasNoStyles
	}
	return box.styles, nil
}

// Children returns the child boxes, in layout order.
// Callers must not modify the returned slice.
func (box *LayoutBox) Children() []*LayoutBox {
	return box.children
}

// AddChild appends a child box.
func (box *LayoutBox) AddChild(child *LayoutBox) {
	box.children = append(box.children, child)
}

func (box *LayoutBox) String() string {
	if box.boxType == AnonymousBox {
		return "[anonymous]"
	}
	return "[" + box.boxType.String() + " " + dom.NodeName(box.styles.HTMLNode()) + "]"
}
