package boxtree

// This module should have knowledge about:
// - which box to create for each styled node
// - where anonymous boxes have to be inserted to keep the block/inline
//   containment model intact

import (
	"github.com/npillmayer/tinte/core"
	"github.com/npillmayer/tinte/engine/dom"
	"github.com/npillmayer/tinte/engine/dom/style"
	"github.com/npillmayer/tinte/engine/dom/styledtree"
)

// ErrStyledRootIsNull flags a nil styled tree root.
var ErrStyledRootIsNull = core.Error(core.ESTRUCTURE, "styled tree root is null")

// ErrRootDisplayNone flags a root node with display:none, for which no
// box tree can be generated.
var ErrRootDisplayNone = core.Error(core.ESTRUCTURE, "root node has display = none")

// BuildBoxTree creates a layout box tree from a styled tree.
//
// Nodes with display:none contribute nothing: they and their subtrees
// are omitted. Inline children of a block box are collected into
// anonymous block containers; a block child of an inline box is wrapped
// in an anonymous block of its own.
func BuildBoxTree(styledRoot *styledtree.StyNode) (*LayoutBox, error) {
	if styledRoot == nil {
		return nil, ErrStyledRootIsNull
	}
	mode := styledRoot.Styles().DisplayMode()
	if mode == style.DisplayNone {
		return nil, ErrRootDisplayNone
	}
	tracer().Debugf("boxtree: creating box tree for root <%s>",
		dom.NodeName(styledRoot.HTMLNode()))
	return boxForStyledNode(styledRoot, mode), nil
}

func boxForStyledNode(sn *styledtree.StyNode, mode style.DisplayMode) *LayoutBox {
	var box *LayoutBox
	switch mode {
	case style.BlockMode:
		box = newLayoutBox(BlockBox, sn)
	default: // inline is the default display mode
		box = newLayoutBox(InlineBox, sn)
	}
	for _, ch := range sn.Children() {
		chmode := ch.Styles().DisplayMode()
		if chmode == style.DisplayNone {
			continue // child and its subtree do not generate boxes
		}
		chbox := boxForStyledNode(ch, chmode)
		attachChild(box, chbox, chmode)
	}
	return box
}

// attachChild inserts a child box into a parent, synthesizing anonymous
// block containers where the block/inline containment model requires an
// intermediate box.
func attachChild(parent, child *LayoutBox, childMode style.DisplayMode) {
	switch {
	case childMode == style.BlockMode && parent.Type() == InlineBox:
		// a block inside an inline container gets an anonymous wrapper
		// of its own
		anon := NewAnonymousBox()
		anon.AddChild(child)
		parent.AddChild(anon)
	case childMode != style.BlockMode && parent.Type() == BlockBox:
		// inline content of a block container flows inside a trailing
		// anonymous block, shared by consecutive inline siblings
		inlineContainerOf(parent).AddChild(child)
	default:
		parent.AddChild(child)
	}
}

// inlineContainerOf returns the box new inline children of a block box
// should go into: the trailing anonymous block, created on demand.
func inlineContainerOf(box *LayoutBox) *LayoutBox {
	if n := len(box.children); n > 0 && box.children[n-1].Type() == AnonymousBox {
		return box.children[n-1]
	}
	anon := NewAnonymousBox()
	box.AddChild(anon)
	return anon
}
