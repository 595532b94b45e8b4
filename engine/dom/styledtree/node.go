package styledtree

import (
	"github.com/npillmayer/tinte/engine/dom"
	"github.com/npillmayer/tinte/engine/dom/style"
	"golang.org/x/net/html"
)

// StyNode is a styled node, the building block of the styled tree.
type StyNode struct {
	htmlNode *html.Node        // non-owning link into the DOM
	styles   style.PropertyMap // resolved property values
	children []*StyNode        // mirror the DOM children 1:1, in order
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// Styles returns the resolved property map of a styled node.
// Text nodes and unmatched elements have empty maps; all property
// accessors resolve to engine defaults on those.
func (sn *StyNode) Styles() style.PropertyMap {
	return sn.styles
}

// IsText is a predicate for styled text nodes.
func (sn *StyNode) IsText() bool {
	return dom.IsText(sn.htmlNode)
}

// ChildCount returns the number of children of this node.
func (sn *StyNode) ChildCount() int {
	return len(sn.children)
}

// Child returns the i-th child of this node, or nil if out of range.
func (sn *StyNode) Child(i int) *StyNode {
	if i < 0 || i >= len(sn.children) {
		return nil
	}
	return sn.children[i]
}

// Children returns the children of this node, in document order.
// Callers must not modify the returned slice.
func (sn *StyNode) Children() []*StyNode {
	return sn.children
}

func (sn *StyNode) String() string {
	return dom.NodeName(sn.htmlNode)
}
