package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Attr returns the value of an attribute of an element node, if present.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// ElemID returns the value of the `id` attribute of an element,
// or "" if the element carries none.
func ElemID(n *html.Node) string {
	id, _ := Attr(n, "id")
	return id
}

// Classes returns the class list of an element, i.e. the `class` attribute
// split into whitespace-separated tokens. Order is preserved.
func Classes(n *html.Node) []string {
	cls, ok := Attr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(cls)
}

// HasClass checks the class list of an element for a given class token.
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// IsElement is a predicate for element nodes.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// IsText is a predicate for text nodes.
func IsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// NodeName returns the name of a DOM node: the tag name for elements,
// "#text" for text nodes, "#document" for the document node.
func NodeName(n *html.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case html.ElementNode:
		return n.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	}
	return "<node>"
}

// ContentChildren returns the element and text children of a node, in
// document order. Comments, doctypes etc. do not contribute to rendering
// and are skipped.
func ContentChildren(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var children []*html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode || ch.Type == html.TextNode {
			children = append(children, ch)
		}
	}
	return children
}
