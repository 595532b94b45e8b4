package styledtree

import (
	"sort"

	"github.com/npillmayer/tinte/engine/dom"
	"github.com/npillmayer/tinte/engine/dom/cssom"
	"github.com/npillmayer/tinte/engine/dom/style"
	"golang.org/x/net/html"
)

// BuildTree styles a DOM (sub-)tree: it creates a parallel tree of styled
// nodes where every element node carries the property map produced by the
// cascade, and every text node carries an empty map.
//
// BuildTree is a pure function of its inputs. A nil root yields nil.
func BuildTree(root *html.Node, sheet *cssom.Stylesheet) *StyNode {
	if root == nil {
		return nil
	}
	sn := &StyNode{htmlNode: root}
	if dom.IsElement(root) {
		sn.styles = specifiedStyles(root, sheet)
	}
	for _, ch := range dom.ContentChildren(root) {
		sn.children = append(sn.children, BuildTree(ch, sheet))
	}
	return sn
}

// specifiedStyles runs the cascade for a single element: collect matching
// rules, order them by ascending specificity (stable, so source order
// breaks ties), and apply their declarations in that order. The last
// writer for a property wins.
func specifiedStyles(n *html.Node, sheet *cssom.Stylesheet) style.PropertyMap {
	matches := sheet.MatchingRules(n)
	if len(matches) == 0 {
		return style.PropertyMap{}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Spec.Less(matches[j].Spec)
	})
	pmap := style.PropertyMap{}
	for _, m := range matches {
		for _, d := range m.Rule.Declarations() {
			pmap[d.Property] = d.Value
		}
	}
	tracer().Debugf("styledtree: %d rule(s) matched <%s>, %d properties set",
		len(matches), dom.NodeName(n), len(pmap))
	return pmap
}
