/*
Package styledtree implements a tree of styled nodes.

A styled tree mirrors the shape of a DOM tree: every element and text
node of the DOM corresponds 1:1 and in order to a styled node. Styled
nodes carry the property map resolved by the CSS cascade. A styled tree
is created once per render pass and never mutated afterwards; it borrows
the DOM nodes, so the DOM has to outlive it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinte.dom'.
func tracer() tracing.Trace {
	return tracing.Select("tinte.dom")
}
