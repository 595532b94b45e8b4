/*
Package dom provides access helpers for DOM nodes.

We do not wrap the node type of golang.org/x/net/html, but rather work on
it directly. Styling and layout only ever need a small slice of DOM
functionality: attribute access, class lists and ordered traversal of
element and text children.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinte.dom'.
func tracer() tracing.Trace {
	return tracing.Select("tinte.dom")
}
