/*
Package boxtree generates a tree of layout boxes from a styled tree.

This module has knowledge about which box to create for each styled
node (block, inline, or none at all) and where anonymous block boxes
have to be synthesized to keep the block/inline containment model intact.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinte.frame'.
func tracer() tracing.Trace {
	return tracing.Select("tinte.frame")
}
