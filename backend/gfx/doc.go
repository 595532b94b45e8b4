/*
Package gfx rasterizes layout trees.

Painting happens in two steps: a depth-first walk of the layout tree
produces a display list, an ordered sequence of primitive drawing
commands; executing the list in order onto a canvas yields the render
result. Later commands overwrite earlier ones; there is no blending
and no anti-aliasing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gfx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinte.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("tinte.gfx")
}
