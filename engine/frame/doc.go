/*
Package frame implements the CSS box model geometry.

A box is described by its content rectangle plus the padding, border and
margin edge sizes around it. The four derived rectangles nest:

	content ⊆ padding box ⊆ border box ⊆ margin box

All coordinates are device pixels, as floating point values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinte.frame'.
func tracer() tracing.Trace {
	return tracing.Select("tinte.frame")
}
