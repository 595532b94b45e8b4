/*
Package layout positions and sizes the boxes of a layout tree.

Only block flow is implemented: block boxes stack vertically inside
their containing block, widths are resolved by the CSS 2.1 §10.3.3
constraint algorithm, auto heights accumulate from children. Inline
boxes are placeholders occupying no space.

Invaluable:
https://developer.mozilla.org/en-US/docs/Web/CSS/Visual_formatting_model

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinte.frame'.
func tracer() tracing.Trace {
	return tracing.Select("tinte.frame")
}
