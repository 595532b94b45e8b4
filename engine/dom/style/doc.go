/*
Package style implements CSS property values and property maps.

Property values are a closed union of keyword, pixel-length and color
values. Property maps associate property names with values and offer the
shorthand/longhand lookup scheme used throughout styling and layout
(e.g., "margin-left" falling back to "margin").

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinte.dom'.
func tracer() tracing.Trace {
	return tracing.Select("tinte.dom")
}
