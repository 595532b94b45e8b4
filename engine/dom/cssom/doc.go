/*
Package cssom implements a minimal CSS object model.

A stylesheet is an ordered list of rules; a rule is a group of selectors
plus an ordered list of declarations. Selector matching and specificity
are delegated to github.com/andybalholm/cascadia, which operates directly
on the nodes of golang.org/x/net/html.

Clients will usually not construct stylesheets by hand but parse them with
the douceuradapter subpackage.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinte.dom'.
func tracer() tracing.Trace {
	return tracing.Select("tinte.dom")
}
