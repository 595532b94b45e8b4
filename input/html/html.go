/*
Package html reads HTML input into a DOM.

Parsing is done by golang.org/x/net/html, which always produces a full
document tree (html/head/body wrappers included). Rendering clients
will usually take the body element as their render root.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tinte/core"
	"golang.org/x/net/html"
)

// tracer traces with key 'tinte.dom'.
func tracer() tracing.Trace {
	return tracing.Select("tinte.dom")
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		tracer().Errorf("unable to parse HTML input: %v", err)
		return nil, core.WrapError(err, core.EINVALID, "cannot parse HTML input")
	}
	return doc, nil
}

// ParseString reads an HTML document from a string.
func ParseString(src string) (*html.Node, error) {
	return Parse(strings.NewReader(src))
}

// Body returns the body element of a parsed document, or nil if the
// document has none.
func Body(doc *html.Node) *html.Node {
	return findElement(doc, "body")
}

func findElement(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if found := findElement(ch, tag); found != nil {
			return found
		}
	}
	return nil
}
