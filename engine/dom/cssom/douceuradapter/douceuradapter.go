/*
Package douceuradapter parses CSS text into the cssom stylesheet model.

Parsing of the raw CSS syntax is done by github.com/aymerick/douceur;
selector preludes are compiled with github.com/andybalholm/cascadia.
Rules whose selectors cannot be compiled, as well as at-rules, are
skipped with a warning trace: stylesheet input never aborts a render
pass.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package douceuradapter

import (
	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tinte/core"
	"github.com/npillmayer/tinte/engine/dom/cssom"
	"github.com/npillmayer/tinte/engine/dom/style"
	"golang.org/x/net/html"
)

// tracer traces with key 'tinte.dom'.
func tracer() tracing.Trace {
	return tracing.Select("tinte.dom")
}

// ParseCSS parses a CSS source text into a stylesheet.
//
// Syntax errors in the overall CSS structure are returned as an error;
// per-rule problems (unsupported at-rules, uncompilable selectors) are
// skipped and traced, leaving the remaining rules intact.
func ParseCSS(src string) (*cssom.Stylesheet, error) {
	parsed, err := parser.Parse(src)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse CSS input")
	}
	return convert(parsed), nil
}

func convert(parsed *css.Stylesheet) *cssom.Stylesheet {
	rules := make([]*cssom.Rule, 0, len(parsed.Rules))
	for _, r := range parsed.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Infof("cssom: skipping at-rule %q", r.Name)
			continue
		}
		group, err := cascadia.ParseGroup(r.Prelude)
		if err != nil {
			tracer().Infof("cssom: skipping rule with selector %q: %v", r.Prelude, err)
			continue
		}
		decls := make([]cssom.Declaration, 0, len(r.Declarations))
		for _, d := range r.Declarations {
			decls = append(decls, cssom.Declaration{
				Property: d.Property,
				Value:    style.ParseValue(d.Value),
			})
		}
		rules = append(rules, cssom.NewRule(group, decls))
	}
	return cssom.NewStylesheet(rules)
}

// ExtractStyleElements collects the contents of <style> elements of an
// HTML document into a single stylesheet, in document order.
func ExtractStyleElements(doc *html.Node) (*cssom.Stylesheet, error) {
	sheet := cssom.NewStylesheet(nil)
	var walk func(n *html.Node) error
	walk = func(n *html.Node) error {
		if n.Type == html.ElementNode && n.Data == "style" {
			var src string
			for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
				if ch.Type == html.TextNode {
					src += ch.Data
				}
			}
			styles, err := ParseCSS(src)
			if err != nil {
				return err
			}
			sheet.AppendRules(styles)
			return nil
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if err := walk(ch); err != nil {
				return err
			}
		}
		return nil
	}
	if doc != nil {
		if err := walk(doc); err != nil {
			return nil, err
		}
	}
	return sheet, nil
}
