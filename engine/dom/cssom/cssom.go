package cssom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/tinte/engine/dom/style"
	"golang.org/x/net/html"
)

// Declaration is a single property declaration within a rule.
type Declaration struct {
	Property string
	Value    style.Value
}

// Rule is a CSS rule: a selector group together with an ordered list of
// declarations. Rules are immutable once created.
type Rule struct {
	selectors    []cascadia.Sel
	selectorText string
	declarations []Declaration
}

// NewRule creates a rule from compiled selectors and declarations.
func NewRule(selectors []cascadia.Sel, declarations []Declaration) *Rule {
	texts := make([]string, len(selectors))
	for i, sel := range selectors {
		texts[i] = sel.String()
	}
	return &Rule{
		selectors:    selectors,
		selectorText: strings.Join(texts, ", "),
		declarations: declarations,
	}
}

// SelectorText returns the textual form of the rule's selector group.
func (r *Rule) SelectorText() string {
	return r.selectorText
}

// Declarations returns the declarations of a rule, in source order.
func (r *Rule) Declarations() []Declaration {
	return r.declarations
}

// Match checks a rule against an element. A rule matches if any of its
// selectors matches. The specificity reported for the match is the
// maximum specificity over all matching selectors of the rule, making
// the result independent of selector order within the group.
func (r *Rule) Match(n *html.Node) (cascadia.Specificity, bool) {
	var best cascadia.Specificity
	matched := false
	for _, sel := range r.selectors {
		if !sel.Match(n) {
			continue
		}
		if spec := sel.Specificity(); !matched || best.Less(spec) {
			best = spec
		}
		matched = true
	}
	return best, matched
}

// Stylesheet is an ordered list of rules. Source order is significant:
// it breaks specificity ties during the cascade.
type Stylesheet struct {
	rules []*Rule
}

// NewStylesheet creates a stylesheet from a list of rules.
func NewStylesheet(rules []*Rule) *Stylesheet {
	return &Stylesheet{rules: rules}
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Stylesheet) Empty() bool {
	return sheet == nil || len(sheet.rules) == 0
}

// Rules returns all the rules of a stylesheet.
func (sheet *Stylesheet) Rules() []*Rule {
	if sheet == nil {
		return nil
	}
	return sheet.rules
}

// AppendRules appends the rules of another stylesheet, preserving order.
// Appended rules are considered later in source order.
func (sheet *Stylesheet) AppendRules(other *Stylesheet) {
	if other == nil {
		return
	}
	sheet.rules = append(sheet.rules, other.rules...)
}

// Match is a rule that matched an element, tagged with the specificity
// of the match.
type Match struct {
	Spec cascadia.Specificity
	Rule *Rule
}

// MatchingRules returns every rule of the stylesheet matching an element,
// in source order.
func (sheet *Stylesheet) MatchingRules(n *html.Node) []Match {
	if sheet == nil || n == nil || n.Type != html.ElementNode {
		return nil
	}
	var matches []Match
	for _, rule := range sheet.rules {
		if spec, ok := rule.Match(n); ok {
			matches = append(matches, Match{Spec: spec, Rule: rule})
		}
	}
	return matches
}
