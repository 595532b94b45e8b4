package styledtree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tinte/engine/dom/cssom/douceuradapter"
	"github.com/npillmayer/tinte/engine/dom/style"
	htmlin "github.com/npillmayer/tinte/input/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// styledBody parses the snippets and styles the document's body.
func styledBody(t *testing.T, htmlSrc, cssSrc string) *StyNode {
	t.Helper()
	doc, err := htmlin.ParseString(htmlSrc)
	require.NoError(t, err)
	sheet, err := douceuradapter.ParseCSS(cssSrc)
	require.NoError(t, err)
	body := htmlin.Body(doc)
	require.NotNil(t, body)
	return BuildTree(body, sheet)
}

func firstElemChild(sn *StyNode) *StyNode {
	for _, ch := range sn.Children() {
		if !ch.IsText() {
			return ch
		}
	}
	return nil
}

func TestCascadeDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.dom")
	defer teardown()
	//
	// an id selector (1,0,0) must beat a class selector (0,1,0) for the
	// same property, regardless of declaration order in the stylesheet
	const markup = `<html><body><div id="x" class="c"></div></body></html>`
	for _, css := range []string{
		`.c { margin: 10px; }  #x { margin: 20px; }`,
		`#x { margin: 20px; }  .c { margin: 10px; }`,
	} {
		body := styledBody(t, markup, css)
		div := firstElemChild(body)
		require.NotNil(t, div)
		v, ok := div.Styles().Value("margin")
		require.True(t, ok)
		assert.Equal(t, style.Px(20), v, "css: %s", css)
	}
}

func TestCascadeSourceOrderBreaksTies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.dom")
	defer teardown()
	//
	body := styledBody(t,
		`<html><body><p></p></body></html>`,
		`p { margin: 1px; }  p { margin: 2px; }`)
	p := firstElemChild(body)
	require.NotNil(t, p)
	v, _ := p.Styles().Value("margin")
	assert.Equal(t, style.Px(2), v, "later rule wins a specificity tie")
}

func TestCascadeShorthandFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.dom")
	defer teardown()
	//
	body := styledBody(t,
		`<html><body><p></p></body></html>`,
		`p { margin: 10px; margin-left: 5px; }`)
	p := firstElemChild(body)
	require.NotNil(t, p)
	assert.Equal(t, style.Px(5), p.Styles().Lookup("margin-left", "margin", style.Zero))
	assert.Equal(t, style.Px(10), p.Styles().Lookup("margin-right", "margin", style.Zero))
	assert.Equal(t, style.Zero, p.Styles().Lookup("padding-left", "padding", style.Zero))
}

func TestStyledTreeMirrorsDOM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.dom")
	defer teardown()
	//
	body := styledBody(t,
		`<html><body><div>one<span>two</span></div></body></html>`, ``)
	div := firstElemChild(body)
	require.NotNil(t, div)
	require.Equal(t, 2, div.ChildCount(), "text and element children mirror 1:1")
	assert.True(t, div.Child(0).IsText())
	assert.Empty(t, div.Child(0).Styles(), "text nodes carry empty property maps")
	assert.Equal(t, "span", div.Child(1).String())
	assert.Same(t, div.Child(1), div.Children()[1])
	assert.Nil(t, div.Child(5))
}

func TestUnmatchedElementHasEmptyStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.dom")
	defer teardown()
	//
	body := styledBody(t,
		`<html><body><p></p></body></html>`,
		`div { margin: 10px; }`)
	p := firstElemChild(body)
	require.NotNil(t, p)
	assert.Empty(t, p.Styles(), "no matching rule leaves the map empty")
}
