package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tinte/engine/dom/cssom/douceuradapter"
	"github.com/npillmayer/tinte/engine/dom/styledtree"
	"github.com/npillmayer/tinte/engine/frame"
	"github.com/npillmayer/tinte/engine/frame/boxtree"
	htmlin "github.com/npillmayer/tinte/input/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// layoutBody parses, styles and lays out the body of an HTML document
// within the given viewport, returning the root layout box.
func layoutBody(t *testing.T, htmlSrc, cssSrc string, viewport frame.Rect) *boxtree.LayoutBox {
	t.Helper()
	doc, err := htmlin.ParseString(htmlSrc)
	require.NoError(t, err)
	sheet, err := douceuradapter.ParseCSS(cssSrc)
	require.NoError(t, err)
	body := htmlin.Body(doc)
	require.NotNil(t, body)
	root, err := boxtree.BuildBoxTree(styledtree.BuildTree(body, sheet))
	require.NoError(t, err)
	LayoutTree(root, viewport)
	return root
}

var viewport = frame.Rect{X: 0, Y: 0, W: 300, H: 200}

func TestAutoWidthFillsContainingBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.frame")
	defer teardown()
	//
	root := layoutBody(t,
		`<html><body><div></div></body></html>`,
		`body, div { display: block; }`,
		viewport)
	assert.Equal(t, 300.0, root.Dimensions.Content.W)
	require.Len(t, root.Children(), 1)
	assert.Equal(t, 300.0, root.Children()[0].Dimensions.Content.W)
}

func TestAutoMarginsCenterBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.frame")
	defer teardown()
	//
	root := layoutBody(t,
		`<html><body><div></div></body></html>`,
		`body, div { display: block; }
		 div { width: 200px; margin-left: auto; margin-right: auto; }`,
		viewport)
	div := root.Children()[0]
	assert.Equal(t, 200.0, div.Dimensions.Content.W)
	assert.Equal(t, 50.0, div.Dimensions.Margin.Left)
	assert.Equal(t, 50.0, div.Dimensions.Margin.Right)
	assert.Equal(t, 50.0, div.Dimensions.Content.X)
}

func TestMarginShorthandAutoCenters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.frame")
	defer teardown()
	//
	root := layoutBody(t,
		`<html><body><div></div></body></html>`,
		`body, div { display: block; }
		 div { width: 100px; margin: auto; }`,
		viewport)
	div := root.Children()[0]
	assert.Equal(t, 100.0, div.Dimensions.Margin.Left)
	assert.Equal(t, 100.0, div.Dimensions.Margin.Right)
}

func TestOverconstrainedMarginRightAbsorbs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.frame")
	defer teardown()
	//
	root := layoutBody(t,
		`<html><body><div></div></body></html>`,
		`body, div { display: block; }
		 div { width: 100px; margin-left: 20px; margin-right: 20px; }`,
		viewport)
	div := root.Children()[0]
	assert.Equal(t, 100.0, div.Dimensions.Content.W)
	assert.Equal(t, 20.0, div.Dimensions.Margin.Left)
	// 300 - (100 + 20 + 20) = 160 of underflow folds into the right margin
	assert.Equal(t, 180.0, div.Dimensions.Margin.Right)
}

func TestNegativeUnderflowClampsAutoWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.frame")
	defer teardown()
	//
	root := layoutBody(t,
		`<html><body><div></div></body></html>`,
		`body, div { display: block; }
		 div { margin-left: 250px; margin-right: 100px; }`,
		viewport)
	div := root.Children()[0]
	assert.Equal(t, 0.0, div.Dimensions.Content.W, "width never goes negative")
	assert.Equal(t, 250.0, div.Dimensions.Margin.Left)
	// 100 + (300 - 350) = 50
	assert.Equal(t, 50.0, div.Dimensions.Margin.Right)
}

func TestBlockStackingAndAutoHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.frame")
	defer teardown()
	//
	root := layoutBody(t,
		`<html><body><div class="a"></div><div class="b"></div></body></html>`,
		`body, div { display: block; }
		 .a { height: 40px; }
		 .b { height: 60px; }`,
		viewport)
	require.Len(t, root.Children(), 2)
	first, second := root.Children()[0], root.Children()[1]
	assert.Equal(t, 0.0, first.Dimensions.Content.Y)
	assert.Equal(t, 40.0, first.Dimensions.Content.H)
	assert.Equal(t, 40.0, second.Dimensions.Content.Y, "siblings stack vertically")
	assert.Equal(t, 100.0, root.Dimensions.Content.H, "auto height sums the children")
}

func TestMarginsContributeToStacking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.frame")
	defer teardown()
	//
	root := layoutBody(t,
		`<html><body><div class="a"></div><div class="b"></div></body></html>`,
		`body, div { display: block; }
		 .a { height: 40px; margin-bottom: 10px; }
		 .b { height: 60px; margin-top: 5px; }`,
		viewport)
	second := root.Children()[1]
	// 40 + 10 of the first margin box, plus the second's own top margin
	assert.Equal(t, 55.0, second.Dimensions.Content.Y)
	assert.Equal(t, 115.0, root.Dimensions.Content.H)
}

func TestExplicitHeightOverridesChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.frame")
	defer teardown()
	//
	root := layoutBody(t,
		`<html><body><div></div></body></html>`,
		`body, div { display: block; }
		 body { height: 20px; }
		 div { height: 90px; }`,
		viewport)
	assert.Equal(t, 20.0, root.Dimensions.Content.H)
	assert.Equal(t, 90.0, root.Children()[0].Dimensions.Content.H)
}

func TestEdgesOffsetContentPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.frame")
	defer teardown()
	//
	root := layoutBody(t,
		`<html><body><div></div></body></html>`,
		`body, div { display: block; }
		 div { margin: 10px; border-width: 2px; padding: 5px; height: 30px; }`,
		viewport)
	div := root.Children()[0]
	assert.Equal(t, 17.0, div.Dimensions.Content.X)
	assert.Equal(t, 17.0, div.Dimensions.Content.Y)
	// 300 over-constrained by 2*(10+2+5): width absorbs, it was auto
	assert.Equal(t, 266.0, div.Dimensions.Content.W)
	// the parent grows by the full margin box height
	assert.Equal(t, 64.0, root.Dimensions.Content.H)
}

func TestInlineBoxesOccupyNoSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.frame")
	defer teardown()
	//
	root := layoutBody(t,
		`<html><body><span>x</span></body></html>`,
		`body { display: block; }`,
		viewport)
	require.Len(t, root.Children(), 1)
	anon := root.Children()[0]
	assert.Equal(t, boxtree.AnonymousBox, anon.Type())
	assert.Equal(t, 300.0, anon.Dimensions.Content.W, "anonymous boxes lay out with default values")
	assert.Equal(t, 0.0, anon.Dimensions.Content.H)
	assert.Equal(t, 0.0, root.Dimensions.Content.H)
}
