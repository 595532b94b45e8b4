package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseBody(t *testing.T, snippet string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(snippet))
	require.NoError(t, err)
	var find func(n *html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "body" {
			return n
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if found := find(ch); found != nil {
				return found
			}
		}
		return nil
	}
	body := find(doc)
	require.NotNil(t, body)
	return body
}

func TestElementAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.dom")
	defer teardown()
	//
	body := parseBody(t, `<div id="main" class=" note  highlight " lang="de"></div>`)
	div := body.FirstChild
	require.NotNil(t, div)
	assert.Equal(t, "main", ElemID(div))
	lang, ok := Attr(div, "lang")
	assert.True(t, ok)
	assert.Equal(t, "de", lang)
	_, ok = Attr(div, "title")
	assert.False(t, ok)
	assert.Equal(t, []string{"note", "highlight"}, Classes(div),
		"class attribute splits into whitespace-separated tokens")
	assert.True(t, HasClass(div, "note"))
	assert.False(t, HasClass(div, "missing"))
	assert.Equal(t, "", ElemID(nil))
	assert.Nil(t, Classes(body))
}

func TestNodeNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.dom")
	defer teardown()
	//
	body := parseBody(t, `<p>hello</p>`)
	p := body.FirstChild
	require.NotNil(t, p)
	assert.True(t, IsElement(p))
	assert.Equal(t, "p", NodeName(p))
	text := p.FirstChild
	require.NotNil(t, text)
	assert.True(t, IsText(text))
	assert.Equal(t, "#text", NodeName(text))
	assert.Equal(t, "", NodeName(nil))
}

func TestContentChildrenSkipComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.dom")
	defer teardown()
	//
	body := parseBody(t, `<div><!-- hidden -->one<span>two</span></div>`)
	div := body.FirstChild
	require.NotNil(t, div)
	children := ContentChildren(div)
	require.Len(t, children, 2, "comments do not contribute to rendering")
	assert.True(t, IsText(children[0]))
	assert.Equal(t, "span", NodeName(children[1]))
}
