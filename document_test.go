package xhtmlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRootMissing(t *testing.T) {
	doc := &Document{buf: []byte("<a/>"), root: noneNode}
	_, err := doc.Root()
	require.Error(t, err)

	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrNoRootElement, pe.Kind())
}

func TestDocumentEachNodeOrderMatchesArena(t *testing.T) {
	doc, err := Parse([]byte(`<r><a/>text<b/></r>`))
	require.NoError(t, err)

	var seen []NodeType
	doc.EachNode(func(n Node) bool {
		seen = append(seen, n.Type())
		return true
	})

	assert.Equal(t, []NodeType{DocumentNode, ElementNode, ElementNode, PCDataNode, ElementNode}, seen)
}

func TestDocumentEachNodeEarlyStop(t *testing.T) {
	doc, err := Parse([]byte(`<r><a/><b/><c/></r>`))
	require.NoError(t, err)

	var seen int
	doc.EachNode(func(Node) bool {
		seen++
		return seen < 2
	})
	assert.Equal(t, 2, seen)
}

func TestDocumentEachDescendantFollowsSiblingLinksNotArenaOrder(t *testing.T) {
	doc, err := Parse([]byte(`<r><a><d/></a><b/></r>`))
	require.NoError(t, err)

	var names []string
	doc.EachDescendant(func(n Node) bool {
		if n.Type() == ElementNode {
			names = append(names, n.Name())
		}
		return true
	})
	assert.Equal(t, []string{"r", "a", "d", "b"}, names)
}

func TestInvalidNodeIsZeroValue(t *testing.T) {
	var n Node
	assert.False(t, n.Valid())
	assert.Equal(t, "", n.Name())
	assert.Equal(t, "", n.Text())
	assert.False(t, n.FirstChild().Valid())
	assert.False(t, n.NextSibling().Valid())

	var a Attribute
	assert.False(t, a.Valid())
	assert.Equal(t, "", a.Name())
	assert.Equal(t, "", a.Value())
}
