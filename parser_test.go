package xhtmlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrivial(t *testing.T) {
	doc, err := Parse([]byte(`<a/>`))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	assert.Equal(t, ElementNode, root.Type())
	assert.Equal(t, "a", root.Name())
	assert.Empty(t, root.Attributes())
	assert.Empty(t, root.Children())
}

func TestParseAttributesAndText(t *testing.T) {
	doc, err := Parse([]byte(`<a x="1" y='2'>hi</a>`))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	attrs := root.Attributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, "x", attrs[0].Name())
	assert.Equal(t, "1", attrs[0].Value())
	assert.Equal(t, "y", attrs[1].Name())
	assert.Equal(t, "2", attrs[1].Value())

	children := root.Children()
	require.Len(t, children, 1)
	assert.Equal(t, PCDataNode, children[0].Type())
	assert.Equal(t, "hi", children[0].Text())
}

func TestParseEntityExpansionDefaults(t *testing.T) {
	doc, err := Parse([]byte(`<p>a &amp; b &#65; &lt;</p>`))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	children := root.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "a & b A <", children[0].Text())
}

func TestParseAttributeWhitespaceNormalization(t *testing.T) {
	doc, err := Parse([]byte("<a t=\"  foo\t\tbar  \"/>"))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	v, ok := root.Attribute("t")
	require.True(t, ok)
	assert.Equal(t, "foo bar", v.Value())
}

func TestParseCRLFInPCData(t *testing.T) {
	doc, err := Parse([]byte("<p>line1\r\nline2\rline3</p>"))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	children := root.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "line1\nline2\nline3", children[0].Text())
}

func TestParseSkippedConstructsAndCDATA(t *testing.T) {
	doc, err := Parse([]byte(`<!-- c --><?pi ?><!DOCTYPE x [ <!ENT ..> ]><r><![CDATA[<raw>]]></r>`))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)
	assert.Equal(t, "r", root.Name())

	children := root.Children()
	require.Len(t, children, 1)
	assert.Equal(t, PCDataNode, children[0].Type())
	assert.Equal(t, "<raw>", children[0].Text())

	// Only the root element and its single text child were ever
	// emitted -- the comment/PI/DOCTYPE left no trace.
	var count int
	doc.EachNode(func(Node) bool { count++; return true })
	assert.Equal(t, 3, count) // document + element + text
}

func TestParseMismatchedTag(t *testing.T) {
	src := []byte(`<a><b></a>`)
	_, err := Parse(src)
	require.Error(t, err)

	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrMismatchedTag, pe.Kind())

	wantOffset := bytesIndex(src, "</a>")
	assert.Equal(t, wantOffset, pe.Offset())
}

func TestParseTailIsIgnored(t *testing.T) {
	doc, err := Parse([]byte(`<r/>garbage<!not xml`))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)
	assert.Equal(t, "r", root.Name())
	assert.Empty(t, root.Children())

	var count int
	doc.EachNode(func(Node) bool { count++; return true })
	assert.Equal(t, 2, count) // document + root element, nothing else
}

func TestParseNestedElementsPreserveOrder(t *testing.T) {
	doc, err := Parse([]byte(`<r><a/><b><c/></b><a/></r>`))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	children := root.Children()
	require.Len(t, children, 3)
	assert.Equal(t, "a", children[0].Name())
	assert.Equal(t, "b", children[1].Name())
	assert.Equal(t, "a", children[2].Name())

	bChildren := children[1].Children()
	require.Len(t, bChildren, 1)
	assert.Equal(t, "c", bChildren[0].Name())
}

func TestParseWhitespaceOnlyPCDataDroppedByDefault(t *testing.T) {
	doc, err := Parse([]byte("<r><a/>   <b/></r>"))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	children := root.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "a", children[0].Name())
	assert.Equal(t, "b", children[1].Name())
}

func TestParseNoRootElement(t *testing.T) {
	_, err := Parse([]byte("   <!-- just a comment --> "))
	require.Error(t, err)

	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrNoRootElement, pe.Kind())
}

func TestParseUnexpectedEOF(t *testing.T) {
	_, err := Parse([]byte(`<a><b></b>`))
	require.Error(t, err)

	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrUnexpectedEof, pe.Kind())
}

func TestParseInvalidUTF8(t *testing.T) {
	_, err := Parse([]byte("<a>\xff\xfe</a>"))
	require.Error(t, err)

	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidUtf8, pe.Kind())
}

func TestAttributeArenaWindowsAreDisjoint(t *testing.T) {
	doc, err := Parse([]byte(`<r a1="1" a2="2"><c b1="3"/></r>`))
	require.NoError(t, err)

	var windows [][2]int
	doc.EachNode(func(n Node) bool {
		if n.Type() != ElementNode {
			return true
		}
		rec := n.record()
		windows = append(windows, [2]int{int(rec.firstAttr), int(rec.firstAttr) + int(rec.attrCount)})
		return true
	})

	for i := range windows {
		for j := range windows {
			if i == j {
				continue
			}
			a, b := windows[i], windows[j]
			disjoint := a[1] <= b[0] || b[1] <= a[0]
			assert.True(t, disjoint, "windows %v and %v overlap", a, b)
		}
	}
}

func TestSiblingChainTerminatesWithoutCycles(t *testing.T) {
	doc, err := Parse([]byte(`<r><a/><b/><c/><d/></r>`))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	steps := 0
	for n := root.FirstChild(); n.Valid(); n = n.NextSibling() {
		steps++
		require.LessOrEqual(t, steps, doc.nodes.len(), "sibling chain did not terminate")
	}
	assert.Equal(t, 4, steps)
}

func TestParentAndSiblingNavigation(t *testing.T) {
	doc, err := Parse([]byte(`<r><a/><b/></r>`))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	a := root.FirstChild()
	b := a.NextSibling()

	assert.True(t, a.Parent().Valid())
	assert.Equal(t, "r", a.Parent().Name())
	assert.Equal(t, "r", b.Parent().Name())

	assert.False(t, a.PreviousSibling().Valid())
	assert.True(t, b.PreviousSibling().Valid())
	assert.Equal(t, "a", b.PreviousSibling().Name())
}

func TestNamespacePrefixStripping(t *testing.T) {
	doc, err := Parse([]byte(`<x:r xmlns:x="urn:x"><x:a x:id="1"/></x:r>`))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	// Whether "r" or "x:r" depends on the namespace_removal build
	// default; this module's default build strips prefixes.
	assert.Equal(t, "r", root.Name())

	a := root.FirstChild()
	assert.Equal(t, "a", a.Name())
	v, ok := a.Attribute("id")
	require.True(t, ok)
	assert.Equal(t, "1", v.Value())
}

func TestDescendantsPreOrder(t *testing.T) {
	doc, err := Parse([]byte(`<r><a><b/></a><c/></r>`))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	var names []string
	for _, n := range root.Descendants() {
		if n.Type() == ElementNode {
			names = append(names, n.Name())
		}
	}
	assert.Equal(t, []string{"r", "a", "b", "c"}, names)
}

func TestParseNonASCIIElementAndAttributeNames(t *testing.T) {
	doc, err := Parse([]byte(`<café über="ja"/>`))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	assert.Equal(t, "café", root.Name())

	v, ok := root.Attribute("über")
	require.True(t, ok)
	assert.Equal(t, "ja", v.Value())
}

func TestParseSelfClosedRootPrecededByDoctypeWithInternalSubset(t *testing.T) {
	doc, err := Parse([]byte(`<!DOCTYPE x [ <!ENTITY foo "bar"> ]><a/>`))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	assert.Equal(t, "a", root.Name())
	assert.Empty(t, root.Attributes())
	assert.Empty(t, root.Children())

	var count int
	doc.EachNode(func(Node) bool { count++; return true })
	assert.Equal(t, 2, count) // document + root element, nothing else
}

func bytesIndex(b []byte, sub string) int {
	return indexOf(b, 0, sub)
}
