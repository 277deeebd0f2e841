//go:build trimpcdata

package xhtmlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePCDataTrimmedUnderTrimpcdata(t *testing.T) {
	doc, err := Parse([]byte("<p>  hello world  </p>"))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)

	children := root.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "hello world", children[0].Text())
}
