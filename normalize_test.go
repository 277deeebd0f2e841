package xhtmlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAttrValueCollapsesWhitespace(t *testing.T) {
	buf := []byte(`  foo		bar  "`)
	sr, end, err := normalizeAttrValue(buf, 0, '"')
	require.NoError(t, err)
	assert.Equal(t, "foo bar", sr.str(buf))
	assert.Equal(t, len(buf)-1, end)
}

func TestNormalizeAttrValueRejectsBareLt(t *testing.T) {
	buf := []byte(`a<b"`)
	_, _, err := normalizeAttrValue(buf, 0, '"')
	assert.Equal(t, ErrInvalidChar, kindOf(err))
}

func TestNormalizeAttrValueUnterminated(t *testing.T) {
	buf := []byte(`abc`)
	_, _, err := normalizeAttrValue(buf, 0, '"')
	assert.Equal(t, ErrUnterminatedAttributeValue, kindOf(err))
}

func TestNormalizeAttrValueLiteralOppositeQuoteIsOrdinaryContent(t *testing.T) {
	buf := []byte(`it's fine"`)
	sr, end, err := normalizeAttrValue(buf, 0, '"')
	require.NoError(t, err)
	assert.Equal(t, "it's fine", sr.str(buf))
	assert.Equal(t, len(buf)-1, end)
}

func TestNormalizeAttrValueExpandsEntities(t *testing.T) {
	buf := []byte(`a &amp; b"`)
	sr, _, err := normalizeAttrValue(buf, 0, '"')
	require.NoError(t, err)
	assert.Equal(t, "a & b", sr.str(buf))
}

func TestNormalizePCDataCRLF(t *testing.T) {
	buf := []byte("line1\r\nline2\rline3<")
	sr, end, err := normalizePCData(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\nline3", sr.str(buf))
	assert.Equal(t, len(buf)-1, end)
}

func TestNormalizePCDataUnexpectedEOF(t *testing.T) {
	buf := []byte("no closing tag here")
	_, _, err := normalizePCData(buf, 0)
	assert.Equal(t, ErrUnexpectedEof, kindOf(err))
}

func TestIsWhitespaceOnly(t *testing.T) {
	buf := []byte("   \t\n  x")
	ws := stringRange{start: 0, end: 6}
	assert.True(t, isWhitespaceOnly(buf, ws))

	notWs := stringRange{start: 0, end: 8}
	assert.False(t, isWhitespaceOnly(buf, notWs))
}
