package xhtmlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharClassNameStart(t *testing.T) {
	assert.True(t, isNameStart('a'))
	assert.True(t, isNameStart('Z'))
	assert.True(t, isNameStart('_'))
	assert.True(t, isNameStart(':'))
	assert.False(t, isNameStart('1'))
	assert.False(t, isNameStart('-'))
	assert.False(t, isNameStart(' '))
}

func TestCharClassNameCont(t *testing.T) {
	assert.True(t, isNameCont('a'))
	assert.True(t, isNameCont('1'))
	assert.True(t, isNameCont('-'))
	assert.True(t, isNameCont('.'))
	assert.False(t, isNameCont(' '))
	assert.False(t, isNameCont('<'))
}

func TestCharClassNonASCIIIsNameStartAndNameCont(t *testing.T) {
	assert.True(t, isNameCont(0xC3))
	assert.True(t, isNameStart(0xC3))
}

func TestCharClassWhitespace(t *testing.T) {
	for _, b := range []byte{' ', '\t', '\n', '\r'} {
		assert.True(t, isWhitespace(b))
	}
	assert.False(t, isWhitespace('a'))
}

func TestCharClassAttrStop(t *testing.T) {
	for _, b := range []byte{'"', '\'', '<', '&'} {
		assert.True(t, isAttrStop(b))
	}
	assert.False(t, isAttrStop('a'))
}

func TestCharClassPcdStop(t *testing.T) {
	for _, b := range []byte{'<', '&', '\r'} {
		assert.True(t, isPcdStop(b))
	}
	assert.False(t, isPcdStop('a'))
}
