//go:build attridx16 && attridx64

package xhtmlparser

// This file exists purely to fail the build: "attridx16" and
// "attridx64" are mutually exclusive attribute-index-width choices.
const _ uint = 0 - 1 // constant underflow: deliberate build failure
