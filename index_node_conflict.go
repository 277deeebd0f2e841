//go:build nodeidx16 && nodeidx64

package xhtmlparser

// This file exists purely to fail the build: "nodeidx16" and
// "nodeidx64" are mutually exclusive node-index-width choices.
const _ uint = 0 - 1 // constant underflow: deliberate build failure
