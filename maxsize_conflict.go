//go:build maxsize64kib && maxsizefull

package xhtmlparser

// This file exists purely to fail the build: "maxsize64kib" and
// "maxsizefull" are mutually exclusive maximum-input-size choices.
const _ uint = 0 - 1 // constant underflow: deliberate build failure
