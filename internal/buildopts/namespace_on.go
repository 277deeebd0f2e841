//go:build !nonsremoval

package buildopts

// NamespaceRemoval strips the prefix up to and including the first ':'
// from element and attribute names. Enabled by default; build with the
// "nonsremoval" tag to keep prefixes verbatim.
const NamespaceRemoval = true
