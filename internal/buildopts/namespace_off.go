//go:build nonsremoval

package buildopts

const NamespaceRemoval = false
