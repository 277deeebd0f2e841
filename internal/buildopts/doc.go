// Package buildopts collects the parser's compile-time feature toggles.
//
// There is no runtime options struct: every toggle here is a constant
// whose value is pinned by which file in this package the build tags
// select, mirroring the way lestrrat-go/helium gates its internal/debug
// package on the "debug" build tag. Toggles that change tree layout
// (string-range encoding, arena index width, forward-only navigation)
// live in the parent package instead, since Go requires the differing
// type declarations to sit where the types are used.
package buildopts
