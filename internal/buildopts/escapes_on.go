//go:build !noescapes

package buildopts

// ParseEscapes expands "&...;" entity references in attribute values
// and PCData. Enabled by default; build with the "noescapes" tag to
// leave entity text untouched.
const ParseEscapes = true
