//go:build !trimpcdata

package buildopts

// TrimPCData controls whether leading/trailing whitespace is trimmed
// from the final text of a PCData node. Disabled by default; build
// with the "trimpcdata" tag to enable trimming.
const TrimPCData = false
