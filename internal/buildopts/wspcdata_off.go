//go:build !keepwspcdata

package buildopts

// KeepWSOnlyPCData controls whether whitespace-only text nodes that
// follow the root's opening tag are emitted. Disabled by default;
// build with the "keepwspcdata" tag to keep them.
const KeepWSOnlyPCData = false
