//go:build keepwspcdata

package buildopts

const KeepWSOnlyPCData = true
