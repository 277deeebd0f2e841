//go:build trimpcdata

package buildopts

const TrimPCData = true
