//go:build !debug

package debug

// Enabled reports whether the binary was built with the "debug" tag.
const Enabled = false

// Printf is a no-op unless built with "-tags debug".
func Printf(f string, args ...interface{}) {}

// Dump is a no-op unless built with "-tags debug".
func Dump(v ...interface{}) {}
