//go:build debug

package debug

import (
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
)

// Enabled reports whether the binary was built with the "debug" tag.
const Enabled = true

var logger = log.New(os.Stdout, "|DEBUG| ", 0)

// Printf prints an advisory trace message. Only available when built
// with "-tags debug" -- otherwise it compiles to a no-op.
func Printf(f string, args ...interface{}) {
	logger.Printf(f, args...)
}

// Dump pretty-prints arbitrary parser state (arenas, cursors) using
// go-spew. Only available when built with "-tags debug".
func Dump(v ...interface{}) {
	spew.Dump(v...)
}
