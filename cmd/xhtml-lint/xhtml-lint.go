// Command xhtml-lint parses the XML/XHTML files named on its command
// line (or stdin, if none are named) and dumps the resulting tree to
// stdout. It exists to exercise the public Document/Node surface from
// outside the package, the way lestrrat-go/helium's helium-lint does
// for that library -- it is a thin external collaborator, not part of
// the parser itself.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	xhtmlparser "github.com/turgu1/xhtml-parser"
)

type cmdopts struct {
	Version bool `long:"version" description:"print the parser version and exit"`
}

// Version is the module's advertised version string, reported by
// --version. There is no build-generated version stamp in this repo,
// so it is just a constant.
const Version = "0.1.0"

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("xhtml-lint: using xhtml-parser version %s\n", Version)
}

func showUsage() {
	fmt.Printf(`Usage: xhtml-lint [options] file ...
	Parse the named XML/XHTML files (or stdin) and dump the tree.
	--version : print the parser version
`)
}

func _main() int {
	var opts cmdopts
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	inputCh := make(chan io.Reader)
	errCh := make(chan error, 1)

	switch {
	case len(args) > 0:
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- fh
			}
		}()
	case !isTerminal(os.Stdin):
		go func() {
			defer close(inputCh)
			inputCh <- os.Stdin
		}()
	default:
		showUsage()
		return 1
	}

	for in := range inputCh {
		buf, err := io.ReadAll(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		doc, err := xhtmlparser.Parse(buf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		dumpDoc(os.Stdout, doc)
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	default:
	}

	return 0
}

// isTerminal reports whether f is an interactive terminal, so stdin
// is only read from when the caller piped something in.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// dumpDoc writes a minimal indented rendering of doc's tree: element
// names and attributes as opening tags, PCData as quoted text. It is
// deliberately not a faithful XML serializer -- the parser has no
// serialization operation (§1's non-goals) -- just enough to let a
// human eyeball what got parsed.
func dumpDoc(out io.Writer, doc *xhtmlparser.Document) {
	root, err := doc.Root()
	if err != nil {
		fmt.Fprintf(out, "(no root: %s)\n", err)
		return
	}
	dumpNode(out, root, 0)
}

func dumpNode(out io.Writer, n xhtmlparser.Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	switch n.Type() {
	case xhtmlparser.PCDataNode:
		fmt.Fprintf(out, "%s%q\n", indent, n.Text())
		return
	case xhtmlparser.ElementNode:
		fmt.Fprintf(out, "%s<%s", indent, n.Name())
		n.EachAttribute(func(a xhtmlparser.Attribute) bool {
			fmt.Fprintf(out, " %s=%q", a.Name(), a.Value())
			return true
		})
		fmt.Fprint(out, ">\n")
		n.EachChild(func(c xhtmlparser.Node) bool {
			dumpNode(out, c, depth+1)
			return true
		})
		fmt.Fprintf(out, "%s</%s>\n", indent, n.Name())
	}
}
