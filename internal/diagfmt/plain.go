package diagfmt

import (
	"fmt"
	"io"

	"tidy/internal/diag"
)

// Plain writes one diagnostic in the fixed machine-oriented format:
//
//	<source>:<line>: <message>
//
// This format is stable; scripts parse it.
func Plain(w io.Writer, d diag.Diagnostic) {
	fmt.Fprintf(w, "%s:%d: %s\n", d.Source, d.Line, d.Message)
}

// PlainAll renders a whole bag in report order.
func PlainAll(w io.Writer, bag *diag.Bag) {
	for _, d := range bag.Items() {
		Plain(w, d)
	}
}
