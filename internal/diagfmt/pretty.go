package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tidy/internal/diag"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждой печатает:
//
//	<source>:<line>: error[<code>]: <message>
//	  <line> | <excerpt>
//	         | <caret>
//
// Caret alignment is computed in display columns so wide runes do not
// shift it.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	header := color.New(color.FgRed, color.Bold)
	gutter := color.New(color.FgCyan)
	caret := color.New(color.FgYellow, color.Bold)
	if !opts.Color {
		header.DisableColor()
		gutter.DisableColor()
		caret.DisableColor()
	}

	for _, d := range bag.Items() {
		header.Fprintf(w, "%s:%d: error[%s]:", d.Source, d.Line, d.Code.ID())
		fmt.Fprintf(w, " %s\n", d.Message)

		lineLabel := fmt.Sprintf("%4d", d.Line)
		gutter.Fprintf(w, "%s | ", lineLabel)
		fmt.Fprintln(w, d.Excerpt)

		if pad, ok := caretPad(d, opts.MaxCols); ok {
			gutter.Fprintf(w, "%s | ", strings.Repeat(" ", len(lineLabel)))
			caret.Fprintf(w, "%s^\n", strings.Repeat(" ", pad))
		}
	}
}

// caretPad returns the display-column offset of the character the rule
// fired on, or false when it cannot be located in the excerpt (e.g. the
// CR was part of the trimmed terminator).
func caretPad(d diag.Diagnostic, maxCols int) (int, bool) {
	switch d.Code {
	case diag.StyleTab:
		if i := strings.IndexByte(d.Excerpt, '\t'); i >= 0 {
			return runewidth.StringWidth(d.Excerpt[:i]), true
		}
	case diag.StyleCR:
		if i := strings.IndexByte(d.Excerpt, '\r'); i >= 0 {
			return runewidth.StringWidth(d.Excerpt[:i]), true
		}
	case diag.StyleLineLength:
		runes := []rune(d.Excerpt)
		if maxCols > 0 && len(runes) > maxCols {
			return runewidth.StringWidth(string(runes[:maxCols])), true
		}
	}
	return 0, false
}
