package diagfmt

import (
	"strings"
	"testing"

	"tidy/internal/diag"
)

func TestPlainFormatIsExact(t *testing.T) {
	var buf strings.Builder
	Plain(&buf, diag.Diagnostic{
		Source:   "foo.txt",
		Line:     1,
		Severity: diag.SevError,
		Code:     diag.StyleTab,
		Message:  "tab character",
	})

	if got, want := buf.String(), "foo.txt:1: tab character\n"; got != want {
		t.Errorf("Plain = %q, want %q", got, want)
	}
}

func TestPlainAllKeepsOrder(t *testing.T) {
	bag := diag.NewBag()
	bag.Add(diag.Diagnostic{Source: "foo.txt", Line: 1, Severity: diag.SevError, Code: diag.StyleTab, Message: "tab character"})
	bag.Add(diag.Diagnostic{Source: "foo.txt", Line: 1, Severity: diag.SevError, Code: diag.StyleLineLength, Message: "line longer than 78 chars"})

	var buf strings.Builder
	PlainAll(&buf, bag)

	want := "foo.txt:1: tab character\nfoo.txt:1: line longer than 78 chars\n"
	if buf.String() != want {
		t.Errorf("PlainAll = %q, want %q", buf.String(), want)
	}
}
