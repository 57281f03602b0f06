package diagfmt

import (
	"strings"
	"testing"

	"tidy/internal/diag"
)

func prettyOne(d diag.Diagnostic, maxCols int) string {
	bag := diag.NewBag()
	bag.Add(d)
	var buf strings.Builder
	Pretty(&buf, bag, PrettyOpts{Color: false, MaxCols: maxCols})
	return buf.String()
}

func TestPrettyHeaderAndExcerpt(t *testing.T) {
	out := prettyOne(diag.Diagnostic{
		Source:   "foo.txt",
		Line:     3,
		Severity: diag.SevError,
		Code:     diag.StyleTab,
		Message:  "tab character",
		Excerpt:  "a\tb",
	}, 78)

	if !strings.Contains(out, "foo.txt:3: error[T0001]: tab character\n") {
		t.Errorf("missing header in:\n%s", out)
	}
	if !strings.Contains(out, "   3 | a\tb\n") {
		t.Errorf("missing excerpt gutter in:\n%s", out)
	}
}

func TestPrettyCaretUnderTab(t *testing.T) {
	out := prettyOne(diag.Diagnostic{
		Source:  "foo.txt",
		Line:    1,
		Code:    diag.StyleTab,
		Message: "tab character",
		Excerpt: "ab\tc",
	}, 78)

	// Caret sits two display columns in, right under the tab.
	if !strings.Contains(out, "     |   ^\n") {
		t.Errorf("caret misplaced in:\n%q", out)
	}
}

func TestPrettyCaretAccountsForWideRunes(t *testing.T) {
	// Two CJK runes occupy four display columns before the tab.
	out := prettyOne(diag.Diagnostic{
		Source:  "foo.txt",
		Line:    1,
		Code:    diag.StyleTab,
		Message: "tab character",
		Excerpt: "日本\tx",
	}, 78)

	if !strings.Contains(out, "     |     ^\n") {
		t.Errorf("caret not shifted past wide runes in:\n%q", out)
	}
}

func TestPrettyCaretAtColumnLimit(t *testing.T) {
	out := prettyOne(diag.Diagnostic{
		Source:  "foo.txt",
		Line:    1,
		Code:    diag.StyleLineLength,
		Message: "line longer than 10 chars",
		Excerpt: "0123456789AB",
	}, 10)

	if !strings.Contains(out, "     | "+strings.Repeat(" ", 10)+"^\n") {
		t.Errorf("caret not at the column limit in:\n%q", out)
	}
}

func TestPrettyNoCaretWhenUnlocatable(t *testing.T) {
	// The CR lived in the trimmed terminator, so there is nothing to
	// point at; only header and excerpt are printed.
	out := prettyOne(diag.Diagnostic{
		Source:  "foo.txt",
		Line:    2,
		Code:    diag.StyleCR,
		Message: "CR character",
		Excerpt: "plain text",
	}, 78)

	if strings.Contains(out, "^") {
		t.Errorf("unexpected caret in:\n%q", out)
	}
	if !strings.Contains(out, "foo.txt:2: error[T0002]: CR character\n") {
		t.Errorf("missing header in:\n%q", out)
	}
}
