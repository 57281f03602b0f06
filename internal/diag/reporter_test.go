package diag

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestBagReporterNilBagDoesNotPanic(t *testing.T) {
	var r BagReporter
	r.Report(Diagnostic{Source: "a.txt", Line: 1, Severity: SevError, Code: StyleTab})
}

func TestStreamReporterRendersImmediately(t *testing.T) {
	var buf strings.Builder
	r := StreamReporter{
		W: &buf,
		Render: func(w io.Writer, d Diagnostic) {
			fmt.Fprintf(w, "%s:%d: %s\n", d.Source, d.Line, d.Message)
		},
	}

	r.Report(Diagnostic{Source: "foo.txt", Line: 3, Severity: SevError, Code: StyleCR, Message: "CR character"})
	if got, want := buf.String(), "foo.txt:3: CR character\n"; got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestMultiReporterFansOut(t *testing.T) {
	first := NewBag()
	second := NewBag()
	var r Reporter = MultiReporter{
		BagReporter{Bag: first},
		nil, // holes must be skipped, not crash
		BagReporter{Bag: second},
	}

	r.Report(Diagnostic{Source: "a.txt", Line: 1, Severity: SevError, Code: StyleTab, Message: "tab character"})

	if first.Len() != 1 || second.Len() != 1 {
		t.Fatalf("fan-out delivered %d/%d diagnostics, want 1/1", first.Len(), second.Len())
	}
}
