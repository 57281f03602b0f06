package diagfmt

import (
	"encoding/json"
	"io"
	"strings"

	"tidy/internal/diag"
)

// DiagnosticJSON представляет одну диагностику для JSON
type DiagnosticJSON struct {
	Source   string `json:"source"`
	Line     uint32 `json:"line"`
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// DiagnosticsOutput — корневой объект JSON-вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Errors      int              `json:"errors"`
}

// BuildDiagnosticsOutput converts a bag into the serializable form,
// preserving report order.
func BuildDiagnosticsOutput(bag *diag.Bag) DiagnosticsOutput {
	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, bag.Len()),
	}
	for _, d := range bag.Items() {
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			Source:   d.Source,
			Line:     d.Line,
			Severity: strings.ToLower(d.Severity.String()),
			Code:     d.Code.ID(),
			Message:  d.Message,
		})
		if d.Severity >= diag.SevError {
			out.Errors++
		}
	}
	return out
}

// JSON encodes the bag onto w with indentation.
func JSON(w io.Writer, bag *diag.Bag) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag))
}
