// Package diag defines the diagnostic model shared by the checker and the
// output layer.
//
//   - Diagnostic is the central record: input name, 1-based line number,
//     severity, a stable rule code and a short message, plus the offending
//     line text for human-oriented rendering.
//   - Bag accumulates diagnostics for a run; Bag.HasErrors decides the
//     process exit code and only ever moves from false to true.
//   - Reporter decouples the rules from storage and formatting. BagReporter
//     collects, StreamReporter prints findings as they happen, MultiReporter
//     fans out to both.
//
// Package diag performs no IO decisions of its own and never formats
// anything; rendering lives in internal/diagfmt.
package diag
