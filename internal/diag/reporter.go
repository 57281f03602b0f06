package diag

import "io"

// Reporter — минимальный контракт получения диагностик от проверок.
// Реализации: BagReporter (кладёт в Bag), StreamReporter (печатает сразу),
// MultiReporter (fan-out).
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// StreamReporter renders every diagnostic the moment it is reported.
// The render function is injected so this package stays free of
// formatting concerns (rendering lives in internal/diagfmt).
type StreamReporter struct {
	W      io.Writer
	Render func(io.Writer, Diagnostic)
}

func (r StreamReporter) Report(d Diagnostic) {
	if r.W == nil || r.Render == nil {
		return
	}
	r.Render(r.W, d)
}

// MultiReporter fans a diagnostic out to every child in order.
type MultiReporter []Reporter

func (r MultiReporter) Report(d Diagnostic) {
	for _, child := range r {
		if child != nil {
			child.Report(d)
		}
	}
}
