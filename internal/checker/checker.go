// Package checker applies the line style rules: no tab characters outside
// Makefiles, no CR characters outside CRLF checkouts, and a column limit
// on line length. Rules never abort a scan; they only report.
package checker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"tidy/internal/diag"
	"tidy/internal/source"
)

// DefaultMaxCols is the column limit applied when none is configured.
const DefaultMaxCols = 78

// Config carries the per-run settings. It is resolved once at startup
// and never mutated afterwards.
type Config struct {
	// AutoCRLF mirrors git's core.autocrlf: when set, every line ends in
	// CRLF on checkout, so the CR rule is skipped entirely and the line
	// terminator counts as two characters.
	AutoCRLF bool

	// MaxCols is the effective-length limit, terminator excluded.
	MaxCols int
}

// Checker runs the rules over sources and hands findings to a Reporter.
type Checker struct {
	cfg Config
	rep diag.Reporter
}

func New(cfg Config, rep diag.Reporter) *Checker {
	if cfg.MaxCols <= 0 {
		cfg.MaxCols = DefaultMaxCols
	}
	return &Checker{cfg: cfg, rep: rep}
}

// CheckSource scans src line by line and reports every violation found.
// A non-nil error is fatal (unreadable stream, invalid UTF-8) and aborts
// the whole run; style violations never produce an error.
func (c *Checker) CheckSource(src *source.Source) error {
	sc := source.NewScanner(src)
	for sc.Next() {
		line := sc.Line()
		c.CheckLine(src.Name, line.Num, line.Text)
	}
	return sc.Err()
}

// CheckLine applies the rules to one raw line, terminator included, in
// fixed order: tab, CR, length. A line can trigger several rules; each
// triggered rule reports exactly once.
func (c *Checker) CheckLine(name string, num uint32, raw string) {
	// Makefiles require tab indentation, so any path containing
	// "Makefile" is exempt from the tab rule.
	if strings.ContainsRune(raw, '\t') && !strings.Contains(name, "Makefile") {
		c.report(name, num, raw, diag.StyleTab, "tab character")
	}

	if !c.cfg.AutoCRLF && strings.ContainsRune(raw, '\r') {
		c.report(name, num, raw, diag.StyleCR, "CR character")
	}

	if c.effectiveLen(raw) > c.cfg.MaxCols {
		c.report(name, num, raw, diag.StyleLineLength,
			fmt.Sprintf("line longer than %d chars", c.cfg.MaxCols))
	}
}

// effectiveLen is the rune count of the raw line minus its terminator:
// two characters on CRLF checkouts, one otherwise.
func (c *Checker) effectiveLen(raw string) int {
	n := utf8.RuneCountInString(raw)
	if c.cfg.AutoCRLF {
		return n - 2
	}
	return n - 1
}

func (c *Checker) report(name string, num uint32, raw string, code diag.Code, msg string) {
	c.rep.Report(diag.Diagnostic{
		Source:   name,
		Line:     num,
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Excerpt:  strings.TrimRight(raw, "\r\n"),
	})
}
