package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Line is one raw line of a Source. Text keeps its terminator (\n or
// \r\n); only a final unterminated line lacks one.
type Line struct {
	Num  uint32 // 1-based within the source
	Text string
}

// Scanner yields the lines of a Source in order. It is a forward-only,
// single-pass iterator buffering one line at a time: once Next returns
// false the scanner cannot be rewound or reused.
type Scanner struct {
	src   *Source
	r     *bufio.Reader
	count int
	cur   Line
	err   error
	done  bool
}

func NewScanner(src *Source) *Scanner {
	return &Scanner{src: src, r: bufio.NewReader(src.r)}
}

// Next advances to the next line, returning false on exhaustion or on a
// fatal error. Callers must check Err after the loop: a read failure or
// invalid UTF-8 aborts the scan, there is no partial recovery.
func (sc *Scanner) Next() bool {
	if sc.done {
		return false
	}

	text, err := sc.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		sc.done = true
		sc.err = fmt.Errorf("failed to read %s: %w", sc.src.Name, err)
		return false
	}
	if text == "" {
		// EOF прямо на границе строки: последняя строка уже выдана.
		sc.done = true
		return false
	}

	sc.count++
	if !utf8.ValidString(text) {
		sc.done = true
		sc.err = fmt.Errorf("%s: line %d: invalid UTF-8", sc.src.Name, sc.count)
		return false
	}

	num, convErr := safecast.Conv[uint32](sc.count)
	if convErr != nil {
		sc.done = true
		sc.err = fmt.Errorf("%s: line counter overflow: %w", sc.src.Name, convErr)
		return false
	}

	sc.cur = Line{Num: num, Text: text}
	if errors.Is(err, io.EOF) {
		// Последняя строка без терминатора: выдаём её, следующий Next вернёт false.
		sc.done = true
	}
	return true
}

// Line returns the line produced by the last successful Next.
func (sc *Scanner) Line() Line {
	return sc.cur
}

// Err returns the fatal error that stopped the scan, if any.
func (sc *Scanner) Err() error {
	return sc.err
}
