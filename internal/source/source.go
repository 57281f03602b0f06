package source

import (
	"bytes"
	"io"
	"os"
)

// StdinName is the display name used for standard input in diagnostics.
const StdinName = "<stdin>"

// Source is a single named input stream. It is read exactly once, front
// to back, by a Scanner, then closed.
type Source struct {
	Name string
	r    io.ReadCloser
}

// Open opens a file on disk. The path as given becomes the display name.
func Open(path string) (*Source, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Source{Name: path, r: f}, nil
}

// Stdin wraps the process standard input as a Source.
func Stdin() *Source {
	return &Source{Name: StdinName, r: io.NopCloser(os.Stdin)}
}

// FromBytes создаёт виртуальный источник (тест, сгенерированный ввод).
func FromBytes(name string, data []byte) *Source {
	return &Source{Name: name, r: io.NopCloser(bytes.NewReader(data))}
}

// Close releases the underlying stream.
func (s *Source) Close() error {
	return s.r.Close()
}
