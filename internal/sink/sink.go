// Package sink provides the destinations a rendered document is written to.
package sink

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink receives the bytes of one document. Commit makes the written bytes
// visible at the destination; Discard drops them. Exactly one of the two is
// called once writing is over.
type Sink interface {
	io.Writer
	Commit() error
	Discard() error
}

// Memory keeps the document in a buffer, e.g. for an HTTP response.
type Memory struct {
	buf bytes.Buffer
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Write(p []byte) (int, error) { return m.buf.Write(p) }
func (m *Memory) Commit() error               { return nil }

func (m *Memory) Discard() error {
	m.buf.Reset()
	return nil
}

// Bytes returns the committed document.
func (m *Memory) Bytes() []byte { return m.buf.Bytes() }

func (m *Memory) Len() int { return m.buf.Len() }

// File writes to a temporary file next to Path and renames it into place on
// Commit, so an existing file is never left half written.
type File struct {
	Path string
	tmp  *os.File
}

// NewFile prepares a file sink. It fails right away when the destination
// directory is not writable.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("sink: empty output path")
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}
	return &File{Path: path, tmp: tmp}, nil
}

func (f *File) Write(p []byte) (int, error) {
	if f.tmp == nil {
		return 0, os.ErrClosed
	}
	return f.tmp.Write(p)
}

func (f *File) Commit() error {
	if f.tmp == nil {
		return os.ErrClosed
	}
	tmp := f.tmp
	f.tmp = nil

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close output %s: %w", f.Path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("chmod output %s: %w", f.Path, err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("save output %s: %w", f.Path, err)
	}
	return nil
}

func (f *File) Discard() error {
	if f.tmp == nil {
		return nil
	}
	tmp := f.tmp
	f.tmp = nil
	_ = tmp.Close()
	if err := os.Remove(tmp.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
