package replay

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open opens a comment log. Gzip and zstd files are detected by their
// magic bytes and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening comment log: %w", err)
	}
	rc, err := newReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	rc.closers = append(rc.closers, f.Close)
	return rc, nil
}

// NewReader wraps r with the decompressor its leading bytes call for.
// Closing the result does not close r.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	rc, err := newReader(r)
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func newReader(r io.Reader) (*readCloser, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("reading comment log header: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("create gzip decoder: %w", err)
		}
		return &readCloser{Reader: zr, closers: []func() error{zr.Close}}, nil
	case bytes.HasPrefix(head, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		return &readCloser{Reader: dec, closers: []func() error{func() error { dec.Close(); return nil }}}, nil
	default:
		return &readCloser{Reader: br}, nil
	}
}
