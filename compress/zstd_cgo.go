//go:build cgo && gozstd

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// NewReader returns a cgo-backed Zstandard stream reader over r.
func (c ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReader{reader: gozstd.NewReader(r)}, nil
}

// NewWriter returns a cgo-backed Zstandard stream writer over w.
func (c ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return &gozstdWriter{writer: gozstd.NewWriter(w)}, nil
}

type gozstdReader struct {
	reader *gozstd.Reader
}

func (r *gozstdReader) Read(p []byte) (int, error) {
	if r.reader == nil {
		return 0, errZstdClosed
	}

	return r.reader.Read(p)
}

func (r *gozstdReader) Close() error {
	if r.reader == nil {
		return nil
	}

	r.reader.Release()
	r.reader = nil

	return nil
}

type gozstdWriter struct {
	writer *gozstd.Writer
}

func (w *gozstdWriter) Write(p []byte) (int, error) {
	if w.writer == nil {
		return 0, errZstdClosed
	}

	return w.writer.Write(p)
}

func (w *gozstdWriter) Close() error {
	if w.writer == nil {
		return nil
	}

	err := w.writer.Close()
	w.writer.Release()
	w.writer = nil

	return err
}
