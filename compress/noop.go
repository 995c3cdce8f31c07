package compress

import (
	"io"

	"github.com/arloliu/floatbits/format"
)

// NoOpCodec passes bytes through without any processing.
//
// It is the codec used for plain, uncompressed record files.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Type returns format.CompressionNone.
func (c NoOpCodec) Type() format.CompressionType {
	return format.CompressionNone
}

// NewReader returns r unchanged, with a Close that does nothing.
func (c NoOpCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

// NewWriter returns w unchanged, with a Close that does nothing.
func (c NoOpCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
