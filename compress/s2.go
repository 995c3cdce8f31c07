package compress

import (
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/floatbits/format"
)

type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 stream codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Type returns format.CompressionS2.
func (c S2Codec) Type() format.CompressionType {
	return format.CompressionS2
}

// NewReader returns an S2 stream reader over r.
func (c S2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}

// NewWriter returns an S2 stream writer over w.
func (c S2Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w), nil
}
