package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/floatbits/format"
)

type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 frame codec.
//
// Returns:
//   - LZ4Codec: New LZ4 codec instance
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Type returns format.CompressionLZ4.
func (c LZ4Codec) Type() format.CompressionType {
	return format.CompressionLZ4
}

// NewReader returns an LZ4 frame reader over r.
//
// The frame header is validated on the first Read, so a non-LZ4 source is
// reported as a read error.
func (c LZ4Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

// NewWriter returns an LZ4 frame writer over w.
//
// Closing the writer emits the end mark of the frame.
func (c LZ4Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}
