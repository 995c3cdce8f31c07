package compress

import (
	"errors"

	"github.com/arloliu/floatbits/format"
)

// ZstdCodec provides Zstandard stream compression.
//
// Zstd gives the best ratio of the built-in codecs and is the usual choice for
// archived record dumps. The implementation is selected at build time: pure Go by
// default, cgo-backed gozstd with the "gozstd" build tag.
type ZstdCodec struct{}

var errZstdClosed = errors.New("zstd stream already closed")

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
//
// Example:
//
//	codec := NewZstdCodec()
//	w, err := codec.NewWriter(file)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Type returns format.CompressionZstd.
func (c ZstdCodec) Type() format.CompressionType {
	return format.CompressionZstd
}
