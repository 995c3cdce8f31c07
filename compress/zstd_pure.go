//go:build !(cgo && gozstd)

package compress

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders for reuse.
// The klauspost/compress/zstd decoder is designed to operate without allocations
// after a warmup, so keeping decoders around pays off across files.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // records are consumed sequentially
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// zstdEncoderPool pools zstd encoders for reuse.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderConcurrency(1),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// NewReader returns a Zstandard stream reader over r using a pooled decoder.
//
// The decoder goes back to the pool on Close.
func (c ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	if err := decoder.Reset(r); err != nil {
		zstdDecoderPool.Put(decoder)
		return nil, fmt.Errorf("zstd reader: %w", err)
	}

	return &zstdReader{decoder: decoder}, nil
}

// NewWriter returns a Zstandard stream writer over w using a pooled encoder.
//
// Close writes the final frame and returns the encoder to the pool.
func (c ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	encoder.Reset(w)

	return &zstdWriter{encoder: encoder}, nil
}

type zstdReader struct {
	decoder *zstd.Decoder
}

func (z *zstdReader) Read(p []byte) (int, error) {
	if z.decoder == nil {
		return 0, errZstdClosed
	}

	n, err := z.decoder.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return n, err
}

func (z *zstdReader) Close() error {
	if z.decoder == nil {
		return nil
	}

	// drop the reference to the source before pooling
	_ = z.decoder.Reset(nil)
	zstdDecoderPool.Put(z.decoder)
	z.decoder = nil

	return nil
}

type zstdWriter struct {
	encoder *zstd.Encoder
}

func (z *zstdWriter) Write(p []byte) (int, error) {
	if z.encoder == nil {
		return 0, errZstdClosed
	}

	return z.encoder.Write(p)
}

func (z *zstdWriter) Close() error {
	if z.encoder == nil {
		return nil
	}

	err := z.encoder.Close()
	zstdEncoderPool.Put(z.encoder)
	z.encoder = nil

	return err
}
