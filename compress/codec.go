package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/arloliu/floatbits/format"
)

// Compressor wraps a destination writer with a compressing stream.
type Compressor interface {
	// NewWriter returns a writer that compresses everything written to it into w.
	//
	// The caller must Close the returned writer to flush the final frame. Closing it
	// does not close w.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// Decompressor wraps a compressed source reader with a decompressing stream.
type Decompressor interface {
	// NewReader returns a reader yielding the decompressed content of r.
	//
	// Corrupted input surfaces as an error from Read, not from NewReader, for all
	// codecs except where the format header is validated eagerly. Closing the
	// returned reader does not close r.
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor

	// Type reports the compression algorithm implemented by the codec.
	Type() format.CompressionType
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// Compress runs data through c's stream and returns the complete compressed output.
func Compress(c Compressor, data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := c.NewWriter(&buf)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		return nil, multierror.Append(err, w.Close())
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress inflates a complete compressed payload produced by the matching Compressor.
func Decompress(d Decompressor, data []byte) ([]byte, error) {
	r, err := d.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	out, err := io.ReadAll(r)
	if closeErr := r.Close(); closeErr != nil {
		err = multierror.Append(err, closeErr)
	}

	if err != nil {
		return nil, err
	}

	return out, nil
}
