// Package compress provides streaming compression codecs for record files and CSV exports.
//
// Float record dumps are often archived compressed. Rather than inflating a whole file
// into memory, each codec wraps an io.Reader or io.Writer so records can be read and
// exported sequentially, exactly as with an uncompressed file.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    NewWriter(w io.Writer) (io.WriteCloser, error)
//	}
//
//	type Decompressor interface {
//	    NewReader(r io.Reader) (io.ReadCloser, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	    Type() format.CompressionType
//	}
//
// Closing a writer flushes and terminates the compressed stream; it never closes the
// underlying writer. Closing a reader releases decoder resources; it never closes the
// underlying reader.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): bytes pass through unchanged.
//   - Zstd (format.CompressionZstd): Zstandard frames. The pure Go implementation from
//     klauspost/compress is used by default; building with the "gozstd" tag on a cgo
//     toolchain switches to valyala/gozstd.
//   - S2 (format.CompressionS2): S2 framed stream from klauspost/compress.
//   - LZ4 (format.CompressionLZ4): LZ4 frame format from pierrec/lz4.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionFromPath(path))
//	if err != nil {
//	    return err
//	}
//	r, err := codec.NewReader(file)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
// # Thread Safety
//
// Codecs are stateless and can be shared across goroutines. The readers and writers
// they return are not safe for concurrent use.
package compress
