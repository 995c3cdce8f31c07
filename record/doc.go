// Package record reads sequences of 32-bit float records from binary sources.
//
// A source is a headerless dump of consecutive 4-byte IEEE-754 single-precision
// values in the host's native byte order. Stream reads it front to back, yielding one
// Record per complete 4-byte chunk together with its zero-based position.
//
// # Trailing Bytes
//
// When the source length is not a multiple of 4, the final partial chunk is dropped
// without an error. This mirrors the behaviour of the tools that produced these
// dumps, where a short read simply ended the loop. The number of discarded bytes is
// reported in Summary.TrailingBytes for diagnostics; nothing else changes.
//
// # Basic Usage
//
//	s, err := record.Open("samples.bin")
//	if err != nil {
//	    if errors.Is(err, record.ErrSourceUnavailable) {
//	        // the file could not be opened
//	    }
//	    return err
//	}
//	defer s.Close()
//
//	for rec := range s.All() {
//	    fields := rec.Fields()
//	    fmt.Println(rec.Index, rec.Value, fields.Raw)
//	}
//	if err := s.Err(); err != nil {
//	    return err
//	}
//
// Sources are raw unless WithCompression names a codec or
// WithCompressionFromExtension is given, in which case .zst, .s2 and .lz4 files are
// decompressed on the fly.
//
// # Thread Safety
//
// A Stream is single-use and not safe for concurrent use. Records are plain values
// and may be shared freely once yielded.
package record
