package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/arloliu/floatbits/compress"
	"github.com/arloliu/floatbits/endian"
	"github.com/arloliu/floatbits/format"
	"github.com/arloliu/floatbits/internal/hash"
	"github.com/arloliu/floatbits/internal/logging"
	"github.com/arloliu/floatbits/internal/options"
)

// ErrSourceUnavailable reports that a source could not be opened at all.
var ErrSourceUnavailable = errors.New("source unavailable")

const readBufferSize = 64 * 1024

// Stream reads float32 records sequentially from a single source.
//
// A Stream is finite and single-pass: All may be ranged over once, and a second
// call yields nothing. Close releases the source and must be called on every path;
// it is safe to call more than once.
type Stream struct {
	src     io.Reader
	closers []io.Closer

	engine         endian.EndianEngine
	compression       format.CompressionType
	detectCompression bool
	logger            *zap.Logger
	name              string

	digest   *hash.Digest
	summary  Summary
	err      error
	consumed bool
	closed   bool
}

func newStream(opts ...StreamOption) (*Stream, error) {
	s := &Stream{
		engine:      endian.GetNativeEngine(),
		compression: format.CompressionNone,
		logger:      logging.Logger(),
		digest:      hash.NewDigest(),
	}

	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// NewStream creates a Stream over r.
//
// The caller keeps ownership of r: Close releases decoder resources but does not
// close r. Data is treated as uncompressed unless WithCompression says otherwise.
//
// Parameters:
//   - r: Source of record bytes, read from its current position
//   - opts: Stream options
//
// Returns:
//   - *Stream: Stream positioned at the first record
//   - error: Invalid option or decoder setup failure
func NewStream(r io.Reader, opts ...StreamOption) (*Stream, error) {
	s, err := newStream(opts...)
	if err != nil {
		return nil, err
	}

	if err := s.attach(r); err != nil {
		return nil, err
	}

	return s, nil
}

// Open opens the file at path and creates a Stream over it.
//
// The file is read as a raw dump whatever its name. WithCompression selects a codec
// and WithCompressionFromExtension infers one from the file extension. If the file
// cannot be opened, or is a directory, the returned error wraps ErrSourceUnavailable
// and no Stream is returned.
//
// Parameters:
//   - path: File to read
//   - opts: Stream options
//
// Returns:
//   - *Stream: Stream owning the opened file
//   - error: ErrSourceUnavailable, an invalid option or decoder setup failure
func Open(path string, opts ...StreamOption) (*Stream, error) {
	s, err := newStream(append([]StreamOption{WithName(path)}, opts...)...)
	if err != nil {
		return nil, err
	}

	if s.detectCompression {
		s.compression = format.CompressionFromPath(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	if info, statErr := f.Stat(); statErr != nil || info.IsDir() {
		_ = f.Close()
		if statErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, statErr)
		}

		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceUnavailable, path)
	}

	if err := s.attach(bufio.NewReaderSize(f, readBufferSize)); err != nil {
		return nil, multierror.Append(err, f.Close())
	}
	s.closers = append(s.closers, f)

	return s, nil
}

func (s *Stream) attach(r io.Reader) error {
	codec, err := compress.CreateCodec(s.compression, "source")
	if err != nil {
		return err
	}

	dr, err := codec.NewReader(r)
	if err != nil {
		return fmt.Errorf("open %s decoder: %w", s.compression, err)
	}

	s.src = dr
	s.closers = append(s.closers, dr)

	s.logger.Debug("source opened",
		zap.String("source", s.name),
		zap.Stringer("compression", s.compression))

	return nil
}

// All returns an iterator over the source's records in order.
//
// Iteration ends at end of input. A trailing chunk shorter than RecordSize ends it
// silently. Any other read failure ends it early and is reported by Err. Breaking
// out of the loop leaves the remaining records unread; they cannot be resumed.
//
// Returns:
//   - iter.Seq[Record]: Single-use iterator; later calls yield nothing
func (s *Stream) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		if s.consumed || s.closed {
			return
		}
		s.consumed = true

		var chunk [RecordSize]byte
		for {
			n, err := io.ReadFull(s.src, chunk[:])
			if err != nil {
				s.endOfInput(n, err)
				return
			}

			_, _ = s.digest.Write(chunk[:])

			rec := Record{
				Index: s.summary.Records,
				Value: endian.Float32(s.engine, chunk[:]),
			}
			s.summary.Records++
			s.summary.Bytes += RecordSize

			if !yield(rec) {
				return
			}
		}
	}
}

func (s *Stream) endOfInput(n int, err error) {
	switch {
	case errors.Is(err, io.EOF):
	case errors.Is(err, io.ErrUnexpectedEOF):
		s.summary.TrailingBytes = n
		s.logger.Debug("partial trailing record discarded",
			zap.String("source", s.name),
			zap.Int("trailing_bytes", n))
	default:
		s.err = fmt.Errorf("read record %d: %w", s.summary.Records, err)
	}

	s.logger.Debug("source exhausted",
		zap.String("source", s.name),
		zap.Int("records", s.summary.Records),
		zap.String("digest", fmt.Sprintf("%016x", s.digest.Sum64())))
}

// Err returns the read error that ended iteration early, if any.
// A discarded partial trailing record is not an error.
func (s *Stream) Err() error {
	return s.err
}

// Summary reports what has been read so far. It is final once iteration has ended.
func (s *Stream) Summary() Summary {
	sum := s.summary
	sum.Digest = s.digest.Sum64()

	return sum
}

// Close releases the decoder and, for streams created by Open, the file.
// Errors from each resource are combined. Subsequent calls return nil.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var result *multierror.Error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	s.closers = nil

	return result.ErrorOrNil()
}

// ReadAll opens path, drains every record and closes the source.
//
// It is the batch form of Open + All used when output may only be produced after
// the whole source has been consumed.
//
// Returns:
//   - []Record: Records in source order (empty for an empty source)
//   - Summary: Final summary of the pass
//   - error: ErrSourceUnavailable, a read error or a close error
func ReadAll(path string, opts ...StreamOption) ([]Record, Summary, error) {
	s, err := Open(path, opts...)
	if err != nil {
		return nil, Summary{}, err
	}

	records := make([]Record, 0)
	for rec := range s.All() {
		records = append(records, rec)
	}

	var result *multierror.Error
	if err := s.Err(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := s.Close(); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, Summary{}, err
	}

	return records, s.Summary(), nil
}
