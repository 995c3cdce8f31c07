package record

import (
	"go.uber.org/zap"

	"github.com/arloliu/floatbits/format"
	"github.com/arloliu/floatbits/internal/options"
)

// StreamOption configures a Stream.
type StreamOption = options.Option[*Stream]

// WithCompression sets the codec the source is decoded with. The default is
// format.CompressionNone.
func WithCompression(ct format.CompressionType) StreamOption {
	return options.NoError(func(s *Stream) {
		s.compression = ct
		s.detectCompression = false
	})
}

// WithCompressionFromExtension makes Open pick the codec from the file extension
// (".zst", ".s2", ".lz4"). It has no effect on NewStream.
func WithCompressionFromExtension() StreamOption {
	return options.NoError(func(s *Stream) {
		s.detectCompression = true
	})
}

// WithLogger sets the logger for debug diagnostics.
func WithLogger(l *zap.Logger) StreamOption {
	return options.NoError(func(s *Stream) {
		if l != nil {
			s.logger = l
		}
	})
}

// WithName labels the source in log output. Open uses the path by default.
func WithName(name string) StreamOption {
	return options.NoError(func(s *Stream) {
		s.name = name
	})
}
