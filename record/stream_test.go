package record

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/floatbits/compress"
	"github.com/arloliu/floatbits/endian"
	"github.com/arloliu/floatbits/format"
	"github.com/arloliu/floatbits/internal/hash"
)

// dump encodes values in the host's native byte order, as the producing tools did.
func dump(values ...float32) []byte {
	engine := endian.GetNativeEngine()
	buf := make([]byte, 0, len(values)*RecordSize)
	for _, v := range values {
		buf = endian.AppendFloat32(engine, buf, v)
	}

	return buf
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func collect(t *testing.T, s *Stream) []Record {
	t.Helper()

	var records []Record
	for rec := range s.All() {
		records = append(records, rec)
	}
	require.NoError(t, s.Err())

	return records
}

func TestNewStream_ReadsRecordsInOrder(t *testing.T) {
	values := []float32{0, 1, -2, 3.5, float32(math.Inf(-1))}

	s, err := NewStream(bytes.NewReader(dump(values...)))
	require.NoError(t, err)
	defer s.Close()

	records := collect(t, s)
	require.Len(t, records, len(values))
	for i, rec := range records {
		require.Equal(t, i, rec.Index)
		require.Equal(t, math.Float32bits(values[i]), math.Float32bits(rec.Value))
	}

	sum := s.Summary()
	require.Equal(t, len(values), sum.Records)
	require.Equal(t, int64(len(values)*RecordSize), sum.Bytes)
	require.Zero(t, sum.TrailingBytes)
}

func TestNewStream_ShortTrailingRecord(t *testing.T) {
	data := append(dump(1.0), 0xAA, 0xBB) // 6 bytes

	s, err := NewStream(bytes.NewReader(data))
	require.NoError(t, err)
	defer s.Close()

	records := collect(t, s)
	require.Len(t, records, 1)
	require.Equal(t, Record{Index: 0, Value: 1.0}, records[0])
	require.Equal(t, 2, s.Summary().TrailingBytes)
}

func TestNewStream_TrailingFragmentSizes(t *testing.T) {
	for extra := 1; extra < RecordSize; extra++ {
		data := append(dump(1, 2), make([]byte, extra)...)

		s, err := NewStream(bytes.NewReader(data))
		require.NoError(t, err)

		records := collect(t, s)
		require.Len(t, records, 2)
		require.Equal(t, extra, s.Summary().TrailingBytes)
		require.NoError(t, s.Close())
	}
}

func TestNewStream_EmptySource(t *testing.T) {
	s, err := NewStream(bytes.NewReader(nil))
	require.NoError(t, err)
	defer s.Close()

	require.Empty(t, collect(t, s))
	require.Equal(t, Summary{Digest: hash.Sum(nil)}, s.Summary())
}

func TestNewStream_PreservesBitPatterns(t *testing.T) {
	patterns := []uint32{0x00000000, 0x80000000, 0x7F800000, 0xFF800000, 0x7FC00001, 0x00000001}
	engine := endian.GetNativeEngine()

	var data []byte
	for _, p := range patterns {
		data = engine.AppendUint32(data, p)
	}

	s, err := NewStream(bytes.NewReader(data))
	require.NoError(t, err)
	defer s.Close()

	records := collect(t, s)
	require.Len(t, records, len(patterns))
	for i, rec := range records {
		require.Equal(t, patterns[i], rec.Fields().Bits())
	}
}

func TestNewStream_SingleUse(t *testing.T) {
	s, err := NewStream(bytes.NewReader(dump(1, 2, 3)))
	require.NoError(t, err)
	defer s.Close()

	require.Len(t, collect(t, s), 3)
	require.Empty(t, collect(t, s), "second pass must yield nothing")
}

func TestNewStream_EarlyBreak(t *testing.T) {
	s, err := NewStream(bytes.NewReader(dump(1, 2, 3, 4)))
	require.NoError(t, err)
	defer s.Close()

	for rec := range s.All() {
		if rec.Index == 1 {
			break
		}
	}

	require.Equal(t, 2, s.Summary().Records)
	require.Empty(t, collect(t, s))
}

func TestNewStream_ReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	src := io.MultiReader(bytes.NewReader(dump(7)), iotest.ErrReader(boom))

	s, err := NewStream(src)
	require.NoError(t, err)
	defer s.Close()

	var records []Record
	for rec := range s.All() {
		records = append(records, rec)
	}

	require.Len(t, records, 1)
	require.ErrorIs(t, s.Err(), boom)
	require.ErrorContains(t, s.Err(), "read record 1")
}

func TestNewStream_Digest(t *testing.T) {
	data := dump(1, 2, 3)

	s, err := NewStream(bytes.NewReader(append(data, 0x01)))
	require.NoError(t, err)
	defer s.Close()

	collect(t, s)
	require.Equal(t, hash.Sum(data), s.Summary().Digest, "trailing fragment must not affect the digest")
}

func TestNewStream_LogsTrailingFragment(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	s, err := NewStream(bytes.NewReader([]byte{1, 2, 3}), WithLogger(zap.New(core)), WithName("mem"))
	require.NoError(t, err)
	defer s.Close()

	require.Empty(t, collect(t, s))

	entries := logs.FilterMessage("partial trailing record discarded").All()
	require.Len(t, entries, 1)
	require.Equal(t, "mem", entries[0].ContextMap()["source"])
	require.Equal(t, int64(3), entries[0].ContextMap()["trailing_bytes"])
}

func TestNewStream_Compressed(t *testing.T) {
	data := dump(0.5, -0.25, 1e10)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(ct)
			require.NoError(t, err)
			compressed, err := compress.Compress(codec, data)
			require.NoError(t, err)

			s, err := NewStream(bytes.NewReader(compressed), WithCompression(ct))
			require.NoError(t, err)
			defer s.Close()

			require.Equal(t, []float32{0.5, -0.25, 1e10}, Values(collect(t, s)))
		})
	}
}

func TestOpen_File(t *testing.T) {
	path := writeFile(t, "samples.bin", dump(1, -2, 0.15625))

	s, err := Open(path)
	require.NoError(t, err)

	records := collect(t, s)
	require.Equal(t, []float32{1, -2, 0.15625}, Values(records))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "Close must be idempotent")
}

func TestOpen_CompressionFromExtension(t *testing.T) {
	data := dump(3, 4)
	compressed, err := compress.Compress(compress.NewZstdCodec(), data)
	require.NoError(t, err)

	path := writeFile(t, "samples.bin.zst", compressed)

	s, err := Open(path, WithCompressionFromExtension())
	require.NoError(t, err)
	defer s.Close()

	require.Equal(t, []float32{3, 4}, Values(collect(t, s)))
}

func TestOpen_RawByDefaultWhateverTheExtension(t *testing.T) {
	for _, name := range []string{"samples.lz4", "samples.zst", "samples.zstd", "samples.s2", "samples.sz"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, dump(9, -1))

			s, err := Open(path)
			require.NoError(t, err)
			defer s.Close()

			require.Equal(t, []float32{9, -1}, Values(collect(t, s)))
			require.NoError(t, s.Err())
		})
	}
}

func TestOpen_WithCompressionOverridesExtension(t *testing.T) {
	path := writeFile(t, "raw.zst", dump(9))

	s, err := Open(path, WithCompressionFromExtension(), WithCompression(format.CompressionNone))
	require.NoError(t, err)
	defer s.Close()

	require.Equal(t, []float32{9}, Values(collect(t, s)))
}

func TestOpen_SourceUnavailable(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		s, err := Open(filepath.Join(t.TempDir(), "nope.bin"))
		require.Nil(t, s)
		require.ErrorIs(t, err, ErrSourceUnavailable)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		s, err := Open(t.TempDir())
		require.Nil(t, s)
		require.ErrorIs(t, err, ErrSourceUnavailable)
	})
}

func TestAll_AfterCloseYieldsNothing(t *testing.T) {
	path := writeFile(t, "samples.bin", dump(1, 2))

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	require.Empty(t, collect(t, s))
}

func TestReadAll(t *testing.T) {
	t.Run("records in order", func(t *testing.T) {
		path := writeFile(t, "samples.bin", append(dump(5, 6, 7), 0xFF))

		records, sum, err := ReadAll(path)
		require.NoError(t, err)
		require.Len(t, records, 3)
		for i, rec := range records {
			require.Equal(t, i, rec.Index)
		}
		require.Equal(t, 3, sum.Records)
		require.Equal(t, 1, sum.TrailingBytes)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "empty.bin", nil)

		records, sum, err := ReadAll(path)
		require.NoError(t, err)
		require.Empty(t, records)
		require.Zero(t, sum.Records)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := ReadAll(filepath.Join(t.TempDir(), "missing.bin"))
		require.ErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("corrupt compressed file", func(t *testing.T) {
		path := writeFile(t, "broken.lz4", []byte("definitely not lz4"))

		_, _, err := ReadAll(path, WithCompression(format.CompressionLZ4))
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrSourceUnavailable)
	})
}

func TestRecord_Fields(t *testing.T) {
	f := Record{Index: 0, Value: -2}.Fields()
	require.Equal(t, uint32(1), f.Sign)
	require.Equal(t, uint32(128), f.Exponent)
	require.Zero(t, f.Mantissa)
}
