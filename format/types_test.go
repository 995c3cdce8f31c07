package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}

func TestCompressionFromPath(t *testing.T) {
	tests := []struct {
		path string
		want CompressionType
	}{
		{"samples.bin", CompressionNone},
		{"samples", CompressionNone},
		{"data.csv", CompressionNone},
		{"samples.bin.zst", CompressionZstd},
		{"/tmp/SAMPLES.ZSTD", CompressionZstd},
		{"samples.s2", CompressionS2},
		{"samples.sz", CompressionS2},
		{"dir.lz4/samples.bin", CompressionNone},
		{"samples.bin.lz4", CompressionLZ4},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, CompressionFromPath(tt.path))
		})
	}
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name string
		want CompressionType
	}{
		{"", CompressionNone},
		{"none", CompressionNone},
		{"ZSTD", CompressionZstd},
		{"zst", CompressionZstd},
		{" s2 ", CompressionS2},
		{"lz4", CompressionLZ4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompression(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCompression("gzip")
	require.ErrorContains(t, err, "unknown compression")
}
