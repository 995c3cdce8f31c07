package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed stream.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard stream.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2 (Snappy-compatible) stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame stream.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// CompressionFromPath infers the compression of a file from its extension.
// Unrecognised extensions, including none at all, mean CompressionNone.
func CompressionFromPath(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2", ".sz":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// ParseCompression maps a compression name such as "zstd" or "LZ4" to its type.
// The empty string means CompressionNone.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}
