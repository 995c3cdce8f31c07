// Package endian provides byte order utilities for reading float32 records.
//
// Record files are plain dumps of in-memory float32 values, so their byte order is
// whatever the producing host used. This package combines binary.ByteOrder and
// binary.AppendByteOrder into a single EndianEngine and detects the host's native
// order so readers can reinterpret 4-byte chunks exactly as the host stored them.
//
// # Basic Usage
//
// Most users should use GetNativeEngine(), which matches the host's memory layout:
//
//	engine := endian.GetNativeEngine()
//	value := endian.Float32(engine, chunk)
//
// Tests and fixtures that need a fixed layout use the explicit engines:
//
//	engine := endian.GetBigEndianEngine()
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the engine matching the host's in-memory byte order.
func GetNativeEngine() EndianEngine {
	if IsNativeBigEndian() {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

// Float32 reinterprets the first 4 bytes of b as a float32 using engine's byte order.
//
// The conversion is a bit reinterpretation: NaN payloads and signed zero survive
// unchanged. Panics if len(b) < 4.
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}

// AppendFloat32 appends the 4-byte representation of v to b using engine's byte order.
func AppendFloat32(engine EndianEngine, b []byte, v float32) []byte {
	return engine.AppendUint32(b, math.Float32bits(v))
}
