package ieee754

import (
	"fmt"
	"math"
)

// Field widths of the single-precision format.
const (
	SignBits     = 1
	ExponentBits = 8
	MantissaBits = 23
	TotalBits    = SignBits + ExponentBits + MantissaBits

	// ExponentBias is subtracted from the stored exponent to obtain the true exponent
	// of a normal number.
	ExponentBias = 127
)

const (
	signShift     = ExponentBits + MantissaBits // 31
	exponentShift = MantissaBits                // 23

	signMask     = 0x1
	exponentMask = 0xFF
	mantissaMask = 0x7FFFFF
)

// BitFields is the decomposed view of a single 32-bit float.
//
// Sign, Exponent and Mantissa hold the raw field values right-aligned in a uint32.
// Raw is the full 32-bit pattern rendered as '0'/'1' characters, most significant
// bit first. BitFields is a plain value; it holds no reference to the source.
type BitFields struct {
	Sign     uint32 // 0 or 1
	Exponent uint32 // 0..255, biased
	Mantissa uint32 // 0..0x7FFFFF
	Raw      string // exactly TotalBits characters
}

// Decompose reinterprets value's bits and extracts its sign, exponent and mantissa.
//
// The function is total: every float32 bit pattern, including ±0, ±Inf, subnormals
// and NaNs with arbitrary payloads, produces a BitFields whose fields reassemble to
// the original pattern.
//
// Parameters:
//   - value: The float32 to decompose
//
// Returns:
//   - BitFields: The sign, biased exponent, mantissa and 32-character bit string
func Decompose(value float32) BitFields {
	return DecomposeBits(math.Float32bits(value))
}

// DecomposeBits extracts the single-precision fields from a raw 32-bit pattern.
//
// It is the integer counterpart of Decompose and is useful when the pattern was
// obtained without going through a float32, e.g. straight from a byte buffer.
func DecomposeBits(bits uint32) BitFields {
	return BitFields{
		Sign:     (bits >> signShift) & signMask,
		Exponent: (bits >> exponentShift) & exponentMask,
		Mantissa: bits & mantissaMask,
		Raw:      FormatBits(bits, TotalBits),
	}
}

// Bits reassembles sign||exponent||mantissa into the original 32-bit pattern.
func (f BitFields) Bits() uint32 {
	return (f.Sign&signMask)<<signShift |
		(f.Exponent&exponentMask)<<exponentShift |
		f.Mantissa&mantissaMask
}

// Float32 returns the float whose bit pattern is f.Bits().
func (f BitFields) Float32() float32 {
	return math.Float32frombits(f.Bits())
}

// SignString returns the sign bit as a 1-character string.
func (f BitFields) SignString() string {
	return FormatBits(f.Sign, SignBits)
}

// ExponentString returns the biased exponent as an 8-character, zero-padded bit string.
func (f BitFields) ExponentString() string {
	return FormatBits(f.Exponent, ExponentBits)
}

// MantissaString returns the mantissa as a 23-character, zero-padded bit string.
func (f BitFields) MantissaString() string {
	return FormatBits(f.Mantissa, MantissaBits)
}

// String renders the three fields separated by spaces, e.g. "0 01111111 000...0".
func (f BitFields) String() string {
	return f.SignString() + " " + f.ExponentString() + " " + f.MantissaString()
}

// FormatBits renders the low width bits of v as '0'/'1' characters, most significant
// bit first. Bits above width are ignored.
//
// Panics if width is outside 1..32.
func FormatBits(v uint32, width int) string {
	if width < 1 || width > TotalBits {
		panic(fmt.Sprintf("ieee754: invalid bit width %d", width))
	}

	var buf [TotalBits]byte
	for i := range width {
		if v&(1<<(width-1-i)) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	return string(buf[:width])
}

// ParseBits parses a string of up to 32 '0'/'1' characters, most significant bit first.
//
// It is the inverse of FormatBits and allows a pattern to be rebuilt from the
// concatenation of the sign, exponent and mantissa strings.
//
// Returns:
//   - uint32: The parsed pattern
//   - error: If s is empty, longer than 32 characters or contains other characters
func ParseBits(s string) (uint32, error) {
	if len(s) == 0 || len(s) > TotalBits {
		return 0, fmt.Errorf("invalid bit string length: %d", len(s))
	}

	var v uint32
	for i := range len(s) {
		v <<= 1
		switch s[i] {
		case '0':
		case '1':
			v |= 1
		default:
			return 0, fmt.Errorf("invalid bit character %q at position %d", s[i], i)
		}
	}

	return v, nil
}
