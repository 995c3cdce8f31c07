// Package ieee754 splits 32-bit IEEE-754 floating-point values into their bit fields.
//
// A single-precision value is laid out, most significant bit first, as:
//
//	bit 31      bits 30..23         bits 22..0
//	[sign]  [ exponent (8 bits) ] [ mantissa (23 bits) ]
//
// The exponent is stored biased by 127. Decompose never interprets the value
// numerically: it reinterprets the float's bits through math.Float32bits, so signed
// zero, infinities and NaN payloads are reported exactly as they are stored.
//
// # Basic Usage
//
//	fields := ieee754.Decompose(-2.0)
//	fmt.Println(fields.Raw)              // 11000000000000000000000000000000
//	fmt.Println(fields.SignString())     // 1
//	fmt.Println(fields.ExponentString()) // 10000000
//	fmt.Println(fields.Exponent)         // 128
//
// # Thread Safety
//
// All functions in this package are pure and safe for concurrent use.
package ieee754
