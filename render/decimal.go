package render

import (
	"math"
	"strconv"
)

// FormatDecimal renders v the way a default C++ output stream prints a float.
//
// In general form the value uses precision significant digits with trailing zeros
// removed, switching to an exponent when it is very large or small ("1e+06").
// In scientific form precision is the number of digits after the point
// ("1.00000000e+00"). Non-finite values print as nan, -nan, inf and -inf.
func FormatDecimal(v float32, precision int, scientific bool) string {
	return formatFloat(float64(v), math.Float32bits(v)>>31 == 1, precision, scientific)
}

// FormatDecimal64 is FormatDecimal for float64 values such as derived statistics.
func FormatDecimal64(f float64, precision int, scientific bool) string {
	return formatFloat(f, math.Signbit(f), precision, scientific)
}

func formatFloat(f float64, negative bool, precision int, scientific bool) string {
	switch {
	case math.IsNaN(f):
		if negative {
			return "-nan"
		}
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if scientific {
		return strconv.FormatFloat(f, 'e', precision, 64)
	}

	return strconv.FormatFloat(f, 'g', precision, 64)
}
