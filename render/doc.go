// Package render turns float records into console listings and indexed CSV files.
//
// Console writes to an injected io.Writer in one of three layouts:
//
//	Float: 1 -> Binary: 00111111100000000000000000000000
//
//	Float: -2 -> Binary: 11000000000000000000000000000000
//	  Sign: 1
//	  Exponent: 10000000 (decimal: 128)
//	  Mantissa: 00000000000000000000000
//
//	0: 1
//
// ExportCSV writes "<index>,<value>" lines with no header to an explicit path.
// Decimal values follow the C++ iostream defaults the dumps are usually inspected
// with: six significant digits, shortest form, and lowercase nan/inf.
package render
