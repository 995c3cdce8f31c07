package render

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/floatbits/record"
)

func records(values ...float32) []record.Record {
	out := make([]record.Record, len(values))
	for i, v := range values {
		out[i] = record.Record{Index: i, Value: v}
	}

	return out
}

func TestConsole_BinaryLines(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewConsole(&buf)
	require.NoError(t, err)

	n, err := c.RenderAll(slices.Values(records(1, -2, 0)))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	want := "Float: 1 -> Binary: 00111111100000000000000000000000\n" +
		"Float: -2 -> Binary: 11000000000000000000000000000000\n" +
		"Float: 0 -> Binary: 00000000000000000000000000000000\n"
	require.Equal(t, want, buf.String())
}

func TestConsole_FieldBreakdown(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewConsole(&buf, WithFieldBreakdown(true))
	require.NoError(t, err)

	require.NoError(t, c.Render(record.Record{Index: 0, Value: -2}))

	want := "Float: -2 -> Binary: 11000000000000000000000000000000\n" +
		"  Sign: 1\n" +
		"  Exponent: 10000000 (decimal: 128)\n" +
		"  Mantissa: 00000000000000000000000\n"
	require.Equal(t, want, buf.String())
}

func TestConsole_NegativeZero(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewConsole(&buf, WithFieldBreakdown(true))
	require.NoError(t, err)

	require.NoError(t, c.Render(record.Record{Value: float32(math.Copysign(0, -1))}))

	want := "Float: -0 -> Binary: 10000000000000000000000000000000\n" +
		"  Sign: 1\n" +
		"  Exponent: 00000000 (decimal: 0)\n" +
		"  Mantissa: 00000000000000000000000\n"
	require.Equal(t, want, buf.String())
}

func TestConsole_Listing(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewConsole(&buf, WithListing(true))
	require.NoError(t, err)

	require.NoError(t, c.Header())
	_, err = c.RenderAll(slices.Values(records(0.5, 1e6, 3.14159265)))
	require.NoError(t, err)

	want := "Data read from file: \n" +
		"0: 0.5\n" +
		"1: 1e+06\n" +
		"2: 3.14159\n"
	require.Equal(t, want, buf.String())
}

func TestConsole_Scientific(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewConsole(&buf, WithScientific(8))
	require.NoError(t, err)

	require.NoError(t, c.Render(record.Record{Value: 1}))
	require.Equal(t, "Float: 1.00000000e+00 -> Binary: 00111111100000000000000000000000\n", buf.String())
}

// A bytes.Buffer is not a terminal, so highlighting must degrade to plain text.
func TestConsole_HighlightOnNonTerminal(t *testing.T) {
	var plain, highlighted bytes.Buffer

	c1, err := NewConsole(&plain, WithFieldBreakdown(true))
	require.NoError(t, err)
	c2, err := NewConsole(&highlighted, WithFieldBreakdown(true), WithHighlight(true))
	require.NoError(t, err)

	for _, rec := range records(1.5, -7.25) {
		require.NoError(t, c1.Render(rec))
		require.NoError(t, c2.Render(rec))
	}

	require.Equal(t, plain.String(), highlighted.String())
}

func TestConsole_InvalidOptions(t *testing.T) {
	_, err := NewConsole(&bytes.Buffer{}, WithPrecision(0))
	require.Error(t, err)

	_, err = NewConsole(&bytes.Buffer{}, WithScientific(-1))
	require.Error(t, err)
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errors.New("pipe closed")
	}
	w.after--

	return len(p), nil
}

func TestConsole_WriteError(t *testing.T) {
	c, err := NewConsole(&failingWriter{after: 2})
	require.NoError(t, err)

	n, err := c.RenderAll(slices.Values(records(1, 2, 3, 4)))
	require.Equal(t, 2, n)
	require.ErrorContains(t, err, "render record 2")
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		name       string
		value      float32
		precision  int
		scientific bool
		want       string
	}{
		{"integer", 42, 6, false, "42"},
		{"fraction", 0.1, 6, false, "0.1"},
		{"rounded", 3.14159265, 6, false, "3.14159"},
		{"large", 123456789, 6, false, "1.23457e+08"},
		{"small", 0.00001, 6, false, "1e-05"},
		{"hundred thousand", 100000, 6, false, "100000"},
		{"negative zero", float32(math.Copysign(0, -1)), 6, false, "-0"},
		{"more digits", 3.14159265, 9, false, "3.14159274"},
		{"scientific", -2, 8, true, "-2.00000000e+00"},
		{"positive infinity", float32(math.Inf(1)), 6, false, "inf"},
		{"negative infinity", float32(math.Inf(-1)), 6, false, "-inf"},
		{"nan", math.Float32frombits(0x7FC00000), 6, false, "nan"},
		{"negative nan", math.Float32frombits(0xFFC00000), 6, false, "-nan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatDecimal(tt.value, tt.precision, tt.scientific))
		})
	}
}

func TestFormatDecimal64(t *testing.T) {
	require.Equal(t, "-0.166667", FormatDecimal64(-1.0/6.0, DefaultPrecision, false))
	require.Equal(t, "nan", FormatDecimal64(math.NaN(), DefaultPrecision, false))
	require.Equal(t, "-inf", FormatDecimal64(math.Inf(-1), DefaultPrecision, false))
	require.Equal(t, "1.5e+00", FormatDecimal64(1.5, 1, true))
}
