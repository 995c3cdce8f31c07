package record

import "github.com/arloliu/floatbits/ieee754"

// RecordSize is the width in bytes of one float32 record.
const RecordSize = 4

// Record is one float32 value read from a source, with its zero-based position.
type Record struct {
	Index int
	Value float32
}

// Fields decomposes the record's value into its IEEE-754 bit fields.
func (r Record) Fields() ieee754.BitFields {
	return ieee754.Decompose(r.Value)
}

// Values extracts the float values of records, preserving order.
func Values(records []Record) []float32 {
	values := make([]float32, len(records))
	for i, rec := range records {
		values[i] = rec.Value
	}

	return values
}

// Summary describes a completed pass over a source.
type Summary struct {
	// Records is the number of complete records yielded.
	Records int
	// Bytes is the number of bytes consumed by complete records.
	Bytes int64
	// TrailingBytes is the size of the discarded partial record, 0 to 3.
	TrailingBytes int
	// Digest is the xxHash64 of all complete record bytes.
	Digest uint64
}
