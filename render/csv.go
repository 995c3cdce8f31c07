package render

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/arloliu/floatbits/compress"
	"github.com/arloliu/floatbits/format"
	"github.com/arloliu/floatbits/record"
)

// IndexedValue is one row of an exported CSV file.
type IndexedValue struct {
	Index int
	Value float64
}

// WriteCSV writes one "<index>,<value>" line per record to w, without a header.
func WriteCSV(w io.Writer, records []record.Record, opts ...Option) error {
	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}

	return cfg.writeCSV(w, records)
}

func (c *Config) writeCSV(w io.Writer, records []record.Record) error {
	cw := csv.NewWriter(w)

	row := make([]string, 2)
	for _, rec := range records {
		row[0] = strconv.Itoa(rec.Index)
		row[1] = c.formatValue(rec.Value)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", rec.Index, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// ExportCSV writes records to the file at path, replacing any existing file.
//
// The destination is compressed when its extension names a supported codec
// (".zst", ".s2", ".lz4") unless WithCSVCompression overrides it. An empty
// records slice produces an empty file.
//
// Parameters:
//   - path: Destination file
//   - records: Records to export, normally a fully drained source
//   - opts: Rendering options (precision, compression)
//
// Returns:
//   - error: Create, write, flush or close failure
func ExportCSV(path string, records []record.Record, opts ...Option) (err error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}

	if !cfg.compressionSet {
		cfg.compression = format.CompressionFromPath(path)
	}

	codec, err := compress.CreateCodec(cfg.compression, "csv")
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = multierror.Append(err, closeErr).ErrorOrNil()
		}
	}()

	w, err := codec.NewWriter(f)
	if err != nil {
		return fmt.Errorf("open %s encoder: %w", cfg.compression, err)
	}

	if writeErr := cfg.writeCSV(w, records); writeErr != nil {
		return multierror.Append(writeErr, w.Close())
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finish csv: %w", err)
	}

	cfg.logger.Debug("csv exported",
		zap.String("path", path),
		zap.Int("rows", len(records)),
		zap.Stringer("compression", cfg.compression))

	return nil
}

// ReadCSV parses rows written by WriteCSV.
//
// When limit is positive, at most limit rows are read and the rest of the input is
// left untouched.
//
// Returns:
//   - []IndexedValue: Parsed rows in file order
//   - error: Malformed row
func ReadCSV(r io.Reader, limit int) ([]IndexedValue, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.ReuseRecord = true

	rows := make([]IndexedValue, 0)
	for limit <= 0 || len(rows) < limit {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		index, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad index %q: %w", len(rows), fields[0], err)
		}

		value, err := parseDecimal(fields[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad value %q: %w", len(rows), fields[1], err)
		}

		rows = append(rows, IndexedValue{Index: index, Value: value})
	}

	return rows, nil
}

// parseDecimal accepts everything FormatDecimal produces, including "-nan".
func parseDecimal(s string) (float64, error) {
	if strings.EqualFold(s, "-nan") {
		s = s[1:]
	}

	return strconv.ParseFloat(s, 64)
}
