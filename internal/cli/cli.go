// Package cli implements the interactive front end shared by the f32 commands.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/arloliu/floatbits/format"
	"github.com/arloliu/floatbits/internal/logging"
	"github.com/arloliu/floatbits/record"
	"github.com/arloliu/floatbits/render"
	"github.com/arloliu/floatbits/stats"
)

// Mode selects what a command does with the records it reads.
type Mode int

const (
	// ModeBinary prints each value with its 32-bit pattern.
	ModeBinary Mode = iota
	// ModeFields prints each value with its pattern and sign/exponent/mantissa breakdown.
	ModeFields
	// ModeCSV exports "<index>,<value>" rows, then lists the values.
	// Config.Summary adds a statistics line after the listing.
	ModeCSV
)

const (
	// Prompt is written to stdout before the filename is read.
	Prompt = "Enter the filename: "

	// DefaultCSVPath is where ModeCSV writes when no destination is configured.
	DefaultCSVPath = "data.csv"

	envDebug       = "FLOATBITS_DEBUG"
	envCSVPath     = "FLOATBITS_CSV"
	envCompression = "FLOATBITS_COMPRESSION"
	envSummary     = "FLOATBITS_SUMMARY"

	// compressionAuto selects the codec from the input file's extension.
	compressionAuto = "auto"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Config carries everything Run needs; no I/O happens outside these fields.
type Config struct {
	Mode      Mode
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	CSVPath   string
	Highlight bool
	Logger    *zap.Logger

	// Compression is the codec of the input file. The zero value reads it raw.
	Compression format.CompressionType
	// DetectCompression picks the input codec from the file extension instead.
	DetectCompression bool
	// Summary appends a statistics line after the CSV-mode listing.
	Summary bool
}

// ConfigFromEnv builds a Config bound to the process's standard streams.
//
// FLOATBITS_DEBUG enables a debug logger on stderr and FLOATBITS_CSV overrides the
// CSV destination. FLOATBITS_COMPRESSION names the input codec ("zstd", "s2",
// "lz4", or "auto" to use the file extension); inputs are raw otherwise.
// FLOATBITS_SUMMARY adds a statistics line to CSV mode. Bit highlighting is
// enabled when stdout is a terminal.
func ConfigFromEnv(mode Mode) (Config, error) {
	cfg := Config{
		Mode:      mode,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		CSVPath:   DefaultCSVPath,
		Highlight: term.IsTerminal(int(os.Stdout.Fd())),
		Logger:    logging.Logger(),
	}

	if path := os.Getenv(envCSVPath); path != "" {
		cfg.CSVPath = path
	}

	if name := os.Getenv(envCompression); strings.EqualFold(name, compressionAuto) {
		cfg.DetectCompression = true
	} else {
		ct, err := format.ParseCompression(name)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envCompression, err)
		}
		cfg.Compression = ct
	}

	cfg.Summary = os.Getenv(envSummary) != ""

	if os.Getenv(envDebug) != "" {
		l, err := logging.NewDebug()
		if err != nil {
			return Config{}, fmt.Errorf("init logger: %w", err)
		}
		logging.SetLogger(l)
		cfg.Logger = l
	}

	return cfg, nil
}

// Run prompts for a filename, processes the file in cfg.Mode and returns the exit code.
//
// An input that cannot be opened is reported once on stderr as
// "Failed to open file: <name>" and yields ExitFailure without any other output.
func Run(cfg Config) int {
	if cfg.Logger == nil {
		cfg.Logger = logging.Logger()
	}
	if cfg.CSVPath == "" {
		cfg.CSVPath = DefaultCSVPath
	}
	if cfg.Compression == 0 {
		cfg.Compression = format.CompressionNone
	}
	defer func() { _ = cfg.Logger.Sync() }()

	if _, err := fmt.Fprint(cfg.Stdout, Prompt); err != nil {
		return ExitFailure
	}

	name := readFilename(cfg.Stdin)
	cfg.Logger.Debug("filename read", zap.String("name", name), zap.Int("mode", int(cfg.Mode)))

	var err error
	switch cfg.Mode {
	case ModeCSV:
		err = runCSV(cfg, name)
	default:
		err = runConsole(cfg, name)
	}

	if err == nil {
		return ExitOK
	}

	if errors.Is(err, record.ErrSourceUnavailable) {
		fmt.Fprintf(cfg.Stderr, "Failed to open file: %s\n", name)
	} else {
		fmt.Fprintf(cfg.Stderr, "%s: %v\n", name, err)
	}
	cfg.Logger.Debug("run failed", zap.Error(err))

	return ExitFailure
}

// readFilename returns the first whitespace-delimited token of r, or "" if there is none.
func readFilename(r io.Reader) string {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if sc.Scan() {
		return sc.Text()
	}

	return ""
}

func streamOptions(cfg Config) []record.StreamOption {
	opts := []record.StreamOption{
		record.WithLogger(cfg.Logger),
		record.WithCompression(cfg.Compression),
	}
	if cfg.DetectCompression {
		opts = append(opts, record.WithCompressionFromExtension())
	}

	return opts
}

func runConsole(cfg Config, name string) (err error) {
	s, err := record.Open(name, streamOptions(cfg)...)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	console, err := render.NewConsole(cfg.Stdout,
		render.WithFieldBreakdown(cfg.Mode == ModeFields),
		render.WithHighlight(cfg.Highlight),
		render.WithLogger(cfg.Logger),
	)
	if err != nil {
		return err
	}

	if err := console.Header(); err != nil {
		return err
	}

	if _, err := console.RenderAll(s.All()); err != nil {
		return err
	}

	return s.Err()
}

func runCSV(cfg Config, name string) error {
	records, summary, err := record.ReadAll(name, streamOptions(cfg)...)
	if err != nil {
		return err
	}

	if err := render.ExportCSV(cfg.CSVPath, records, render.WithLogger(cfg.Logger)); err != nil {
		return err
	}

	console, err := render.NewConsole(cfg.Stdout, render.WithListing(true), render.WithLogger(cfg.Logger))
	if err != nil {
		return err
	}

	if err := console.Header(); err != nil {
		return err
	}

	for _, rec := range records {
		if err := console.Render(rec); err != nil {
			return err
		}
	}

	cfg.Logger.Debug("csv run complete",
		zap.Int("records", summary.Records),
		zap.Int("trailing_bytes", summary.TrailingBytes))

	if !cfg.Summary {
		return nil
	}

	sum := stats.Summarize(record.Values(records))
	_, err = fmt.Fprintf(cfg.Stdout, "Summary: count=%d min=%s max=%s mean=%s stddev=%s\n",
		sum.Count,
		formatStat(sum.Min),
		formatStat(sum.Max),
		formatStat(sum.Mean),
		formatStat(sum.StdDev))

	return err
}

func formatStat(v float64) string {
	return render.FormatDecimal64(v, render.DefaultPrecision, false)
}
