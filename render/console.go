package render

import (
	"fmt"
	"io"
	"iter"

	"github.com/charmbracelet/lipgloss"

	"github.com/arloliu/floatbits/ieee754"
	"github.com/arloliu/floatbits/record"
)

// ListingHeader is printed once before the records.
const ListingHeader = "Data read from file: "

// Console prints records to an io.Writer.
//
// Console is not safe for concurrent use. Records are printed in the order they
// are passed in, which for a record.Stream is source order.
type Console struct {
	w   io.Writer
	cfg *Config

	signStyle     lipgloss.Style
	exponentStyle lipgloss.Style
	mantissaStyle lipgloss.Style
}

// NewConsole creates a Console writing to w.
//
// Parameters:
//   - w: Destination for all output
//   - opts: Rendering options (layout, precision, highlight)
//
// Returns:
//   - *Console: Ready to use console renderer
//   - error: Invalid option
func NewConsole(w io.Writer, opts ...Option) (*Console, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	c := &Console{w: w, cfg: cfg}
	if cfg.highlight {
		// the renderer detects colour support from w itself, so a pipe or buffer
		// receives plain text
		r := lipgloss.NewRenderer(w)
		c.signStyle = r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		c.exponentStyle = r.NewStyle().Foreground(lipgloss.Color("214"))
		c.mantissaStyle = r.NewStyle().Foreground(lipgloss.Color("39"))
	}

	return c, nil
}

// Header prints the listing header line.
func (c *Console) Header() error {
	_, err := fmt.Fprintln(c.w, ListingHeader)
	return err
}

// Render prints one record using the configured layout.
func (c *Console) Render(rec record.Record) error {
	value := c.cfg.formatValue(rec.Value)

	if c.cfg.listing {
		_, err := fmt.Fprintf(c.w, "%d: %s\n", rec.Index, value)
		return err
	}

	fields := rec.Fields()
	if _, err := fmt.Fprintf(c.w, "Float: %s -> Binary: %s\n", value, c.bits(fields)); err != nil {
		return err
	}

	if !c.cfg.breakdown {
		return nil
	}

	_, err := fmt.Fprintf(c.w, "  Sign: %d\n  Exponent: %s (decimal: %d)\n  Mantissa: %s\n",
		fields.Sign,
		fields.ExponentString(), fields.Exponent,
		fields.MantissaString())

	return err
}

// RenderAll prints every record of seq and returns how many were printed.
// It stops at the first write error.
func (c *Console) RenderAll(seq iter.Seq[record.Record]) (int, error) {
	n := 0
	for rec := range seq {
		if err := c.Render(rec); err != nil {
			return n, fmt.Errorf("render record %d: %w", rec.Index, err)
		}
		n++
	}

	return n, nil
}

func (c *Console) bits(f ieee754.BitFields) string {
	if !c.cfg.highlight {
		return f.Raw
	}

	return c.signStyle.Render(f.SignString()) +
		c.exponentStyle.Render(f.ExponentString()) +
		c.mantissaStyle.Render(f.MantissaString())
}
