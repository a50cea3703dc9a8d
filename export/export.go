package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

// DefaultFileName is the name suggested for a CSV download.
const DefaultFileName = "frequencies.csv"

// DefaultBarWidth is the length of the longest bar WriteBars draws when no
// width is given.
const DefaultBarWidth = 50

// Header is the CSV header row: outcome index and percentage.
var Header = []string{"k", "p"}

// ErrNilWriter indicates a nil io.Writer was passed to a writer function.
var ErrNilWriter = errors.New("export: nil writer")

// Point is one plotted sample: x = outcome count, y = percentage.
type Point struct {
	K     int
	Value float64
}

// WriteCSV writes the header and one "index,value" record per element.
func WriteCSV(w io.Writer, values []decimal.Decimal, scale int32) error {
	if w == nil {
		return ErrNilWriter
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for k, v := range values {
		if err := cw.Write([]string{strconv.Itoa(k), v.StringFixed(scale)}); err != nil {
			return fmt.Errorf("export: write row %d: %w", k, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}

// Series converts values to plot points. This is the only place a value
// becomes a float64, and only for drawing.
func Series(values []decimal.Decimal) []Point {
	out := make([]Point, len(values))
	for k, v := range values {
		out[k] = Point{K: k, Value: v.InexactFloat64()}
	}
	return out
}

// WriteTable writes values as a right-aligned two-column text table.
func WriteTable(w io.Writer, values []decimal.Decimal, scale int32) error {
	if w == nil {
		return ErrNilWriter
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t\n", Header[0], Header[1])
	for k, v := range values {
		fmt.Fprintf(tw, "%d\t%s\t\n", k, v.StringFixed(scale))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("export: flush table: %w", err)
	}
	return nil
}

// WriteBars draws the distribution as a horizontal text bar chart built on
// Series: one line per k, the tallest bar width characters long, followed by
// the percentage with two decimals. width <= 0 selects DefaultBarWidth.
func WriteBars(w io.Writer, values []decimal.Decimal, width int) error {
	if w == nil {
		return ErrNilWriter
	}
	if width <= 0 {
		width = DefaultBarWidth
	}

	points := Series(values)
	peak := 0.0
	for _, pt := range points {
		peak = math.Max(peak, pt.Value)
	}
	label := len(strconv.Itoa(len(points) - 1))
	for _, pt := range points {
		bar := 0
		if peak > 0 {
			bar = int(math.Round(pt.Value / peak * float64(width)))
		}
		if _, err := fmt.Fprintf(w, "%*d |%s %.2f\n", label, pt.K, strings.Repeat("#", bar), pt.Value); err != nil {
			return fmt.Errorf("export: write bar %d: %w", pt.K, err)
		}
	}
	return nil
}
