package gamstats

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"
)

// How much of the stream is inspected to guess the delimiter
const sniffBytes = 64 * 1024

// SegregationTable holds one row per genomic window and one column per sample.
// Missing observations are NaN.
type SegregationTable struct {
	Windows []Window
	Samples []string
	Values  *mat.Dense
}

// SegregationRow is a single window and its per-sample values.
type SegregationRow struct {
	Window
	Values []float64
}

// SegregationReader streams the rows of a segregation table. Call Read until it
// returns nil, then check Err.
type SegregationReader struct {
	csv     *csv.Reader
	samples []string
	line    int
	err     error
}

// NewSegregationReader consumes the header of the table. The delimiter is
// detected from the start of the stream.
func NewSegregationReader(r io.Reader) (*SegregationReader, error) {
	br := bufio.NewReaderSize(r, sniffBytes)

	// Peek returns whatever is available along with an error if the stream is
	// shorter than sniffBytes.
	head, _ := br.Peek(sniffBytes)
	if len(head) == 0 {
		return nil, pfx.Err(fmt.Errorf("segregation table is empty"))
	}

	c := csv.NewReader(br)
	c.Comma = DetermineDelimiter(bytes.NewReader(head))
	c.Comment = '#'
	c.TrimLeadingSpace = true
	c.ReuseRecord = true

	header, err := c.Read()
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("reading segregation header: %w", err))
	}
	if len(header) < FirstSample {
		return nil, pfx.Err(fmt.Errorf("segregation header has %d columns, expected at least %d (chrom, start, stop)", len(header), FirstSample))
	}

	samples := make([]string, 0, len(header)-FirstSample)
	for _, v := range header[FirstSample:] {
		samples = append(samples, strings.TrimSpace(v))
	}

	return &SegregationReader{
		csv:     c,
		samples: samples,
		line:    1,
	}, nil
}

// Samples returns the sample names from the header.
func (s *SegregationReader) Samples() []string {
	return s.samples
}

func (s *SegregationReader) Err() error {
	return s.err
}

// Read returns the next row, or nil at the end of the table or on error.
func (s *SegregationReader) Read() *SegregationRow {
	cols, err := s.csv.Read()
	if err == io.EOF {
		return nil
	} else if err != nil {
		s.err = pfx.Err(err)
		return nil
	}
	s.line++

	row := &SegregationRow{
		Window: Window{Chrom: cols[Chrom]},
		Values: make([]float64, 0, len(s.samples)),
	}

	if row.Start, err = parseCoordinate(cols[Start]); err != nil {
		s.err = pfx.Err(fmt.Errorf("line %d: start: %w", s.line, err))
		return nil
	}
	if row.Stop, err = parseCoordinate(cols[Stop]); err != nil {
		s.err = pfx.Err(fmt.Errorf("line %d: stop: %w", s.line, err))
		return nil
	}

	for i, v := range cols[FirstSample:] {
		value, err := parseObservation(v)
		if err != nil {
			s.err = pfx.Err(fmt.Errorf("line %d: sample %s: %w", s.line, s.samples[i], err))
			return nil
		}
		row.Values = append(row.Values, value)
	}

	return row
}

func parseCoordinate(v string) (uint32, error) {
	coord64, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(coord64), nil
}

// parseObservation maps the spellings of a missing value to NaN.
func parseObservation(v string) (float64, error) {
	switch v = strings.TrimSpace(v); v {
	case "", "NA", "N/A", "na", "null", "NULL":
		return math.NaN(), nil
	}

	return strconv.ParseFloat(v, 64)
}

// ReadSegregation loads a whole segregation table into memory.
func ReadSegregation(r io.Reader) (*SegregationTable, error) {
	rdr, err := NewSegregationReader(r)
	if err != nil {
		return nil, err
	}

	out := &SegregationTable{
		Samples: rdr.Samples(),
	}

	var values []float64
	for row := rdr.Read(); row != nil; row = rdr.Read() {
		out.Windows = append(out.Windows, row.Window)
		values = append(values, row.Values...)
	}
	if err := rdr.Err(); err != nil {
		return nil, err
	}

	if len(out.Windows) == 0 {
		return nil, pfx.Err(fmt.Errorf("segregation table has a header but no windows"))
	}
	if len(out.Samples) == 0 {
		// gonum refuses zero-width matrices
		return nil, pfx.Err(fmt.Errorf("segregation table has no sample columns"))
	}

	out.Values = mat.NewDense(len(out.Windows), len(out.Samples), values)

	return out, nil
}

// OpenSegregation reads the segregation table at path. Paths starting with
// gs:// are fetched with client when it is non-nil, and compressed files are
// decompressed transparently.
func OpenSegregation(path string, client *storage.Client) (*SegregationTable, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	src, _, err := MaybeOpenSeekerFromGoogleStorage(path, client)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	rc, err := MaybeDecompressReadCloser(src)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}
	defer rc.Close()

	seg, err := ReadSegregation(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return seg, nil
}
