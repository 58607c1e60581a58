package compaction

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"
)

type tsvRow struct {
	Chrom      string    `csv:"chrom"`
	Start      uint32    `csv:"start"`
	Stop       uint32    `csv:"stop"`
	Compaction nullFloat `csv:"compaction"`
}

type nullFloat struct {
	null.Float
}

// MarshalCSV writes null as an empty field.
func (n nullFloat) MarshalCSV() (string, error) {
	if !n.Valid {
		return "", nil
	}

	return strconv.FormatFloat(n.Float64, 'g', -1, 64), nil
}

// WriteTSV writes the series as a tab-separated table with a header and the
// window coordinates in the leading columns.
func WriteTSV(w io.Writer, s Series) error {
	rows := make([]tsvRow, 0, len(s))
	for _, entry := range s {
		rows = append(rows, tsvRow{
			Chrom:      entry.Chrom,
			Start:      entry.Start,
			Stop:       entry.Stop,
			Compaction: nullFloat{entry.Compaction},
		})
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return pfx.Err(err)
	}

	return nil
}
