package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/gamstats/contingency"
	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"
)

var header = []string{"id", "loci", "total", "cosegregation", "expected", "D", "Dprime", "r_squared", "chisq_p", "fisher_p"}

// Record is one output row. Statistics that could not be computed are null.
type Record struct {
	ID            string     `db:"id"`
	Loci          int        `db:"loci"`
	Total         float64    `db:"total"`
	Cosegregation null.Float `db:"cosegregation"`
	Expected      null.Float `db:"expected"`
	D             null.Float `db:"d"`
	Dprime        null.Float `db:"dprime"`
	RSquared      null.Float `db:"r_squared"`
	ChiSquareP    null.Float `db:"chisq_p"`
	FisherP       null.Float `db:"fisher_p"`
}

func NewRecord(id string, s contingency.Summary) Record {
	return Record{
		ID:            id,
		Loci:          s.Loci,
		Total:         s.Total,
		Cosegregation: nanToNull(s.Cosegregation),
		Expected:      nanToNull(s.Expected),
		D:             nanToNull(s.D),
		Dprime:        nanToNull(s.Dprime),
		RSquared:      nanToNull(s.RSquared),
		ChiSquareP:    nanToNull(s.ChiSquareP),
		FisherP:       nanToNull(s.FisherP),
	}
}

func nanToNull(f float64) null.Float {
	return null.NewFloat(f, !math.IsNaN(f))
}

// TSV renders the record in the column order of header, with NA for null.
func (r Record) TSV() string {
	out := []string{r.ID, strconv.Itoa(r.Loci), strconv.FormatFloat(r.Total, 'g', -1, 64)}
	for _, v := range []null.Float{r.Cosegregation, r.Expected, r.D, r.Dprime, r.RSquared, r.ChiSquareP, r.FisherP} {
		out = append(out, NullFloatFormatter(v))
	}

	return strings.Join(out, "\t")
}

func NullFloatFormatter(n null.Float) string {
	if !n.Valid {
		return "NA"
	}

	return strconv.FormatFloat(n.Float64, 'g', -1, 64)
}

func parseTable(line []string) (string, *contingency.Table, error) {
	if len(line) < 3 {
		return "", nil, fmt.Errorf("expected an ID and at least 2 counts, got %v", line)
	}

	counts := make([]float64, 0, len(line)-1)
	for _, v := range line[1:] {
		count, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return "", nil, pfx.Err(fmt.Errorf("table %s: %w", line[0], err))
		}
		counts = append(counts, count)
	}

	tab, err := contingency.FromCells(counts)
	if err != nil {
		return "", nil, pfx.Err(fmt.Errorf("table %s: %w", line[0], err))
	}

	return line[0], tab, nil
}

func openWithDelim(inputFile string, delim rune) (*csv.Reader, func() error, error) {
	f, err := os.Open(inputFile)
	if err != nil {
		return nil, nil, err
	}

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.Comma = delim
	r.Comment = '#'

	// Tables of different locus counts may share a file
	r.FieldsPerRecord = -1

	return r, f.Close, nil
}
