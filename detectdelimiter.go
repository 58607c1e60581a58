package gamstats

import (
	"bytes"
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// In order of preference when the detector has no opinion
var plausibleDelimiters = []rune{'\t', ',', ' ', ';', '|'}

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader. Segregation tables are tab-delimited unless the data
// says otherwise.
func DetermineDelimiter(r io.Reader) rune {
	sample, err := io.ReadAll(r)
	if err != nil || len(sample) == 0 {
		return '\t'
	}

	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(sample), '"')

	for _, v := range delimiters {
		if len(v) < 1 {
			continue
		}
		if isPlausibleDelimiter(rune(v[0])) {
			return rune(v[0])
		}
	}

	// Fall back to whichever plausible delimiter the header uses
	header := sample
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		header = sample[:i]
	}
	for _, delim := range plausibleDelimiters {
		if bytes.ContainsRune(header, delim) {
			return delim
		}
	}

	return '\t'
}

func isPlausibleDelimiter(c rune) bool {
	for _, v := range plausibleDelimiters {
		if c == v {
			return true
		}
	}
	return false
}
