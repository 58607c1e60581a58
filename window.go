package gamstats

import "fmt"

// Map the leading columns of a segregation table to their positions. Every
// column after Stop holds one sample.
const (
	Chrom int = iota
	Start
	Stop
	FirstSample
)

// Window is one genomic window, a row of a segregation table.
type Window struct {
	Chrom string
	Start uint32
	Stop  uint32
}

// String renders the window as chrom:start-stop.
func (w Window) String() string {
	return fmt.Sprintf("%s:%d-%d", w.Chrom, w.Start, w.Stop)
}
