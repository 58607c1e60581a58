package contingency

import (
	"errors"
	"math"

	fet "github.com/glycerine/golang-fisher-exact"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNotPairwise is returned by statistics that are only defined for two
// loci.
var ErrNotPairwise = errors.New("statistic is only defined for a table of exactly 2 loci")

type pairwise struct {
	n      float64
	d      float64
	pA, qA float64
	pB, qB float64
}

func newPairwise(counts *Table) (pairwise, error) {
	if counts.Loci() != 2 {
		return pairwise{}, ErrNotPairwise
	}

	marginals := MarginalProbabilities(FrequencyToProbability(counts))

	return pairwise{
		n:  counts.Sum(),
		d:  D(counts),
		pA: marginals.At(0, Detected),
		qA: marginals.At(0, NotDetected),
		pB: marginals.At(1, Detected),
		qB: marginals.At(1, NotDetected),
	}, nil
}

// Dprime is Lewontin's normalized linkage disequilibrium, D divided by the
// largest D the marginal frequencies permit with the same sign.
func Dprime(counts *Table) (float64, error) {
	p, err := newPairwise(counts)
	if err != nil {
		return math.NaN(), err
	}

	return p.dprime(), nil
}

func (p pairwise) dprime() float64 {
	if math.IsNaN(p.d) {
		return math.NaN()
	}

	var dmax float64
	switch {
	case p.d < 0:
		dmax = math.Min(p.pA*p.pB, p.qA*p.qB)
	case p.d > 0:
		dmax = math.Min(p.pA*p.qB, p.qA*p.pB)
	default:
		return 0
	}

	if dmax == 0 {
		return math.NaN()
	}

	return p.d / dmax
}

// RSquared is the squared correlation between the detection of the two loci.
func RSquared(counts *Table) (float64, error) {
	p, err := newPairwise(counts)
	if err != nil {
		return math.NaN(), err
	}

	return p.rSquared(), nil
}

func (p pairwise) rSquared() float64 {
	denom := p.pA * p.qA * p.pB * p.qB
	if math.IsNaN(p.d) || denom == 0 {
		return math.NaN()
	}

	return p.d * p.d / denom
}

// ChiSquareP is the P value of the 1 degree of freedom chi square test of
// independence between the two loci, using chi square = N * r^2 where N is the
// total count of the table.
func ChiSquareP(counts *Table) (float64, error) {
	p, err := newPairwise(counts)
	if err != nil {
		return math.NaN(), err
	}

	return p.chiSquareP(), nil
}

func (p pairwise) chiSquareP() float64 {
	r2 := p.rSquared()
	if math.IsNaN(r2) {
		return math.NaN()
	}

	return chiSquareUpperTail(p.n * r2)
}

// chiSquareUpperTail uses the survival function directly rather than 1 - CDF,
// which loses all precision for large x.
func chiSquareUpperTail(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}

	return distuv.ChiSquared{K: 1}.Survival(x)
}

// FisherExact is the two-sided P value of Fisher's exact test on a 2x2 table.
// It is NaN unless every cell is a whole number.
func FisherExact(counts *Table) (float64, error) {
	if counts.Loci() != 2 {
		return math.NaN(), ErrNotPairwise
	}

	if counts.Sum() == 0 {
		return math.NaN(), nil
	}

	cells := make([]int, 0, counts.Len())
	for _, v := range counts.data {
		if v != math.Trunc(v) || v > math.MaxInt32 {
			return math.NaN(), nil
		}
		cells = append(cells, int(v))
	}

	// Nomenclature of the test:
	//
	//    n11  n12
	//    n21  n22
	//
	// with n11 the samples in which both loci were detected.
	_, _, _, twop := fet.FisherExactTest(cells[3], cells[2], cells[1], cells[0])

	return twop, nil
}

// Summary holds every statistic of one contingency table. The pairwise fields
// are NaN when the table does not have exactly 2 loci.
type Summary struct {
	Loci          int
	Total         float64
	Cosegregation float64
	Expected      float64
	D             float64
	Dprime        float64
	RSquared      float64
	ChiSquareP    float64
	FisherP       float64
}

// Summarize computes every statistic of counts. Insufficient data shows up as
// NaN fields, never as an error.
func Summarize(counts *Table) Summary {
	s := Summary{
		Loci:          counts.Loci(),
		Total:         counts.Sum(),
		Cosegregation: Cosegregation(counts),
		Expected:      Expected(counts),
		D:             D(counts),
		Dprime:        math.NaN(),
		RSquared:      math.NaN(),
		ChiSquareP:    math.NaN(),
		FisherP:       math.NaN(),
	}

	p, err := newPairwise(counts)
	if err != nil {
		return s
	}

	s.Dprime = p.dprime()
	s.RSquared = p.rSquared()
	s.ChiSquareP = p.chiSquareP()
	s.FisherP, _ = FisherExact(counts)

	return s
}
