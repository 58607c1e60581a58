package contingency

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Column indices of a Marginals matrix
const (
	Detected int = iota
	NotDetected
)

// Extremes is satisfied by anything holding probabilities whose smallest entry
// can be reported: a probability *Table or a Marginals matrix.
type Extremes interface {
	Min() float64
}

// FrequencyToProbability divides every cell by the table total. A table that
// sums to zero yields NaN in every cell, which every statistic downstream then
// reports as NaN.
func FrequencyToProbability(counts *Table) *Table {
	out := counts.Values()
	floats.Scale(1/counts.Sum(), out)

	return &Table{loci: counts.loci, data: out}
}

// Marginals is the n x 2 matrix of marginal probabilities of a contingency
// table. Row j holds P(locus j detected) in column Detected and P(locus j not
// detected) in column NotDetected.
type Marginals struct {
	*mat.Dense
}

// MarginalProbabilities rotates each axis of probs to the front in turn and
// sums the detected and not-detected halves of the rotated table.
func MarginalProbabilities(probs *Table) Marginals {
	perms := cachedTranspositions(probs.loci)

	data := make([]float64, 0, 2*len(perms))
	for _, perm := range perms {
		absent, present := probs.transpose(perm).halves()
		data = append(data, present, absent)
	}

	return Marginals{mat.NewDense(len(perms), 2, data)}
}

// Min is the smallest marginal probability.
func (m Marginals) Min() float64 {
	return mat.Min(m.Dense)
}

// Loci is the number of rows.
func (m Marginals) Loci() int {
	r, _ := m.Dims()
	return r
}

// Detected returns P(locus detected) for every locus, in axis order.
func (m Marginals) Detected() []float64 {
	return mat.Col(nil, Detected, m.Dense)
}

// NotDetected returns P(locus not detected) for every locus, in axis order.
func (m Marginals) NotDetected() []float64 {
	return mat.Col(nil, NotDetected, m.Dense)
}

// EitherLocusNotDetected reports whether any probability in probs is exactly
// zero. There is no tolerance: 1e-300 counts as observed.
func EitherLocusNotDetected(probs Extremes) bool {
	return probs.Min() == 0.0
}
