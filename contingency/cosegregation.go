package contingency

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cosegregation returns the frequency with which every locus of the table was
// detected in the same sample. It is NaN if any joint configuration of the
// loci was never observed.
func Cosegregation(counts *Table) float64 {
	if counts.Len() == 0 {
		return math.NaN()
	}

	probs := FrequencyToProbability(counts)

	if EitherLocusNotDetected(probs) {
		return math.NaN()
	}

	return probs.Corner()
}

// Expected returns the co-segregation frequency expected if the loci were
// independent: the product of each locus' marginal probability of detection.
// It is NaN if some locus was always, or never, detected.
func Expected(counts *Table) float64 {
	if counts.Len() == 0 {
		return math.NaN()
	}

	probs := FrequencyToProbability(counts)
	marginals := MarginalProbabilities(probs)

	if EitherLocusNotDetected(marginals) {
		return math.NaN()
	}

	return expected(marginals)
}

func expected(marginals Marginals) float64 {
	return floats.Prod(marginals.Detected())
}

// D returns the linkage disequilibrium of the loci: observed co-segregation
// minus Expected. Unlike Cosegregation, only the all-detected cell must be
// non-zero, not every cell. The result is not clamped to [-1, 1].
func D(counts *Table) float64 {
	if counts.Len() == 0 {
		return math.NaN()
	}

	probs := FrequencyToProbability(counts)
	marginals := MarginalProbabilities(probs)

	if EitherLocusNotDetected(marginals) {
		return math.NaN()
	}

	observed := probs.Corner()
	if observed == 0 {
		return math.NaN()
	}

	return observed - expected(marginals)
}
