package contingency

import (
	"math"
	"math/rand"
	"testing"
)

const tolerance = 1e-9

func mustPairwise(t *testing.T, rows [2][2]float64) *Table {
	t.Helper()
	tab, err := Pairwise(rows)
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func sameFloat(got, expected float64) bool {
	if math.IsNaN(expected) {
		return math.IsNaN(got)
	}
	return math.Abs(got-expected) <= tolerance
}

type scenario struct {
	Name   string
	Counts [2][2]float64

	Cosegregation float64
	Expected      float64
	D             float64
}

func TestScenarios(t *testing.T) {
	nan := math.NaN()

	for _, v := range []scenario{
		// Perfect linkage: two cells are empty, so the full joint table trips
		// the zero guard even though both marginals are balanced.
		{"linked", [2][2]float64{{10, 0}, {0, 10}}, nan, 0.25, 0.25},
		{"independent", [2][2]float64{{5, 5}, {5, 5}}, 0.25, 0.25, 0},
		{"unobserved joint state", [2][2]float64{{10, 5}, {0, 5}}, nan, 0.125, 0.125},
		{"locus never detected", [2][2]float64{{10, 5}, {0, 0}}, nan, nan, nan},
		{"all-detected corner empty", [2][2]float64{{5, 5}, {5, 0}}, nan, 1.0 / 9, nan},
		{"empty table", [2][2]float64{{0, 0}, {0, 0}}, nan, nan, nan},
	} {
		tab := mustPairwise(t, v.Counts)

		if got := Cosegregation(tab); !sameFloat(got, v.Cosegregation) {
			t.Errorf("%s: Cosegregation: Got %v, expected %v", v.Name, got, v.Cosegregation)
		}
		if got := Expected(tab); !sameFloat(got, v.Expected) {
			t.Errorf("%s: Expected: Got %v, expected %v", v.Name, got, v.Expected)
		}
		if got := D(tab); !sameFloat(got, v.D) {
			t.Errorf("%s: D: Got %v, expected %v", v.Name, got, v.D)
		}
	}
}

func TestLinkedTableIntermediates(t *testing.T) {
	tab := mustPairwise(t, [2][2]float64{{10, 0}, {0, 10}})

	probs := FrequencyToProbability(tab)
	for i, expected := range []float64{0.5, 0, 0, 0.5} {
		if got := probs.Values()[i]; !sameFloat(got, expected) {
			t.Errorf("Cell %d: Got %v, expected %v", i, got, expected)
		}
	}

	marginals := MarginalProbabilities(probs)
	for locus := 0; locus < 2; locus++ {
		if got := marginals.At(locus, Detected); !sameFloat(got, 0.5) {
			t.Errorf("Locus %d detected: Got %v, expected 0.5", locus, got)
		}
		if got := marginals.At(locus, NotDetected); !sameFloat(got, 0.5) {
			t.Errorf("Locus %d not detected: Got %v, expected 0.5", locus, got)
		}
	}

	if EitherLocusNotDetected(marginals) {
		t.Errorf("Marginals %v should not trip the zero guard", marginals.RawMatrix().Data)
	}
	if !EitherLocusNotDetected(probs) {
		t.Errorf("Probabilities %v should trip the zero guard", probs.Values())
	}
}

func TestInputIsNotModified(t *testing.T) {
	tab := mustPairwise(t, [2][2]float64{{1, 2}, {3, 4}})
	before := tab.Values()

	Cosegregation(tab)
	Expected(tab)
	D(tab)
	FrequencyToProbability(tab)

	for i, v := range tab.Values() {
		if v != before[i] {
			t.Errorf("Cell %d changed from %v to %v", i, before[i], v)
		}
	}
}

func randomTable(rng *rand.Rand, loci int, zeroes bool) *Table {
	values := make([]float64, 1<<loci)
	for i := range values {
		values[i] = float64(rng.Intn(50))
		if !zeroes {
			values[i]++
		}
	}

	tab, err := FromLoci(loci, values)
	if err != nil {
		panic(err)
	}
	return tab
}

func TestDIsObservedMinusExpected(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		tab := randomTable(rng, 1+rng.Intn(5), false)

		c, e, d := Cosegregation(tab), Expected(tab), D(tab)
		if math.IsNaN(c) || math.IsNaN(e) || math.IsNaN(d) {
			t.Fatalf("Table %v: got NaN with every cell observed (%v, %v, %v)", tab.Values(), c, e, d)
		}

		if math.Abs(d-(c-e)) > tolerance {
			t.Errorf("Table %v: D %v != Cosegregation %v - Expected %v", tab.Values(), d, c, e)
		}

		probs := FrequencyToProbability(tab)
		if got := probs.Corner(); c != got {
			t.Errorf("Table %v: Cosegregation %v is not the corner probability %v", tab.Values(), c, got)
		}
	}
}

func TestCosegregationIgnoresTinyProbabilities(t *testing.T) {
	tab, err := FromLoci(2, []float64{1e-300, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}

	if got := Cosegregation(tab); math.IsNaN(got) || math.Abs(got-1.0/3) > 1e-12 {
		t.Errorf("Got %v, expected 1/3", got)
	}
}

func TestThreeLoci(t *testing.T) {
	// Every cell observed; cell i holds i+1 samples, 36 in total.
	tab, err := New([]int{2, 2, 2}, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}

	if got, expected := Cosegregation(tab), 8.0/36; !sameFloat(got, expected) {
		t.Errorf("Cosegregation: Got %v, expected %v", got, expected)
	}

	exp := (26.0 / 36) * (22.0 / 36) * (20.0 / 36)
	if got := Expected(tab); !sameFloat(got, exp) {
		t.Errorf("Expected: Got %v, expected %v", got, exp)
	}

	if got, expected := D(tab), 8.0/36-exp; !sameFloat(got, expected) {
		t.Errorf("D: Got %v, expected %v", got, expected)
	}
}
