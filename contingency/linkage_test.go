package contingency

import (
	"errors"
	"math"
	"testing"
)

type linkageExpectations struct {
	Counts [2][2]float64

	Dprime   float64
	RSquared float64
}

func TestLinkage(t *testing.T) {
	nan := math.NaN()

	for _, v := range []linkageExpectations{
		{[2][2]float64{{5, 5}, {5, 5}}, 0, 0},
		{[2][2]float64{{10, 0}, {0, 10}}, 1, 1},
		{[2][2]float64{{2, 8}, {8, 2}}, -0.6, 0.36},
		{[2][2]float64{{5, 5}, {5, 0}}, nan, nan},
		{[2][2]float64{{10, 5}, {0, 0}}, nan, nan},
	} {
		tab := mustPairwise(t, v.Counts)

		dp, err := Dprime(tab)
		if err != nil {
			t.Fatal(err)
		}
		if !sameFloat(dp, v.Dprime) {
			t.Errorf("%v: Dprime: Got %v, expected %v", v.Counts, dp, v.Dprime)
		}

		r2, err := RSquared(tab)
		if err != nil {
			t.Fatal(err)
		}
		if !sameFloat(r2, v.RSquared) {
			t.Errorf("%v: RSquared: Got %v, expected %v", v.Counts, r2, v.RSquared)
		}
	}
}

func TestChiSquareP(t *testing.T) {
	p, err := ChiSquareP(mustPairwise(t, [2][2]float64{{5, 5}, {5, 5}}))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p-1) > 1e-6 {
		t.Errorf("Independent loci: Got P %v, expected 1", p)
	}

	// chi square of 20 on 1 degree of freedom
	p, err = ChiSquareP(mustPairwise(t, [2][2]float64{{10, 0}, {0, 10}}))
	if err != nil {
		t.Fatal(err)
	}
	if expected := 7.744216e-06; math.Abs(p-expected)/expected > 1e-4 {
		t.Errorf("Linked loci: Got P %v, expected %v", p, expected)
	}
}

func TestChiSquareUpperTail(t *testing.T) {
	for _, v := range []struct {
		X        float64
		Expected float64
	}{
		{0, 1},
		{3.841458820694124, 0.05},
		{5, 0.025347318677468325},
		{20, 7.744216e-06},
	} {
		if p := chiSquareUpperTail(v.X); math.Abs(p-v.Expected)/v.Expected > 1e-6 {
			t.Errorf("x=%v: Got P %v, expected %v", v.X, p, v.Expected)
		}
	}

	if p := chiSquareUpperTail(math.NaN()); !math.IsNaN(p) {
		t.Errorf("Got P %v for NaN, expected NaN", p)
	}
}

func TestFisherExact(t *testing.T) {
	p, err := FisherExact(mustPairwise(t, [2][2]float64{{10, 0}, {0, 10}}))
	if err != nil {
		t.Fatal(err)
	}

	// Two equally extreme tables, each with probability 1 / C(20, 10)
	if expected := 2.0 / 184756; math.Abs(p-expected)/expected > 1e-3 {
		t.Errorf("Got P %v, expected %v", p, expected)
	}

	p, err = FisherExact(mustPairwise(t, [2][2]float64{{0.5, 1}, {1, 1}}))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(p) {
		t.Errorf("Fractional counts: Got P %v, expected NaN", p)
	}
}

func TestPairwiseStatisticsRejectOtherLocusCounts(t *testing.T) {
	tab, err := FromLoci(3, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}

	for name, fn := range map[string]func(*Table) (float64, error){
		"Dprime":      Dprime,
		"RSquared":    RSquared,
		"ChiSquareP":  ChiSquareP,
		"FisherExact": FisherExact,
	} {
		if _, err := fn(tab); !errors.Is(err, ErrNotPairwise) {
			t.Errorf("%s: Got error %v, expected %v", name, err, ErrNotPairwise)
		}
	}
}

func TestSummarize(t *testing.T) {
	tab, err := FromLoci(3, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}

	s := Summarize(tab)
	if s.Loci != 3 || s.Total != 36 {
		t.Errorf("Got %d loci and total %v, expected 3 and 36", s.Loci, s.Total)
	}
	if !sameFloat(s.D, D(tab)) {
		t.Errorf("D: Got %v, expected %v", s.D, D(tab))
	}
	for name, v := range map[string]float64{"Dprime": s.Dprime, "RSquared": s.RSquared, "ChiSquareP": s.ChiSquareP, "FisherP": s.FisherP} {
		if !math.IsNaN(v) {
			t.Errorf("%s: Got %v for 3 loci, expected NaN", name, v)
		}
	}

	s = Summarize(mustPairwise(t, [2][2]float64{{2, 8}, {8, 2}}))
	if !sameFloat(s.Dprime, -0.6) || !sameFloat(s.RSquared, 0.36) {
		t.Errorf("Got Dprime %v and RSquared %v, expected -0.6 and 0.36", s.Dprime, s.RSquared)
	}
	if math.IsNaN(s.FisherP) || math.IsNaN(s.ChiSquareP) {
		t.Errorf("Got NaN P values for a fully observed 2x2 table: %+v", s)
	}
}
