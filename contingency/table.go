// Package contingency computes co-segregation statistics from the contingency
// tables of GAM loci.
package contingency

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Table is an n-dimensional contingency table in which every axis has length
// 2. Axis j is locus j; index 1 on that axis means the locus was detected. The
// cells are stored row-major, so axis 0 varies slowest and the final cell is
// the one where every locus was detected. A Table is never modified after
// construction. Build one with New, FromLoci, FromCells or Pairwise; the zero
// Table has no cells, and every statistic of it is NaN.
type Table struct {
	loci int
	data []float64
}

// New validates shape and counts and copies them into a Table. Every entry in
// shape must be 2 and values must hold exactly one count per cell.
func New(shape []int, values []float64) (*Table, error) {
	if len(shape) < 1 {
		return nil, fmt.Errorf("contingency table must have at least 1 axis, got %d", len(shape))
	}

	for axis, size := range shape {
		if size != 2 {
			return nil, fmt.Errorf("axis %d has length %d; every axis of a contingency table must have length 2", axis, size)
		}
	}

	return FromLoci(len(shape), values)
}

// FromLoci builds a Table for the given number of loci from 2^loci row-major
// counts.
func FromLoci(loci int, values []float64) (*Table, error) {
	if loci < 1 {
		return nil, fmt.Errorf("contingency table must describe at least 1 locus, got %d", loci)
	}
	if loci > 30 {
		return nil, fmt.Errorf("%d loci would need 2^%d cells", loci, loci)
	}

	if cells := 1 << loci; len(values) != cells {
		return nil, fmt.Errorf("a table of %d loci has %d cells, but %d values were given", loci, cells, len(values))
	}

	for i, v := range values {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("cell %d is not a number", i)
		}
		if math.IsInf(v, 0) {
			return nil, fmt.Errorf("cell %d holds an infinite count", i)
		}
		if v < 0 {
			return nil, fmt.Errorf("cell %d holds a negative count (%v)", i, v)
		}
	}

	data := make([]float64, len(values))
	copy(data, values)

	return &Table{loci: loci, data: data}, nil
}

// FromCells is like FromLoci but infers the locus count from the number of
// cells, which must be a power of two no smaller than 2.
func FromCells(values []float64) (*Table, error) {
	n := len(values)
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%d cells cannot form a contingency table; need a power of two >= 2", n)
	}

	loci := 0
	for c := n; c > 1; c >>= 1 {
		loci++
	}

	return FromLoci(loci, values)
}

// Pairwise builds the 2x2 table of two loci. rows[a][b] is the count of
// samples with locus 0 in state a and locus 1 in state b.
func Pairwise(rows [2][2]float64) (*Table, error) {
	return FromLoci(2, []float64{rows[0][0], rows[0][1], rows[1][0], rows[1][1]})
}

// Loci is the number of axes.
func (t *Table) Loci() int {
	return t.loci
}

// Shape mirrors the shape of an n-dimensional array: n entries of 2.
func (t *Table) Shape() []int {
	out := make([]int, t.loci)
	for i := range out {
		out[i] = 2
	}
	return out
}

// Len is the number of cells, 2^Loci.
func (t *Table) Len() int {
	return len(t.data)
}

// Values returns a copy of the row-major cells.
func (t *Table) Values() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)
	return out
}

// At returns the cell at the given multi-index. It panics if the index does
// not address a cell, like indexing a slice out of range would.
func (t *Table) At(index ...int) float64 {
	return t.data[t.offset(index)]
}

func (t *Table) offset(index []int) int {
	if len(index) != t.loci {
		panic(fmt.Sprintf("contingency: index of %d axes into a table of %d", len(index), t.loci))
	}

	off := 0
	for axis, i := range index {
		if i != 0 && i != 1 {
			panic(fmt.Sprintf("contingency: index %d out of range on axis %d", i, axis))
		}
		off += i * t.stride(axis)
	}

	return off
}

func (t *Table) stride(axis int) int {
	return 1 << (t.loci - 1 - axis)
}

// Sum is the total over every cell.
func (t *Table) Sum() float64 {
	return floats.Sum(t.data)
}

// Min is the smallest cell. A NaN in the first cell makes the result NaN.
func (t *Table) Min() float64 {
	return floats.Min(t.data)
}

// Corner is the cell where every locus is in its detected state.
func (t *Table) Corner() float64 {
	return t.data[len(t.data)-1]
}

// Transpose returns a new table whose axis k is axis perm[k] of t, matching
// the semantics of numpy's ndarray.transpose.
func (t *Table) Transpose(perm []int) (*Table, error) {
	if len(perm) != t.loci {
		return nil, fmt.Errorf("permutation of %d axes cannot transpose a table of %d", len(perm), t.loci)
	}

	seen := make([]bool, t.loci)
	for _, axis := range perm {
		if axis < 0 || axis >= t.loci || seen[axis] {
			return nil, fmt.Errorf("%v is not a permutation of the axes 0..%d", perm, t.loci-1)
		}
		seen[axis] = true
	}

	return t.transpose(perm), nil
}

// transpose assumes perm is valid.
func (t *Table) transpose(perm []int) *Table {
	out := &Table{loci: t.loci, data: make([]float64, len(t.data))}

	for o := range out.data {
		src := 0
		for k, axis := range perm {
			bit := (o >> (t.loci - 1 - k)) & 1
			src += bit * t.stride(axis)
		}
		out.data[o] = t.data[src]
	}

	return out
}

// halves sums the cells where locus 0 was not detected (index 0) and where it
// was detected (index 1).
func (t *Table) halves() (absent, present float64) {
	half := len(t.data) / 2
	return floats.Sum(t.data[:half]), floats.Sum(t.data[half:])
}
