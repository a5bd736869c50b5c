package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

/*
DOK is the dynamic sparse builder. Elements are inserted with Set, the most recent Set
for a given (i,j) wins and unset elements are implicitly zero. It is not safe for
concurrent insertion, so a DOK has exactly one writer during assembly.
*/
type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }
func (m DOK) NNZ() int            { return m.M.NNZ() }

func (m DOK) Set(i, j int, val float64) {
	m.checkWritable()
	m.M.Set(i, j, val)
}

func (m DOK) SetReadOnly(name ...string) DOK {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return m
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:    m.M.ToCSR(),
		name: m.name,
	}
}

// Clear releases the builder storage, the DOK is unusable afterward
func (m *DOK) Clear() {
	m.M = nil
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

/*
CSR is the fixed, query optimized sparse matrix. Once built it is only read, and can be
shared between goroutines.
*/
type CSR struct {
	M        *sparse.CSR
	readOnly bool
	name     string
}

// NewCSR returns an all zero nr x nc matrix
func NewCSR(nr, nc int) (R CSR) {
	R = CSR{
		sparse.NewCSR(nr, nc, make([]int, nr+1), nil, nil),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix                 { return m.M.T() }
func (m CSR) NNZ() int                      { return m.M.NNZ() }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }
func (m CSR) Data() []float64 {
	return m.RawMatrix().Data
}

func (m CSR) IsEmpty() bool { return m.M == nil }

func (m CSR) Name() string { return m.name }

func (m CSR) SetReadOnly(name ...string) CSR {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return m
}

func (m CSR) IsReadOnly() bool { return m.readOnly }

// DoNonZero calls fn for every stored element, row by row
func (m CSR) DoNonZero(fn func(i, j int, v float64)) {
	m.M.DoNonZero(fn)
}

func (m CSR) RowSums() (sums []float64) {
	var (
		nr, _ = m.Dims()
		raw   = m.RawMatrix()
	)
	sums = make([]float64, nr)
	for i := 0; i < nr; i++ {
		for ii := raw.Indptr[i]; ii < raw.Indptr[i+1]; ii++ {
			sums[i] += raw.Data[ii]
		}
	}
	return
}

// Scale multiplies every stored element by f in place
func (m CSR) Scale(f float64) CSR {
	m.checkWritable()
	if f == 1 {
		return m
	}
	data := m.Data()
	for i := range data {
		data[i] *= f
	}
	return m
}

func (m CSR) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

// Multiply computes C = scale * (A * B)
func Multiply(A, B CSR, scale float64) (C CSR) {
	var (
		_, ac = A.Dims()
		br, _ = B.Dims()
		c     sparse.CSR
	)
	if ac != br {
		err := fmt.Errorf("dimension mismatch in multiply of \"%v\" and \"%v\": %d columns x %d rows: %w",
			A.name, B.name, ac, br, mat.ErrShape)
		panic(err)
	}
	c.Mul(A.M, B.M)
	C = CSR{
		M:    &c,
		name: "unnamed - hint: pass a variable name to SetReadOnly()",
	}
	C.Scale(scale)
	return
}
