package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToDense expands any matrix into gonum dense storage, meant for small verification problems
func ToDense(m mat.Matrix) *mat.Dense {
	return mat.DenseCopyOf(m)
}

// DenseTripleProduct computes scale * R * (A * P) with dense gonum products
func DenseTripleProduct(R, A, P mat.Matrix, scale float64) (C *mat.Dense) {
	var (
		AP mat.Dense
	)
	AP.Mul(ToDense(A), ToDense(P))
	C = &mat.Dense{}
	C.Mul(ToDense(R), &AP)
	C.Scale(scale, C)
	return
}

// MaxAbsDiff returns max |a_ij - b_ij|, a and b must have the same shape
func MaxAbsDiff(a, b mat.Matrix) (diff float64) {
	var (
		d mat.Dense
	)
	d.Sub(a, b)
	nr, nc := d.Dims()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			diff = math.Max(diff, math.Abs(d.At(i, j)))
		}
	}
	return
}
