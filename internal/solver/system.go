package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/goframe/internal/structural"
)

// solveDense solves the assembled square slope-deflection system
// a·x = b by LU decomposition. A singular or badly conditioned matrix
// surfaces as a *structural.NumericalError instead of a zero-valued
// result.
func solveDense(a *mat.Dense, b []float64) ([]float64, error) {
	n := len(b)
	if n == 0 {
		return nil, nil
	}
	var lu mat.LU
	lu.Factorize(a)
	x := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(x, false, mat.NewVecDense(n, b)); err != nil {
		return nil, &structural.NumericalError{Op: "slope-deflection solve", Err: err}
	}
	out := make([]float64, n)
	copy(out, x.RawVector().Data)
	return out, nil
}

// solveLeastSquares solves the possibly non-square system a·x = b in
// the least-squares sense via QR, used to recover member axial forces
// from joint force balance.
func solveLeastSquares(a *mat.Dense, b []float64) ([]float64, error) {
	rows, cols := a.Dims()
	if cols == 0 {
		return nil, nil
	}
	var qr mat.QR
	qr.Factorize(a)
	x := mat.NewDense(cols, 1, nil)
	if err := qr.SolveTo(x, false, mat.NewDense(rows, 1, b)); err != nil {
		return nil, &structural.NumericalError{Op: "axial force recovery", Err: err}
	}
	out := make([]float64, cols)
	for i := range out {
		out[i] = x.At(i, 0)
	}
	return out, nil
}
