package linear

import "math"

// Solve solves the N x N system a*x = b using Gaussian elimination with
// partial pivoting and returns x.
//
// Solve takes ownership of a and b and destroys them during elimination;
// callers that need the inputs afterwards must pass copies.
//
// A singular system is not an error: a zero pivot after row selection
// divides through and the result carries NaN or Inf entries. Detecting
// degeneracy is the caller's responsibility.
func Solve(a [][]float64, b []float64) []float64 {
	n := len(a)

	for col := 0; col < n; col++ {
		// Select the row at or below the diagonal with the largest
		// absolute value in this column.
		pivot := col
		best := math.Abs(a[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(a[r][col]); v > best {
				best = v
				pivot = r
			}
		}
		if pivot != col {
			a[col], a[pivot] = a[pivot], a[col]
			b[col], b[pivot] = b[pivot], b[col]
		}

		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := b[i]
		for c := i + 1; c < n; c++ {
			sum -= a[i][c] * x[c]
		}
		x[i] = sum / a[i][i]
	}

	return x
}
