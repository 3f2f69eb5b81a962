// Package linear provides a dense linear-system solver.
//
// The solver implements Gaussian elimination with partial pivoting. It is
// written for general N, though the library only ever solves the 8x8 system
// that yields projective transform coefficients. Partial pivoting matters
// there: corner coordinates vary by orders of magnitude across image
// resolutions.
package linear
