//go:build fastmath

package kernel

import (
	"github.com/meko-christian/algo-approx"

	"github.com/spume-sim/spume/vec"
)

// unitExp computes e**x for the Gaussian kernel using a fast approximation.
// The Gaussian tail already truncates at the tiny number, well above the
// approximation error.
func unitExp[T vec.Elem](x T) T {
	return T(approx.FastExp(float64(x)))
}
