//go:build !fastmath

package kernel

import (
	"math"

	"github.com/spume-sim/spume/vec"
)

// unitExp computes e**x for the Gaussian kernel using the standard library.
func unitExp[T vec.Elem](x T) T {
	return T(math.Exp(float64(x)))
}
