package mat

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spume-sim/spume/vec"
)

// checkEig verifies A * v_k == d_k * v_k for every eigenpair and that the
// eigenvectors are orthonormal.
func checkEig(t *testing.T, A Mat[float64], e Eig[float64]) {
	t.Helper()
	n := A.Dim()
	for k := 0; k < n; k++ {
		v := e.Vecs.Row(k)
		got := MulVec(A, v)
		want := vec.Scale(v, e.Vals.At(k))
		assert.True(t, vec.ApproxEqual(got, want),
			"eigenpair %d: A*v = %v, want %v", k, got, want)
	}
	assert.True(t, ApproxEqual(Mul(e.Vecs, Transpose(e.Vecs)), Eye[float64](n)),
		"eigenvectors are not orthonormal")
}

func sortedVals(e Eig[float64]) []float64 {
	vals := e.Vals.Elems()
	sort.Float64s(vals)
	return vals
}

func TestJacobiSingle(t *testing.T) {
	e, err := Jacobi(FromRows(vec.New(2.0)))
	require.NoError(t, err)
	assert.True(t, Equal(e.Vecs, Eye[float64](1)))
	assert.InDelta(t, 2.0, e.Vals.At(0), 1e-12)
}

func TestJacobi2x2(t *testing.T) {
	A := FromRows(
		vec.New(1.0, -2),
		vec.New(-2.0, 1),
	)
	e, err := Jacobi(A)
	require.NoError(t, err)
	checkEig(t, A, e)

	vals := sortedVals(e)
	assert.InDelta(t, -1.0, vals[0], 1e-9)
	assert.InDelta(t, 3.0, vals[1], 1e-9)
}

func TestJacobi4x4(t *testing.T) {
	A := FromRows(
		vec.New(2.0, 1, 1, 0),
		vec.New(1.0, 3, 0, 1),
		vec.New(1.0, 0, 4, 1),
		vec.New(0.0, 1, 1, 2),
	)
	e, err := Jacobi(A)
	require.NoError(t, err)
	checkEig(t, A, e)

	// The eigenvalues sum to the trace and multiply to the determinant.
	assert.InDelta(t, Tr(A), vec.Sum(e.Vals), 1e-9)
	lu, err := LU(A)
	require.NoError(t, err)
	assert.InDelta(t, lu.Det(), vec.Prod(e.Vals), 1e-9)
}

func TestJacobiReadsLowerTriangleOnly(t *testing.T) {
	clean := FromRows(
		vec.New(1.0, -2),
		vec.New(-2.0, 1),
	)
	dirty := FromRows(
		vec.New(1.0, 999),
		vec.New(-2.0, 1),
	)
	a, err := Jacobi(clean)
	require.NoError(t, err)
	b, err := Jacobi(dirty)
	require.NoError(t, err)
	assert.Equal(t, sortedVals(a), sortedVals(b))
}

func TestJacobiNotConverged(t *testing.T) {
	A := FromRows(
		vec.New(2.0, 1, 1, 0),
		vec.New(1.0, 3, 0, 1),
		vec.New(1.0, 0, 4, 1),
		vec.New(0.0, 1, 1, 2),
	)
	_, err := JacobiWith(A, 1e-16, 3)
	assert.ErrorIs(t, err, ErrNotConverged)
}
