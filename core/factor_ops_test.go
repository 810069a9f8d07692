package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorgraph/core"
)

const tol = 1e-9

func TestProduct_ScopeUnionAndValues(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	y := mustVar(t, "Y", "0", "1")
	z := mustVar(t, "Z", "0", "1")

	// φ1(X,Y), φ2(Y,Z): product scope must be (X,Y,Z).
	f1 := mustFactor(t, []*core.Variable{x, y}, []float64{1, 2, 3, 4})
	f2 := mustFactor(t, []*core.Variable{y, z}, []float64{5, 6, 7, 8})

	p, err := core.Product(f1, f2)
	require.NoError(t, err)

	scope := p.Scope()
	require.Len(t, scope, 3)
	assert.Same(t, x, scope[0])
	assert.Same(t, y, scope[1])
	assert.Same(t, z, scope[2])

	// Spot-check: p(x1,y0,z1) = φ1(x1,y0)·φ2(y0,z1) = 3·6.
	got, err := p.Value(map[string]string{"X": "1", "Y": "0", "Z": "1"})
	require.NoError(t, err)
	assert.InDelta(t, 18.0, got, tol)
}

func TestProduct_Commutative(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	y := mustVar(t, "Y", "0", "1", "2")
	a := mustFactor(t, []*core.Variable{x, y}, []float64{1, 2, 3, 4, 5, 6})
	b := mustFactor(t, []*core.Variable{y}, []float64{0.1, 0.2, 0.7})

	ab, err := core.Product(a, b)
	require.NoError(t, err)
	ba, err := core.Product(b, a)
	require.NoError(t, err)

	// Equal compares up to scope permutation.
	assert.True(t, core.Equal(ab, ba, tol))
}

func TestProduct_Associative(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	y := mustVar(t, "Y", "0", "1")
	z := mustVar(t, "Z", "0", "1")
	a := mustFactor(t, []*core.Variable{x, y}, []float64{1, 2, 3, 4})
	b := mustFactor(t, []*core.Variable{y, z}, []float64{5, 6, 7, 8})
	c := mustFactor(t, []*core.Variable{z, x}, []float64{2, 4, 6, 8})

	abc1, err := core.ProductAll(a, b, c)
	require.NoError(t, err)

	bc, err := core.Product(b, c)
	require.NoError(t, err)
	abc2, err := core.Product(a, bc)
	require.NoError(t, err)

	assert.True(t, core.Equal(abc1, abc2, tol))
}

func TestProduct_WithScalar(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	f := mustFactor(t, []*core.Variable{x}, []float64{2, 3})
	s, err := core.NewScalar(0.5)
	require.NoError(t, err)

	p, err := core.Product(s, f)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.At(0), tol)
	assert.InDelta(t, 1.5, p.At(1), tol)
}

func TestProductAll_EmptyIsUnitScalar(t *testing.T) {
	p, err := core.ProductAll()
	require.NoError(t, err)
	assert.Equal(t, 0, p.Arity())
	assert.InDelta(t, 1.0, p.At(0), tol)
}

func TestProduct_NilFactor(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	f := mustFactor(t, []*core.Variable{x}, []float64{1, 1})
	_, err := core.Product(f, nil)
	assert.ErrorIs(t, err, core.ErrNilFactor)
}

func TestSumOut_Values(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	y := mustVar(t, "Y", "0", "1", "2")
	f := mustFactor(t, []*core.Variable{x, y}, []float64{1, 2, 3, 4, 5, 6})

	// Summing Y out leaves φ(X) = (1+2+3, 4+5+6).
	m, err := f.SumOut(y)
	require.NoError(t, err)
	require.Equal(t, 1, m.Arity())
	assert.InDelta(t, 6.0, m.At(0), tol)
	assert.InDelta(t, 15.0, m.At(1), tol)

	// Summing X out leaves φ(Y) = (1+4, 2+5, 3+6).
	m, err = f.SumOut(x)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, m.At(0), tol)
	assert.InDelta(t, 7.0, m.At(1), tol)
	assert.InDelta(t, 9.0, m.At(2), tol)
}

func TestSumOut_VariableNotInScope(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	z := mustVar(t, "Z", "0", "1")
	f := mustFactor(t, []*core.Variable{x}, []float64{1, 1})

	_, err := f.SumOut(z)
	assert.ErrorIs(t, err, core.ErrVariableNotInScope)
}

func TestSumOut_MarginalizeAllLaw(t *testing.T) {
	// Marginalizing a factor over its whole scope yields a scalar equal to
	// the sum of all table entries.
	x := mustVar(t, "X", "0", "1")
	y := mustVar(t, "Y", "0", "1")
	z := mustVar(t, "Z", "0", "1", "2")
	f := mustFactor(t, []*core.Variable{x, y, z},
		[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})

	out := f
	var err error
	for _, v := range []*core.Variable{x, y, z} {
		out, err = out.SumOut(v)
		require.NoError(t, err)
	}
	require.Equal(t, 0, out.Arity())
	assert.InDelta(t, f.Sum(), out.At(0), tol)
}

func TestMarginalize_KeepsScopeOrder(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	y := mustVar(t, "Y", "0", "1")
	z := mustVar(t, "Z", "0", "1")
	f := mustFactor(t, []*core.Variable{x, y, z}, []float64{1, 2, 3, 4, 5, 6, 7, 8})

	// Keep order is (Z,X), but the marginal scope follows the factor: (X,Z).
	m, err := f.Marginalize(z, x)
	require.NoError(t, err)
	scope := m.Scope()
	require.Len(t, scope, 2)
	assert.Same(t, x, scope[0])
	assert.Same(t, z, scope[1])

	want, err := f.SumOut(y)
	require.NoError(t, err)
	assert.True(t, core.Equal(m, want, tol))
}

func TestMarginalize_UnknownKeep(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	w := mustVar(t, "W", "0", "1")
	f := mustFactor(t, []*core.Variable{x}, []float64{1, 1})

	_, err := f.Marginalize(w)
	assert.ErrorIs(t, err, core.ErrVariableNotInScope)
}

func TestReduce_SelectsSlice(t *testing.T) {
	x := mustVar(t, "X", "x0", "x1")
	y := mustVar(t, "Y", "y0", "y1", "y2")
	f := mustFactor(t, []*core.Variable{x, y}, []float64{1, 2, 3, 4, 5, 6})

	r, err := f.Reduce(x, "x1")
	require.NoError(t, err)
	require.Equal(t, 1, r.Arity())
	assert.InDelta(t, 4.0, r.At(0), tol)
	assert.InDelta(t, 5.0, r.At(1), tol)
	assert.InDelta(t, 6.0, r.At(2), tol)

	r, err = f.Reduce(y, "y1")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, r.At(0), tol)
	assert.InDelta(t, 5.0, r.At(1), tol)
}

func TestReduce_Errors(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	z := mustVar(t, "Z", "0", "1")
	f := mustFactor(t, []*core.Variable{x}, []float64{1, 1})

	_, err := f.Reduce(z, "0")
	assert.ErrorIs(t, err, core.ErrVariableNotInScope)

	_, err = f.Reduce(x, "7")
	assert.ErrorIs(t, err, core.ErrValueNotInDomain)
}

func TestNormalize_SumsToOne(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	y := mustVar(t, "Y", "0", "1")
	f := mustFactor(t, []*core.Variable{x, y}, []float64{3, 1, 4, 2})

	n, err := f.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, n.Sum(), tol)
	assert.InDelta(t, 0.3, n.At(0), tol)
}

func TestNormalize_Degenerate(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	f := mustFactor(t, []*core.Variable{x}, []float64{0, 0})

	_, err := f.Normalize()
	assert.ErrorIs(t, err, core.ErrDegenerateFactor)
}

func TestEqual_DifferentScopes(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	y := mustVar(t, "Y", "0", "1")
	a := mustFactor(t, []*core.Variable{x}, []float64{1, 2})
	b := mustFactor(t, []*core.Variable{y}, []float64{1, 2})

	assert.False(t, core.Equal(a, b, tol))
}

func TestEqual_ScopePermutation(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	y := mustVar(t, "Y", "0", "1", "2")

	// Same function with swapped scope order: b(y,x) = a(x,y).
	a := mustFactor(t, []*core.Variable{x, y}, []float64{1, 2, 3, 4, 5, 6})
	b := mustFactor(t, []*core.Variable{y, x}, []float64{1, 4, 2, 5, 3, 6})

	assert.True(t, core.Equal(a, b, tol))
	assert.True(t, core.Equal(b, a, tol))

	// Perturb one entry beyond the tolerance.
	c := mustFactor(t, []*core.Variable{y, x}, []float64{1, 4, 2, 5, 3, 6.001})
	assert.False(t, core.Equal(a, c, tol))
}
