package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorgraph/core"
)

// buildChainGraph constructs the three-variable chain X–Y–Z with pairwise
// factors φ(X,Y) and φ(Y,Z). Its incidence graph is a tree.
func buildChainGraph(t *testing.T) (*core.FactorGraph, *core.Variable, *core.Variable, *core.Variable) {
	t.Helper()
	x := mustVar(t, "X", "0", "1")
	y := mustVar(t, "Y", "0", "1")
	z := mustVar(t, "Z", "0", "1")
	fxy := mustFactor(t, []*core.Variable{x, y}, []float64{2, 1, 1, 3})
	fyz := mustFactor(t, []*core.Variable{y, z}, []float64{4, 1, 2, 5})

	g, err := core.New([]*core.Variable{x, y, z}, []*core.Factor{fxy, fyz})
	require.NoError(t, err)

	return g, x, y, z
}

// buildCycleGraph constructs the 4-cycle Markov network A–B–C–D–A with four
// pairwise factors. Its incidence graph contains a cycle.
func buildCycleGraph(t *testing.T) *core.FactorGraph {
	t.Helper()
	a := mustVar(t, "A", "0", "1")
	b := mustVar(t, "B", "0", "1")
	c := mustVar(t, "C", "0", "1")
	d := mustVar(t, "D", "0", "1")
	fab := mustFactor(t, []*core.Variable{a, b}, []float64{30, 5, 1, 10})
	fbc := mustFactor(t, []*core.Variable{b, c}, []float64{100, 1, 1, 100})
	fcd := mustFactor(t, []*core.Variable{c, d}, []float64{1, 100, 100, 1})
	fda := mustFactor(t, []*core.Variable{d, a}, []float64{100, 1, 1, 100})

	g, err := core.New(
		[]*core.Variable{a, b, c, d},
		[]*core.Factor{fab, fbc, fcd, fda},
	)
	require.NoError(t, err)

	return g
}

func TestNew_InvalidScope(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	y := mustVar(t, "Y", "0", "1")
	f := mustFactor(t, []*core.Variable{x, y}, []float64{1, 2, 3, 4})

	// Y is referenced by the factor but not registered in the graph.
	_, err := core.New([]*core.Variable{x}, []*core.Factor{f})
	assert.ErrorIs(t, err, core.ErrInvalidScope)
}

func TestNew_InvalidScope_ImposterVariable(t *testing.T) {
	x := mustVar(t, "X", "0", "1")
	f := mustFactor(t, []*core.Variable{x}, []float64{1, 2})

	// A different Variable with the same ID does not satisfy the scope
	// containment invariant: identity is by pointer.
	imposter := mustVar(t, "X", "0", "1")
	_, err := core.New([]*core.Variable{imposter}, []*core.Factor{f})
	assert.ErrorIs(t, err, core.ErrInvalidScope)
}

func TestNew_DuplicateVariableID(t *testing.T) {
	x1 := mustVar(t, "X", "0", "1")
	x2 := mustVar(t, "X", "0", "1")
	_, err := core.New([]*core.Variable{x1, x2}, nil)
	assert.ErrorIs(t, err, core.ErrDuplicateVariable)
}

func TestNew_NilInputs(t *testing.T) {
	x := mustVar(t, "X", "0", "1")

	_, err := core.New([]*core.Variable{x, nil}, nil)
	assert.ErrorIs(t, err, core.ErrNilVariable)

	_, err = core.New([]*core.Variable{x}, []*core.Factor{nil})
	assert.ErrorIs(t, err, core.ErrNilFactor)
}

func TestFactorGraph_AdjacencyViews(t *testing.T) {
	g, x, y, z := buildChainGraph(t)

	// Y sits in both factors; X and Z in one each.
	assert.Len(t, g.FactorsOf(y), 2)
	assert.Len(t, g.FactorsOf(x), 1)
	assert.Len(t, g.FactorsOf(z), 1)

	// Neighbors are co-scoped variables, ID-sorted.
	nbs := g.Neighbors(y)
	require.Len(t, nbs, 2)
	assert.Same(t, x, nbs[0])
	assert.Same(t, z, nbs[1])
	require.Len(t, g.Neighbors(x), 1)
	assert.Same(t, y, g.Neighbors(x)[0])

	// Unknown variables yield nil views.
	stranger := mustVar(t, "W", "0", "1")
	assert.Nil(t, g.FactorsOf(stranger))
	assert.Nil(t, g.Neighbors(stranger))
}

func TestFactorGraph_VariablesSorted(t *testing.T) {
	z := mustVar(t, "Z", "0", "1")
	a := mustVar(t, "A", "0", "1")
	m := mustVar(t, "M", "0", "1")
	g, err := core.New([]*core.Variable{z, a, m}, nil)
	require.NoError(t, err)

	vars := g.Variables()
	require.Len(t, vars, 3)
	assert.Equal(t, "A", vars[0].ID())
	assert.Equal(t, "M", vars[1].ID())
	assert.Equal(t, "Z", vars[2].ID())
}

func TestFactorGraph_TreeAndConnectivity(t *testing.T) {
	g, _, _, _ := buildChainGraph(t)
	assert.True(t, g.IsConnected())
	assert.True(t, g.IsTree())

	cyc := buildCycleGraph(t)
	assert.True(t, cyc.IsConnected())
	assert.False(t, cyc.IsTree())
}

func TestFactorGraph_Disconnected(t *testing.T) {
	a := mustVar(t, "A", "0", "1")
	b := mustVar(t, "B", "0", "1")
	fa := mustFactor(t, []*core.Variable{a}, []float64{0.3, 0.7})
	fb := mustFactor(t, []*core.Variable{b}, []float64{0.9, 0.1})

	g, err := core.New([]*core.Variable{a, b}, []*core.Factor{fa, fb})
	require.NoError(t, err)

	assert.False(t, g.IsConnected())
	// Two disjoint single-edge components still form a forest.
	assert.True(t, g.IsTree())

	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Same(t, a, comps[0][0])
	assert.Same(t, b, comps[1][0])
}

func TestFactorGraph_EmptyGraph(t *testing.T) {
	g, err := core.New(nil, nil)
	require.NoError(t, err)
	assert.True(t, g.IsConnected())
	assert.True(t, g.IsTree())
	assert.Empty(t, g.Components())
}

func TestFactorGraph_IsolatedVariable(t *testing.T) {
	a := mustVar(t, "A", "0", "1")
	b := mustVar(t, "B", "0", "1")
	f := mustFactor(t, []*core.Variable{a}, []float64{1, 1})

	// B has no incident factor: its own component, still acyclic.
	g, err := core.New([]*core.Variable{a, b}, []*core.Factor{f})
	require.NoError(t, err)
	assert.False(t, g.IsConnected())
	assert.True(t, g.IsTree())
	assert.Len(t, g.Components(), 2)
}

func TestFactorGraph_VariableByID(t *testing.T) {
	g, x, _, _ := buildChainGraph(t)

	got, ok := g.VariableByID("X")
	require.True(t, ok)
	assert.Same(t, x, got)

	_, ok = g.VariableByID("missing")
	assert.False(t, ok)
}
