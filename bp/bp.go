package bp

import (
	"fmt"

	"github.com/katalvlaran/factorgraph/core"
)

// Run executes sum-product belief propagation on the tree factor graph g
// and returns the normalized marginal of every variable, keyed by ID.
//
// Preconditions and validation (in order, before any message work):
//  1. g must be non-nil (ErrNilGraph).
//  2. g's bipartite incidence graph must be acyclic (ErrNotATree). A
//     forest is fine: each component is propagated independently.
//  3. Evidence variables must exist (ErrUnknownVariable) and carry domain
//     values (ErrValueNotInDomain).
//
// Within one run every directed edge message is computed exactly once and
// cached; correctness never requires recomputation on a tree.
func Run(g *core.FactorGraph, opts ...Option) (map[string]*core.Factor, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r, err := newRunner(g, cfg)
	if err != nil {
		return nil, err
	}
	r.propagate()

	return r.marginals()
}

// Marginal runs belief propagation and returns the single marginal of v.
// Convenience wrapper over Run; same validation plus ErrNilVariable and
// ErrUnknownVariable for v itself.
func Marginal(g *core.FactorGraph, v *core.Variable, opts ...Option) (*core.Factor, error) {
	if v == nil {
		return nil, ErrNilVariable
	}
	if g != nil && !g.Contains(v) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, v.ID())
	}

	marginals, err := Run(g, opts...)
	if err != nil {
		return nil, err
	}

	return marginals[v.ID()], nil
}

// edge is a directed message slot between two incidence-tree nodes.
type edge struct {
	from, to int
}

// runner holds the message-passing state for a single run. Node IDs index
// a combined space: variables first (0..V-1), then factors (V..V+F-1).
type runner struct {
	graph *core.FactorGraph
	vars  []*core.Variable
	facs  []*core.Factor // graph factors plus evidence indicators

	varIdx  map[*core.Variable]int
	facVars [][]int // factor node → adjacent variable nodes
	varFacs [][]int // variable node → adjacent factor nodes

	messages map[edge]*core.Factor
}

// newRunner validates inputs and builds the bipartite adjacency, including
// one-hot indicator factors for the evidence.
func newRunner(g *core.FactorGraph, cfg Options) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.IsTree() {
		return nil, ErrNotATree
	}

	r := &runner{
		graph:    g,
		vars:     g.Variables(),
		facs:     g.Factors(),
		messages: make(map[edge]*core.Factor),
	}
	r.varIdx = make(map[*core.Variable]int, len(r.vars))
	for i, v := range r.vars {
		r.varIdx[v] = i
	}

	// Evidence enters as single-variable indicator leaves; attaching a new
	// leaf factor to an existing variable cannot create a cycle.
	for _, v := range r.vars {
		value, observed := cfg.Evidence[v.ID()]
		if !observed {
			continue
		}
		indicator, err := oneHot(v, value)
		if err != nil {
			return nil, err
		}
		r.facs = append(r.facs, indicator)
	}
	for id := range cfg.Evidence {
		if _, ok := g.VariableByID(id); !ok {
			return nil, fmt.Errorf("%w: evidence %q", ErrUnknownVariable, id)
		}
	}

	// Bipartite adjacency over node IDs. Scalar factors have no edges and
	// never participate; they scale every assignment uniformly, which the
	// final normalization cancels out.
	r.facVars = make([][]int, len(r.facs))
	r.varFacs = make([][]int, len(r.vars))
	for fi, f := range r.facs {
		for _, v := range f.Scope() {
			vi := r.varIdx[v]
			r.facVars[fi] = append(r.facVars[fi], vi)
			r.varFacs[vi] = append(r.varFacs[vi], fi)
		}
	}

	return r, nil
}

// oneHot builds the indicator factor for the observation v = value:
// 1 at the observed value, 0 elsewhere.
func oneHot(v *core.Variable, value string) (*core.Factor, error) {
	at, ok := v.Index(value)
	if !ok {
		return nil, fmt.Errorf("%w: %q=%q", ErrValueNotInDomain, v.ID(), value)
	}
	table := make([]float64, v.Cardinality())
	table[at] = 1

	return core.NewFactor([]*core.Variable{v}, table)
}

// propagate runs the two-phase schedule over every tree component.
//
// A BFS from each component root assigns depths; walking the BFS order
// backwards gives the collect phase (every node sends inward to its parent
// after all its children have reported), and walking it forwards gives the
// distribute phase (every node sends outward to each child). Together they
// place exactly one message on each directed edge.
func (r *runner) propagate() {
	total := len(r.vars) + len(r.facs)
	parent := make([]int, total)
	visited := make([]bool, total)
	for i := range parent {
		parent[i] = -1
	}

	var bfsOrder []int
	for root := range r.vars { // variables are ID-sorted: deterministic roots
		if visited[root] {
			continue
		}
		visited[root] = true
		queue := []int{root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			bfsOrder = append(bfsOrder, n)
			for _, m := range r.adjacent(n) {
				if visited[m] {
					continue
				}
				visited[m] = true
				parent[m] = n
				queue = append(queue, m)
			}
		}
	}

	// Collect: leaves → root.
	for i := len(bfsOrder) - 1; i >= 0; i-- {
		if n := bfsOrder[i]; parent[n] >= 0 {
			r.send(n, parent[n])
		}
	}
	// Distribute: root → leaves.
	for _, n := range bfsOrder {
		for _, m := range r.adjacent(n) {
			if parent[m] == n {
				r.send(n, m)
			}
		}
	}
}

// adjacent returns the incidence-tree neighbors of node n.
func (r *runner) adjacent(n int) []int {
	if n < len(r.vars) {
		return r.varFacs[n]
	}

	return r.facVars[n-len(r.vars)]
}

// send computes and caches the message on the directed edge from → to.
// Prerequisite messages exist by the schedule in propagate.
func (r *runner) send(from, to int) {
	if from < len(r.vars) {
		r.messages[edge{from, to}] = r.variableToFactor(from, to)

		return
	}
	r.messages[edge{from, to}] = r.factorToVariable(from, to)
}

// variableToFactor builds the message x → f: the product of x's incoming
// messages from its other adjacent factors, an identity table when x has
// no other neighbor (leaf variable).
func (r *runner) variableToFactor(vi, to int) *core.Factor {
	out := ones(r.vars[vi])
	for _, fi := range r.varFacs[vi] {
		fn := fi + len(r.vars)
		if fn == to {
			continue
		}
		// Both operands share the single-variable scope {x}; the validated
		// inputs make this product infallible.
		out, _ = core.Product(out, r.messages[edge{fn, vi}])
	}

	return out
}

// factorToVariable builds the message f → x: f times the incoming messages
// from its other scope variables, with everything but x summed out.
func (r *runner) factorToVariable(fn, to int) *core.Factor {
	fi := fn - len(r.vars)
	out := r.facs[fi]
	for _, vi := range r.facVars[fi] {
		if vi == to {
			continue
		}
		out, _ = core.Product(out, r.messages[edge{vi, fn}])
	}
	out, _ = out.Marginalize(r.vars[to])

	return out
}

// marginals assembles the per-variable result: the normalized product of
// each variable's incoming factor→variable messages. Variables with no
// incident factor get the uniform distribution.
func (r *runner) marginals() (map[string]*core.Factor, error) {
	result := make(map[string]*core.Factor, len(r.vars))
	for vi, v := range r.vars {
		belief := ones(v)
		for _, fi := range r.varFacs[vi] {
			belief, _ = core.Product(belief, r.messages[edge{fi + len(r.vars), vi}])
		}
		normalized, err := belief.Normalize()
		if err != nil {
			// All-zero belief: the evidence is impossible under the model.
			return nil, fmt.Errorf("bp: marginal of %q: %w", v.ID(), err)
		}
		result[v.ID()] = normalized
	}

	return result, nil
}

// ones builds the identity factor over a single variable's scope.
func ones(v *core.Variable) *core.Factor {
	table := make([]float64, v.Cardinality())
	for i := range table {
		table[i] = 1
	}
	// Scope and table are valid by construction.
	f, _ := core.NewFactor([]*core.Variable{v}, table)

	return f
}
