package ordering

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/factorgraph/core"
)

// Greedy computes an elimination order over exactly the given target
// variables of g, using the configured cost metric (MinWeight by default).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Every target must be non-nil (ErrNilVariable) and belong to g
//     (ErrUnknownVariable).
//  3. Targets must be pairwise distinct (ErrDuplicateTarget).
//  4. Options.Cost must be a declared metric (ErrUnknownCost).
//
// The returned slice is a permutation of targets: same elements, greedy
// order. Non-target variables participate in the interaction graph (they
// contribute to costs and receive fill edges) but are never eliminated.
//
// Complexity: O(T · (V·d + d²)) time, O(V + E) space.
func Greedy(g *core.FactorGraph, targets []*core.Variable, opts ...Option) ([]*core.Variable, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before building any state.
	if g == nil {
		return nil, ErrNilGraph
	}
	seen := make(map[string]struct{}, len(targets))
	for _, v := range targets {
		if v == nil {
			return nil, ErrNilVariable
		}
		if !g.Contains(v) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, v.ID())
		}
		if _, dup := seen[v.ID()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTarget, v.ID())
		}
		seen[v.ID()] = struct{}{}
	}
	if cfg.Cost != MinWeight && cfg.Cost != MinDegree && cfg.Cost != MinFill {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCost, cfg.Cost)
	}

	// 3) Run the search.
	r := newRunner(g, targets, cfg)

	return r.run(), nil
}

// runner holds the mutable interaction graph for a single Greedy execution.
type runner struct {
	options Options
	byID    map[string]*core.Variable
	card    map[string]int                 // variable ID → domain size
	adj     map[string]map[string]struct{} // interaction-graph adjacency
	pending []string                       // unordered target IDs, ID-sorted
}

// newRunner seeds the interaction graph from factor-scope co-occurrence.
// Every graph variable is a node; targets are the eliminable subset.
func newRunner(g *core.FactorGraph, targets []*core.Variable, cfg Options) *runner {
	vars := g.Variables()
	r := &runner{
		options: cfg,
		byID:    make(map[string]*core.Variable, len(vars)),
		card:    make(map[string]int, len(vars)),
		adj:     make(map[string]map[string]struct{}, len(vars)),
		pending: make([]string, 0, len(targets)),
	}
	for _, v := range vars {
		r.byID[v.ID()] = v
		r.card[v.ID()] = v.Cardinality()
		r.adj[v.ID()] = make(map[string]struct{})
		for _, u := range g.Neighbors(v) {
			r.adj[v.ID()][u.ID()] = struct{}{}
		}
	}
	for _, v := range targets {
		r.pending = append(r.pending, v.ID())
	}
	// Scanning pending in ID order makes the strict-minimum comparison below
	// a lowest-ID tie-break, so the output is reproducible.
	sort.Strings(r.pending)

	return r
}

// run performs the greedy loop: score, pick, eliminate, until every target
// is ordered.
func (r *runner) run() []*core.Variable {
	order := make([]*core.Variable, 0, len(r.pending))
	for len(r.pending) > 0 {
		// 1) Score every pending target and keep the strict minimum.
		best := 0
		bestCost := r.cost(r.pending[0])
		for i := 1; i < len(r.pending); i++ {
			if c := r.cost(r.pending[i]); c < bestCost {
				best, bestCost = i, c
			}
		}

		// 2) Append the winner and eliminate it from the interaction graph.
		id := r.pending[best]
		order = append(order, r.byID[id])
		r.pending = append(r.pending[:best], r.pending[best+1:]...)
		r.eliminate(id)
	}

	return order
}

// cost scores eliminating id now, under the configured metric.
func (r *runner) cost(id string) float64 {
	nbs := r.adj[id]
	switch r.options.Cost {
	case MinDegree:
		return float64(len(nbs))
	case MinFill:
		// Count neighbor pairs not yet adjacent. Each missing pair would
		// become a fill edge.
		fill := 0
		ids := r.neighborIDs(id)
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if _, ok := r.adj[ids[i]][ids[j]]; !ok {
					fill++
				}
			}
		}

		return float64(fill)
	default: // MinWeight
		// float64 keeps huge clique weights comparable without overflow.
		w := float64(r.card[id])
		for u := range nbs {
			w *= float64(r.card[u])
		}

		return w
	}
}

// eliminate connects all of id's neighbors pairwise (fill edges) and
// removes id from the interaction graph.
func (r *runner) eliminate(id string) {
	ids := r.neighborIDs(id)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			r.adj[ids[i]][ids[j]] = struct{}{}
			r.adj[ids[j]][ids[i]] = struct{}{}
		}
	}
	for _, u := range ids {
		delete(r.adj[u], id)
	}
	delete(r.adj, id)
}

// neighborIDs returns id's current neighbors as a slice. Order does not
// matter for fill insertion; costs read sets directly.
func (r *runner) neighborIDs(id string) []string {
	ids := make([]string, 0, len(r.adj[id]))
	for u := range r.adj[id] {
		ids = append(ids, u)
	}

	return ids
}
