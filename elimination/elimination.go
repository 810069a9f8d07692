package elimination

import (
	"fmt"

	"github.com/katalvlaran/factorgraph/core"
	"github.com/katalvlaran/factorgraph/ordering"
)

// Run executes bucket elimination on g and returns the joint factor over
// the query variables. With an empty query the result is a scalar factor
// holding the partition function.
//
// Preconditions and validation (in order, before any elimination work):
//  1. g must be non-nil (ErrNilGraph).
//  2. Query variables must be non-nil (ErrNilVariable), belong to g
//     (ErrUnknownVariable) and be pairwise distinct (ErrDuplicateQuery).
//  3. Evidence variables must exist (ErrUnknownVariable), carry a domain
//     value (ErrValueNotInDomain) and stay out of the query
//     (ErrEvidenceOverlapsQuery).
//  4. With WithConnectedQueryOnly(), the query must not span components
//     (ErrDisconnectedQuery).
//  5. order must be exactly a permutation of g's variables minus the query
//     and the evidence (ErrOrderMismatch).
//
// The result is the same for every valid order, within floating tolerance;
// the order only controls intermediate factor sizes.
func Run(g *core.FactorGraph, query, order []*core.Variable, opts ...Option) (*core.Factor, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	querySet, evidence, err := validate(g, query, cfg)
	if err != nil {
		return nil, err
	}
	if err = validateOrder(g, order, querySet, evidence); err != nil {
		return nil, err
	}

	r := &runner{graph: g, order: order, querySet: querySet, evidence: evidence}

	return r.run(cfg)
}

// Greedy composes ordering.Greedy with Run: it computes a greedy
// elimination order over g's variables minus the query and the evidence,
// then eliminates along it. Pure composition, no additional state.
func Greedy(g *core.FactorGraph, query []*core.Variable, opts ...Option) (*core.Factor, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	querySet, evidence, err := validate(g, query, cfg)
	if err != nil {
		return nil, err
	}

	// Targets: every graph variable that is neither queried nor observed.
	// g.Variables() is ID-sorted, keeping the greedy tie-break stable.
	var targets []*core.Variable
	for _, v := range g.Variables() {
		if _, q := querySet[v]; q {
			continue
		}
		if _, e := evidence[v]; e {
			continue
		}
		targets = append(targets, v)
	}

	order, err := ordering.Greedy(g, targets, ordering.WithCost(cfg.Cost))
	if err != nil {
		return nil, err
	}

	r := &runner{graph: g, order: order, querySet: querySet, evidence: evidence}

	return r.run(cfg)
}

// validate checks the graph, query and evidence inputs shared by Run and
// Greedy, and resolves the evidence map onto graph variables.
func validate(g *core.FactorGraph, query []*core.Variable, cfg Options) (map[*core.Variable]struct{}, map[*core.Variable]string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	querySet := make(map[*core.Variable]struct{}, len(query))
	for _, v := range query {
		if v == nil {
			return nil, nil, ErrNilVariable
		}
		if !g.Contains(v) {
			return nil, nil, fmt.Errorf("%w: query %q", ErrUnknownVariable, v.ID())
		}
		if _, dup := querySet[v]; dup {
			return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateQuery, v.ID())
		}
		querySet[v] = struct{}{}
	}

	evidence := make(map[*core.Variable]string, len(cfg.Evidence))
	for id, value := range cfg.Evidence {
		v, ok := g.VariableByID(id)
		if !ok {
			return nil, nil, fmt.Errorf("%w: evidence %q", ErrUnknownVariable, id)
		}
		if _, ok = v.Index(value); !ok {
			return nil, nil, fmt.Errorf("%w: %q=%q", ErrValueNotInDomain, id, value)
		}
		if _, q := querySet[v]; q {
			return nil, nil, fmt.Errorf("%w: %q", ErrEvidenceOverlapsQuery, id)
		}
		evidence[v] = value
	}

	if cfg.ConnectedOnly && len(query) > 1 {
		if err := checkConnectedQuery(g, querySet); err != nil {
			return nil, nil, err
		}
	}

	return querySet, evidence, nil
}

// checkConnectedQuery rejects queries spanning more than one connected
// component of the bipartite incidence graph.
func checkConnectedQuery(g *core.FactorGraph, querySet map[*core.Variable]struct{}) error {
	hit := 0
	for _, component := range g.Components() {
		for _, v := range component {
			if _, q := querySet[v]; q {
				hit++

				break
			}
		}
	}
	if hit > 1 {
		return fmt.Errorf("%w: %d components", ErrDisconnectedQuery, hit)
	}

	return nil
}

// validateOrder checks that order is exactly a permutation of the graph's
// variables minus query and evidence.
func validateOrder(g *core.FactorGraph, order []*core.Variable, querySet map[*core.Variable]struct{}, evidence map[*core.Variable]string) error {
	expected := 0
	for _, v := range g.Variables() {
		if _, q := querySet[v]; q {
			continue
		}
		if _, e := evidence[v]; e {
			continue
		}
		expected++
	}

	seen := make(map[*core.Variable]struct{}, len(order))
	for _, v := range order {
		if v == nil {
			return ErrNilVariable
		}
		if !g.Contains(v) {
			return fmt.Errorf("%w: extraneous %q", ErrOrderMismatch, v.ID())
		}
		if _, q := querySet[v]; q {
			return fmt.Errorf("%w: query variable %q in order", ErrOrderMismatch, v.ID())
		}
		if _, e := evidence[v]; e {
			return fmt.Errorf("%w: evidence variable %q in order", ErrOrderMismatch, v.ID())
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: duplicate %q", ErrOrderMismatch, v.ID())
		}
		seen[v] = struct{}{}
	}
	if len(seen) != expected {
		return fmt.Errorf("%w: got %d variables, want %d", ErrOrderMismatch, len(seen), expected)
	}

	return nil
}

// runner holds the bucket bookkeeping for a single elimination run.
// Buckets exist only for the duration of the run; the graph is read-only.
type runner struct {
	graph    *core.FactorGraph
	order    []*core.Variable
	querySet map[*core.Variable]struct{}
	evidence map[*core.Variable]string

	pos     map[*core.Variable]int // order position per bucket variable
	buckets []bucket
	finals  []*core.Factor // factors fully reduced onto the query scope
}

// bucket groups the factors currently assigned to one order variable.
type bucket struct {
	variable *core.Variable
	factors  []*core.Factor
}

// run performs bucket assignment, in-order processing and final-factor
// accumulation.
func (r *runner) run(cfg Options) (*core.Factor, error) {
	// 1) One bucket per order position.
	r.pos = make(map[*core.Variable]int, len(r.order))
	r.buckets = make([]bucket, len(r.order))
	for i, v := range r.order {
		r.pos[v] = i
		r.buckets[i] = bucket{variable: v}
	}

	// 2) Condition every factor on the evidence, then route it to the
	//    bucket of its earliest-in-order scope variable.
	for _, f := range r.graph.Factors() {
		reduced, err := r.applyEvidence(f)
		if err != nil {
			return nil, err
		}
		r.route(reduced)
	}

	// 3) Process buckets in order: multiply, sum out, route the remainder.
	for i := range r.buckets {
		b := &r.buckets[i]
		if len(b.factors) == 0 {
			continue
		}
		product, err := core.ProductAll(b.factors...)
		if err != nil {
			return nil, err
		}
		summed, err := product.SumOut(b.variable)
		if err != nil {
			return nil, err
		}
		r.route(summed)
	}

	// 4) The answer is the product of the final factors.
	result, err := core.ProductAll(r.finals...)
	if err != nil {
		return nil, err
	}
	if cfg.Normalize {
		if result, err = result.Normalize(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// applyEvidence reduces f on every observed variable in its scope.
func (r *runner) applyEvidence(f *core.Factor) (*core.Factor, error) {
	out := f
	var err error
	for _, v := range f.Scope() {
		value, observed := r.evidence[v]
		if !observed {
			continue
		}
		if out, err = out.Reduce(v, value); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// route assigns f to the bucket of its earliest-in-order scope variable, or
// to the final set when its scope holds no order variable (scope ⊆ query,
// scalars included).
func (r *runner) route(f *core.Factor) {
	earliest := -1
	for _, v := range f.Scope() {
		if p, ok := r.pos[v]; ok && (earliest < 0 || p < earliest) {
			earliest = p
		}
	}
	if earliest < 0 {
		r.finals = append(r.finals, f)

		return
	}
	r.buckets[earliest].factors = append(r.buckets[earliest].factors, f)
}
