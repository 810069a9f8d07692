// Package inference declares the polymorphic Engine interface shared by
// every exact-inference strategy in this library, with one concrete
// variant per algorithm: Bucket (fixed-order elimination), GreedyBucket
// (heuristically ordered elimination) and SumProduct (tree belief
// propagation).
//
// The caller selects the variant explicitly, based on what it knows about
// the model's structure (tree-ness, available orders); no engine inspects
// runtime types or silently falls back to another algorithm. Every engine
// returns a normalized distribution over the query scope.
//
// Errors (sentinel):
//
//   - ErrQueryArity if SumProduct is asked for anything but exactly one
//     query variable; the underlying packages' sentinels (elimination.*,
//     bp.*) pass through untouched.
//
// Example usage:
//
//	var engine inference.Engine = inference.GreedyBucket{}
//	if g.IsTree() {
//	    engine = inference.SumProduct{}
//	}
//	posterior, err := engine.Infer(g, []*core.Variable{grade})
package inference

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/factorgraph/bp"
	"github.com/katalvlaran/factorgraph/core"
	"github.com/katalvlaran/factorgraph/elimination"
	"github.com/katalvlaran/factorgraph/ordering"
)

// ErrQueryArity indicates that an engine was asked for a query arity it
// cannot serve (SumProduct answers exactly one variable per call).
var ErrQueryArity = errors.New("inference: unsupported query arity for this engine")

// Engine computes a normalized distribution over the query variables of a
// factor graph. Implementations are stateless values; the same engine may
// serve many graphs and queries.
type Engine interface {
	Infer(g *core.FactorGraph, query []*core.Variable) (*core.Factor, error)
}

// Bucket runs bucket elimination with a caller-supplied elimination order.
// Order must be exactly a permutation of g's variables minus the query
// (elimination.ErrOrderMismatch otherwise).
type Bucket struct {
	Order []*core.Variable
}

// Infer implements Engine via elimination.Run.
func (e Bucket) Infer(g *core.FactorGraph, query []*core.Variable) (*core.Factor, error) {
	return elimination.Run(g, query, e.Order, elimination.WithNormalize())
}

// GreedyBucket runs bucket elimination behind a greedy elimination order.
// Cost selects the ordering metric; the zero value is min-weight.
type GreedyBucket struct {
	Cost ordering.Cost
}

// Infer implements Engine via elimination.Greedy.
func (e GreedyBucket) Infer(g *core.FactorGraph, query []*core.Variable) (*core.Factor, error) {
	return elimination.Greedy(g, query,
		elimination.WithNormalize(),
		elimination.WithOrderingCost(e.Cost),
	)
}

// SumProduct answers single-variable queries on tree factor graphs via
// belief propagation. Structural failures surface as bp.ErrNotATree.
type SumProduct struct{}

// Infer implements Engine via bp.Marginal. Exactly one query variable is
// required (ErrQueryArity).
func (e SumProduct) Infer(g *core.FactorGraph, query []*core.Variable) (*core.Factor, error) {
	if len(query) != 1 {
		return nil, fmt.Errorf("%w: got %d variables, want 1", ErrQueryArity, len(query))
	}

	return bp.Marginal(g, query[0])
}
