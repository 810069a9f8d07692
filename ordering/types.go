// Package ordering: sentinel errors, cost metrics and functional options
// for the greedy elimination-order search.
package ordering

import "errors"

// Sentinel errors returned by Greedy.
var (
	// ErrNilGraph indicates that a nil *core.FactorGraph was supplied.
	ErrNilGraph = errors.New("ordering: graph is nil")

	// ErrNilVariable indicates that a nil target variable was supplied.
	ErrNilVariable = errors.New("ordering: target variable is nil")

	// ErrUnknownVariable indicates that a target variable does not belong to
	// the supplied graph.
	ErrUnknownVariable = errors.New("ordering: target variable not in graph")

	// ErrDuplicateTarget indicates that the same variable was requested twice.
	ErrDuplicateTarget = errors.New("ordering: duplicate target variable")

	// ErrUnknownCost indicates that Options.Cost is not one of the declared
	// cost metrics.
	ErrUnknownCost = errors.New("ordering: unknown cost metric")
)

// Cost selects the greedy scoring metric used to pick the next variable to
// eliminate. Minimum score wins; ties break on lowest variable ID.
type Cost int

const (
	// MinWeight scores a variable by the product of the domain sizes of the
	// clique its elimination would form ({v} ∪ neighbors). Default.
	MinWeight Cost = iota

	// MinDegree scores a variable by its interaction-graph degree.
	MinDegree

	// MinFill scores a variable by the number of fill edges its elimination
	// would add between currently non-adjacent neighbors.
	MinFill
)

// String implements fmt.Stringer for diagnostics.
func (c Cost) String() string {
	switch c {
	case MinWeight:
		return "min-weight"
	case MinDegree:
		return "min-degree"
	case MinFill:
		return "min-fill"
	default:
		return "unknown"
	}
}

// Options configures the greedy search.
//
// Cost – scoring metric (MinWeight by default; see the Cost constants).
type Options struct {
	Cost Cost
}

// Option represents a functional option for configuring Greedy.
type Option func(*Options)

// WithCost selects the greedy cost metric. Validity is checked inside
// Greedy (ErrUnknownCost), not here.
func WithCost(c Cost) Option {
	return func(o *Options) { o.Cost = c }
}

// DefaultOptions returns the baseline configuration: MinWeight scoring.
func DefaultOptions() Options {
	return Options{Cost: MinWeight}
}
