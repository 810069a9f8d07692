// Package bp: sentinel errors and functional options for belief
// propagation.
package bp

import "errors"

// Sentinel errors returned by Run and Marginal.
var (
	// ErrNilGraph indicates that a nil *core.FactorGraph was supplied.
	ErrNilGraph = errors.New("bp: graph is nil")

	// ErrNotATree indicates that the graph's bipartite incidence structure
	// contains a cycle. Belief propagation is exact only on trees; loopy
	// graphs must use bucket elimination.
	ErrNotATree = errors.New("bp: factor graph is not a tree")

	// ErrNilVariable indicates that a nil variable was requested.
	ErrNilVariable = errors.New("bp: variable is nil")

	// ErrUnknownVariable indicates that a requested or observed variable
	// does not belong to the supplied graph.
	ErrUnknownVariable = errors.New("bp: variable not in graph")

	// ErrValueNotInDomain indicates that an evidence value is not a member
	// of its variable's domain.
	ErrValueNotInDomain = errors.New("bp: evidence value not in variable domain")
)

// Options configures a belief-propagation run.
//
// Evidence – observed values by variable ID; conditions every marginal.
type Options struct {
	Evidence map[string]string
}

// Option represents a functional option for configuring Run and Marginal.
type Option func(*Options)

// WithEvidence conditions the run on the observed values, keyed by variable
// ID. Each observation enters the tree as a one-hot indicator factor, so
// the returned marginals are conditionals given the evidence. The map is
// read, never written.
func WithEvidence(evidence map[string]string) Option {
	return func(o *Options) { o.Evidence = evidence }
}

// DefaultOptions returns the baseline configuration: no evidence.
func DefaultOptions() Options {
	return Options{}
}
