// Package elimination: sentinel errors and functional options for the
// bucket-elimination engine.
package elimination

import (
	"errors"

	"github.com/katalvlaran/factorgraph/ordering"
)

// Sentinel errors returned by Run and Greedy.
var (
	// ErrNilGraph indicates that a nil *core.FactorGraph was supplied.
	ErrNilGraph = errors.New("elimination: graph is nil")

	// ErrNilVariable indicates that a nil variable was supplied in the query
	// or the elimination order.
	ErrNilVariable = errors.New("elimination: variable is nil")

	// ErrUnknownVariable indicates that a query or evidence variable does
	// not belong to the supplied graph.
	ErrUnknownVariable = errors.New("elimination: variable not in graph")

	// ErrDuplicateQuery indicates that the same variable was queried twice.
	ErrDuplicateQuery = errors.New("elimination: duplicate query variable")

	// ErrOrderMismatch indicates that the supplied elimination order is not
	// exactly a permutation of the expected variable set (missing, duplicate
	// or extraneous entries).
	ErrOrderMismatch = errors.New("elimination: order is not a permutation of the non-query variables")

	// ErrDisconnectedQuery indicates that WithConnectedQueryOnly() was set
	// and the query spans more than one connected component.
	ErrDisconnectedQuery = errors.New("elimination: query spans disconnected components")

	// ErrValueNotInDomain indicates that an evidence value is not a member
	// of its variable's domain.
	ErrValueNotInDomain = errors.New("elimination: evidence value not in variable domain")

	// ErrEvidenceOverlapsQuery indicates that a variable appears both in the
	// evidence and in the query.
	ErrEvidenceOverlapsQuery = errors.New("elimination: evidence variable also queried")
)

// Options configures a bucket-elimination run.
//
// Normalize     – normalize the final factor into a distribution.
// ConnectedOnly – reject queries spanning several components.
// Evidence      – observed values by variable ID; conditions the run.
// Cost          – greedy ordering metric, used by Greedy only.
type Options struct {
	Normalize     bool
	ConnectedOnly bool
	Evidence      map[string]string
	Cost          ordering.Cost
}

// Option represents a functional option for configuring Run and Greedy.
type Option func(*Options)

// WithNormalize normalizes the resulting factor so its entries sum to 1.
// Normalization of an all-zero result fails with core.ErrDegenerateFactor.
func WithNormalize() Option {
	return func(o *Options) { o.Normalize = true }
}

// WithConnectedQueryOnly rejects joint queries that span more than one
// connected component with ErrDisconnectedQuery. Without it such queries
// are answered directly as the product of the independent component
// marginals.
func WithConnectedQueryOnly() Option {
	return func(o *Options) { o.ConnectedOnly = true }
}

// WithEvidence conditions the run on the observed values, keyed by variable
// ID. Observed variables are excluded from the elimination order and must
// not be queried. The map is read, never written.
func WithEvidence(evidence map[string]string) Option {
	return func(o *Options) { o.Evidence = evidence }
}

// WithOrderingCost selects the greedy cost metric Greedy hands to the
// ordering package. Run ignores it (the caller supplies the order there).
func WithOrderingCost(c ordering.Cost) Option {
	return func(o *Options) { o.Cost = c }
}

// DefaultOptions returns the baseline configuration: unnormalized result,
// disconnected queries allowed, no evidence, min-weight greedy ordering.
func DefaultOptions() Options {
	return Options{Cost: ordering.MinWeight}
}
