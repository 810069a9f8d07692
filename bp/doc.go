// Package bp implements exact sum-product belief propagation on
// tree-structured factor graphs: one run yields the normalized marginal of
// every variable in the graph.
//
// Overview:
//
//   - The algorithm operates on the bipartite variable/factor incidence
//     tree. Each component is rooted at an arbitrary variable, then a
//     two-phase schedule runs: collect (leaves → root, each node sends its
//     one inward message once all other neighbors have reported) and
//     distribute (root → leaves, the same two message rules in the
//     opposite direction).
//   - Variable→factor message: product of the variable's other incoming
//     factor→variable messages (identity for leaf variables).
//   - Factor→variable message: the factor times its other incoming
//     variable→factor messages, with every scope variable except the
//     target summed out.
//   - After both phases every directed edge carries exactly one cached
//     message; trees force no recomputation. The marginal of a variable is
//     the normalized product of its incoming factor→variable messages.
//   - Loopy graphs are rejected up front with ErrNotATree: use the
//     elimination package for those.
//
// Evidence:
//
//   - WithEvidence(map[variable ID]value) multiplies a one-hot indicator
//     factor into each observed variable. Indicators are single-variable
//     leaves, so the incidence structure stays a tree and the final
//     normalization turns every marginal into P(x | evidence).
//
// Complexity:
//
//   - Time:  O(Σ_f |dom f| · arity f) — each factor table is walked a
//     constant number of times per incident edge.
//   - Space: O(edges) messages, each over a single variable's domain.
//
// Errors (sentinel):
//
//   - ErrNilGraph          if the provided graph pointer is nil.
//   - ErrNotATree          if the incidence graph contains a cycle.
//   - ErrNilVariable       if Marginal is asked about a nil variable.
//   - ErrUnknownVariable   if a requested or observed variable is not in the graph.
//   - ErrValueNotInDomain  if an evidence value is outside its variable's domain.
//   - core.ErrDegenerateFactor if evidence makes a marginal all-zero
//     (impossible evidence).
//
// Example usage:
//
//	marginals, err := bp.Run(g, bp.WithEvidence(map[string]string{"SAT": "high"}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(marginals["Intelligence"].Table())
package bp
