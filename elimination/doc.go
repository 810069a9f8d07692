// Package elimination implements bucket elimination, the general-purpose
// exact inference engine for discrete factor graphs: it computes the
// (optionally normalized) joint factor over a set of query variables by
// summing all other variables out, one bucket at a time.
//
// Overview:
//
//   - One bucket per elimination-order position. Every factor lands in the
//     bucket of its earliest-in-order scope variable; factors over query
//     variables only go straight to the final set.
//   - Buckets are processed in order: multiply the bucket's factors, sum
//     out the bucket variable, and route the result to the bucket of the
//     next-in-order variable in its scope (or to the final set).
//   - The answer is the product of all final factors. With an empty query
//     it is a scalar factor holding the partition function.
//   - The result is independent of which valid order is used; only the
//     intermediate factor sizes (and hence the runtime) vary. Orders come
//     from the ordering package or from the caller.
//
// Evidence:
//
//   - WithEvidence(map[variable ID]value) conditions the run on observed
//     values: every factor is reduced on its observed scope variables
//     before bucketing, and observed variables take part in neither the
//     query nor the order. Combine with WithNormalize() to obtain the
//     conditional distribution P(query | evidence).
//
// Disconnected queries:
//
//   - A query spanning several connected components is supported directly:
//     the final-factor product is exactly the product of the independent
//     per-component marginals, so auto-decomposition falls out of the
//     algorithm. Callers that consider such queries a modeling mistake can
//     opt into rejection with WithConnectedQueryOnly().
//
// Complexity:
//
//   - Time and space are exponential in the induced width of the supplied
//     order (the largest intermediate factor), not in the graph size.
//
// Errors (sentinel):
//
//   - ErrNilGraph            if the provided graph pointer is nil.
//   - ErrNilVariable         if a query or order entry is nil.
//   - ErrUnknownVariable     if a query or evidence variable is not in the graph.
//   - ErrDuplicateQuery      if the same variable is queried twice.
//   - ErrOrderMismatch       if the order is not exactly a permutation of the
//     graph's variables minus query and evidence.
//   - ErrDisconnectedQuery   if WithConnectedQueryOnly() is set and the query
//     spans more than one connected component.
//   - ErrValueNotInDomain    if an evidence value is outside its variable's domain.
//   - ErrEvidenceOverlapsQuery if a variable is both observed and queried.
//   - core.ErrDegenerateFactor if WithNormalize() meets an all-zero result
//     (impossible evidence).
//
// Example usage:
//
//	result, err := elimination.Greedy(g, []*core.Variable{grade},
//	    elimination.WithEvidence(map[string]string{"Intelligence": "high"}),
//	    elimination.WithNormalize(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
package elimination
