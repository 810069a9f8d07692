// Package ordering produces elimination orders for bucket elimination via a
// greedy heuristic search over the interaction graph of a factor graph.
//
// Overview:
//
//   - Finding an optimal elimination order (one minimizing the induced
//     width) is NP-hard, so Greedy trades optimality for tractability: it
//     repeatedly eliminates the cheapest variable under a local cost metric
//     and adds the fill edges that elimination would create.
//   - The interaction graph starts from factor-scope co-occurrence: two
//     variables are adjacent when they share a factor scope, and fill edges
//     added by earlier eliminations keep later costs honest.
//   - Ties are broken by lowest variable ID, so the output is deterministic
//     for identical inputs.
//
// Cost metrics (Options.Cost, WithCost):
//
//   - MinWeight (default): product of the domain sizes of the prospective
//     clique {v} ∪ neighbors(v). Tracks the size of the intermediate factor
//     that eliminating v would create.
//   - MinDegree: number of interaction-graph neighbors of v.
//   - MinFill: number of fill edges eliminating v would introduce.
//
// Complexity:
//
//   - Time:  O(T · (V·d + d²)) where T = |targets|, V = |graph variables|,
//     d = maximum interaction-graph degree (cost scan per round plus fill
//     edge insertion).
//   - Space: O(V + E) for the working interaction graph.
//
// Errors (sentinel):
//
//   - ErrNilGraph          if the provided graph pointer is nil.
//   - ErrNilVariable       if a target entry is nil.
//   - ErrUnknownVariable   if a target does not belong to the graph.
//   - ErrDuplicateTarget   if the same variable is requested twice.
//   - ErrUnknownCost       if Options.Cost is not a declared metric.
//
// Example usage:
//
//	order, err := ordering.Greedy(g, targets, ordering.WithCost(ordering.MinFill))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := elimination.Run(g, query, order)
package ordering
