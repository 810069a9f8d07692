// Package builder provides ready-made factor graph models for examples,
// tests and benchmarks. Each constructor returns a fresh, independent
// *core.FactorGraph: repeated calls share no variables or factors, so a
// model conditioned or queried in one place never leaks state into
// another.
//
// The catalog:
//
//   - Student:         the five-variable Bayesian student network
//     (Difficulty, Intelligence, Grade, SAT, Letter).
//     Its incidence graph is a tree, so it suits
//     belief propagation as well as elimination.
//   - ExtendedStudent: the eight-variable extension (adds Coherence,
//     Job, Happy). Loopy; elimination engines only.
//   - Misconception:   the four-student pairwise Markov network, a
//     4-cycle of agreement/disagreement potentials.
//
// Guarantees:
//
//   - Deterministic structure: variables and factors are created in a
//     fixed order with fixed IDs and tables.
//   - Valid by construction: every model passes core.New validation;
//     the error returns exist for uniformity and future models, not
//     because these tables can fail.
//
// Complexity: O(tables) per call; the largest model holds 8 factors
// with at most 12 entries each.
package builder
