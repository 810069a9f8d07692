// Package factorgraph is your in-memory toolkit for exact probabilistic
// inference on discrete factor graphs — from factor arithmetic to bucket
// elimination and tree belief propagation.
//
// 🚀 What is factorgraph?
//
//	A small, deterministic library that brings together:
//		• Core primitives: discrete variables, dense factors, factor graphs
//		• Factor algebra: product, marginalization, reduction, normalization
//		• Elimination orders: greedy min-weight / min-degree / min-fill
//		• Bucket elimination: marginals, joints, partition functions, evidence
//		• Belief propagation: sum-product message passing on trees & forests
//		• Model catalog: Student, ExtendedStudent, Misconception networks
//
// ✨ Why choose factorgraph?
//
//   - Exact answers – no sampling, no approximation, no iteration limits
//   - Deterministic – identical inputs always produce identical outputs
//   - Immutable values – every operation returns a new factor; nothing
//     is mutated behind your back
//   - Pure Go – the only external dependency is the test toolkit
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/        — Variable, Factor, FactorGraph & the factor algebra
//	ordering/    — greedy elimination-order construction
//	elimination/ — bucket elimination over a fixed or greedy order
//	bp/          — sum-product belief propagation on trees
//	inference/   — the polymorphic Engine interface tying engines together
//	builder/     — ready-made example models
//
// Quick ASCII example:
//
//	    Difficulty   Intelligence
//	          \       /       \
//	           Grade           SAT
//	             |
//	           Letter
//
//	the student network: a tree, so every engine in the library solves it.
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/factorgraph
package factorgraph
