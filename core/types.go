// Package core defines the central Variable, Factor, and FactorGraph types
// for discrete probabilistic models, together with the factor arithmetic
// (product, marginalization, reduction, normalization) every inference
// engine in this library is built on.
//
// All three types are immutable once constructed: every factor operation
// returns a fresh Factor, and a FactorGraph never changes after New. The
// inference packages (ordering, elimination, bp) treat them as read-only
// and keep their own working state per run.
//
// This file declares the core sentinel errors and shared constants.
//
// Errors:
//
//	ErrEmptyVariableID    - variable ID is the empty string.
//	ErrEmptyDomain        - variable domain has no values.
//	ErrDuplicateValue     - variable domain lists the same value twice.
//	ErrNilVariable        - a nil *Variable was supplied.
//	ErrDuplicateVariable  - the same variable appears twice (scope or graph).
//	ErrTableSize          - factor table length does not match the scope.
//	ErrNegativeEntry      - factor table contains a negative or non-finite value.
//	ErrVariableNotInScope - operation referenced a variable outside the scope.
//	ErrValueNotInDomain   - a value is not a member of the variable's domain.
//	ErrDegenerateFactor   - normalization of an all-zero factor.
//	ErrInvalidScope       - a factor references a variable absent from its graph.
//	ErrNilFactor          - a nil *Factor was supplied.
package core

import "errors"

// Sentinel errors for the core data model.
var (
	// ErrEmptyVariableID indicates that the provided variable ID is empty.
	ErrEmptyVariableID = errors.New("core: variable ID is empty")

	// ErrEmptyDomain indicates that a variable was declared with no domain values.
	ErrEmptyDomain = errors.New("core: variable domain is empty")

	// ErrDuplicateValue indicates that a variable domain lists the same value twice.
	ErrDuplicateValue = errors.New("core: duplicate value in variable domain")

	// ErrNilVariable indicates that a nil *Variable was supplied where one is required.
	ErrNilVariable = errors.New("core: variable is nil")

	// ErrDuplicateVariable indicates that the same variable appears more than once
	// in a factor scope or in a graph's variable set.
	ErrDuplicateVariable = errors.New("core: duplicate variable")

	// ErrTableSize indicates that a factor table length disagrees with the
	// product of its scope variables' cardinalities.
	ErrTableSize = errors.New("core: table length does not match scope cardinality")

	// ErrNegativeEntry indicates that a factor table holds a negative, NaN or
	// infinite entry. Factors must be non-negative real-valued.
	ErrNegativeEntry = errors.New("core: factor table entry is negative or not finite")

	// ErrVariableNotInScope indicates an operation referenced a variable that is
	// not part of the factor's scope.
	ErrVariableNotInScope = errors.New("core: variable not in factor scope")

	// ErrValueNotInDomain indicates that a value is not a member of the
	// referenced variable's domain.
	ErrValueNotInDomain = errors.New("core: value not in variable domain")

	// ErrDegenerateFactor indicates that normalization was attempted on a
	// factor whose table sums to zero.
	ErrDegenerateFactor = errors.New("core: cannot normalize an all-zero factor")

	// ErrInvalidScope indicates that a factor's scope references a variable
	// that does not belong to the graph's variable set.
	ErrInvalidScope = errors.New("core: factor scope references unknown variable")

	// ErrNilFactor indicates that a nil *Factor was supplied where one is required.
	ErrNilFactor = errors.New("core: factor is nil")
)
