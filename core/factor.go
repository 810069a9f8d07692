package core

import (
	"fmt"
	"math"
)

// Factor is a non-negative real-valued function over an ordered scope of
// Variables, stored as a dense table indexed by the mixed-radix encoding of
// joint assignments (see index.go). A Factor with empty scope is a scalar.
//
// Factors are immutable: Product, SumOut, Marginalize, Reduce and Normalize
// all return a new Factor and never touch the receiver.
type Factor struct {
	scope []*Variable
	table []float64
	st    []int // strides, cached at construction
}

// NewFactor creates a Factor over the given ordered scope with the given
// dense table.
//
// Preconditions (in order):
//  1. No scope entry may be nil (ErrNilVariable).
//  2. No variable may appear twice in the scope (ErrDuplicateVariable).
//  3. len(table) must equal the product of the scope cardinalities (ErrTableSize).
//  4. Every table entry must be finite and ≥ 0 (ErrNegativeEntry).
//
// The scope and table slices are copied. Complexity: O(len(table) + |scope|).
func NewFactor(scope []*Variable, table []float64) (*Factor, error) {
	seen := make(map[string]struct{}, len(scope))
	for _, v := range scope {
		if v == nil {
			return nil, ErrNilVariable
		}
		if _, dup := seen[v.id]; dup {
			return nil, fmt.Errorf("%w: %q in factor scope", ErrDuplicateVariable, v.id)
		}
		seen[v.id] = struct{}{}
	}
	if want := tableSize(scope); len(table) != want {
		return nil, fmt.Errorf("%w: got %d entries, scope requires %d", ErrTableSize, len(table), want)
	}
	for i, x := range table {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: entry %d is %v", ErrNegativeEntry, i, x)
		}
	}

	sc := make([]*Variable, len(scope))
	copy(sc, scope)
	tb := make([]float64, len(table))
	copy(tb, table)

	return &Factor{scope: sc, table: tb, st: strides(sc)}, nil
}

// NewScalar creates a Factor with empty scope holding the single value x.
// x must be finite and ≥ 0 (ErrNegativeEntry).
func NewScalar(x float64) (*Factor, error) {
	return NewFactor(nil, []float64{x})
}

// newFactorUnchecked builds a Factor from an already-validated scope and a
// freshly allocated table. Internal fast path for the factor operations:
// they only ever combine entries of validated factors, so the non-negativity
// and size invariants hold by construction.
func newFactorUnchecked(scope []*Variable, table []float64) *Factor {
	return &Factor{scope: scope, table: table, st: strides(scope)}
}

// Scope returns a copy of the factor's ordered scope.
func (f *Factor) Scope() []*Variable {
	sc := make([]*Variable, len(f.scope))
	copy(sc, f.scope)

	return sc
}

// Arity returns the number of variables in the scope.
func (f *Factor) Arity() int { return len(f.scope) }

// Size returns the table length (the number of joint assignments).
func (f *Factor) Size() int { return len(f.table) }

// At returns the table entry at flat index idx. Panics if idx is out of
// range, like a slice access.
func (f *Factor) At(idx int) float64 { return f.table[idx] }

// Table returns a copy of the dense table in mixed-radix order.
func (f *Factor) Table() []float64 {
	tb := make([]float64, len(f.table))
	copy(tb, f.table)

	return tb
}

// Sum returns the sum of all table entries.
func (f *Factor) Sum() float64 {
	sum := 0.0
	for _, x := range f.table {
		sum += x
	}

	return sum
}

// InScope reports whether v is part of the factor's scope.
func (f *Factor) InScope(v *Variable) bool {
	return f.scopePos(v) >= 0
}

// scopePos returns the scope position of v, or -1. Variables are compared
// by pointer identity: a factor depends on a specific Variable, not on any
// variable that happens to share its ID.
func (f *Factor) scopePos(v *Variable) int {
	for i, s := range f.scope {
		if s == v {
			return i
		}
	}

	return -1
}

// Value returns the table entry for the joint assignment given as a
// variable-ID → value map. Every scope variable must be assigned a value
// from its domain; extra entries in the map are ignored.
//
// Errors: ErrVariableNotInScope if a scope variable is missing from the
// assignment, ErrValueNotInDomain if a value is not in the variable's domain.
func (f *Factor) Value(assignment map[string]string) (float64, error) {
	digits := make([]int, len(f.scope))
	for i, v := range f.scope {
		val, ok := assignment[v.id]
		if !ok {
			return 0, fmt.Errorf("%w: %q has no assigned value", ErrVariableNotInScope, v.id)
		}
		d, ok := v.Index(val)
		if !ok {
			return 0, fmt.Errorf("%w: %q=%q", ErrValueNotInDomain, v.id, val)
		}
		digits[i] = d
	}

	return f.table[flatIndex(f.st, digits)], nil
}

// String implements fmt.Stringer as "φ(id1,id2,...)".
func (f *Factor) String() string {
	s := "φ("
	for i, v := range f.scope {
		if i > 0 {
			s += ","
		}
		s += v.id
	}

	return s + ")"
}
