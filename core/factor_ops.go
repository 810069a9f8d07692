package core

import (
	"fmt"
	"math"
)

// Product returns the factor product a·b.
//
// The result scope is a's scope followed by the b-scope variables not
// already present in a (no duplicates). For every joint assignment to the
// union scope, the result value is a's value on its restriction times b's
// value on its restriction. Product is commutative and associative up to
// scope permutation (see Equal).
//
// Complexity: O(T·k) time where T is the union table size and k the union
// arity; O(T) space.
func Product(a, b *Factor) (*Factor, error) {
	if a == nil || b == nil {
		return nil, ErrNilFactor
	}

	// 1) Union scope: a's scope, then b's variables that a does not carry.
	scope := make([]*Variable, len(a.scope), len(a.scope)+len(b.scope))
	copy(scope, a.scope)
	for _, v := range b.scope {
		if a.scopePos(v) < 0 {
			scope = append(scope, v)
		}
	}

	// 2) Per union position, the stride contribution into a's and b's tables
	//    (zero when the variable is absent from that operand).
	intoA := make([]int, len(scope))
	intoB := make([]int, len(scope))
	for i, v := range scope {
		if p := a.scopePos(v); p >= 0 {
			intoA[i] = a.st[p]
		}
		if p := b.scopePos(v); p >= 0 {
			intoB[i] = b.st[p]
		}
	}

	// 3) Walk every joint assignment of the union scope once.
	st := strides(scope)
	table := make([]float64, tableSize(scope))
	digits := make([]int, len(scope))
	for idx := range table {
		digitsAt(scope, st, idx, digits)
		ai, bi := 0, 0
		for i, d := range digits {
			ai += d * intoA[i]
			bi += d * intoB[i]
		}
		table[idx] = a.table[ai] * b.table[bi]
	}

	return newFactorUnchecked(scope, table), nil
}

// ProductAll multiplies any number of factors left to right. The empty
// product is the scalar factor 1.
func ProductAll(fs ...*Factor) (*Factor, error) {
	out := newFactorUnchecked(nil, []float64{1})
	var err error
	for _, f := range fs {
		if out, err = Product(out, f); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SumOut marginalizes the variable v out of the factor: the result scope is
// the factor's scope without v (order preserved), and every result entry is
// the sum over v's domain of the matching entries.
//
// Errors: ErrNilVariable, ErrVariableNotInScope.
// Complexity: O(T·k) time, O(T / |dom v|) space.
func (f *Factor) SumOut(v *Variable) (*Factor, error) {
	if v == nil {
		return nil, ErrNilVariable
	}
	pos := f.scopePos(v)
	if pos < 0 {
		return nil, fmt.Errorf("%w: cannot sum out %q from %s", ErrVariableNotInScope, v.id, f)
	}

	// Result scope drops position pos; posOut maps old position → new one.
	scope := make([]*Variable, 0, len(f.scope)-1)
	posOut := make([]int, len(f.scope))
	for i, s := range f.scope {
		posOut[i] = len(scope)
		if i != pos {
			scope = append(scope, s)
		}
	}

	outSt := strides(scope)
	table := make([]float64, tableSize(scope))
	digits := make([]int, len(f.scope))
	for idx, x := range f.table {
		digitsAt(f.scope, f.st, idx, digits)
		out := 0
		for i, d := range digits {
			if i != pos {
				out += d * outSt[posOut[i]]
			}
		}
		table[out] += x
	}

	return newFactorUnchecked(scope, table), nil
}

// Marginalize sums out every scope variable not listed in keep, returning
// the marginal over keep. The result scope preserves the factor's own scope
// order. Every keep variable must be in scope (ErrVariableNotInScope).
func (f *Factor) Marginalize(keep ...*Variable) (*Factor, error) {
	keepSet := make(map[*Variable]struct{}, len(keep))
	for _, v := range keep {
		if v == nil {
			return nil, ErrNilVariable
		}
		if f.scopePos(v) < 0 {
			return nil, fmt.Errorf("%w: cannot keep %q in %s", ErrVariableNotInScope, v.id, f)
		}
		keepSet[v] = struct{}{}
	}

	out := f
	var err error
	for _, v := range f.scope {
		if _, kept := keepSet[v]; kept {
			continue
		}
		if out, err = out.SumOut(v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Reduce restricts the factor to the observation v = value: the result
// scope drops v, and the table keeps only the slice where v equals value.
// This is how evidence enters a model.
//
// Errors: ErrNilVariable, ErrVariableNotInScope, ErrValueNotInDomain.
func (f *Factor) Reduce(v *Variable, value string) (*Factor, error) {
	if v == nil {
		return nil, ErrNilVariable
	}
	pos := f.scopePos(v)
	if pos < 0 {
		return nil, fmt.Errorf("%w: cannot reduce %q in %s", ErrVariableNotInScope, v.id, f)
	}
	want, ok := v.Index(value)
	if !ok {
		return nil, fmt.Errorf("%w: %q=%q", ErrValueNotInDomain, v.id, value)
	}

	scope := make([]*Variable, 0, len(f.scope)-1)
	for i, s := range f.scope {
		if i != pos {
			scope = append(scope, s)
		}
	}

	table := make([]float64, 0, tableSize(scope))
	digits := make([]int, len(f.scope))
	for idx, x := range f.table {
		digitsAt(f.scope, f.st, idx, digits)
		if digits[pos] == want {
			table = append(table, x)
		}
	}

	return newFactorUnchecked(scope, table), nil
}

// Normalize divides every entry by the table sum so the result sums to 1.
// Errors: ErrDegenerateFactor if the table sums to zero.
func (f *Factor) Normalize() (*Factor, error) {
	sum := f.Sum()
	if sum == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDegenerateFactor, f)
	}

	table := make([]float64, len(f.table))
	for i, x := range f.table {
		table[i] = x / sum
	}

	return newFactorUnchecked(f.scope, table), nil
}

// Equal reports whether a and b represent the same function up to scope
// permutation and the elementwise tolerance tol. Factors over different
// variable sets are never equal. Intended for tests and verification.
func Equal(a, b *Factor, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.scope) != len(b.scope) || len(a.table) != len(b.table) {
		return false
	}

	// perm maps each a-scope position to b's position of the same variable.
	perm := make([]int, len(a.scope))
	for i, v := range a.scope {
		p := b.scopePos(v)
		if p < 0 {
			return false
		}
		perm[i] = p
	}

	digits := make([]int, len(a.scope))
	for idx, x := range a.table {
		digitsAt(a.scope, a.st, idx, digits)
		bi := 0
		for i, d := range digits {
			bi += d * b.st[perm[i]]
		}
		if math.Abs(x-b.table[bi]) > tol {
			return false
		}
	}

	return true
}
