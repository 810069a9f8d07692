package core

// Mixed-radix addressing for dense factor tables.
//
// A factor table is a flat []float64 laid out row-major over the scope: the
// first scope variable is the most significant digit, the last the least
// significant. Every factor operation shares the two conversions below
// (flat index → digit vector and digit vector → flat index), so the memory
// layout is defined in exactly one place.

// strides returns the per-position stride of a scope: strides[i] is the
// distance in the flat table between consecutive values of scope[i].
// The last position always has stride 1. Complexity: O(|scope|).
func strides(scope []*Variable) []int {
	st := make([]int, len(scope))
	acc := 1
	for i := len(scope) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= scope[i].Cardinality()
	}

	return st
}

// tableSize returns the product of the scope cardinalities, i.e. the number
// of joint assignments and the required table length. The empty scope has
// size 1 (a scalar factor).
func tableSize(scope []*Variable) int {
	size := 1
	for _, v := range scope {
		size *= v.Cardinality()
	}

	return size
}

// digitsAt decodes the flat index idx into the per-position digit vector
// (the joint assignment), writing into dst. dst must have len(scope).
func digitsAt(scope []*Variable, st []int, idx int, dst []int) {
	for i := range scope {
		dst[i] = (idx / st[i]) % scope[i].Cardinality()
	}
}

// flatIndex encodes a digit vector back into a flat table index.
func flatIndex(st []int, digits []int) int {
	idx := 0
	for i, d := range digits {
		idx += d * st[i]
	}

	return idx
}
