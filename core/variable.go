package core

import (
	"fmt"
	"strconv"
)

// Variable is a discrete random variable with a finite, ordered domain.
//
// A Variable is identified by its ID and is immutable once created. Two
// variables are the same variable only if they are the same pointer; a
// FactorGraph additionally requires IDs to be unique within it.
type Variable struct {
	id     string
	domain []string
	index  map[string]int // value → position in domain
}

// NewVariable creates a Variable with the given ID and ordered domain.
//
// Preconditions (in order):
//  1. id must be non-empty (ErrEmptyVariableID).
//  2. domain must hold at least one value (ErrEmptyDomain).
//  3. domain values must be pairwise distinct (ErrDuplicateValue).
//
// Complexity: O(|domain|).
func NewVariable(id string, domain []string) (*Variable, error) {
	if id == "" {
		return nil, ErrEmptyVariableID
	}
	if len(domain) == 0 {
		return nil, fmt.Errorf("%w: variable %q", ErrEmptyDomain, id)
	}
	index := make(map[string]int, len(domain))
	for i, val := range domain {
		if _, seen := index[val]; seen {
			return nil, fmt.Errorf("%w: variable %q value %q", ErrDuplicateValue, id, val)
		}
		index[val] = i
	}

	// Copy the domain so later mutation of the caller's slice cannot leak in.
	dom := make([]string, len(domain))
	copy(dom, domain)

	return &Variable{id: id, domain: dom, index: index}, nil
}

// NewBinary creates a Variable with the two-value domain {"0", "1"}.
func NewBinary(id string) (*Variable, error) {
	return NewVariable(id, []string{"0", "1"})
}

// NewRanged creates a Variable whose domain is the anonymous index labels
// "0".."cardinality-1". Cardinality must be positive (ErrEmptyDomain).
func NewRanged(id string, cardinality int) (*Variable, error) {
	if cardinality <= 0 {
		return nil, fmt.Errorf("%w: variable %q cardinality %d", ErrEmptyDomain, id, cardinality)
	}
	domain := make([]string, cardinality)
	for i := range domain {
		domain[i] = strconv.Itoa(i)
	}

	return NewVariable(id, domain)
}

// ID returns the unique identifier of the variable.
func (v *Variable) ID() string { return v.id }

// Cardinality returns the number of values in the variable's domain.
func (v *Variable) Cardinality() int { return len(v.domain) }

// Domain returns a copy of the ordered domain values.
func (v *Variable) Domain() []string {
	dom := make([]string, len(v.domain))
	copy(dom, v.domain)

	return dom
}

// Index returns the position of value in the domain, and whether it exists.
func (v *Variable) Index(value string) (int, bool) {
	i, ok := v.index[value]

	return i, ok
}

// String implements fmt.Stringer as "id(card)".
func (v *Variable) String() string {
	return v.id + "(" + strconv.Itoa(len(v.domain)) + ")"
}
