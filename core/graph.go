package core

import (
	"fmt"
	"sort"
)

// FactorGraph is an immutable collection of Variables and Factors forming a
// bipartite incidence structure: every Factor is adjacent to exactly the
// Variables in its scope.
//
// All derived views (adjacency, connectivity, tree-ness, components) are
// computed once in New; queries afterwards are read-only and cheap, so a
// graph may be shared freely between concurrent inference runs.
type FactorGraph struct {
	variables []*Variable // ID-sorted
	factors   []*Factor
	byID      map[string]*Variable

	factorsOf map[string][]*Factor
	neighbors map[string][]*Variable // ID-sorted, co-scoped variables

	connected  bool
	tree       bool
	components [][]*Variable // variable groups per connected component
}

// New constructs a FactorGraph from a variable set and a factor set.
//
// Preconditions (in order):
//  1. No variable may be nil (ErrNilVariable) and IDs must be unique
//     (ErrDuplicateVariable).
//  2. No factor may be nil (ErrNilFactor).
//  3. Every variable referenced by any factor scope must be one of the
//     registered Variable pointers (ErrInvalidScope). Identity is by
//     pointer: a distinct Variable that merely shares an ID is rejected.
//
// The slices are copied; derived views are computed eagerly.
// Complexity: O(V log V + Σ arity + V + F) time.
func New(variables []*Variable, factors []*Factor) (*FactorGraph, error) {
	g := &FactorGraph{
		byID:      make(map[string]*Variable, len(variables)),
		factorsOf: make(map[string][]*Factor, len(variables)),
		neighbors: make(map[string][]*Variable, len(variables)),
	}

	// 1) Register variables, rejecting nils and duplicate IDs.
	g.variables = make([]*Variable, len(variables))
	copy(g.variables, variables)
	for _, v := range g.variables {
		if v == nil {
			return nil, ErrNilVariable
		}
		if _, dup := g.byID[v.id]; dup {
			return nil, fmt.Errorf("%w: %q in graph", ErrDuplicateVariable, v.id)
		}
		g.byID[v.id] = v
	}
	sort.Slice(g.variables, func(i, j int) bool { return g.variables[i].id < g.variables[j].id })

	// 2) Register factors and validate scope containment.
	g.factors = make([]*Factor, len(factors))
	copy(g.factors, factors)
	for _, f := range g.factors {
		if f == nil {
			return nil, ErrNilFactor
		}
		for _, v := range f.scope {
			if g.byID[v.id] != v {
				return nil, fmt.Errorf("%w: %s references %q", ErrInvalidScope, f, v.id)
			}
		}
	}

	// 3) Derived adjacency: variable → incident factors, variable → co-scoped
	//    variables (deduplicated, ID-sorted for deterministic iteration).
	nbSet := make(map[string]map[string]struct{}, len(g.variables))
	for _, f := range g.factors {
		for _, v := range f.scope {
			g.factorsOf[v.id] = append(g.factorsOf[v.id], f)
			for _, u := range f.scope {
				if u == v {
					continue
				}
				if nbSet[v.id] == nil {
					nbSet[v.id] = make(map[string]struct{})
				}
				nbSet[v.id][u.id] = struct{}{}
			}
		}
	}
	for id, set := range nbSet {
		ids := make([]string, 0, len(set))
		for u := range set {
			ids = append(ids, u)
		}
		sort.Strings(ids)
		nbs := make([]*Variable, len(ids))
		for i, u := range ids {
			nbs[i] = g.byID[u]
		}
		g.neighbors[id] = nbs
	}

	// 4) Connectivity and tree-ness of the bipartite incidence graph.
	g.analyze()

	return g, nil
}

// analyze computes connected components, connectivity and acyclicity of the
// bipartite variable/factor incidence graph in one traversal sweep.
//
// Acyclicity check: an undirected graph is a forest iff
// edges == nodes - components, where edges = Σ factor arity and
// nodes = |variables| + |factors|.
func (g *FactorGraph) analyze() {
	seenVar := make(map[string]bool, len(g.variables))
	seenFac := make(map[*Factor]bool, len(g.factors))
	componentCount := 0

	// Iterative BFS from each unvisited variable, alternating variable and
	// factor layers. Variables are visited in ID order for determinism.
	for _, start := range g.variables {
		if seenVar[start.id] {
			continue
		}
		componentCount++
		component := []*Variable{}
		queue := []*Variable{start}
		seenVar[start.id] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			component = append(component, v)
			for _, f := range g.factorsOf[v.id] {
				if seenFac[f] {
					continue
				}
				seenFac[f] = true
				for _, u := range f.scope {
					if !seenVar[u.id] {
						seenVar[u.id] = true
						queue = append(queue, u)
					}
				}
			}
		}
		sort.Slice(component, func(i, j int) bool { return component[i].id < component[j].id })
		g.components = append(g.components, component)
	}

	// Scalar factors have no scope, so they are isolated incidence nodes.
	edges := 0
	for _, f := range g.factors {
		edges += len(f.scope)
		if !seenFac[f] {
			componentCount++
		}
	}

	nodes := len(g.variables) + len(g.factors)
	g.connected = componentCount <= 1
	g.tree = edges == nodes-componentCount
}

// Variables returns the graph's variables in ID order.
func (g *FactorGraph) Variables() []*Variable {
	out := make([]*Variable, len(g.variables))
	copy(out, g.variables)

	return out
}

// Factors returns the graph's factors in registration order.
func (g *FactorGraph) Factors() []*Factor {
	out := make([]*Factor, len(g.factors))
	copy(out, g.factors)

	return out
}

// VariableByID returns the registered variable with the given ID.
func (g *FactorGraph) VariableByID(id string) (*Variable, bool) {
	v, ok := g.byID[id]

	return v, ok
}

// Contains reports whether v is one of the graph's registered variables.
func (g *FactorGraph) Contains(v *Variable) bool {
	return v != nil && g.byID[v.id] == v
}

// FactorsOf returns the factors whose scope contains v, in registration
// order. The result is nil when v has no incident factors or is unknown.
func (g *FactorGraph) FactorsOf(v *Variable) []*Factor {
	if !g.Contains(v) {
		return nil
	}
	fs := g.factorsOf[v.id]
	out := make([]*Factor, len(fs))
	copy(out, fs)

	return out
}

// Neighbors returns the variables co-scoped with v in some factor, ID-sorted.
// The result is nil when v has no neighbors or is unknown.
func (g *FactorGraph) Neighbors(v *Variable) []*Variable {
	if !g.Contains(v) {
		return nil
	}
	nbs := g.neighbors[v.id]
	out := make([]*Variable, len(nbs))
	copy(out, nbs)

	return out
}

// IsConnected reports whether the bipartite incidence graph has at most one
// connected component. The empty graph is connected.
func (g *FactorGraph) IsConnected() bool { return g.connected }

// IsTree reports whether the bipartite incidence graph is acyclic. A forest
// of several components qualifies; belief propagation requires this.
func (g *FactorGraph) IsTree() bool { return g.tree }

// Components returns the variable groups of the connected components, each
// ID-sorted, ordered by their smallest variable ID. Components consisting
// only of a scalar factor carry no variables and are omitted.
func (g *FactorGraph) Components() [][]*Variable {
	out := make([][]*Variable, len(g.components))
	for i, c := range g.components {
		cc := make([]*Variable, len(c))
		copy(cc, c)
		out[i] = cc
	}

	return out
}
