package builder

import (
	"fmt"

	"github.com/katalvlaran/factorgraph/core"
)

// assembler accumulates variables and factors, keeping the first error.
// Constructors read much cleaner without a per-call error ladder.
type assembler struct {
	name    string
	vars    []*core.Variable
	factors []*core.Factor
	err     error
}

// variable creates and registers a named variable. Returns nil after the
// first failure; later calls tolerate nil inputs and keep the first error.
func (a *assembler) variable(id string, domain ...string) *core.Variable {
	if a.err != nil {
		return nil
	}
	v, err := core.NewVariable(id, domain)
	if err != nil {
		a.err = fmt.Errorf("builder: %s: variable %q: %w", a.name, id, err)

		return nil
	}
	a.vars = append(a.vars, v)

	return v
}

// factor creates and registers a factor over scope with the given table.
func (a *assembler) factor(scope []*core.Variable, table ...float64) {
	if a.err != nil {
		return
	}
	f, err := core.NewFactor(scope, table)
	if err != nil {
		a.err = fmt.Errorf("builder: %s: factor %d: %w", a.name, len(a.factors), err)

		return
	}
	a.factors = append(a.factors, f)
}

// graph finalizes the model.
func (a *assembler) graph() (*core.FactorGraph, error) {
	if a.err != nil {
		return nil, a.err
	}
	g, err := core.New(a.vars, a.factors)
	if err != nil {
		return nil, fmt.Errorf("builder: %s: %w", a.name, err)
	}

	return g, nil
}

// Student builds the classic five-variable student Bayesian network:
//
//	Difficulty   Intelligence
//	      \       /       \
//	       Grade           SAT
//	         |
//	       Letter
//
// Conditional tables follow the textbook parameterization. The incidence
// graph is a tree: 5 variables, 5 factors, 9 edges.
func Student() (*core.FactorGraph, error) {
	a := &assembler{name: "student"}

	difficulty := a.variable("Difficulty", "easy", "hard")
	intelligence := a.variable("Intelligence", "low", "high")
	grade := a.variable("Grade", "a", "b", "c")
	sat := a.variable("SAT", "low", "high")
	letter := a.variable("Letter", "weak", "strong")

	// P(Difficulty), P(Intelligence)
	a.factor([]*core.Variable{difficulty}, 0.6, 0.4)
	a.factor([]*core.Variable{intelligence}, 0.7, 0.3)
	// P(Grade | Intelligence, Difficulty): one row of three grades per
	// (intelligence, difficulty) pair, pairs in row-major scope order.
	a.factor([]*core.Variable{intelligence, difficulty, grade},
		0.3, 0.4, 0.3, // low, easy
		0.05, 0.25, 0.7, // low, hard
		0.9, 0.08, 0.02, // high, easy
		0.5, 0.3, 0.2, // high, hard
	)
	// P(SAT | Intelligence)
	a.factor([]*core.Variable{intelligence, sat},
		0.95, 0.05,
		0.2, 0.8,
	)
	// P(Letter | Grade)
	a.factor([]*core.Variable{grade, letter},
		0.1, 0.9,
		0.4, 0.6,
		0.99, 0.01,
	)

	return a.graph()
}

// ExtendedStudent builds the eight-variable extension of Student: the
// course Coherence now drives Difficulty, and two downstream variables
// (Job, Happy) close a loop through Grade, Letter and SAT. The incidence
// graph is NOT a tree, so this model exercises the elimination engines.
func ExtendedStudent() (*core.FactorGraph, error) {
	a := &assembler{name: "extended-student"}

	coherence := a.variable("Coherence", "incoherent", "coherent")
	difficulty := a.variable("Difficulty", "easy", "hard")
	intelligence := a.variable("Intelligence", "low", "high")
	grade := a.variable("Grade", "a", "b", "c")
	sat := a.variable("SAT", "low", "high")
	letter := a.variable("Letter", "weak", "strong")
	job := a.variable("Job", "no", "yes")
	happy := a.variable("Happy", "no", "yes")

	// P(Coherence), P(Difficulty | Coherence)
	a.factor([]*core.Variable{coherence}, 0.5, 0.5)
	a.factor([]*core.Variable{coherence, difficulty},
		0.6, 0.4,
		0.8, 0.2,
	)
	// P(Intelligence)
	a.factor([]*core.Variable{intelligence}, 0.7, 0.3)
	// P(Grade | Intelligence, Difficulty)
	a.factor([]*core.Variable{intelligence, difficulty, grade},
		0.3, 0.4, 0.3,
		0.05, 0.25, 0.7,
		0.9, 0.08, 0.02,
		0.5, 0.3, 0.2,
	)
	// P(SAT | Intelligence)
	a.factor([]*core.Variable{intelligence, sat},
		0.95, 0.05,
		0.2, 0.8,
	)
	// P(Letter | Grade)
	a.factor([]*core.Variable{grade, letter},
		0.1, 0.9,
		0.4, 0.6,
		0.99, 0.01,
	)
	// P(Job | Letter, SAT)
	a.factor([]*core.Variable{letter, sat, job},
		0.9, 0.1, // weak, low
		0.4, 0.6, // weak, high
		0.6, 0.4, // strong, low
		0.1, 0.9, // strong, high
	)
	// P(Happy | Grade, Job)
	a.factor([]*core.Variable{grade, job, happy},
		0.2, 0.8, // a, no
		0.05, 0.95, // a, yes
		0.5, 0.5, // b, no
		0.2, 0.8, // b, yes
		0.9, 0.1, // c, no
		0.6, 0.4, // c, yes
	)

	return a.graph()
}

// Misconception builds the four-student pairwise Markov network: Alice,
// Bob, Charles and Debbie each hold a binary belief, with agreement and
// disagreement potentials along the 4-cycle A–B–C–D–A. Loopy; suited to
// the elimination engines.
func Misconception() (*core.FactorGraph, error) {
	a := &assembler{name: "misconception"}

	alice := a.variable("Alice", "0", "1")
	bob := a.variable("Bob", "0", "1")
	charles := a.variable("Charles", "0", "1")
	debbie := a.variable("Debbie", "0", "1")

	a.factor([]*core.Variable{alice, bob}, 30, 5, 1, 10)
	a.factor([]*core.Variable{bob, charles}, 100, 1, 1, 100)
	a.factor([]*core.Variable{charles, debbie}, 1, 100, 100, 1)
	a.factor([]*core.Variable{debbie, alice}, 100, 1, 1, 100)

	return a.graph()
}
