// Package core implements the transaction solver: universe
// construction, CNF encoding, unit propagation, DPLL search, model
// projection, and DIMACS interchange with external SAT solvers.
package core

import (
	"github.com/rs/zerolog/log"

	"depsolve/internal/types"
)

// variable is one boolean decision variable bound to a single
// Candidate. Variables live in the problem's dense array; chain
// membership is threaded through prev/next indices so the UID index
// only needs to remember the head slot.
type variable struct {
	cand      *types.Candidate
	toInstall bool
	resolved  bool
	priority  int

	// rules indexes every clause mentioning this variable, so the
	// propagator can reach affected clauses without scanning the
	// whole clause table.
	rules []int

	chainHead int
	chainNext int
	chainPrev int
}

// Problem owns the variable store, the clause store, and the search
// state for one solve. It borrows the universe's candidates and UID
// strings; the universe must outlive the problem. A problem must not
// be used from more than one goroutine.
type Problem struct {
	universe *types.Universe
	vars     []variable
	clauses  []clause
	uidIndex map[string]int

	decisions int
	warnings  []string
}

// NewProblem builds the variable store from the universe's chains and
// encodes the full CNF. Encoding never fails hard: unresolvable
// dependency or provider UIDs are logged, counted as warnings, and
// their clauses dropped.
func NewProblem(universe *types.Universe) *Problem {
	p := &Problem{
		universe: universe,
		uidIndex: map[string]int{},
	}
	for ci := range universe.Chains {
		chain := &universe.Chains[ci]
		head := len(p.vars)
		p.uidIndex[chain.UID] = head
		for mi := range chain.Members {
			idx := len(p.vars)
			p.vars = append(p.vars, variable{
				cand:      &chain.Members[mi],
				priority:  chain.Members[mi].Priority,
				chainHead: head,
				chainNext: -1,
				chainPrev: -1,
			})
			if idx > head {
				p.vars[idx-1].chainNext = idx
				p.vars[idx].chainPrev = idx - 1
			}
		}
	}
	p.encode()
	return p
}

// findChain returns the head variable index for a UID, or false when
// the universe has no chain under that identity.
func (p *Problem) findChain(uid string) (int, bool) {
	head, ok := p.uidIndex[uid]
	return head, ok
}

// chainVars lists every variable index in the chain whose head is
// given, in chain order.
func (p *Problem) chainVars(head int) []int {
	var out []int
	for i := head; i >= 0; i = p.vars[i].chainNext {
		out = append(out, i)
	}
	return out
}

// chainMulti reports whether the chain containing variable i has more
// than one member.
func (p *Problem) chainMulti(i int) bool {
	head := p.vars[i].chainHead
	return p.vars[head].chainNext >= 0
}

// resolveVar fixes a variable's value and bumps the resolved count on
// every clause that mentions it. When a log is given the variable is
// recorded so the owning decision frame can undo it.
func (p *Problem) resolveVar(i int, value bool, implied *[]int) {
	v := &p.vars[i]
	v.toInstall = value
	v.resolved = true
	for _, ci := range v.rules {
		p.clauses[ci].nresolved++
	}
	if implied != nil {
		*implied = append(*implied, i)
	}
}

// unresolveVar reverts resolveVar during backtracking.
func (p *Problem) unresolveVar(i int) {
	v := &p.vars[i]
	v.resolved = false
	for _, ci := range v.rules {
		p.clauses[ci].nresolved--
	}
}

// warn records a soft encoding failure.
func (p *Problem) warn(msg string) {
	log.Warn().Msg(msg)
	p.warnings = append(p.warnings, msg)
}

// Decisions returns how many guesses the search has taken so far.
func (p *Problem) Decisions() int { return p.decisions }

// Warnings lists the soft encoding failures, in emission order.
func (p *Problem) Warnings() []string { return p.warnings }

// NumVars returns the size of the variable store.
func (p *Problem) NumVars() int { return len(p.vars) }

// NumClauses returns the size of the clause store.
func (p *Problem) NumClauses() int { return len(p.clauses) }
