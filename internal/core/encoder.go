package core

import (
	"fmt"

	"depsolve/internal/types"
)

// encode walks every chain member and emits its dependency, conflict,
// shared-library and request clauses, plus one mutual-exclusion group
// per chain. Unknown dependency targets and shared libraries without a
// provider drop their single clause and continue; the universe is
// allowed to be incomplete.
func (p *Problem) encode() {
	for _, head := range p.chainHeads() {
		members := p.chainVars(head)
		for _, a := range members {
			cand := p.vars[a].cand
			p.encodeDepends(a, cand)
			p.encodeConflicts(a, cand)
			if cand.Origin == types.OriginRemote {
				p.encodeShlibs(a, cand)
			}
			p.encodeRequests(a, cand)
			if a == head {
				// one version per identity, emitted from the head once
				for i := 0; i < len(members); i++ {
					for j := i + 1; j < len(members); j++ {
						p.addClause([]literal{
							{v: members[i], neg: true},
							{v: members[j], neg: true},
						})
					}
				}
			}
		}
	}
}

// chainHeads lists the head variable of every chain in universe order.
func (p *Problem) chainHeads() []int {
	heads := make([]int, 0, len(p.universe.Chains))
	next := 0
	for ci := range p.universe.Chains {
		heads = append(heads, next)
		next += len(p.universe.Chains[ci].Members)
	}
	return heads
}

// encodeDepends emits, for each dependency UID with a known chain,
// "installing this candidate requires installing some member of the
// target chain".
func (p *Problem) encodeDepends(a int, cand *types.Candidate) {
	for _, dep := range cand.Depends {
		head, ok := p.findChain(dep)
		if !ok {
			p.warn(fmt.Sprintf("dependency %s of %s has no candidates, clause dropped", dep, cand.UID))
			continue
		}
		lits := []literal{{v: a, neg: true}}
		for _, b := range p.chainVars(head) {
			lits = append(lits, literal{v: b})
		}
		p.addClause(lits)
	}
}

// encodeConflicts emits a binary exclusion against each retained
// member of the conflict's target chain. The conflict kind filters
// which members are retained: remote_local pairs a local candidate
// against remote members and vice versa, remote_remote only pairs two
// remotes.
func (p *Problem) encodeConflicts(a int, cand *types.Candidate) {
	for _, conflict := range cand.Conflicts {
		head, ok := p.findChain(conflict.UID)
		if !ok {
			continue
		}
		for _, b := range p.chainVars(head) {
			if b == a {
				continue
			}
			other := p.vars[b].cand
			switch conflict.Kind {
			case types.ConflictRemoteLocal:
				if cand.Origin == other.Origin {
					continue
				}
			case types.ConflictRemoteRemote:
				if cand.Origin != types.OriginRemote || other.Origin != types.OriginRemote {
					continue
				}
			default:
				continue
			}
			p.addClause([]literal{{v: a, neg: true}, {v: b, neg: true}})
		}
	}
}

// encodeShlibs emits, per required shared library, "installing this
// candidate requires installing some candidate whose chain provides
// the library". Only remote candidates are encoded; an installed
// package already has its libraries on disk.
func (p *Problem) encodeShlibs(a int, cand *types.Candidate) {
	for _, shlib := range cand.RequiresShlibs {
		providers := p.universe.Provides[shlib]
		lits := []literal{{v: a, neg: true}}
		added := map[int]struct{}{}
		for i := range providers {
			head, ok := p.findChain(providers[i].UID)
			if !ok {
				continue
			}
			for _, b := range p.chainVars(head) {
				if _, dup := added[b]; dup {
					continue
				}
				added[b] = struct{}{}
				lits = append(lits, literal{v: b})
			}
		}
		if len(lits) == 1 {
			p.warn(fmt.Sprintf("shared library %s required by %s has no provider, clause dropped", shlib, cand.UID))
			continue
		}
		p.addClause(lits)
	}
}

// encodeRequests pins explicitly requested candidates with unary
// clauses.
func (p *Problem) encodeRequests(a int, cand *types.Candidate) {
	if p.universe.RequestAdd[cand.ID] {
		p.addClause([]literal{{v: a}})
	}
	if p.universe.RequestDelete[cand.ID] {
		p.addClause([]literal{{v: a, neg: true}})
	}
}
