package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"depsolve/internal/types"
)

// errConflict signals a conflicting clause to the search loop; it is
// control flow, not a caller-visible error.
var errConflict = errors.New("conflicting clause")

// propagate drives the assignment to quiescence: no clause is
// conflicting and no clause is unit. Variables forced along the way
// are appended to implied so the owning decision can undo them. At top
// level a conflict produces a human-readable diagnostic instead of the
// bare sentinel.
func (p *Problem) propagate(topLevel bool, implied *[]int) error {
	for {
		forced := false
		for i := range p.vars {
			for {
				for _, ci := range p.vars[i].rules {
					if p.clauseConflicting(&p.clauses[ci]) {
						if topLevel {
							return p.topLevelConflict(&p.clauses[ci])
						}
						return errConflict
					}
				}
				unit := false
				for _, ci := range p.vars[i].rules {
					l, ok := p.clauseUnit(&p.clauses[ci])
					if !ok {
						continue
					}
					p.resolveVar(l.v, !l.neg, implied)
					unit = true
					forced = true
					// forcing can turn another clause on this
					// variable into a unit or a conflict, so rescan
					// from here
					break
				}
				if !unit {
					break
				}
			}
		}
		if !forced {
			return nil
		}
	}
}

// propagatePure sets the search's boundary condition, once, before any
// guessing. Variables mentioned by no clause keep their current state:
// installed stays, remote stays out. Unary clauses are forced
// immediately. Neither kind of forcing is recorded as an implication;
// there is no decision to charge it to.
func (p *Problem) propagatePure() {
	for i := range p.vars {
		if len(p.vars[i].rules) == 0 {
			p.resolveVar(i, p.vars[i].cand.Origin == types.OriginInstalled, nil)
		}
	}
	for ci := range p.clauses {
		c := &p.clauses[ci]
		if len(c.lits) != 1 {
			continue
		}
		l := c.lits[0]
		if p.vars[l.v].resolved {
			continue
		}
		p.resolveVar(l.v, !l.neg, nil)
	}
}

// topLevelConflict renders the conflicting clause's participants the
// way the front end reports them: each candidate with its standing and
// the action the current assignment wants for it.
func (p *Problem) topLevelConflict(c *clause) error {
	parts := make([]string, 0, len(c.lits))
	for _, l := range c.lits {
		v := &p.vars[l.v]
		if v.cand.Origin == types.OriginInstalled {
			want := "remove"
			if v.toInstall {
				want = "keep"
			}
			parts = append(parts, fmt.Sprintf("local %s(want %s)", v.cand.UID, want))
			continue
		}
		want := "ignore"
		if v.toInstall {
			want = "install"
		}
		parts = append(parts, fmt.Sprintf("remote %s(want %s)", v.cand.UID, want))
	}
	msg := fmt.Sprintf("top-level conflict: %s", strings.Join(parts, ", "))
	log.Error().Msg(msg)
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(msg)
}
