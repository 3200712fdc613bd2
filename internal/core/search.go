package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"depsolve/internal/types"
)

// decisionFrame is one element of the decision stack: the guessed
// variable, the current guess, how often the guess has been inverted
// (at most once per frame), and the implication log holding every
// variable this decision forced, the decision variable itself first.
type decisionFrame struct {
	varIdx     int
	guess      bool
	inversions int
	implied    []int
}

// Solve runs the internal solver: boundary conditions, top-level
// propagation, then DPLL search until every variable is resolved.
func (p *Problem) Solve(ctx context.Context) error {
	p.propagatePure()
	if err := p.propagate(true, nil); err != nil {
		return err
	}
	return p.search(ctx)
}

// search picks unresolved variables in store order, guesses them with
// the job-aware heuristic, and backtracks through the decision stack
// on conflict. Each frame may flip its guess once before the search
// falls back to the previous frame.
func (p *Problem) search(ctx context.Context) error {
	var stack []*decisionFrame
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, ok := p.nextUnresolved()
		if !ok {
			log.Debug().Int("decisions", p.decisions).Msg("transaction solved")
			return nil
		}
		frame := &decisionFrame{varIdx: next, guess: p.initialGuess(next)}
		stack = append(stack, frame)
		for {
			p.decisions++
			p.resolveVar(frame.varIdx, frame.guess, &frame.implied)
			err := p.propagate(false, &frame.implied)
			if err == nil {
				break
			}
			if !errors.Is(err, errConflict) {
				return err
			}
			p.undoFrame(frame)
			for frame.inversions > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					return errbuilder.New().
						WithCode(errbuilder.CodeFailedPrecondition).
						WithMsg(fmt.Sprintf("transaction is unsatisfiable after %d decisions", p.decisions))
				}
				frame = stack[len(stack)-1]
				p.undoFrame(frame)
			}
			frame.inversions++
			frame.guess = !frame.guess
		}
	}
}

// nextUnresolved returns the first unresolved variable in store order.
func (p *Problem) nextUnresolved() (int, bool) {
	for i := range p.vars {
		if !p.vars[i].resolved {
			return i, true
		}
	}
	return 0, false
}

// initialGuess biases the first try toward the assignment that changes
// the least. Outside an upgrade job, installed stays and remote stays
// out. Under an upgrade job the bias flips on chain shape: an
// installed package with an upgrade candidate is guessed out (the
// candidate replaces it), a remote candidate that upgrades a local is
// guessed in, and a remote singleton is still left out.
func (p *Problem) initialGuess(i int) bool {
	installed := p.vars[i].cand.Origin == types.OriginInstalled
	if p.universe.Job == types.JobUpgrade {
		if installed {
			return !p.chainMulti(i)
		}
		return p.chainMulti(i)
	}
	return installed
}

// undoFrame reverts everything the frame's decision caused, newest
// first, and empties the log for the next guess.
func (p *Problem) undoFrame(frame *decisionFrame) {
	for i := len(frame.implied) - 1; i >= 0; i-- {
		p.unresolveVar(frame.implied[i])
	}
	frame.implied = frame.implied[:0]
}
