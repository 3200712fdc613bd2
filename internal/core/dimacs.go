package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ExportDIMACS renders the encoded problem in DIMACS CNF. Variables
// are numbered 1..n in store order, so the same walk re-associates an
// external model with its variables on the way back in.
func (p *Problem) ExportDIMACS() string {
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d\n", len(p.vars), len(p.clauses))
	for ci := range p.clauses {
		for _, l := range p.clauses[ci].lits {
			order := l.v + 1
			if l.neg {
				order = -order
			}
			fmt.Fprintf(&b, "%d ", order)
		}
		b.WriteString("0\n")
	}
	return b.String()
}

// ApplyModel parses an external SAT solver's output and fixes every
// named variable accordingly. Both common shapes are accepted: a SAT
// status line followed by whitespace-separated signed orders, and
// `v`-prefixed value lines; either list ends at a literal 0. Comment
// (`c`) and status (`s SATISFIABLE`) lines are skipped; orders outside
// the store are ignored; variables the model never names stay
// unresolved, which projection reports.
func (p *Problem) ApplyModel(output string) error {
	sawValues := false
	terminated := false
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
			continue
		case "s":
			if len(fields) > 1 && strings.EqualFold(fields[1], "UNSATISFIABLE") {
				return errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg("external solver reported unsatisfiable")
			}
			continue
		case "UNSAT", "UNSATISFIABLE":
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("external solver reported unsatisfiable")
		case "SAT", "SATISFIABLE":
			sawValues = true
			fields = fields[1:]
		case "v":
			sawValues = true
			fields = fields[1:]
		default:
			if !sawValues {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("unrecognised solver output line: %s", strings.TrimSpace(line)))
			}
		}
		if terminated {
			continue
		}
		for _, field := range fields {
			order, err := strconv.Atoi(field)
			if err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid literal %q in solver model", field)).
					WithCause(err)
			}
			if order == 0 {
				terminated = true
				break
			}
			idx := order
			if idx < 0 {
				idx = -idx
			}
			idx--
			if idx >= len(p.vars) {
				continue
			}
			p.vars[idx].toInstall = order > 0
			p.vars[idx].resolved = true
		}
	}
	if !sawValues {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("solver output carries no model")
	}
	if !terminated {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("solver model is truncated, missing terminating 0")
	}
	return nil
}
