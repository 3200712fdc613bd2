package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve/internal/types"
)

// Project maps the satisfying assignment back to transaction actions,
// one chain at a time. A remote member resolved to install becomes an
// install or fetch; an installed member resolved to not-install
// becomes a delete; one of each pairs into an upgrade. A chain must
// never install two versions; the chain-exclusion clauses make that
// unreachable from the internal solver, so hitting it means a broken
// external model or corrupted state.
func (p *Problem) Project() ([]types.Action, error) {
	for i := range p.vars {
		if !p.vars[i].resolved {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("model leaves %s unresolved, cannot project actions", p.vars[i].cand.UID))
		}
	}

	var actions []types.Action
	for _, head := range p.chainHeads() {
		var addSet, delSet []*types.Candidate
		for _, i := range p.chainVars(head) {
			v := &p.vars[i]
			switch {
			case v.toInstall && v.cand.Origin == types.OriginRemote:
				addSet = append(addSet, v.cand)
			case !v.toInstall && v.cand.Origin == types.OriginInstalled:
				delSet = append(delSet, v.cand)
			}
		}
		if len(addSet) > 1 {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("chain %s resolves to %d versions installed at once", p.vars[head].cand.UID, len(addSet)))
		}
		if len(addSet) == 1 {
			if len(delSet) > 0 {
				actions = append(actions, types.Action{
					Kind: types.ActionUpgrade,
					Add:  addSet[0],
					Del:  delSet[0],
				})
				delSet = delSet[1:]
			} else {
				kind := types.ActionInstall
				if p.universe.Job == types.JobFetch {
					kind = types.ActionFetch
				}
				actions = append(actions, types.Action{Kind: kind, Add: addSet[0]})
			}
		}
		for _, del := range delSet {
			actions = append(actions, types.Action{Kind: types.ActionDelete, Del: del})
		}
	}
	return actions, nil
}
