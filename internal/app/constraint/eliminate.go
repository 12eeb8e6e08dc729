package constraint

import "bountyverse/internal/domain/bounty"

// eliminateAllTargets is satisfied when every roster target has a kill event.
type eliminateAllTargets struct{}

func (eliminateAllTargets) Describe() string {
	return "Eliminate all targets."
}

func (eliminateAllTargets) Evaluate(ctx *Context) {
	if !hasRow(ctx.Contract, IDEliminateAllTargets) || !ctx.InPlay {
		return
	}
	targets := ctx.Roster.TargetAgentIDs()

	died := map[string]bool{}
	for _, event := range ctx.Events {
		if event.Kind != bounty.EventKill || event.Kill == nil {
			continue
		}
		if !targets[event.Kill.AgentID] {
			continue
		}
		died[event.Kill.AgentID] = true
	}

	met := len(died) == len(targets)
	failed := ctx.FinalCheck && !met
	updateRows(ctx.Contract, IDEliminateAllTargets, met, failed)
}

// eliminateByProjectile is satisfied when every killed target died to
// projectile damage. Targets still alive do not count against it; the
// all-targets constraint covers completeness.
type eliminateByProjectile struct{}

func (eliminateByProjectile) Describe() string {
	return "Eliminate all targets with a projectile."
}

func (eliminateByProjectile) Evaluate(ctx *Context) {
	if !hasRow(ctx.Contract, IDEliminateByProjectile) || !ctx.InPlay {
		return
	}
	targets := ctx.Roster.TargetAgentIDs()

	died := map[string]bool{}
	byProjectile := map[string]bool{}
	for _, event := range ctx.Events {
		if event.Kind != bounty.EventKill || event.Kill == nil {
			continue
		}
		agentID := event.Kill.AgentID
		if !targets[agentID] || died[agentID] {
			continue
		}
		died[agentID] = true
		if event.Kill.DiedFrom == bounty.DamageProjectile {
			byProjectile[agentID] = true
		}
	}

	met := len(died) == len(byProjectile)
	failed := ctx.FinalCheck && !met
	updateRows(ctx.Contract, IDEliminateByProjectile, met, failed)
}
