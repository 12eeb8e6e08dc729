package board

import (
	"context"

	"bountyverse/internal/app/constraint"
	"bountyverse/internal/domain/bounty"
)

// Resolution describes one contract settled by the final pass.
type Resolution struct {
	ContractID string
	Outcome    bounty.Outcome
	Payout     int
}

// StartSession clears the event log and begins recording. Call on area entry.
func (b *Board) StartSession() {
	b.sessions.Start()
}

// RecordEvent appends a gameplay event and re-evaluates every active
// contract against the updated log. Live evaluation marks constraint rows as
// met but never as violated; failure is only declared by the final pass.
func (b *Board) RecordEvent(ctx context.Context, e bounty.SessionEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.sessions.Record(e) {
		return ErrNoSession
	}
	events := b.sessions.Events()
	for i := range b.active {
		roster, inPlay := b.squads.RosterForContract(ctx, b.active[i].ID)
		b.evaluateRows(&b.active[i], events, roster, inPlay, false)
	}
	return nil
}

// FinalizeAreaExit settles every active contract that has a spawned squad,
// then wipes the session log. Contracts whose squad is not known yet stay
// active untouched; a later exit settles them.
func (b *Board) FinalizeAreaExit(ctx context.Context) []Resolution {
	b.mu.Lock()
	defer b.mu.Unlock()

	events := b.sessions.Events()
	resolved := []Resolution{}
	for i := len(b.active) - 1; i >= 0; i-- {
		roster, ok := b.squads.RosterForContract(ctx, b.active[i].ID)
		if !ok {
			continue
		}
		c := b.active[i]
		res := b.settle(&c, events, roster)
		b.active = append(b.active[:i], b.active[i+1:]...)
		b.pushCompleted(c)
		resolved = append(resolved, res)
		if b.metrics != nil {
			b.metrics.RecordResolved(res.Outcome)
		}
	}
	b.sessions.Wipe()
	return resolved
}

// settle runs the final evaluation over one contract and applies the
// economic consequences of the verdict.
func (b *Board) settle(c *bounty.Contract, events []bounty.SessionEvent, roster bounty.SquadRoster) Resolution {
	total := c.Compensation
	failed := false
	met := 0
	mandatory := 0
	for i := range c.Constraints {
		row := &c.Constraints[i]
		ev, ok := b.registry.Get(row.ConstraintID)
		if !ok {
			// No evaluator for this id: the row contributes nothing either
			// way, it neither pays out nor fails the contract.
			b.skippedConstraints++
			continue
		}
		if !row.Optional {
			mandatory++
		}
		ev.Evaluate(&constraint.Context{
			Contract:   c,
			Events:     events,
			Roster:     roster,
			InPlay:     true,
			FinalCheck: true,
		})
		switch {
		case row.Violated:
			total -= row.PenaltyIfFail
			if !row.Optional {
				failed = true
			}
		case row.Success:
			total += row.RewardIfSucceed
			if !row.Optional {
				met++
			}
		default:
			// Still pending after a final check means the evaluator never
			// ran; a mandatory condition nobody vouched for is a failure.
			if !row.Optional {
				failed = true
			}
		}
		if failed && row.Violated && !row.Optional {
			break
		}
	}
	if met < mandatory {
		failed = true
	}
	if total < 0 {
		total = 0
	}

	c.Ended = true
	if failed {
		c.Outcome = bounty.OutcomeFailed
		return Resolution{ContractID: c.ID, Outcome: c.Outcome}
	}
	c.Outcome = bounty.OutcomeSucceeded
	b.bank.Credit(total, "Contract completed: "+c.DisplayName)
	for _, r := range c.ReputationRewards {
		b.stance.Adjust(r.FactionID, r.Rep)
	}
	return Resolution{ContractID: c.ID, Outcome: c.Outcome, Payout: total}
}

// evaluateRows runs every row's evaluator once against the current log.
func (b *Board) evaluateRows(c *bounty.Contract, events []bounty.SessionEvent, roster bounty.SquadRoster, inPlay, final bool) {
	for i := range c.Constraints {
		ev, ok := b.registry.Get(c.Constraints[i].ConstraintID)
		if !ok {
			b.skippedConstraints++
			continue
		}
		ev.Evaluate(&constraint.Context{
			Contract:   c,
			Events:     events,
			Roster:     roster,
			InPlay:     inPlay,
			FinalCheck: final,
		})
	}
}
