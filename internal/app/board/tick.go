package board

import (
	"time"

	"bountyverse/internal/domain/bounty"
)

// Tick runs the time-driven maintenance pass: expire active contracts into
// completed as failures, discard expired offers, and top the offer stock back
// up. One contract is generated per tick at most, so a drained board refills
// over several ticks rather than in a burst.
func (b *Board) Tick(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := len(b.active) - 1; i >= 0; i-- {
		if !b.active[i].Expired(now) {
			continue
		}
		c := b.active[i]
		c.Ended = true
		c.Outcome = bounty.OutcomeFailed
		b.active = append(b.active[:i], b.active[i+1:]...)
		b.pushCompleted(c)
		if b.metrics != nil {
			b.metrics.RecordExpired()
		}
	}

	for i := len(b.available) - 1; i >= 0; i-- {
		if b.available[i].Expired(now) {
			b.available = append(b.available[:i], b.available[i+1:]...)
		}
	}

	if len(b.available) < b.availableFloor {
		b.generateOne()
	}
}

// generateOne picks a hiring faction at random, then a template that faction
// offers at the player's current reputation. Both picks can come up empty;
// the next tick tries again.
func (b *Board) generateOne() {
	factions := b.catalog.HiringFactions()
	if len(factions) == 0 {
		return
	}
	hiring := factions[b.gen.Rand.Intn(len(factions))]
	tpl, ok := b.catalog.PickForFaction(hiring, b.stance.Reputation(hiring), b.gen.Rand)
	if !ok {
		return
	}
	c, err := b.gen.Generate(&tpl)
	if err != nil {
		return
	}
	b.available = append(b.available, c)
	if b.metrics != nil {
		b.metrics.RecordGenerated(tpl.TemplateID)
	}
}
