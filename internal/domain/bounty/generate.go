package bounty

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// GameTime is the slice of the in-game clock the generator depends on.
type GameTime interface {
	Now() time.Time
	GameTimeAfterReal(d time.Duration) time.Time
}

// Generator turns templates into concrete contracts. Rand must be set by the
// caller; tests inject a seeded source. IDs defaults to uuid.NewString.
type Generator struct {
	Rand  *rand.Rand
	Clock GameTime
	IDs   func() string
}

// Generate produces a contract from the template. The only hard precondition
// is a non-empty eligible-scene list; anything else degrades (empty pools
// yield empty populations or empty config names).
func (g Generator) Generate(t *Template) (Contract, error) {
	if err := t.Validate(); err != nil {
		return Contract{}, fmt.Errorf("template %s: %w", t.TemplateID, err)
	}

	compensation := g.intBetween(t.MinCompensation, t.MaxCompensation)
	minHours, maxHours := t.hoursRange()

	c := Contract{
		ID:              g.newID(),
		DisplayName:     fmt.Sprintf("%s: $%d", t.HiringFactionID, compensation),
		HiringFactionID: t.HiringFactionID,
		TargetFirstName: "First",
		TargetLastName:  "Last",
		Infraction:      t.Infraction,

		SceneName:           t.EligibleScenes[g.Rand.Intn(len(t.EligibleScenes))],
		SceneCivConfigName:  g.pickOrEmpty(t.SceneCivConfigs),
		SceneEnemConfigName: g.pickOrEmpty(t.SceneEnemConfigs),

		ExpirationTime: g.Clock.GameTimeAfterReal(
			time.Duration(g.intBetween(minHours, maxHours)) * time.Hour,
		).Format(time.RFC3339Nano),

		Compensation:           compensation,
		ReputationRewards:      append([]ReputationReward(nil), t.ReputationRewards...),
		ReputationRequirements: append([]ReputationRequirement(nil), t.ReputationRequirements...),
		Constraints:            g.drawConstraints(t),

		Outcome: OutcomePending,
	}

	c.TargetIDs = map[SlotKey][]EnemyTypeID{SlotTargets: g.drawPopulation(t.Targets)}
	c.GuardIDs = map[SlotKey][]EnemyTypeID{SlotGuards: g.drawPopulation(t.Guards)}
	c.ExtrasIDs = map[SlotKey][]EnemyTypeID{SlotExtras: g.drawPopulation(t.Extras)}

	c.TargetFactions = map[SlotKey]FactionID{SlotTargets: g.pickFactionOrEmpty(t.Targets.EligibleFactions)}
	c.GuardFactions = map[SlotKey]FactionID{SlotGuards: g.pickFactionOrEmpty(t.Guards.EligibleFactions)}
	c.ExtrasFactions = map[SlotKey]FactionID{SlotExtras: g.pickFactionOrEmpty(t.Extras.EligibleFactions)}

	return c, nil
}

func (g Generator) newID() string {
	if g.IDs != nil {
		return g.IDs()
	}
	return uuid.NewString()
}

// intBetween draws uniformly from [min, max); a degenerate range yields min.
func (g Generator) intBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.Rand.Intn(max-min)
}

// intBetweenInclusive draws uniformly from [min, max].
func (g Generator) intBetweenInclusive(min, max int) int {
	if max < min {
		return min
	}
	return min + g.Rand.Intn(max-min+1)
}

func (g Generator) pickOrEmpty(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[g.Rand.Intn(len(pool))]
}

func (g Generator) pickFactionOrEmpty(pool []FactionID) FactionID {
	if len(pool) == 0 {
		return ""
	}
	return pool[g.Rand.Intn(len(pool))]
}

// drawPopulation picks a count in the role's [min,max] and fills each slot
// with one type drawn from the eligible pool. An empty pool means the role
// spawns nobody regardless of the count range.
func (g Generator) drawPopulation(pool RolePool) []EnemyTypeID {
	out := []EnemyTypeID{}
	if len(pool.EligibleTypes) == 0 {
		return out
	}
	count := g.intBetweenInclusive(pool.Min, pool.Max)
	for i := 0; i < count; i++ {
		out = append(out, pool.EligibleTypes[g.Rand.Intn(len(pool.EligibleTypes))])
	}
	return out
}

// drawConstraints shuffles the template pool and takes up to MaxConstraints.
// No dedup beyond what the template author ensured.
func (g Generator) drawConstraints(t *Template) []ConstraintRow {
	if len(t.EligibleConstraints) == 0 {
		return []ConstraintRow{}
	}
	shuffled := append([]ConstraintRow(nil), t.EligibleConstraints...)
	g.Rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	take := t.maxConstraints()
	if take > len(shuffled) {
		take = len(shuffled)
	}
	out := shuffled[:take]
	for i := range out {
		out[i].Success = false
		out[i].Violated = false
	}
	return out
}
