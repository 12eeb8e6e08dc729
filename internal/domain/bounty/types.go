package bounty

import (
	"slices"
	"time"
)

// SlotKey groups a subset of a contract's population under a planner-defined
// name (e.g. "targets"). Spawners echo the same keys back when reporting which
// agent instances they created for each group.
type SlotKey string

const (
	SlotTargets SlotKey = "targets"
	SlotGuards  SlotKey = "guards"
	SlotExtras  SlotKey = "extras"
)

type Role string

const (
	RoleTargets Role = "targets"
	RoleGuards  Role = "guards"
	RoleExtras  Role = "extras"
)

type EnemyTypeID string

type FactionID string

type Outcome string

const (
	OutcomePending   Outcome = "pending"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// ConstraintRow is one success/failure condition attached to a contract.
// Success and Violated are mutually exclusive; both false means the
// constraint has not been resolved in the current session.
type ConstraintRow struct {
	ConstraintID    string `json:"constraint_id"`
	Optional        bool   `json:"optional"`
	Success         bool   `json:"success"`
	Violated        bool   `json:"violated"`
	RewardIfSucceed int    `json:"reward_if_succeed"`
	PenaltyIfFail   int    `json:"penalty_if_fail"`
}

type ReputationReward struct {
	FactionID FactionID `json:"faction_id"`
	Rep       float64   `json:"rep"`
}

type ReputationRequirement struct {
	FactionID FactionID `json:"faction_id"`
	MinRep    float64   `json:"min_rep"`
	MaxRep    float64   `json:"max_rep"`
}

// Contract is one generated bounty. It belongs to exactly one of the board's
// available/active/completed collections at a time and is never mutated after
// moving to completed.
type Contract struct {
	ID string `json:"id"`

	DisplayName     string    `json:"display_name"`
	HiringFactionID FactionID `json:"hiring_faction_id"`
	TargetFirstName string    `json:"target_first_name"`
	TargetLastName  string    `json:"target_last_name"`
	Infraction      string    `json:"infraction"`

	TargetIDs map[SlotKey][]EnemyTypeID `json:"target_ids"`
	GuardIDs  map[SlotKey][]EnemyTypeID `json:"guard_ids"`
	ExtrasIDs map[SlotKey][]EnemyTypeID `json:"extras_ids"`

	TargetFactions map[SlotKey]FactionID `json:"target_factions"`
	GuardFactions  map[SlotKey]FactionID `json:"guard_factions"`
	ExtrasFactions map[SlotKey]FactionID `json:"extras_factions"`

	SceneName           string `json:"scene_name"`
	SceneCivConfigName  string `json:"scene_civ_config_name"`
	SceneEnemConfigName string `json:"scene_enem_config_name"`

	// ExpirationTime is an absolute in-game timestamp, ISO-8601 (RFC 3339).
	ExpirationTime string `json:"expiration_time"`

	Compensation           int                     `json:"compensation"`
	ReputationRewards      []ReputationReward      `json:"reputation_rewards"`
	ReputationRequirements []ReputationRequirement `json:"reputation_requirements"`
	Constraints            []ConstraintRow         `json:"constraints"`

	Accepted bool    `json:"accepted"`
	Ended    bool    `json:"ended"`
	Outcome  Outcome `json:"outcome"`
}

func (c *Contract) ExpiresAt() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, c.ExpirationTime)
}

// Expired reports whether the contract's expiration is at or before the given
// in-game time. A malformed timestamp counts as expired so a corrupt contract
// cannot linger forever.
func (c *Contract) Expired(now time.Time) bool {
	at, err := c.ExpiresAt()
	if err != nil {
		return true
	}
	return !now.Before(at)
}

// Populations returns the role→slot→types mapping for the given role.
func (c *Contract) Populations(role Role) map[SlotKey][]EnemyTypeID {
	switch role {
	case RoleTargets:
		return c.TargetIDs
	case RoleGuards:
		return c.GuardIDs
	case RoleExtras:
		return c.ExtrasIDs
	}
	return nil
}

// MandatoryConstraintCount counts non-optional constraint rows.
func (c *Contract) MandatoryConstraintCount() int {
	n := 0
	for _, row := range c.Constraints {
		if !row.Optional {
			n++
		}
	}
	return n
}

// Clone returns a deep copy. Board accessors hand out clones so callers can
// never mutate the backing collections.
func (c *Contract) Clone() Contract {
	out := *c
	out.TargetIDs = clonePopulations(c.TargetIDs)
	out.GuardIDs = clonePopulations(c.GuardIDs)
	out.ExtrasIDs = clonePopulations(c.ExtrasIDs)
	out.TargetFactions = cloneFactions(c.TargetFactions)
	out.GuardFactions = cloneFactions(c.GuardFactions)
	out.ExtrasFactions = cloneFactions(c.ExtrasFactions)
	out.ReputationRewards = slices.Clone(c.ReputationRewards)
	out.ReputationRequirements = slices.Clone(c.ReputationRequirements)
	out.Constraints = slices.Clone(c.Constraints)
	return out
}

// slices.Clone keeps an empty non-nil slice non-nil, so a cloned contract
// stays structurally identical to its original (and JSON round-trips [] as
// [], not null).
func clonePopulations(in map[SlotKey][]EnemyTypeID) map[SlotKey][]EnemyTypeID {
	if in == nil {
		return nil
	}
	out := make(map[SlotKey][]EnemyTypeID, len(in))
	for k, v := range in {
		out[k] = slices.Clone(v)
	}
	return out
}

func cloneFactions(in map[SlotKey]FactionID) map[SlotKey]FactionID {
	if in == nil {
		return nil
	}
	out := make(map[SlotKey]FactionID, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// TrackedAgent is one spawned agent instance the spawner reported for a
// contract, correlated back to the slot it was spawned for.
type TrackedAgent struct {
	AgentID   string      `json:"agent_id"`
	Slot      SlotKey     `json:"slot"`
	EnemyType EnemyTypeID `json:"enemy_type"`
}

// SquadRoster is the spawner's explicit echo of slot→agent-instance
// correlation for one contract's squad in the current session.
type SquadRoster struct {
	ContractID string         `json:"contract_id"`
	Targets    []TrackedAgent `json:"targets"`
	Guards     []TrackedAgent `json:"guards"`
	Extras     []TrackedAgent `json:"extras"`
}

// TargetAgentIDs returns the set of agent ids tracked as bounty targets.
func (r SquadRoster) TargetAgentIDs() map[string]bool {
	out := make(map[string]bool, len(r.Targets))
	for _, a := range r.Targets {
		out[a.AgentID] = true
	}
	return out
}
