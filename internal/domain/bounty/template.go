package bounty

import "errors"

var ErrNoEligibleScenes = errors.New("template has no eligible scenes")

const (
	DefaultMaxConstraints = 3
	DefaultMinHoursLimit  = 3
	DefaultMaxHoursLimit  = 8
)

// RolePool is the generation recipe for one population role.
type RolePool struct {
	Min              int           `json:"min"`
	Max              int           `json:"max"`
	EligibleTypes    []EnemyTypeID `json:"eligible_types"`
	EligibleFactions []FactionID   `json:"eligible_factions"`
}

// Template is the recipe a contract is instantiated from. Registered once at
// load time; immutable afterwards.
type Template struct {
	TemplateID      string    `json:"template_id"`
	HiringFactionID FactionID `json:"hiring_faction_id"`
	Infraction      string    `json:"infraction"`

	Targets RolePool `json:"targets"`
	Guards  RolePool `json:"guards"`
	Extras  RolePool `json:"extras"`

	EligibleScenes   []string `json:"eligible_scenes"`
	SceneCivConfigs  []string `json:"scene_civ_configs"`
	SceneEnemConfigs []string `json:"scene_enem_configs"`

	MinCompensation int `json:"min_compensation"`
	MaxCompensation int `json:"max_compensation"`

	// Contract duration, drawn in real-world hours and converted to in-game
	// time through the clock multiplier. Zero values fall back to defaults.
	MinHoursLimit int `json:"min_hours_limit"`
	MaxHoursLimit int `json:"max_hours_limit"`

	MaxConstraints      int             `json:"max_constraints"`
	EligibleConstraints []ConstraintRow `json:"eligible_constraints"`

	ReputationRewards      []ReputationReward      `json:"reputation_rewards"`
	ReputationRequirements []ReputationRequirement `json:"reputation_requirements"`
}

// Validate checks the hard generation preconditions.
func (t *Template) Validate() error {
	if len(t.EligibleScenes) == 0 {
		return ErrNoEligibleScenes
	}
	return nil
}

// EligibleFor reports whether a player with the given reputation may be
// offered this template by the given hiring faction. A template with no
// reputation requirements is open to everyone.
func (t *Template) EligibleFor(factionID FactionID, reputation float64) bool {
	if t.HiringFactionID != factionID {
		return false
	}
	if len(t.ReputationRequirements) == 0 {
		return true
	}
	for _, req := range t.ReputationRequirements {
		if req.FactionID == factionID && reputation >= req.MinRep && reputation <= req.MaxRep {
			return true
		}
	}
	return false
}

func (t *Template) maxConstraints() int {
	if t.MaxConstraints > 0 {
		return t.MaxConstraints
	}
	return DefaultMaxConstraints
}

func (t *Template) hoursRange() (int, int) {
	min, max := t.MinHoursLimit, t.MaxHoursLimit
	if min <= 0 {
		min = DefaultMinHoursLimit
	}
	if max <= 0 {
		max = DefaultMaxHoursLimit
	}
	if max < min {
		max = min
	}
	return min, max
}
