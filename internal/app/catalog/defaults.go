package catalog

import (
	"bountyverse/internal/app/constraint"
	"bountyverse/internal/domain/bounty"
)

// RegisterDefaults installs the stock contract templates. External content
// manifests can replace any of them by re-registering the same template id.
func (c *Catalog) RegisterDefaults() {
	c.Register(bounty.Template{
		TemplateID:      "Hollys_LowRep",
		HiringFactionID: "Hollys",
		Infraction:      "Did something bad",
		ReputationRequirements: []bounty.ReputationRequirement{
			{FactionID: "Hollys", MinRep: -10.0, MaxRep: 10.0},
		},
		Targets: bounty.RolePool{
			Min: 1, Max: 2,
			EligibleTypes:    []bounty.EnemyTypeID{"henchman_light", "henchman_medium", "henchman_shotgun"},
			EligibleFactions: []bounty.FactionID{"Buddys"},
		},
		Guards: bounty.RolePool{
			Min: 0, Max: 1,
			EligibleTypes:    []bounty.EnemyTypeID{"guard_basic"},
			EligibleFactions: []bounty.FactionID{"Buddys"},
		},
		Extras:           bounty.RolePool{},
		EligibleScenes:   []string{"Grillhouse_2Story"},
		SceneCivConfigs:  []string{"default_civ"},
		SceneEnemConfigs: []string{"default_enemy"},
		MinCompensation:  90,
		MaxCompensation:  110,
		EligibleConstraints: []bounty.ConstraintRow{
			{ConstraintID: constraint.IDEliminateByProjectile, RewardIfSucceed: 50, PenaltyIfFail: 50},
		},
		ReputationRewards: []bounty.ReputationReward{
			{FactionID: "Hollys", Rep: 0.4},
			{FactionID: "Buddys", Rep: -0.8},
		},
	})

	c.Register(bounty.Template{
		TemplateID:      "Hollys_HighRep",
		HiringFactionID: "Hollys",
		Infraction:      "Did something bad",
		ReputationRequirements: []bounty.ReputationRequirement{
			{FactionID: "Hollys", MinRep: 10.1, MaxRep: 50.0},
		},
		Targets: bounty.RolePool{
			Min: 1, Max: 1,
			EligibleTypes:    []bounty.EnemyTypeID{"boss_armored"},
			EligibleFactions: []bounty.FactionID{"Buddys"},
		},
		Guards: bounty.RolePool{
			Min: 1, Max: 5,
			EligibleTypes:    []bounty.EnemyTypeID{"guard_elite"},
			EligibleFactions: []bounty.FactionID{"Buddys"},
		},
		Extras:           bounty.RolePool{},
		EligibleScenes:   []string{"Grillhouse_2Story"},
		SceneCivConfigs:  []string{"default_civ"},
		SceneEnemConfigs: []string{"default_enemy"},
		MinCompensation:  2250,
		MaxCompensation:  2750,
		EligibleConstraints: []bounty.ConstraintRow{
			{ConstraintID: constraint.IDEliminateByProjectile, Optional: true, RewardIfSucceed: 200, PenaltyIfFail: 200},
		},
		ReputationRewards: []bounty.ReputationReward{
			{FactionID: "Hollys", Rep: 0.8},
			{FactionID: "Buddys", Rep: -1.0},
		},
	})
}
