package faction

import "bountyverse/internal/domain/bounty"

// RegisterDefaults installs the stock factions matching the default contract
// templates. Content manifests can widen their bounds or add hostilities by
// re-registering the same faction id.
func (s *Stance) RegisterDefaults() {
	s.Register(Record{
		FactionID:     "Hollys",
		StartingRep:   0,
		MinRep:        -50,
		MaxRep:        50,
		AlwaysHostile: []bounty.FactionID{"Buddys"},
	})
	s.Register(Record{
		FactionID:     "Buddys",
		StartingRep:   0,
		MinRep:        -50,
		MaxRep:        50,
		AlwaysHostile: []bounty.FactionID{"Hollys"},
	})
}
