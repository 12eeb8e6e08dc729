// Package faction tracks the player's standing with each faction and the
// fixed hostilities between factions.
package faction

import (
	"fmt"
	"strings"

	"bountyverse/internal/domain/bounty"
)

type Record struct {
	FactionID     bounty.FactionID   `json:"faction_id"`
	CurrentRep    float64            `json:"current_rep"`
	StartingRep   float64            `json:"starting_rep"`
	MinRep        float64            `json:"min_rep"`
	MaxRep        float64            `json:"max_rep"`
	AlwaysHostile []bounty.FactionID `json:"always_hostile"`
}

type Snapshot struct {
	Factions []Record `json:"factions"`
}

// Stance is the faction-reputation ledger. Mutated only through Register and
// Adjust.
type Stance struct {
	factions []Record
	index    map[bounty.FactionID]int
}

func NewStance() *Stance {
	return &Stance{index: map[bounty.FactionID]int{}}
}

func FromSnapshot(s Snapshot) *Stance {
	st := NewStance()
	for _, rec := range s.Factions {
		st.factions = append(st.factions, rec)
		st.index[rec.FactionID] = len(st.factions) - 1
	}
	return st
}

// Restore replaces the ledger in place with a loaded snapshot.
func (s *Stance) Restore(snap Snapshot) {
	s.factions = s.factions[:0]
	s.index = map[bounty.FactionID]int{}
	for _, rec := range snap.Factions {
		s.factions = append(s.factions, rec)
		s.index[rec.FactionID] = len(s.factions) - 1
	}
}

func (s *Stance) Snapshot() Snapshot {
	return Snapshot{Factions: append([]Record(nil), s.factions...)}
}

// Register adds a faction or merges bounds and hostilities into an existing
// entry. Current reputation of a known faction is left alone so content
// reloads cannot reset player progress.
func (s *Stance) Register(rec Record) {
	if i, ok := s.index[rec.FactionID]; ok {
		existing := &s.factions[i]
		existing.StartingRep = rec.StartingRep
		existing.MinRep = rec.MinRep
		existing.MaxRep = rec.MaxRep
		for _, hostile := range rec.AlwaysHostile {
			if !containsFaction(existing.AlwaysHostile, hostile) {
				existing.AlwaysHostile = append(existing.AlwaysHostile, hostile)
			}
		}
		return
	}
	s.factions = append(s.factions, rec)
	s.index[rec.FactionID] = len(s.factions) - 1
}

// Adjust applies a signed delta to a faction's reputation, clamped to the
// faction's [min,max]. Returns false for an unknown faction.
func (s *Stance) Adjust(id bounty.FactionID, delta float64) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	rec := &s.factions[i]
	rec.CurrentRep = clamp(rec.CurrentRep+delta, rec.MinRep, rec.MaxRep)
	return true
}

// Reputation returns the player's current standing, 0 for unknown factions.
func (s *Stance) Reputation(id bounty.FactionID) float64 {
	if i, ok := s.index[id]; ok {
		return s.factions[i].CurrentRep
	}
	return 0
}

func (s *Stance) Known(id bounty.FactionID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Stance) HostileTowards(source, target bounty.FactionID) bool {
	i, ok := s.index[source]
	if !ok {
		return false
	}
	return containsFaction(s.factions[i].AlwaysHostile, target)
}

// Summary renders the stance sheet for the UI.
func (s *Stance) Summary() string {
	var sb strings.Builder
	for _, rec := range s.factions {
		fmt.Fprintf(&sb, "Faction ID: %s\n", rec.FactionID)
		fmt.Fprintf(&sb, "Current Reputation: %g\n", rec.CurrentRep)
		fmt.Fprintf(&sb, "Max Reputation: %g\n", rec.MaxRep)
		fmt.Fprintf(&sb, "Min Reputation: %g\n", rec.MinRep)
		hostiles := make([]string, 0, len(rec.AlwaysHostile))
		for _, h := range rec.AlwaysHostile {
			hostiles = append(hostiles, string(h))
		}
		fmt.Fprintf(&sb, "Always Hostile Towards: %s\n", strings.Join(hostiles, ", "))
		sb.WriteString("---------------------------\n")
	}
	return sb.String()
}

func containsFaction(list []bounty.FactionID, id bounty.FactionID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
