// Package mock is the stand-in squad provider for builds without a live
// spawner. Rosters are registered up front, typically from test setup or a
// scripted scenario.
package mock

import (
	"context"
	"sync"

	"bountyverse/internal/domain/bounty"
)

type Provider struct {
	mu      sync.Mutex
	rosters map[string]bounty.SquadRoster
}

func NewProvider() *Provider {
	return &Provider{rosters: map[string]bounty.SquadRoster{}}
}

// SetRoster registers or replaces the spawned squad for a contract.
func (p *Provider) SetRoster(roster bounty.SquadRoster) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rosters[roster.ContractID] = roster
}

// ClearRoster drops a contract's roster, as a despawn would.
func (p *Provider) ClearRoster(contractID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.rosters, contractID)
}

func (p *Provider) RosterForContract(_ context.Context, contractID string) (bounty.SquadRoster, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	roster, ok := p.rosters[contractID]
	return roster, ok
}
