// Package board owns the contract ledger: the available, active, and
// completed collections and every transition between them. All mutation goes
// through Board methods on one logical thread; a mutex serializes the
// concurrent HTTP adapter onto it.
package board

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"bountyverse/internal/app/catalog"
	"bountyverse/internal/app/constraint"
	"bountyverse/internal/app/ports"
	"bountyverse/internal/app/session"
	"bountyverse/internal/domain/bounty"
	"bountyverse/internal/domain/economy"
	"bountyverse/internal/domain/faction"
	"bountyverse/internal/domain/gameclock"
)

const (
	// DefaultAvailableFloor is the minimum stock of offered contracts the
	// tick loop refills toward.
	DefaultAvailableFloor = 3
	// DefaultCompletedBound caps the completed ledger; newest first, oldest
	// evicted.
	DefaultCompletedBound = 10
)

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrNoSession        = errors.New("no active session")
)

type Config struct {
	Catalog  *catalog.Catalog
	Registry *constraint.Registry
	Clock    *gameclock.Clock
	Sessions *session.Log
	Bank     *economy.Bank
	Stance   *faction.Stance
	Squads   ports.SquadProvider
	Metrics  ports.BoardMetrics
	Rand     *rand.Rand
	// IDs overrides contract id generation; tests inject deterministic ids.
	IDs func() string

	AvailableFloor int
	CompletedBound int
}

type Board struct {
	mu sync.Mutex
	// clockMu serializes clock advances without holding mu, so tick
	// handlers can take mu themselves.
	clockMu sync.Mutex

	catalog  *catalog.Catalog
	registry *constraint.Registry
	clock    *gameclock.Clock
	sessions *session.Log
	bank     *economy.Bank
	stance   *faction.Stance
	squads   ports.SquadProvider
	metrics  ports.BoardMetrics
	gen      bounty.Generator

	available []bounty.Contract
	active    []bounty.Contract
	completed []bounty.Contract

	availableFloor int
	completedBound int

	// skippedConstraints counts constraint rows whose id had no evaluator;
	// they contribute nothing to evaluation but are worth surfacing.
	skippedConstraints uint64
}

func New(cfg Config) *Board {
	floor := cfg.AvailableFloor
	if floor <= 0 {
		floor = DefaultAvailableFloor
	}
	bound := cfg.CompletedBound
	if bound <= 0 {
		bound = DefaultCompletedBound
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{
		catalog:  cfg.Catalog,
		registry: cfg.Registry,
		clock:    cfg.Clock,
		sessions: cfg.Sessions,
		bank:     cfg.Bank,
		stance:   cfg.Stance,
		squads:   cfg.Squads,
		metrics:  cfg.Metrics,
		gen: bounty.Generator{
			Rand:  rng,
			Clock: cfg.Clock,
			IDs:   cfg.IDs,
		},
		available:      []bounty.Contract{},
		active:         []bounty.Contract{},
		completed:      []bounty.Contract{},
		availableFloor: floor,
		completedBound: bound,
	}
}

// Restore replaces the board, bank, faction, and clock state from a loaded
// save.
func (b *Board) Restore(state ports.SaveState) error {
	b.clockMu.Lock()
	defer b.clockMu.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.clock.Restore(state.Clock); err != nil {
		return err
	}
	b.available = cloneContracts(state.Board.Available)
	b.active = cloneContracts(state.Board.Active)
	b.completed = cloneContracts(state.Board.Completed)
	b.bank.Restore(state.Bank)
	b.stance.Restore(state.Factions)
	return nil
}

// Snapshot captures everything a save slot records.
func (b *Board) Snapshot() ports.SaveState {
	b.clockMu.Lock()
	defer b.clockMu.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()
	return ports.SaveState{
		Board: ports.BoardState{
			Available: cloneContracts(b.available),
			Active:    cloneContracts(b.active),
			Completed: cloneContracts(b.completed),
		},
		Bank:     b.bank.Snapshot(),
		Factions: b.stance.Snapshot(),
		Clock:    b.clock.Config(),
	}
}

// AdvanceClock moves in-game time forward by a real-world duration and runs
// whatever tick handlers are registered on the clock. The board's own Tick
// takes the main lock itself, so the clock gets a separate one.
func (b *Board) AdvanceClock(realElapsed time.Duration) time.Time {
	b.clockMu.Lock()
	defer b.clockMu.Unlock()
	return b.clock.AdvanceReal(realElapsed)
}

// BankSummary renders the bank sheet; reads go through the board's lock
// because settlements write the bank under it.
func (b *Board) BankSummary(maxTransactions int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bank.Summary(maxTransactions)
}

func (b *Board) BankSnapshot() economy.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bank.Snapshot()
}

func (b *Board) FactionSummary() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stance.Summary()
}

func (b *Board) FactionSnapshot() faction.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stance.Snapshot()
}

// Available returns a read-only snapshot; mutation goes through Accept and
// friends, never through the returned slice.
func (b *Board) Available() []bounty.Contract {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneContracts(b.available)
}

func (b *Board) Active() []bounty.Contract {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneContracts(b.active)
}

func (b *Board) Completed() []bounty.Contract {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneContracts(b.completed)
}

// Accept moves a contract from available to active. Unknown ids fail with no
// state change, so a double-accept is harmless.
func (b *Board) Accept(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.available {
		if b.available[i].ID != id {
			continue
		}
		c := b.available[i]
		c.Accepted = true
		b.available = append(b.available[:i], b.available[i+1:]...)
		b.active = append(b.active, c)
		if b.metrics != nil {
			b.metrics.RecordAccepted()
		}
		return nil
	}
	return ErrContractNotFound
}

// Reject removes a contract from active with no reward or penalty
// processing. Whether abandoning a contract should cost something is an open
// product question; for now it is free.
func (b *Board) Reject(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.active {
		if b.active[i].ID != id {
			continue
		}
		b.active = append(b.active[:i], b.active[i+1:]...)
		return nil
	}
	return ErrContractNotFound
}

// Find looks an id up across all three collections.
func (b *Board) Find(id string) (bounty.Contract, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, list := range [][]bounty.Contract{b.available, b.active, b.completed} {
		for i := range list {
			if list[i].ID == id {
				return list[i].Clone(), true
			}
		}
	}
	return bounty.Contract{}, false
}

// ContractSummary renders the UI sheet for one contract.
func (b *Board) ContractSummary(id string) (string, error) {
	c, ok := b.Find(id)
	if !ok {
		return "", ErrContractNotFound
	}
	return c.Summary(b.clock), nil
}

// SkippedConstraints reports how many constraint rows were skipped because
// their id had no registered evaluator.
func (b *Board) SkippedConstraints() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.skippedConstraints
}

// newest first, bounded
func (b *Board) pushCompleted(c bounty.Contract) {
	b.completed = append([]bounty.Contract{c}, b.completed...)
	if len(b.completed) > b.completedBound {
		b.completed = b.completed[:b.completedBound]
	}
}

func cloneContracts(in []bounty.Contract) []bounty.Contract {
	out := make([]bounty.Contract, 0, len(in))
	for i := range in {
		out = append(out, in[i].Clone())
	}
	return out
}
