package ports

import (
	"context"
	"time"

	"bountyverse/internal/domain/bounty"
	"bountyverse/internal/domain/economy"
	"bountyverse/internal/domain/faction"
	"bountyverse/internal/domain/gameclock"
)

// BoardState is the contract ledger's three collections as persisted.
type BoardState struct {
	Available []bounty.Contract `json:"available"`
	Active    []bounty.Contract `json:"active"`
	Completed []bounty.Contract `json:"completed"`
}

// SaveState is one save slot's full persistent snapshot. Sub-states stay
// opaque to the repository; it only stores and retrieves them.
type SaveState struct {
	Board    BoardState       `json:"board"`
	Bank     economy.Snapshot `json:"bank"`
	Factions faction.Snapshot `json:"factions"`
	Clock    gameclock.Config `json:"clock"`
	SavedAt  time.Time        `json:"saved_at"`
}

// SaveStateRepository persists save slots. Load returns ErrNotFound for a
// slot that has never been saved.
type SaveStateRepository interface {
	Load(ctx context.Context, slot string) (SaveState, error)
	Save(ctx context.Context, slot string, state SaveState) error
}
